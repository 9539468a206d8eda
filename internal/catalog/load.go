// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/ffslint/internal/rule"
)

type catalogDoc struct {
	Calls           []callDoc           `yaml:"calls"`
	Hierarchies     []hierarchyDoc      `yaml:"hierarchies"`
	Modifiers       []modifierDoc       `yaml:"modifiers"`
	Attributes      []attributeDoc      `yaml:"attributes"`
	ParameterOrders []parameterOrderDoc `yaml:"parameter-orders"`
}

type definitionDoc struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
}

type callDoc struct {
	definitionDoc `yaml:",inline"`

	Target    string        `yaml:"target"`
	Predicate *predicateDoc `yaml:"predicate"`
}

type predicateDoc struct {
	None      *struct{}      `yaml:"none"`
	MinArgs   *int           `yaml:"min-args"`
	Forbidden *forbiddenDoc  `yaml:"forbidden"`
	All       []predicateDoc `yaml:"all"`
	Any       []predicateDoc `yaml:"any"`
}

type forbiddenDoc struct {
	Param string `yaml:"param"`
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
}

type hierarchyDoc struct {
	definitionDoc `yaml:",inline"`

	Base       string   `yaml:"base"`
	Mode       string   `yaml:"mode"`
	Kinds      []string `yaml:"kinds"`
	NameSuffix string   `yaml:"name-suffix"`
}

type modifierDoc struct {
	definitionDoc `yaml:",inline"`

	Kind    string   `yaml:"kind"`
	Allowed []string `yaml:"allowed"`
}

type attributeDoc struct {
	Attribute string         `yaml:"attribute"`
	Argument  string         `yaml:"argument"`
	Prefixes  []string       `yaml:"prefixes"`
	Blank     *definitionDoc `yaml:"blank"`
	Prefix    *definitionDoc `yaml:"prefix"`
}

type parameterOrderDoc struct {
	definitionDoc `yaml:",inline"`

	Preferred []string `yaml:"preferred"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return c, nil
}

// Load reads a YAML catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogDoc
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't parse catalog: %w", err)
	}

	specs, err := doc.specs()
	if err != nil {
		return nil, err
	}

	return New(specs)
}

func (d catalogDoc) specs() (Specs, error) {
	var s Specs

	for _, c := range d.Calls {
		p, err := c.Predicate.predicate()
		if err != nil {
			return Specs{}, fmt.Errorf("%s: %w", c.ID, err)
		}

		s.Calls = append(s.Calls, rule.CallSpec{Definition: c.definition(), Target: c.Target, Predicate: p})
	}

	for _, h := range d.Hierarchies {
		var mode rule.HierarchyMode

		switch strings.ToLower(h.Mode) {
		case "", "forbid":
			mode = rule.Forbid

		case "require":
			mode = rule.Require

		default:
			return Specs{}, fmt.Errorf("%w: %s has unknown mode %q", ErrMalformed, h.ID, h.Mode)
		}

		s.Hierarchies = append(s.Hierarchies, rule.HierarchySpec{
			Definition: h.definition(),
			Base:       h.Base,
			Mode:       mode,
			Kinds:      h.Kinds,
			NameSuffix: h.NameSuffix,
		})
	}

	for _, m := range d.Modifiers {
		s.Modifiers = append(s.Modifiers, rule.ModifierSpec{Definition: m.definition(), Kind: m.Kind, Allowed: m.Allowed})
	}

	for _, a := range d.Attributes {
		s.Attributes = append(s.Attributes, rule.AttributeSpec{
			Attribute: a.Attribute,
			Argument:  a.Argument,
			Prefixes:  a.Prefixes,
			Blank:     a.Blank.definition(),
			Prefix:    a.Prefix.definition(),
		})
	}

	for _, o := range d.ParameterOrders {
		s.ParameterOrders = append(s.ParameterOrders, rule.ParameterOrderSpec{Definition: o.definition(), Preferred: o.Preferred})
	}

	return s, nil
}

func (d *definitionDoc) definition() rule.Definition {
	if d == nil {
		return rule.Definition{}
	}

	return rule.Definition{ID: d.ID, Category: d.Category, Title: d.Title, Message: d.Message}
}

func (p *predicateDoc) predicate() (rule.Predicate, error) {
	if p == nil {
		return rule.None{}, nil
	}

	var (
		preds []rule.Predicate
		set   int
	)

	if p.None != nil {
		preds = append(preds, rule.None{})
		set++
	}

	if p.MinArgs != nil {
		preds = append(preds, rule.MinArgs{N: *p.MinArgs})
		set++
	}

	if p.Forbidden != nil {
		preds = append(preds, rule.ForbiddenArg{
			Param: p.Forbidden.Param,
			Kind:  rule.SyntaxKind(p.Forbidden.Kind),
			Text:  p.Forbidden.Text,
		})
		set++
	}

	if p.All != nil {
		all, err := predicates(p.All)
		if err != nil {
			return nil, err
		}

		preds = append(preds, rule.All(all))
		set++
	}

	if p.Any != nil {
		anyOf, err := predicates(p.Any)
		if err != nil {
			return nil, err
		}

		preds = append(preds, rule.Any(anyOf))
		set++
	}

	if set != 1 {
		return nil, fmt.Errorf("%w: predicate needs exactly one of none, min-args, forbidden, all or any, got %d", ErrMalformed, set)
	}

	return preds[0], nil
}

func predicates(docs []predicateDoc) ([]rule.Predicate, error) {
	ps := make([]rule.Predicate, 0, len(docs))

	for i := range docs {
		p, err := docs[i].predicate()
		if err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}

	return ps, nil
}
