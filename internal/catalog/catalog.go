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
	"regexp"
	"strings"

	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

var (
	// ErrDuplicateID is returned when two rules share an identifier.
	ErrDuplicateID = errors.New("duplicate rule id")

	// ErrMalformed is returned for incomplete or inconsistent rule specifications.
	ErrMalformed = errors.New("malformed rule specification")
)

// Specs is the declarative input of a [Catalog].
//
// Declaration order is Calls, Hierarchies, Modifiers, Attributes (blank before prefix)
// and ParameterOrders, each in slice order.
type Specs struct {
	Calls           []rule.CallSpec
	Hierarchies     []rule.HierarchySpec
	Modifiers       []rule.ModifierSpec
	Attributes      []rule.AttributeSpec
	ParameterOrders []rule.ParameterOrderSpec
}

// Entry describes a rule definition in the catalog.
type Entry struct {
	rule.Definition

	Kind rule.Kind

	// Order is the declaration order in the catalog, starting at zero.
	Order int
}

// Catalog is an immutable, indexed table of rule specifications.
// It is safe for concurrent use.
type Catalog struct {
	specs   Specs
	byName  map[string][]int
	entries []Entry
	byID    map[string]int
}

// New validates specs and builds a [Catalog].
func New(specs Specs) (*Catalog, error) {
	c := &Catalog{
		specs:  cloneSpecs(specs),
		byName: make(map[string][]int, len(specs.Calls)),
		byID:   make(map[string]int),
	}

	for i, s := range c.specs.Calls {
		if err := c.add(s.Definition, rule.CallKind); err != nil {
			return nil, err
		}

		if s.Target == "" {
			return nil, fmt.Errorf("%w: %s has no target", ErrMalformed, s.ID)
		}

		if s.Predicate == nil {
			c.specs.Calls[i].Predicate = rule.None{}
		} else if err := validatePredicate(s.Predicate); err != nil {
			return nil, fmt.Errorf("%s: %w", s.ID, err)
		}

		c.byName[s.Target] = append(c.byName[s.Target], i)
	}

	for _, s := range c.specs.Hierarchies {
		if err := c.add(s.Definition, rule.HierarchyKind); err != nil {
			return nil, err
		}

		if s.Base == "" {
			return nil, fmt.Errorf("%w: %s has no base type", ErrMalformed, s.ID)
		}

		if s.Mode != rule.Forbid && s.Mode != rule.Require {
			return nil, fmt.Errorf("%w: %s has unknown mode %d", ErrMalformed, s.ID, s.Mode)
		}
	}

	for _, s := range c.specs.Modifiers {
		if err := c.add(s.Definition, rule.ModifierKind); err != nil {
			return nil, err
		}

		if s.Kind == "" || len(s.Allowed) == 0 {
			return nil, fmt.Errorf("%w: %s needs a declaration kind and allowed modifiers", ErrMalformed, s.ID)
		}
	}

	for _, s := range c.specs.Attributes {
		if s.Attribute == "" || s.Argument == "" {
			return nil, fmt.Errorf("%w: attribute rule %q needs an attribute and argument name", ErrMalformed, s.Blank.ID)
		}

		if s.Blank.ID == "" && s.Prefix.ID == "" {
			return nil, fmt.Errorf("%w: attribute rule for %s has no rules", ErrMalformed, s.Attribute)
		}

		if s.Blank.ID != "" {
			if err := c.add(s.Blank, rule.AttributeKind); err != nil {
				return nil, err
			}
		}

		if s.Prefix.ID != "" {
			if len(s.Prefixes) == 0 {
				return nil, fmt.Errorf("%w: %s has no prefixes", ErrMalformed, s.Prefix.ID)
			}

			if err := c.add(s.Prefix, rule.AttributeKind); err != nil {
				return nil, err
			}
		}
	}

	for _, s := range c.specs.ParameterOrders {
		if err := c.add(s.Definition, rule.ParameterOrderKind); err != nil {
			return nil, err
		}

		if len(s.Preferred) == 0 {
			return nil, fmt.Errorf("%w: %s has no preferred parameter types", ErrMalformed, s.ID)
		}
	}

	return c, nil
}

// MustNew is like [New] but panics on invalid specifications.
func MustNew(specs Specs) *Catalog {
	c, err := New(specs)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}

	return c
}

var idPattern = regexp.MustCompile(`^FFS[0-9]{4}$`)

func (c *Catalog) add(def rule.Definition, kind rule.Kind) error {
	if !idPattern.MatchString(def.ID) {
		return fmt.Errorf("%w: invalid rule id %q", ErrMalformed, def.ID)
	}

	if _, ok := c.byID[def.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, def.ID)
	}

	if def.Message == "" {
		return fmt.Errorf("%w: %s has no message", ErrMalformed, def.ID)
	}

	arity, err := report.Arity(def.Message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, def.ID, err)
	}

	if arity > kind.Arity() {
		return fmt.Errorf("%w: %s message uses %d arguments, %s rules provide %d", ErrMalformed, def.ID, arity, kind, kind.Arity())
	}

	order := len(c.entries)
	c.entries = append(c.entries, Entry{Definition: def, Kind: kind, Order: order})
	c.byID[def.ID] = order

	return nil
}

func validatePredicate(p rule.Predicate) error {
	switch p := p.(type) {
	case rule.None:
		return nil

	case rule.MinArgs:
		if p.N < 1 {
			return fmt.Errorf("%w: minimum argument count %d", ErrMalformed, p.N)
		}

		return nil

	case rule.ForbiddenArg:
		if p.Param == "" || p.Kind == "" {
			return fmt.Errorf("%w: forbidden argument needs a parameter name and syntax kind", ErrMalformed)
		}

		return nil

	case rule.All:
		return validateComposite([]rule.Predicate(p))

	case rule.Any:
		return validateComposite([]rule.Predicate(p))

	default:
		return fmt.Errorf("%w: unknown predicate %T", ErrMalformed, p)
	}
}

func validateComposite(ps []rule.Predicate) error {
	if len(ps) == 0 {
		return fmt.Errorf("%w: empty composite predicate", ErrMalformed)
	}

	for _, p := range ps {
		if p == nil {
			return fmt.Errorf("%w: nil predicate in composite", ErrMalformed)
		}

		if err := validatePredicate(p); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns the call specifications targeting qualifiedName, in declaration order.
func (c *Catalog) Lookup(qualifiedName string) []rule.CallSpec {
	idx := c.byName[qualifiedName]
	if len(idx) == 0 {
		return nil
	}

	specs := make([]rule.CallSpec, len(idx))
	for i, j := range idx {
		specs[i] = c.specs.Calls[j]
	}

	return specs
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}

	return c.entries[i], true
}

// Order returns the declaration order of the rule id, or -1 when it is unknown.
func (c *Catalog) Order(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}

	return -1
}

// Entries returns all rule definitions in declaration order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of rule definitions.
func (c *Catalog) Len() int { return len(c.entries) }

// Hierarchies returns the hierarchy rules.
func (c *Catalog) Hierarchies() []rule.HierarchySpec { return c.specs.Hierarchies }

// Modifiers returns the modifier rules.
func (c *Catalog) Modifiers() []rule.ModifierSpec { return c.specs.Modifiers }

// Attributes returns the attribute argument rules.
func (c *Catalog) Attributes() []rule.AttributeSpec { return c.specs.Attributes }

// ParameterOrders returns the parameter ordering rules.
func (c *Catalog) ParameterOrders() []rule.ParameterOrderSpec { return c.specs.ParameterOrders }

// Filter returns a catalog restricted to the definitions for which keep returns true.
func (c *Catalog) Filter(keep func(rule.Definition) bool) *Catalog {
	var s Specs

	for _, spec := range c.specs.Calls {
		if keep(spec.Definition) {
			s.Calls = append(s.Calls, spec)
		}
	}

	for _, spec := range c.specs.Hierarchies {
		if keep(spec.Definition) {
			s.Hierarchies = append(s.Hierarchies, spec)
		}
	}

	for _, spec := range c.specs.Modifiers {
		if keep(spec.Definition) {
			s.Modifiers = append(s.Modifiers, spec)
		}
	}

	for _, spec := range c.specs.Attributes {
		if spec.Blank.ID != "" && !keep(spec.Blank) {
			spec.Blank = rule.Definition{}
		}

		if spec.Prefix.ID != "" && !keep(spec.Prefix) {
			spec.Prefix = rule.Definition{}
		}

		if spec.Blank.ID != "" || spec.Prefix.ID != "" {
			s.Attributes = append(s.Attributes, spec)
		}
	}

	for _, spec := range c.specs.ParameterOrders {
		if keep(spec.Definition) {
			s.ParameterOrders = append(s.ParameterOrders, spec)
		}
	}

	// A subset of a valid catalog is valid.
	return MustNew(s)
}

// Without returns a catalog without the given rule ids, matched case-insensitively.
func (c *Catalog) Without(ids ...string) *Catalog {
	if len(ids) == 0 {
		return c
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[strings.ToUpper(strings.TrimSpace(id))] = struct{}{}
	}

	return c.Filter(func(def rule.Definition) bool {
		_, ok := drop[def.ID]

		return !ok
	})
}

func cloneSpecs(s Specs) Specs {
	return Specs{
		Calls:           append([]rule.CallSpec(nil), s.Calls...),
		Hierarchies:     append([]rule.HierarchySpec(nil), s.Hierarchies...),
		Modifiers:       append([]rule.ModifierSpec(nil), s.Modifiers...),
		Attributes:      append([]rule.AttributeSpec(nil), s.Attributes...),
		ParameterOrders: append([]rule.ParameterOrderSpec(nil), s.ParameterOrders...),
	}
}
