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

// Package descriptor reads analysis units prepared by foreign front ends.
//
// A front end that owns the syntax trees of another language resolves its
// symbols and writes one document per source file:
//
//	name: Test.cs
//	calls:
//	  - receiver: System.DateTime
//	    member: Now
//	    span: {file: Test.cs, line: 5, column: 13}
//	types:
//	  - kind: class
//	    name: ParserTests
//	    modifiers: [public]
//	    hierarchy: [N.ParserTests, System.Object]
//	attributes:
//	  - name: System.Diagnostics.CodeAnalysis.SuppressMessageAttribute
//	    arguments:
//	      Justification: {text: "", literal: true}
//	signatures:
//	  - name: DoIt
//	    parameters:
//	      - {name: logger, type: Microsoft.Extensions.Logging.ILogger}
//
// YAML files may hold several documents, JSON files several concatenated objects.
// Calls without a receiver are unresolved and skipped.
package descriptor

import (
	"fillmore-labs.com/ffslint/internal/driver"
	"fillmore-labs.com/ffslint/internal/resolve"
	"fillmore-labs.com/ffslint/internal/rule"
)

// Document is the serialized form of one analysis unit.
type Document struct {
	Name       string         `json:"name"       yaml:"name"`
	Calls      []CallDoc      `json:"calls"      yaml:"calls"`
	Types      []TypeDoc      `json:"types"      yaml:"types"`
	Attributes []AttributeDoc `json:"attributes" yaml:"attributes"`
	Signatures []SignatureDoc `json:"signatures" yaml:"signatures"`
}

// CallDoc is a serialized call site.
type CallDoc struct {
	Receiver   string        `json:"receiver"   yaml:"receiver"`
	Member     string        `json:"member"     yaml:"member"`
	Arguments  []ArgumentDoc `json:"arguments"  yaml:"arguments"`
	Parameters []string      `json:"parameters" yaml:"parameters"`
	Invocation bool          `json:"invocation" yaml:"invocation"`
	Extension  bool          `json:"extension"  yaml:"extension"`
	Span       rule.Span     `json:"span"       yaml:"span"`
}

// ArgumentDoc is a serialized call site argument. The ordinal is implied by its position.
type ArgumentDoc struct {
	Name string          `json:"name" yaml:"name"`
	Kind rule.SyntaxKind `json:"kind" yaml:"kind"`
	Text string          `json:"text" yaml:"text"`
}

// TypeDoc is a serialized type declaration.
type TypeDoc struct {
	Kind      string    `json:"kind"      yaml:"kind"`
	Name      string    `json:"name"      yaml:"name"`
	Modifiers []string  `json:"modifiers" yaml:"modifiers"`
	Hierarchy []string  `json:"hierarchy" yaml:"hierarchy"`
	Span      rule.Span `json:"span"      yaml:"span"`
}

// ValueDoc is a serialized attribute argument. An omitted literal flag means a literal.
type ValueDoc struct {
	Text    string `json:"text"              yaml:"text"`
	Literal *bool  `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// IsLiteral reports whether the argument is a compile-time literal.
func (v ValueDoc) IsLiteral() bool {
	return v.Literal == nil || *v.Literal
}

// AttributeDoc is a serialized attribute application.
type AttributeDoc struct {
	Name      string              `json:"name"      yaml:"name"`
	Arguments map[string]ValueDoc `json:"arguments" yaml:"arguments"`
	Span      rule.Span           `json:"span"      yaml:"span"`
}

// ParameterDoc is a serialized declared parameter.
type ParameterDoc struct {
	Name     string    `json:"name"     yaml:"name"`
	Type     string    `json:"type"     yaml:"type"`
	Receiver bool      `json:"receiver" yaml:"receiver"`
	Span     rule.Span `json:"span"     yaml:"span"`
}

// SignatureDoc is a serialized parameter list.
type SignatureDoc struct {
	Name       string         `json:"name"       yaml:"name"`
	Parameters []ParameterDoc `json:"parameters" yaml:"parameters"`
	Span       rule.Span      `json:"span"       yaml:"span"`
}

// Host resolves serialized descriptors. The front end did the symbol resolution,
// so resolving only validates and copies.
type Host struct{}

var (
	_ resolve.CallResolver[CallDoc]           = Host{}
	_ resolve.HierarchyResolver[TypeDoc]      = Host{}
	_ resolve.AttributeResolver[AttributeDoc] = Host{}
	_ resolve.SignatureResolver[SignatureDoc] = Host{}
)

// ResolveCallSite implements [resolve.CallResolver].
func (Host) ResolveCallSite(c CallDoc) (rule.CallSite, bool) {
	if c.Receiver == "" {
		return rule.CallSite{}, false
	}

	arguments := make([]rule.Argument, len(c.Arguments))
	for i, a := range c.Arguments {
		arguments[i] = rule.Argument{Name: a.Name, Kind: a.Kind, Text: a.Text, Ordinal: i}
	}

	return rule.CallSite{
		Receiver:   c.Receiver,
		Member:     c.Member,
		Arguments:  arguments,
		Parameters: c.Parameters,
		Invocation: c.Invocation,
		Extension:  c.Extension,
		Span:       c.Span,
	}, true
}

// ResolveTypeHierarchy implements [resolve.HierarchyResolver].
// The hierarchy defaults to the declaration name alone.
func (Host) ResolveTypeHierarchy(t TypeDoc) (rule.TypeDecl, bool) {
	if t.Name == "" {
		return rule.TypeDecl{}, false
	}

	hierarchy := t.Hierarchy
	if len(hierarchy) == 0 {
		hierarchy = []string{t.Name}
	}

	return rule.TypeDecl{
		Kind:      t.Kind,
		Name:      t.Name,
		Modifiers: t.Modifiers,
		Hierarchy: hierarchy,
		Span:      t.Span,
	}, true
}

// ResolveAttributeArguments implements [resolve.AttributeResolver].
func (Host) ResolveAttributeArguments(a AttributeDoc) (rule.Attribute, bool) {
	if a.Name == "" {
		return rule.Attribute{}, false
	}

	arguments := make(map[string]rule.AttributeValue, len(a.Arguments))
	for name, v := range a.Arguments {
		arguments[name] = rule.AttributeValue{Text: v.Text, Literal: v.IsLiteral()}
	}

	return rule.Attribute{Name: a.Name, Arguments: arguments, Span: a.Span}, true
}

// ResolveSignature implements [resolve.SignatureResolver].
func (Host) ResolveSignature(s SignatureDoc) (rule.Signature, bool) {
	parameters := make([]rule.Parameter, len(s.Parameters))
	for i, p := range s.Parameters {
		parameters[i] = rule.Parameter{Name: p.Name, Type: p.Type, Receiver: p.Receiver, Span: p.Span}
	}

	return rule.Signature{Name: s.Name, Parameters: parameters, Span: s.Span}, true
}

// Unit resolves a document into an analysis unit. Spans without a file name
// are attributed to the document.
func (d Document) Unit() driver.Unit {
	var h Host

	u := driver.Unit{
		Name:       d.Name,
		Calls:      resolve.Calls(h, d.Calls),
		Types:      resolve.Types(h, d.Types),
		Attributes: resolve.Attributes(h, d.Attributes),
		Signatures: resolve.Signatures(h, d.Signatures),
	}

	for i := range u.Calls {
		defaultFile(&u.Calls[i].Span, d.Name)
	}

	for i := range u.Types {
		defaultFile(&u.Types[i].Span, d.Name)
	}

	for i := range u.Attributes {
		defaultFile(&u.Attributes[i].Span, d.Name)
	}

	for i := range u.Signatures {
		defaultFile(&u.Signatures[i].Span, d.Name)

		for j := range u.Signatures[i].Parameters {
			defaultFile(&u.Signatures[i].Parameters[j].Span, d.Name)
		}
	}

	return u
}

func defaultFile(s *rule.Span, name string) {
	if s.File == "" {
		s.File = name
	}
}
