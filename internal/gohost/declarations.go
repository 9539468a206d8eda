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

package gohost

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/ffslint/internal/rule"
)

// ResolveTypeHierarchy resolves a type declaration. Embedded types take the role
// of base types, transitively, each listed once. Aliases are not resolved.
func (h *Host) ResolveTypeHierarchy(spec *ast.TypeSpec) (rule.TypeDecl, bool) {
	if spec.Assign.IsValid() {
		return rule.TypeDecl{}, false
	}

	obj, ok := h.info.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return rule.TypeDecl{}, false
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return rule.TypeDecl{}, false
	}

	self := h.TypeName(named)
	if self == "" {
		return rule.TypeDecl{}, false
	}

	decl := rule.TypeDecl{
		Kind:      TypeKind,
		Name:      obj.Name(),
		Hierarchy: []string{self},
		Span:      h.Span(spec.Name.Pos(), spec.Name.End()),
	}

	switch named.Underlying().(type) {
	case *types.Struct:
		decl.Kind = StructKind

	case *types.Interface:
		decl.Kind = InterfaceKind
	}

	seen := map[string]bool{self: true}
	decl.Hierarchy = h.embedded(named, seen, decl.Hierarchy)

	return decl, true
}

// embedded appends the embedded types of t depth-first. seen guards against
// recursive embedding through pointers.
func (h *Host) embedded(t types.Type, seen map[string]bool, hierarchy []string) []string {
	var embeds []types.Type

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for f := range u.Fields() {
			if f.Embedded() {
				embeds = append(embeds, deref(f.Type()))
			}
		}

	case *types.Interface:
		for e := range u.EmbeddedTypes() {
			embeds = append(embeds, e)
		}
	}

	for _, e := range embeds {
		name := h.TypeName(e)
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true
		hierarchy = h.embedded(e, seen, append(hierarchy, name))
	}

	return hierarchy
}

// ResolveSignature resolves the parameters of a function declaration. Method
// receivers are not parameters.
func (h *Host) ResolveSignature(decl *ast.FuncDecl) (rule.Signature, bool) {
	fn, ok := h.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return rule.Signature{}, false
	}

	params := fn.Signature().Params()

	sig := rule.Signature{
		Name:       fn.Name(),
		Parameters: make([]rule.Parameter, 0, params.Len()),
		Span:       h.Span(decl.Name.Pos(), decl.Name.End()),
	}

	for v := range params.Variables() {
		sig.Parameters = append(sig.Parameters, rule.Parameter{
			Name: v.Name(),
			Type: h.parameterType(v.Type()),
			Span: h.Span(v.Pos(), v.Pos()+token.Pos(len(v.Name()))),
		})
	}

	return sig, true
}
