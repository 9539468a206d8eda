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

// Package gohost resolves Go syntax trees into rule engine descriptors.
//
// Call sites are invocations of functions and methods, accesses of fields,
// package variables and method values, and references to named types. Type
// declarations report their embedded types as bases, //nolint directives are
// presented as "nolint" attributes carrying their explanation as "Justification",
// and function declarations yield their parameter lists.
//
// Qualified names use the import path of the declaring package:
//
//	time.Now
//	net/http.Client.Do
//	sync.Map
//	example.com/pkg.List`1
//
// Pointer receivers are dropped, generic types carry the number of type
// parameters after a backtick, and pointer parameter types are prefixed by "*".
package gohost

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/ffslint/internal/astutil"
	"fillmore-labs.com/ffslint/internal/driver"
	"fillmore-labs.com/ffslint/internal/resolve"
	"fillmore-labs.com/ffslint/internal/rule"
)

// Declaration kinds of Go type declarations.
const (
	StructKind    = "go.struct"
	InterfaceKind = "go.interface"
	TypeKind      = "go.type"
)

// Names memoizes canonical qualified names of type objects.
type Names = resolve.Cache[types.Object, string]

// NewNames creates an empty name cache.
func NewNames() *Names {
	return resolve.NewCache[types.Object, string]()
}

// Host resolves nodes of type-checked Go files.
type Host struct {
	fset  *token.FileSet
	info  *types.Info
	names *Names
}

var (
	_ resolve.CallResolver[ast.Node]           = (*Host)(nil)
	_ resolve.HierarchyResolver[*ast.TypeSpec] = (*Host)(nil)
	_ resolve.AttributeResolver[*ast.Comment]  = (*Host)(nil)
	_ resolve.SignatureResolver[*ast.FuncDecl] = (*Host)(nil)
)

// New creates a [Host] over type information of a package. names may be nil.
func New(fset *token.FileSet, info *types.Info, names *Names) *Host {
	return &Host{fset: fset, info: info, names: names}
}

// Unit collects and resolves all descriptors of a file.
func (h *Host) Unit(file inspector.Cursor) driver.Unit {
	f, ok := file.Node().(*ast.File)
	if !ok {
		return driver.Unit{}
	}

	var (
		nodes []ast.Node
		specs []*ast.TypeSpec
		funcs []*ast.FuncDecl
	)

	callees := make(map[ast.Node]bool)

	for c := range file.Preorder(
		(*ast.CallExpr)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.Ident)(nil),
		(*ast.TypeSpec)(nil),
		(*ast.FuncDecl)(nil),
	) {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			if _, ok := typeutil.Callee(h.info, n).(*types.Func); ok {
				callees[calleeExpr(n.Fun)] = true
			}

			nodes = append(nodes, n)

		case *ast.SelectorExpr:
			if !callees[n] {
				nodes = append(nodes, n)
			}

		case *ast.Ident:
			if callees[n] || selected(c, n) {
				continue
			}

			nodes = append(nodes, n)

		case *ast.TypeSpec:
			specs = append(specs, n)

		case *ast.FuncDecl:
			funcs = append(funcs, n)
		}
	}

	var comments []*ast.Comment
	for _, g := range f.Comments {
		comments = append(comments, g.List...)
	}

	return driver.Unit{
		Name:       h.fset.PositionFor(f.FileStart, false).Filename,
		Calls:      resolve.Calls(h, nodes),
		Types:      resolve.Types(h, specs),
		Attributes: resolve.Attributes(h, comments),
		Signatures: resolve.Signatures(h, funcs),
	}
}

// Span converts a node range into a [rule.Span].
func (h *Host) Span(pos, end token.Pos) rule.Span {
	p := h.fset.PositionFor(pos, false)

	return rule.Span{
		File:   p.Filename,
		Line:   p.Line,
		Column: p.Column,
		Offset: p.Offset,
		End:    h.fset.PositionFor(end, false).Offset,
	}
}

// ResolveAttributeArguments resolves //nolint directives.
func (h *Host) ResolveAttributeArguments(comment *ast.Comment) (rule.Attribute, bool) {
	n, ok := astutil.ParseNoLint(comment)
	if !ok {
		return rule.Attribute{}, false
	}

	return rule.Attribute{
		Name: "nolint",
		Arguments: map[string]rule.AttributeValue{
			"Justification": {Text: n.Reason, Literal: true},
		},
		Span: h.Span(comment.Pos(), comment.End()),
	}, true
}

// calleeExpr strips parentheses and explicit instantiations from the function of a call.
func calleeExpr(e ast.Expr) ast.Expr {
	for {
		switch x := ast.Unparen(e).(type) {
		case *ast.IndexExpr:
			e = x.X

		case *ast.IndexListExpr:
			e = x.X

		default:
			return x
		}
	}
}

// selected reports whether id is the selector of a selector expression.
func selected(c inspector.Cursor, id *ast.Ident) bool {
	sel, ok := c.Parent().Node().(*ast.SelectorExpr)

	return ok && sel.Sel == id
}
