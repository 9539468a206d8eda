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

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/ffslint/internal/rule"
)

// ResolveCallSite resolves call expressions, selector expressions and identifiers.
// Calls of builtins, conversions and function values are not resolved as
// invocations.
func (h *Host) ResolveCallSite(n ast.Node) (rule.CallSite, bool) {
	switch n := n.(type) {
	case *ast.CallExpr:
		return h.invocation(n)

	case *ast.SelectorExpr:
		return h.selection(n)

	case *ast.Ident:
		return h.reference(n, n)
	}

	return rule.CallSite{}, false
}

func (h *Host) invocation(call *ast.CallExpr) (rule.CallSite, bool) {
	fn, ok := typeutil.Callee(h.info, call).(*types.Func)
	if !ok {
		return rule.CallSite{}, false
	}

	fn = fn.Origin()

	receiver := h.receiver(fn)
	if receiver == "" {
		return rule.CallSite{}, false
	}

	params := fn.Signature().Params()

	parameters := make([]string, params.Len())
	for i := range parameters {
		parameters[i] = params.At(i).Name()
	}

	return rule.CallSite{
		Receiver:   receiver,
		Member:     fn.Name(),
		Arguments:  h.arguments(call.Args),
		Parameters: parameters,
		Invocation: true,
		Span:       h.Span(call.Pos(), call.End()),
	}, true
}

func (h *Host) selection(sel *ast.SelectorExpr) (rule.CallSite, bool) {
	s, ok := h.info.Selections[sel]
	if !ok {
		return h.reference(sel.Sel, sel) // qualified identifier
	}

	var receiver string

	switch s.Kind() {
	case types.FieldVal:
		receiver = h.fieldOwner(s)

	case types.MethodVal, types.MethodExpr:
		if fn, ok := s.Obj().(*types.Func); ok {
			receiver = h.receiver(fn)
		}
	}

	if receiver == "" {
		return rule.CallSite{}, false
	}

	return rule.CallSite{
		Receiver: receiver,
		Member:   sel.Sel.Name,
		Span:     h.Span(sel.Pos(), sel.End()),
	}, true
}

// reference resolves an identifier used as a type, a package-level value or a function value.
// n is the reported node, either id or the qualified identifier containing it.
func (h *Host) reference(id *ast.Ident, n ast.Node) (rule.CallSite, bool) {
	call := rule.CallSite{Span: h.Span(n.Pos(), n.End())}

	switch obj := h.info.Uses[id].(type) {
	case *types.TypeName:
		if _, ok := obj.Type().(*types.TypeParam); ok {
			return rule.CallSite{}, false
		}

		call.Receiver = h.TypeName(obj.Type())

	case *types.Var:
		if !packageLevel(obj) {
			return rule.CallSite{}, false
		}

		call.Receiver, call.Member = obj.Pkg().Path(), obj.Name()

	case *types.Const:
		if !packageLevel(obj) {
			return rule.CallSite{}, false
		}

		call.Receiver, call.Member = obj.Pkg().Path(), obj.Name()

	case *types.Func:
		call.Receiver, call.Member = h.receiver(obj), obj.Name()
	}

	return call, call.Receiver != ""
}

// argument classifies an argument expression.
// arguments classifies the arguments of a call. A single multi-valued argument,
// as in f(g()), spreads into one opaque argument per result.
func (h *Host) arguments(args []ast.Expr) []rule.Argument {
	if len(args) == 1 {
		if tuple, ok := h.info.TypeOf(args[0]).(*types.Tuple); ok && tuple.Len() != 1 {
			arguments := make([]rule.Argument, tuple.Len())
			for i := range arguments {
				arguments[i] = rule.Argument{Kind: rule.OtherExpression, Ordinal: i}
			}

			return arguments
		}
	}

	arguments := make([]rule.Argument, len(args))
	for i, arg := range args {
		arguments[i] = h.argument(arg, i)
	}

	return arguments
}

func (h *Host) argument(arg ast.Expr, ordinal int) rule.Argument {
	a := rule.Argument{Kind: rule.OtherExpression, Ordinal: ordinal}

	switch e := ast.Unparen(arg).(type) {
	case *ast.BasicLit:
		a.Text = e.Value

		switch e.Kind {
		case token.INT, token.FLOAT, token.IMAG:
			a.Kind = rule.NumericLiteral

		case token.STRING:
			a.Kind = rule.StringLiteral

		case token.CHAR:
			a.Kind = rule.CharacterLiteral
		}

	case *ast.Ident:
		a.Text = e.Name

		switch h.info.Uses[e] {
		case types.Universe.Lookup("true"):
			a.Kind = rule.TrueLiteral

		case types.Universe.Lookup("false"):
			a.Kind = rule.FalseLiteral

		case types.Universe.Lookup("nil"):
			a.Kind = rule.NullLiteral

		default:
			a.Kind = rule.Identifier
		}

	case *ast.CompositeLit:
		a.Kind = rule.CompositeLiteral

	case *ast.FuncLit:
		a.Kind = rule.FunctionLiteral
	}

	return a
}
