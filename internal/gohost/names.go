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
	"go/types"
	"strconv"
)

// TypeName returns the canonical qualified name of a named type, or "" for
// unnamed types, type parameters and predeclared types.
func (h *Host) TypeName(t types.Type) string {
	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return ""
	}

	n = n.Origin()

	return h.names.GetOrCompute(n.Obj(), func(types.Object) string { return qualifiedTypeName(n) })
}

func qualifiedTypeName(n *types.Named) string {
	obj := n.Obj()
	if obj.Pkg() == nil {
		return "" // error, comparable
	}

	name := obj.Pkg().Path() + "." + obj.Name()

	if tp := n.TypeParams().Len(); tp > 0 {
		name += "`" + strconv.Itoa(tp)
	}

	return name
}

// receiver returns the receiver of a call site of fn: the declaring type of
// methods and the package path of functions.
func (h *Host) receiver(fn *types.Func) string {
	fn = fn.Origin()

	recv := fn.Signature().Recv()
	if recv == nil {
		if fn.Pkg() == nil {
			return ""
		}

		return fn.Pkg().Path()
	}

	return h.TypeName(deref(recv.Type()))
}

// fieldOwner returns the struct type declaring the selected field, following embedded fields.
func (h *Host) fieldOwner(sel *types.Selection) string {
	t := sel.Recv()

	index := sel.Index()
	for _, i := range index[:len(index)-1] {
		st, ok := deref(t).Underlying().(*types.Struct)
		if !ok {
			return ""
		}

		t = st.Field(i).Type()
	}

	return h.TypeName(deref(t))
}

// parameterType returns the canonical name of a parameter type.
func (h *Host) parameterType(t types.Type) string {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return "*" + h.parameterType(p.Elem())
	}

	if name := h.TypeName(t); name != "" {
		return name
	}

	return types.TypeString(t, func(p *types.Package) string { return p.Path() })
}

func deref(t types.Type) types.Type {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

func packageLevel(obj types.Object) bool {
	return obj.Pkg() != nil && obj.Parent() == obj.Pkg().Scope()
}
