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

// Package resolve defines the boundary between a host and the rule engine.
//
// A host owns syntax trees and symbol resolution. It implements the resolver
// interfaces over its own node types; the collectors in this package turn host
// nodes into the descriptors the driver consumes, silently dropping everything
// the host can't resolve.
package resolve

import "fillmore-labs.com/ffslint/internal/rule"

// CallResolver resolves a call-site node. ok is false for unresolvable symbols.
type CallResolver[N any] interface {
	ResolveCallSite(node N) (call rule.CallSite, ok bool)
}

// HierarchyResolver resolves a type declaration node, including its base type
// chain, self first. ok is false for unresolvable declarations.
type HierarchyResolver[D any] interface {
	ResolveTypeHierarchy(decl D) (t rule.TypeDecl, ok bool)
}

// AttributeResolver resolves an attribute application and its literal arguments.
type AttributeResolver[A any] interface {
	ResolveAttributeArguments(attr A) (a rule.Attribute, ok bool)
}

// SignatureResolver resolves a declared parameter list.
type SignatureResolver[S any] interface {
	ResolveSignature(sig S) (s rule.Signature, ok bool)
}

// Calls resolves all nodes, skipping unresolvable ones.
func Calls[N any](r CallResolver[N], nodes []N) []rule.CallSite {
	return collect(nodes, r.ResolveCallSite)
}

// Types resolves all declarations, skipping unresolvable ones.
func Types[D any](r HierarchyResolver[D], decls []D) []rule.TypeDecl {
	return collect(decls, r.ResolveTypeHierarchy)
}

// Attributes resolves all attribute applications, skipping unresolvable ones.
func Attributes[A any](r AttributeResolver[A], attrs []A) []rule.Attribute {
	return collect(attrs, r.ResolveAttributeArguments)
}

// Signatures resolves all parameter lists, skipping unresolvable ones.
func Signatures[S any](r SignatureResolver[S], sigs []S) []rule.Signature {
	return collect(sigs, r.ResolveSignature)
}

func collect[N, T any](nodes []N, resolve func(N) (T, bool)) []T {
	var result []T

	for _, n := range nodes {
		if t, ok := resolve(n); ok {
			result = append(result, t)
		}
	}

	return result
}
