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

package rule

// Kind classifies a rule definition by the shape of input it is evaluated against.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// CallKind rules match resolved call sites by qualified name.
	CallKind Kind = iota // call

	// HierarchyKind rules walk the base type chain of a type declaration.
	HierarchyKind // hierarchy

	// ModifierKind rules require one of a set of modifiers on a declaration.
	ModifierKind // modifier

	// AttributeKind rules check a named argument of an attribute application.
	AttributeKind // attribute

	// ParameterOrderKind rules check the position of well-known parameter types.
	ParameterOrderKind // parameter-order
)

// Arity is the number of template arguments a message of this kind receives.
func (i Kind) Arity() int {
	switch i {
	case CallKind:
		return 3 // receiver type, member, qualified name

	case HierarchyKind, ModifierKind, AttributeKind, ParameterOrderKind:
		return 2

	default:
		return 0
	}
}
