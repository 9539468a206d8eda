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

// TypeDecl is a resolved type declaration.
type TypeDecl struct {
	// Kind is the declaration kind, e.g. "class", "record", "struct".
	Kind string

	Name string

	Modifiers []string

	// Hierarchy lists qualified type names, the declaration itself first,
	// followed by its base types up to the last one.
	Hierarchy []string

	Span Span
}

// Bases returns the base types of the declaration, without the declaration itself.
func (d TypeDecl) Bases() []string {
	if len(d.Hierarchy) == 0 {
		return nil
	}

	return d.Hierarchy[1:]
}

// AttributeValue is a resolved attribute argument.
type AttributeValue struct {
	Text string

	// Literal is false when the argument is not a literal expression.
	// Non-literal values are never inspected.
	Literal bool
}

// Attribute is a resolved attribute application.
type Attribute struct {
	// Name is the qualified attribute name.
	Name string

	Arguments map[string]AttributeValue

	Span Span
}

// Parameter is a declared parameter.
type Parameter struct {
	Name string

	// Type is the canonical qualified parameter type.
	Type string

	// Receiver marks the "this" parameter of extension methods.
	Receiver bool

	Span Span
}

// Signature is a declared parameter list.
type Signature struct {
	Name       string
	Parameters []Parameter
	Span       Span
}
