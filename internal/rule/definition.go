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

// Definition is the identity and diagnostic text shared by every rule specification.
type Definition struct {
	// ID is the stable rule identifier, e.g. "FFS0031". It is never reused.
	ID string

	// Category is a free-form classification tag.
	Category string

	// Title is a short human-readable summary.
	Title string

	// Message is the diagnostic text with positional placeholders {0}, {1}, ...
	Message string
}

// CallSpec is a specification matched against call sites by qualified name.
type CallSpec struct {
	Definition

	// Target is the canonical qualified name, e.g. "System.DateTime.Now" or
	// "System.Collections.Concurrent.ConcurrentDictionary`2".
	Target string

	// Predicate decides whether a matching call is a violation. Nil means [None].
	Predicate Predicate
}

// HierarchyMode selects the polarity of a [HierarchySpec].
type HierarchyMode uint8

const (
	// Forbid reports declarations that derive from the base type.
	Forbid HierarchyMode = iota

	// Require reports declarations that do not derive from the base type.
	Require
)

// HierarchySpec checks the base type chain of type declarations.
type HierarchySpec struct {
	Definition

	// Base is the qualified name of the base type.
	Base string

	Mode HierarchyMode

	// Kinds restricts the declaration kinds checked; empty means all.
	Kinds []string

	// NameSuffix restricts the check to declarations whose name ends with it.
	NameSuffix string
}

// ModifierSpec requires at least one of Allowed on declarations of Kind.
type ModifierSpec struct {
	Definition

	Kind    string
	Allowed []string
}

// AttributeSpec checks a named string argument of an attribute application.
//
// Blank is reported when the argument is missing, empty or whitespace. Otherwise
// Prefix is reported when the argument starts with one of Prefixes, compared
// case-insensitively.
type AttributeSpec struct {
	// Attribute is the qualified attribute name.
	Attribute string

	// Argument is the named argument inspected, e.g. "Justification".
	Argument string

	Prefixes []string

	Blank  Definition
	Prefix Definition
}

// ParameterOrderSpec requires parameters of the Preferred types to be placed
// at the end of a parameter list, in the given order.
type ParameterOrderSpec struct {
	Definition

	// Preferred lists qualified parameter types, most specific first.
	Preferred []string
}
