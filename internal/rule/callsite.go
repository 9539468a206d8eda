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

import (
	"cmp"
	"fmt"
)

// SyntaxKind names the syntactic kind of an argument expression.
type SyntaxKind string

// Syntax kinds produced by the bundled hosts.
const (
	NumericLiteral   SyntaxKind = "NumericLiteral"
	StringLiteral    SyntaxKind = "StringLiteral"
	CharacterLiteral SyntaxKind = "CharacterLiteral"
	TrueLiteral      SyntaxKind = "TrueLiteral"
	FalseLiteral     SyntaxKind = "FalseLiteral"
	NullLiteral      SyntaxKind = "NullLiteral"
	Identifier       SyntaxKind = "Identifier"
	CompositeLiteral SyntaxKind = "CompositeLiteral"
	FunctionLiteral  SyntaxKind = "FunctionLiteral"
	OtherExpression  SyntaxKind = "Other"
)

// Argument is a single argument at a call site.
type Argument struct {
	// Name is the explicit parameter name for named arguments, empty otherwise.
	Name string

	Kind SyntaxKind

	// Text is the lexical literal text, e.g. "0", "0x0", "\"abc\"" or "true",
	// or the name of an identifier. Empty for other expressions.
	Text string

	// Ordinal is the zero-based position at the call site.
	Ordinal int
}

// Span is a source location. Line and Column are 1-based.
type Span struct {
	File   string `json:"file"   yaml:"file"`
	Line   int    `json:"line"   yaml:"line"`
	Column int    `json:"column" yaml:"column"`

	// Offset and End are byte offsets into File, used by hosts to map back.
	Offset int `json:"-" yaml:"offset"`
	End    int `json:"-" yaml:"end"`
}

// Compare orders spans by file, line and column.
func (s Span) Compare(o Span) int {
	return cmp.Or(
		cmp.Compare(s.File, o.File),
		cmp.Compare(s.Line, o.Line),
		cmp.Compare(s.Column, o.Column),
	)
}

// String formats the span as file:line:column.
func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// CallSite is a resolved invocation, construction, member access or type reference.
type CallSite struct {
	// Receiver is the canonical qualified type of the receiver, or the package path
	// for package-level functions and variables.
	Receiver string

	// Member is the invoked or accessed member; empty for type references.
	Member string

	Arguments []Argument

	// Parameters holds the declared parameter names in declaration order,
	// including the receiver of extension methods.
	Parameters []string

	// Invocation is true when the member is called, false for member accesses,
	// function values and type references.
	Invocation bool

	// Extension marks extension method invocations, where the receiver is
	// passed as the first declared parameter but is not in Arguments.
	Extension bool

	Span Span
}

// QualifiedName is the catalog lookup key for this call site.
func (c CallSite) QualifiedName() string {
	if c.Member == "" {
		return c.Receiver
	}

	return c.Receiver + "." + c.Member
}
