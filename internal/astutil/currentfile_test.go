// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/ffslint/internal/astutil"
)

func TestParseNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		ok      bool
		linters []string
		reason  string
	}{
		{"//nolint", true, nil, ""},
		{"//nolint:ffslint", true, []string{"ffslint"}, ""},
		{"//nolint:errcheck,FFS1001 // checked upstream", true, []string{"errcheck", "FFS1001"}, "checked upstream"},
		{"// nolint:all //TODO: remove", true, []string{"all"}, "TODO: remove"},
		{"//nolint:unused because", true, []string{"unused"}, ""},
		{"//nolintfoo", false, nil, ""},
		{"// regular comment", false, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			n, ok := ParseNoLint(&ast.Comment{Text: tt.text})
			if ok != tt.ok {
				t.Fatalf("ParseNoLint(%q) ok = %t, want %t", tt.text, ok, tt.ok)
			}

			if !slices.Equal(n.Linters, tt.linters) || n.Reason != tt.reason {
				t.Errorf("ParseNoLint(%q) = %+v, want linters %q reason %q", tt.text, n, tt.linters, tt.reason)
			}
		})
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		ruleID string
		want   bool
	}{
		{"//nolint", "FFS1001", true},
		{"//nolint:ffslint", "FFS1001", true},
		{"//nolint:FFSLint", "", true},
		{"//nolint:all", "FFS1001", true},
		{"//nolint:ffs1001", "FFS1001", true},
		{"//nolint:FFS1002", "FFS1001", false},
		{"//nolint:errcheck", "FFS1001", false},
		{"//nolint:errcheck", "", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}, tt.ruleID); got != tt.want {
			t.Errorf("CommentHasNoLint(%q, %q) = %t, want %t", tt.text, tt.ruleID, got, tt.want)
		}
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `package test

import "time"

var a = time.Now() //nolint:FFS1001

var b = time.Now() // just a comment

var c = time.Now()

//nolint:ffslint
var d = time.Now()
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	cf := NewCurrentFile(fset, f)
	if !cf.Valid() || cf.Generated() {
		t.Fatalf("Unexpected file state valid=%t generated=%t", cf.Valid(), cf.Generated())
	}

	values := make(map[string]token.Pos)

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		spec := gen.Specs[0].(*ast.ValueSpec)
		values[spec.Names[0].Name] = spec.Values[0].Pos()
	}

	for name, want := range map[string]bool{"a": true, "b": false, "c": false, "d": false} {
		if got := cf.NoLintComment(values[name], "FFS1001"); got != want {
			t.Errorf("NoLintComment(%s) = %t, want %t", name, got, want)
		}
	}

	if got, want := cf.Pos(fset.Position(values["a"]).Offset), values["a"]; got != want {
		t.Errorf("Pos() = %v, want %v", got, want)
	}
}

func TestNoLintCommentDirective(t *testing.T) {
	t.Parallel()

	const src = `package test

import "time"

var a = time.Now() //nolint

var b = time.Now() /* clock */ //nolint:ffslint
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	cf := NewCurrentFile(fset, f)

	for _, group := range f.Comments {
		directive := group.List[len(group.List)-1]

		if cf.NoLintComment(directive.Pos(), "FFS1010") {
			t.Errorf("Directive %q suppresses its own diagnostics", directive.Text)
		}
	}

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		spec := gen.Specs[0].(*ast.ValueSpec)
		if !cf.NoLintComment(spec.Values[0].Pos(), "FFS1001") {
			t.Errorf("Value of %s is not suppressed", spec.Names[0].Name)
		}
	}
}

func TestFuncNoLint(t *testing.T) {
	t.Parallel()

	const src = `package test

import "time"

// Suppressed returns the time.
//
//nolint:FFS1001 // tests only
func Suppressed() time.Time {
	return time.Now()
}

// Other returns the time.
//
//nolint:errcheck
func Other() time.Time {
	return time.Now()
}

var now = time.Now()
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	cf := NewCurrentFile(fset, f)

	want := []bool{false, true, false, false} // import, Suppressed, Other, now

	for i, decl := range f.Decls {
		pos := decl.End() - 1

		if got := cf.FuncNoLint(pos, "FFS1001"); got != want[i] {
			t.Errorf("FuncNoLint(decl %d) = %t, want %t", i, got, want[i])
		}

		if cf.FuncNoLint(pos, "FFS1002") {
			t.Errorf("FuncNoLint(decl %d) suppresses an unrelated rule", i)
		}
	}
}
