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

package descriptor_test

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/ffslint/internal/catalog"
	. "fillmore-labs.com/ffslint/internal/descriptor"
	"fillmore-labs.com/ffslint/internal/driver"
	"fillmore-labs.com/ffslint/internal/rule"
)

const unitYAML = `name: Test.cs
calls:
  - receiver: System.Collections.Concurrent.ConcurrentDictionary` + "`2" + `
    span: {line: 5, column: 13}
  - receiver: NSubstitute.SubstituteExtensions
    member: Received
    invocation: true
    extension: true
    parameters: [substitute, requiredNumberOfCalls]
    arguments:
      - {kind: NumericLiteral, text: "0"}
    span: {line: 9, column: 9}
  - member: Unresolved
    span: {line: 10, column: 9}
types:
  - kind: class
    name: Test
    modifiers: [public]
    span: {line: 3, column: 14}
attributes:
  - name: System.Diagnostics.CodeAnalysis.SuppressMessageAttribute
    arguments:
      Category: {text: ReSharper, literal: true}
      Justification: {text: "", literal: true}
    span: {line: 2, column: 2}
signatures:
  - name: DoIt
    parameters:
      - {name: logger, type: Microsoft.Extensions.Logging.ILogger, span: {line: 7, column: 22}}
      - {name: banana, type: System.String, span: {line: 7, column: 37}}
      - {name: ct, type: System.Threading.CancellationToken, span: {line: 7, column: 52}}
    span: {line: 7, column: 17}
---
name: Other.cs
types:
  - kind: class
    name: Other
    modifiers: [public, sealed]
`

func analyze(t *testing.T, docs []Document) []string {
	t.Helper()

	d := driver.New(catalog.Default(), driver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	violations, err := d.Analyze(t.Context(), Units(docs)...)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	result := make([]string, 0, len(violations))
	for _, v := range violations {
		result = append(result, v.Location.String()+" "+v.RuleID)
	}

	return result
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	docs, err := DecodeYAML(strings.NewReader(unitYAML))
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Got %d documents, want 2", len(docs))
	}

	want := []string{
		"Test.cs:2:2 FFS0027",
		"Test.cs:3:14 FFS0020",
		"Test.cs:5:13 FFS0031",
		"Test.cs:7:22 FFS0019",
		"Test.cs:9:9 FFS0011",
	}

	if got := analyze(t, docs); !slices.Equal(got, want) {
		t.Errorf("Violations = %q, want %q", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	const src = `{"name": "a.cs", "calls": [{"receiver": "System.DateTime", "member": "UtcNow", "span": {"line": 1, "column": 1}}]}
{"name": "b.cs", "calls": [{"receiver": "System.Threading.Thread", "member": "Sleep", "invocation": true}]}
`

	docs, err := DecodeJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	want := []string{"a.cs:1:1 FFS0002", "b.cs:0:0 FFS0032"}

	if got := analyze(t, docs); !slices.Equal(got, want) {
		t.Errorf("Violations = %q, want %q", got, want)
	}
}

func TestAttributeLiteralDefault(t *testing.T) {
	t.Parallel()

	const src = `name: Test.cs
attributes:
  - name: System.Diagnostics.CodeAnalysis.SuppressMessageAttribute
    arguments:
      Justification: {text: ""}
    span: {line: 2, column: 2}
  - name: System.Diagnostics.CodeAnalysis.SuppressMessageAttribute
    arguments:
      Justification: {text: "", literal: false}
    span: {line: 4, column: 2}
`

	docs, err := DecodeYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}

	want := []string{"Test.cs:2:2 FFS0027"}

	if got := analyze(t, docs); !slices.Equal(got, want) {
		t.Errorf("Violations = %q, want %q", got, want)
	}
}

func TestDecodeUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := DecodeYAML(strings.NewReader("name: a.cs\ncallz: []\n")); err == nil {
		t.Error("Expected YAML error for unknown field")
	}

	if _, err := DecodeJSON(strings.NewReader(`{"name": "a.cs", "callz": []}`)); err == nil {
		t.Error("Expected JSON error for unknown field")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "unit.yml")
	if err := os.WriteFile(path, []byte("calls:\n  - {receiver: System.DateTime, member: Today}\n"), 0o600); err != nil {
		t.Fatalf("Can't write descriptor: %v", err)
	}

	docs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if len(docs) != 1 || docs[0].Name != path {
		t.Fatalf("LoadFile() = %+v, want one document named %s", docs, path)
	}

	if u := docs[0].Unit(); len(u.Calls) != 1 || u.Calls[0].Span.File != path {
		t.Errorf("Unit() = %+v, want the span attributed to %s", u, path)
	}

	if _, err := LoadFile(filepath.Join(dir, "unit.toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile() error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	var h Host

	if _, ok := h.ResolveCallSite(CallDoc{Member: "Now"}); ok {
		t.Error("Call site without receiver resolved")
	}

	call, ok := h.ResolveCallSite(CallDoc{
		Receiver:  "a.T",
		Member:    "M",
		Arguments: []ArgumentDoc{{Kind: rule.Identifier, Text: "x"}, {Name: "count", Kind: rule.NumericLiteral, Text: "1"}},
	})
	if !ok {
		t.Fatal("Call site not resolved")
	}

	if got := call.Arguments[1]; got.Ordinal != 1 || got.Name != "count" {
		t.Errorf("Argument = %+v, want ordinal 1 named count", got)
	}

	decl, ok := h.ResolveTypeHierarchy(TypeDoc{Kind: "class", Name: "N"})
	if !ok || !slices.Equal(decl.Hierarchy, []string{"N"}) {
		t.Errorf("ResolveTypeHierarchy() = %+v, %t", decl, ok)
	}

	if _, ok := h.ResolveTypeHierarchy(TypeDoc{Kind: "class"}); ok {
		t.Error("Anonymous type resolved")
	}
}
