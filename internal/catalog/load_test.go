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

package catalog_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/rule"
)

const catalogYAML = `
calls:
  - id: FFS0031
    category: Illegal
    message: Use NonBlocking.ConcurrentDictionary rather than System.Collections.Concurrent.ConcurrentDictionary
    target: System.Collections.Concurrent.ConcurrentDictionary` + "`2" + `
  - id: FFS0011
    message: Use DidNotReceive rather than Received(0)
    target: NSubstitute.SubstituteExtensions.Received
    predicate:
      forbidden: {param: requiredNumberOfCalls, kind: NumericLiteral, text: "0"}
  - id: FFS1006
    message: "Do not create world-writable directories with {2}"
    target: os.MkdirAll
    predicate:
      any:
        - forbidden: {param: perm, kind: NumericLiteral, text: "0777"}
        - all:
            - min-args: 2
            - forbidden: {param: perm, kind: NumericLiteral, text: "0o777"}
hierarchies:
  - id: FFS0013
    message: Test classes should derive from TestBase
    base: FunFair.Test.Common.TestBase
    mode: require
    kinds: [class]
    name-suffix: Tests
modifiers:
  - id: FFS0022
    message: Structs should be read-only
    kind: struct
    allowed: [readonly]
attributes:
  - attribute: nolint
    argument: Justification
    prefixes: [TODO]
    blank: {id: FFS1010, message: nolint directive must specify a justification}
parameter-orders:
  - id: FFS0019
    message: "Parameter '{0}' must be parameter {1}"
    preferred: [context.Context]
`

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, want := c.Len(), 7; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	specs := c.Lookup("System.Collections.Concurrent.ConcurrentDictionary`2")
	if len(specs) != 1 {
		t.Fatalf("Lookup(ConcurrentDictionary`2) = %+v", specs)
	}

	if _, ok := specs[0].Predicate.(rule.None); !ok {
		t.Errorf("Missing predicate decoded as %T, want rule.None", specs[0].Predicate)
	}

	received := c.Lookup("NSubstitute.SubstituteExtensions.Received")
	want := rule.ForbiddenArg{Param: "requiredNumberOfCalls", Kind: rule.NumericLiteral, Text: "0"}

	if len(received) != 1 || received[0].Predicate != rule.Predicate(want) {
		t.Errorf("Received predicate = %+v, want %+v", received, want)
	}

	mkdir := c.Lookup("os.MkdirAll")
	if len(mkdir) != 1 {
		t.Fatalf("Lookup(os.MkdirAll) = %+v", mkdir)
	}

	anyOf, ok := mkdir[0].Predicate.(rule.Any)
	if !ok || len(anyOf) != 2 {
		t.Fatalf("os.MkdirAll predicate = %#v", mkdir[0].Predicate)
	}

	if all, ok := anyOf[1].(rule.All); !ok || len(all) != 2 {
		t.Errorf("Nested predicate = %#v", anyOf[1])
	}

	if h := c.Hierarchies(); len(h) != 1 || h[0].Mode != rule.Require || h[0].NameSuffix != "Tests" {
		t.Errorf("Hierarchies() = %+v", h)
	}

	if a := c.Attributes(); len(a) != 1 || a[0].Prefix.ID != "" || a[0].Blank.ID != "FFS1010" {
		t.Errorf("Attributes() = %+v", a)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "two predicates",
			yaml: "calls:\n  - {id: FFS0001, message: m, target: a.B, predicate: {none: {}, min-args: 1}}\n",
			want: ErrMalformed,
		},
		{
			name: "empty predicate",
			yaml: "calls:\n  - {id: FFS0001, message: m, target: a.B, predicate: {}}\n",
			want: ErrMalformed,
		},
		{
			name: "bad mode",
			yaml: "hierarchies:\n  - {id: FFS0001, message: m, base: a.B, mode: maybe}\n",
			want: ErrMalformed,
		},
		{
			name: "duplicate",
			yaml: "calls:\n  - {id: FFS0001, message: m, target: a.B}\n  - {id: FFS0001, message: m, target: a.C}\n",
			want: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Load(strings.NewReader(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(strings.NewReader("calls:\n  - {id: FFS0001, message: m, target: a.B, unknown: 1}\n")); err == nil {
		t.Error("Load() accepted an unknown field")
	}
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
