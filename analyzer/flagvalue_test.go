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

package analyzer_test

import (
	"flag"
	"reflect"
	"strings"
	"testing"

	. "fillmore-labs.com/ffslint/analyzer"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		disable   []string
		generated bool
		noLint    bool
	}{
		{
			name:   "Defaults",
			noLint: true,
		},
		{
			name:    "Disable",
			args:    []string{"-disable", "ffs1001, FFS1002", "-disable=FFS0031"},
			disable: []string{"FFS1001", "FFS1002", "FFS0031"},
			noLint:  true,
		},
		{
			name:      "Behavior",
			args:      []string{"-generated", "-nolint=false"},
			generated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			get := func(name string) any { return a.Flags.Lookup(name).Value.(flag.Getter).Get() }

			if got, _ := get("disable").([]string); !reflect.DeepEqual(got, tt.disable) {
				t.Errorf("disable = %q, want %q", got, tt.disable)
			}

			if got := get("generated"); got != tt.generated {
				t.Errorf("generated = %v, want %v", got, tt.generated)
			}

			if got := get("nolint"); got != tt.noLint {
				t.Errorf("nolint = %v, want %v", got, tt.noLint)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init("test", flag.ContinueOnError)
	a.Flags.SetOutput(new(strings.Builder))

	if err := a.Flags.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New()

	const expectedUsage = `
  -nolint
    	honor //nolint directives (default true)
`

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	if got := out.String(); !strings.Contains(got, expectedUsage) {
		t.Errorf("PrintDefaults() = %q, want to contain %q", got, expectedUsage)
	}

	if got := out.String(); strings.Contains(got, "check generated files (default") {
		t.Errorf("PrintDefaults() = %q, generated should default to false", got)
	}
}
