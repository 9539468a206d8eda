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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/golangci/plugin-module-register/register"

	ffslint "fillmore-labs.com/ffslint/analyzer"
	. "fillmore-labs.com/ffslint/gclplugin"
)

const allSettings = `{
	"catalog": "ffslint.yaml",
	"disable": ["FFS1001", "FFS1003"],
	"workers": 4
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty list", `{"disable": []}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), ffslint.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestBuildAnalyzers(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"disable": []any{"FFS1001"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := p.GetLoadMode(); got != register.LoadModeTypesInfo {
		t.Errorf("GetLoadMode() = %q, want %q", got, register.LoadModeTypesInfo)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("BuildAnalyzers failed: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "ffslint" {
		t.Errorf("BuildAnalyzers() = %v, want the ffslint analyzer", analyzers)
	}
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	if _, err := New(map[string]any{"workers": "many"}); err == nil {
		t.Error("Expected decode error")
	}
}
