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

package run_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/config"
	. "fillmore-labs.com/ffslint/internal/run"
)

func TestRunResultMissing(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()

	if _, err := r.Run(&analysis.Pass{ResultOf: map[*analysis.Analyzer]any{}}); !errors.Is(err, ErrResultMissing) {
		t.Errorf("Run() error = %v, want %v", err, ErrResultMissing)
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()

	if r.Behavior.Enabled(config.IncludeGenerated) || !r.Behavior.Enabled(config.HonorNoLint) {
		t.Errorf("Unexpected default behavior %+v", r.Behavior)
	}

	cat, err := r.ResolvedCatalog()
	if err != nil {
		t.Fatalf("ResolvedCatalog failed: %v", err)
	}

	if cat != catalog.Default() {
		t.Error("Expected the builtin catalog")
	}
}

func TestResolvedCatalogDisabled(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()
	r.Disabled = []string{"FFS1001", "FFS1002"}

	cat, err := r.ResolvedCatalog()
	if err != nil {
		t.Fatalf("ResolvedCatalog failed: %v", err)
	}

	if got, want := cat.Len(), catalog.Default().Len()-2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	if _, ok := cat.Get("FFS1001"); ok {
		t.Error("Expected FFS1001 to be disabled")
	}
}

func TestResolvedCatalogFile(t *testing.T) {
	t.Parallel()

	const src = `calls:
  - id: FFS2001
    message: Do not use {2}
    target: strings.Title
`

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("Can't write catalog: %v", err)
	}

	r := DefaultOptions()
	r.CatalogFile = path

	cat, err := r.ResolvedCatalog()
	if err != nil {
		t.Fatalf("ResolvedCatalog failed: %v", err)
	}

	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}
}

func TestResolvedCatalogMissing(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()
	r.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := r.ResolvedCatalog(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ResolvedCatalog() error = %v, want %v", err, fs.ErrNotExist)
	}
}
