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

package run

import (
	"fmt"
	"log/slog"
	"sync"

	"fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/config"
)

// Options represent configuration options for the ffslint analyzer.
type Options struct {
	// Catalog is the rule catalog to evaluate. Nil selects the builtin catalog.
	Catalog *catalog.Catalog

	// CatalogFile names a YAML catalog replacing Catalog, loaded once on first use.
	CatalogFile string

	// Disabled lists rule ids that are not evaluated.
	Disabled []string

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Workers limits concurrently analyzed files, zero for GOMAXPROCS.
	Workers int

	// Logger receives progress messages. Nil selects [slog.Default].
	Logger *slog.Logger

	once     sync.Once
	resolved *catalog.Catalog
	err      error
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// ResolvedCatalog returns the effective catalog with disabled rules removed.
func (r *Options) ResolvedCatalog() (*catalog.Catalog, error) {
	r.once.Do(func() {
		cat := r.Catalog

		if r.CatalogFile != "" {
			var err error
			if cat, err = catalog.LoadFile(r.CatalogFile); err != nil {
				r.err = fmt.Errorf("ffslint: %w", err)

				return
			}
		}

		if cat == nil {
			cat = catalog.Default()
		}

		if len(r.Disabled) > 0 {
			cat = cat.Without(r.Disabled...)
		}

		r.resolved = cat
	})

	return r.resolved, r.err
}
