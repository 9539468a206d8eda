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

package gclplugin

import ffslint "fillmore-labs.com/ffslint/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Catalog names a YAML rule catalog replacing the builtin rules.
	Catalog *string `json:"catalog,omitzero"`
	// Disable lists rule ids to skip.
	Disable []string `json:"disable,omitzero"`
	// Workers limits the number of files analyzed concurrently.
	Workers *int `json:"workers,omitzero"`
}

// Options converts [Settings] into a list of [ffslint.Option] for the ffslint analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []ffslint.Option {
	var opts []ffslint.Option

	opts = appendOption(opts, s.Catalog, ffslint.WithCatalogFile)
	if s.Disable != nil {
		opts = append(opts, ffslint.WithDisabled(s.Disable...))
	}
	opts = appendOption(opts, s.Workers, ffslint.WithWorkers)

	return opts
}

// appendOption appends a non-nil setting to a [ffslint.Option] list.
func appendOption[T any](opts []ffslint.Option, value *T, constructor func(T) ffslint.Option) []ffslint.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
