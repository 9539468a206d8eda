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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/config"
	"fillmore-labs.com/ffslint/internal/run"
)

// Option configures specific behavior of a [New] ffslint analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCatalog is an [Option] to evaluate cat instead of the builtin catalog.
func WithCatalog(cat *catalog.Catalog) Option { return catalogOption{catalog: cat} }

type catalogOption struct{ catalog *catalog.Catalog }

func (o catalogOption) apply(r *run.Options) {
	r.Catalog = o.catalog
}

func (o catalogOption) LogAttr() slog.Attr {
	if o.catalog == nil {
		return slog.String("catalog", "builtin")
	}

	return slog.Int("catalog", o.catalog.Len())
}

// WithCatalogFile is an [Option] to load the catalog from a YAML file.
func WithCatalogFile(path string) Option { return catalogFileOption{path: path} }

type catalogFileOption struct{ path string }

func (o catalogFileOption) apply(r *run.Options) {
	r.CatalogFile = o.path
}

func (o catalogFileOption) LogAttr() slog.Attr {
	return slog.String("catalog-file", o.path)
}

// WithDisabled is an [Option] to skip the rules with the given ids.
func WithDisabled(ids ...string) Option { return disabledOption{ids: ids} }

type disabledOption struct{ ids []string }

func (o disabledOption) apply(r *run.Options) {
	r.Disabled = append(r.Disabled, o.ids...)
}

func (o disabledOption) LogAttr() slog.Attr {
	return slog.Any("disable", o.ids)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNoLint is an [Option] to configure whether //nolint directives suppress diagnostics.
func WithNoLint(noLint bool) Option { return noLintOption{noLint: noLint} }

type noLintOption struct{ noLint bool }

func (o noLintOption) apply(r *run.Options) {
	r.Behavior.Set(config.HonorNoLint, o.noLint)
}

func (o noLintOption) LogAttr() slog.Attr {
	return slog.Bool("nolint", o.noLint)
}

// WithWorkers is an [Option] to limit the number of files analyzed concurrently.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(r *run.Options) {
	r.Workers = o.workers
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}

// WithLogger is an [Option] to set the logger for progress messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
