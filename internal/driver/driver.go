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

// Package driver evaluates a rule catalog over resolved analysis units.
package driver

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/match"
	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

// Unit is one independently analyzable piece of input, e.g. a source file.
type Unit struct {
	Name       string
	Calls      []rule.CallSite
	Types      []rule.TypeDecl
	Attributes []rule.Attribute
	Signatures []rule.Signature
}

// Driver evaluates a [catalog.Catalog]. It holds no mutable state and is safe for concurrent use.
type Driver struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	workers int
}

// Option configures a [Driver].
type Option func(d *Driver)

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithWorkers limits the number of units analyzed concurrently. Values below one use GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(d *Driver) { d.workers = workers }
}

// New creates a [Driver] for cat.
func New(cat *catalog.Catalog, opts ...Option) *Driver {
	d := &Driver{catalog: cat, logger: slog.Default()}

	for _, opt := range opts {
		opt(d)
	}

	if d.workers < 1 {
		d.workers = runtime.GOMAXPROCS(0)
	}

	return d
}

// Catalog returns the catalog evaluated by d.
func (d *Driver) Catalog() *catalog.Catalog { return d.catalog }

// Analyze evaluates all units concurrently and returns their violations sorted by
// location, ties broken by catalog declaration order. Cancellation of ctx is
// checked between units.
func (d *Driver) Analyze(ctx context.Context, units ...Unit) ([]rule.Violation, error) {
	defer trace.StartRegion(ctx, "Analyze").End()

	results := make([][]rule.Violation, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, u := range units {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = d.AnalyzeUnit(gctx, u)

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		d.logger.LogAttrs(ctx, slog.LevelInfo, "Analysis aborted", slog.Int("units", len(units)), slog.Any("error", err))

		return nil, fmt.Errorf("analysis aborted: %w", err)
	}

	violations := slices.Concat(results...)
	d.Sort(violations)

	d.logger.LogAttrs(ctx, slog.LevelDebug, "Analysis finished",
		slog.Int("units", len(units)), slog.Int("violations", len(violations)))

	return violations, nil
}

// Report evaluates all units like [Driver.Analyze] and emits the sorted violations to sink.
func (d *Driver) Report(ctx context.Context, sink report.Sink, units ...Unit) error {
	violations, err := d.Analyze(ctx, units...)
	if err != nil {
		return err
	}

	report.Emit(sink, violations)

	return nil
}

// AnalyzeUnit evaluates a single unit. The result is sorted.
func (d *Driver) AnalyzeUnit(ctx context.Context, u Unit) []rule.Violation {
	var violations []rule.Violation

	func() {
		defer trace.StartRegion(ctx, "Calls").End()

		violations = append(violations, d.AnalyzeCalls(u.Calls)...)
	}()

	func() {
		defer trace.StartRegion(ctx, "Types").End()

		for _, t := range u.Types {
			violations = append(violations, d.Hierarchy(t)...)
			violations = append(violations, d.Modifiers(t)...)
		}
	}()

	func() {
		defer trace.StartRegion(ctx, "Attributes").End()

		for _, a := range u.Attributes {
			violations = append(violations, d.Attribute(a)...)
		}
	}()

	func() {
		defer trace.StartRegion(ctx, "Signatures").End()

		for _, s := range u.Signatures {
			violations = append(violations, d.ParameterOrder(s)...)
		}
	}()

	d.Sort(violations)

	d.logger.LogAttrs(ctx, slog.LevelDebug, "Unit analyzed",
		slog.String("unit", u.Name), slog.Int("calls", len(u.Calls)), slog.Int("violations", len(violations)))

	return violations
}

// AnalyzeCalls evaluates every call site against the call specifications targeting
// its qualified name. Call sites without a resolved receiver are skipped.
// The result is in input order.
func (d *Driver) AnalyzeCalls(calls []rule.CallSite) []rule.Violation {
	var violations []rule.Violation

	for _, call := range calls {
		if call.Receiver == "" {
			continue
		}

		for _, spec := range d.catalog.Lookup(call.QualifiedName()) {
			if r := match.Evaluate(call, spec); r.Matched {
				violations = append(violations, report.Violation(spec.Definition, call.Span, r.Args...))
			}
		}
	}

	return violations
}

// Sort orders violations by location, then by catalog declaration order of their rule.
// The sort is stable.
func (d *Driver) Sort(violations []rule.Violation) {
	slices.SortStableFunc(violations, func(a, b rule.Violation) int {
		return cmp.Or(
			a.Location.Compare(b.Location),
			cmp.Compare(d.catalog.Order(a.RuleID), d.catalog.Order(b.RuleID)),
		)
	})
}
