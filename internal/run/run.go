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

// Package run is the analysis pass of ffslint: it resolves every file of a
// package with the Go host, evaluates the catalog and reports diagnostics.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ffslint/internal/astutil"
	"fillmore-labs.com/ffslint/internal/config"
	"fillmore-labs.com/ffslint/internal/driver"
	"fillmore-labs.com/ffslint/internal/gohost"
	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the ffslint analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("ffslint: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	cat, err := r.ResolvedCatalog()
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FFSLint")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	host := gohost.New(p.Fset, p.TypesInfo, gohost.NewNames())
	noLint := r.Behavior.Enabled(config.HonorNoLint)

	files := make(map[string]astutil.CurrentFile)

	var units []driver.Unit

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if noLint && file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1], "") {
			continue
		}

		files[currentFile.Name()] = currentFile
		units = append(units, host.Unit(f))
	}

	d := driver.New(cat, driver.WithWorkers(r.Workers), driver.WithLogger(r.Logger))

	if err := d.Report(ctx, reporter(p, files, noLint), units...); err != nil {
		return nil, fmt.Errorf("ffslint: %w", err)
	}

	return nil, nil
}

// reporter maps violations back to the pass, dropping those suppressed by //nolint directives.
func reporter(p *analysis.Pass, files map[string]astutil.CurrentFile, noLint bool) report.Sink {
	return report.SinkFunc(func(v rule.Violation) {
		currentFile, ok := files[v.Location.File]
		if !ok {
			astutil.InternalError(p, p.Files[0], "Violation %s in unknown file %s", v.RuleID, v.Location.File)

			return
		}

		pos, end := currentFile.Pos(v.Location.Offset), currentFile.Pos(v.Location.End)

		// Skip lines and functions with nolint comment
		if noLint && (currentFile.NoLintComment(pos, v.RuleID) || currentFile.FuncNoLint(pos, v.RuleID)) {
			return
		}

		p.Report(analysis.Diagnostic{Pos: pos, End: end, Category: v.RuleID, Message: v.Message})
	})
}
