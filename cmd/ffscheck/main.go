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

// Command ffscheck evaluates the ffslint rule catalog over descriptor files
// written by foreign front ends.
//
// Usage:
//
//	ffscheck [--catalog file] [--disable FFSNNNN] [--format text|json] units.yaml...
//	ffscheck [--catalog file] [--disable FFSNNNN] --list-rules
//
// The exit code is 1 when violations are found and 2 on errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"fillmore-labs.com/ffslint/internal/catalog"
	"fillmore-labs.com/ffslint/internal/descriptor"
	"fillmore-labs.com/ffslint/internal/driver"
	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

var (
	errViolations = errors.New("violations found")
	errNoInput    = errors.New("no descriptor files given")
	errFormat     = errors.New("unknown output format")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args)

	stop()

	switch {
	case err == nil:

	case errors.Is(err, errViolations):
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "ffscheck: %v\n", err)
		os.Exit(2)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ffscheck",
		Usage:     "evaluate the ffslint rule catalog over descriptor files",
		ArgsUsage: "units.yaml...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Usage: "YAML rule catalog replacing the builtin rules"},
			&cli.StringSliceFlag{Name: "disable", Usage: "rule `ID` to disable, repeatable"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text|json"},
			&cli.BoolFlag{Name: "color", Usage: "colorize JSON output, defaults to terminal detection"},
			&cli.IntFlag{Name: "workers", Usage: "number of units analyzed concurrently, 0 for GOMAXPROCS"},
			&cli.BoolFlag{Name: "list-rules", Usage: "print the effective rule catalog and exit"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "logging threshold: debug|info|warn|error"},
		},
		Action: check,
	}
}

func check(ctx context.Context, cmd *cli.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrWriter, &slog.HandlerOptions{Level: level}))

	write, err := writer(cmd)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.String("catalog"), cmd.StringSlice("disable"))
	if err != nil {
		return err
	}

	d := driver.New(cat, driver.WithLogger(logger), driver.WithWorkers(int(cmd.Int("workers"))))

	if cmd.Bool("list-rules") {
		return listRules(cmd.Writer, d.Catalog())
	}

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errNoInput
	}

	var units []driver.Unit

	for _, path := range paths {
		docs, err := descriptor.LoadFile(path)
		if err != nil {
			return err
		}

		units = append(units, descriptor.Units(docs)...)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Descriptors loaded",
		slog.Int("files", len(paths)), slog.Int("units", len(units)), slog.Int("rules", cat.Len()))

	var found report.Collector
	if err := d.Report(ctx, &found, units...); err != nil {
		return err
	}

	violations := found.Violations()

	if err := write(cmd.Writer, violations); err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}

	if len(violations) > 0 {
		return errViolations
	}

	return nil
}

func writer(cmd *cli.Command) (func(io.Writer, []rule.Violation) error, error) {
	switch format := cmd.String("format"); format {
	case "text":
		return report.WriteText, nil

	case "json":
		color := isatty.IsTerminal(os.Stdout.Fd()) && cmd.Writer == os.Stdout
		if cmd.IsSet("color") {
			color = cmd.Bool("color")
		}

		if color {
			return report.WriteColorJSON, nil
		}

		return report.WriteJSON, nil

	default:
		return nil, fmt.Errorf("%w %q", errFormat, format)
	}
}

func listRules(w io.Writer, cat *catalog.Catalog) error {
	for _, e := range cat.Entries() {
		title := e.Title
		if title == "" {
			title = e.Message
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Kind, title); err != nil {
			return err
		}
	}

	return nil
}

func loadCatalog(path string, disabled []string) (*catalog.Catalog, error) {
	cat := catalog.Default()

	if path != "" {
		var err error
		if cat, err = catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if len(disabled) > 0 {
		cat = cat.Without(disabled...)
	}

	return cat, nil
}
