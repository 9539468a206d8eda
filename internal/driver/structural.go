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

package driver

import (
	"slices"
	"strings"
	"unicode/utf8"

	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

// Hierarchy evaluates the hierarchy rules for a type declaration, at most one
// violation per rule regardless of the depth of the base type chain.
func (d *Driver) Hierarchy(t rule.TypeDecl) []rule.Violation {
	var violations []rule.Violation

	for _, spec := range d.catalog.Hierarchies() {
		if len(spec.Kinds) > 0 && !slices.Contains(spec.Kinds, t.Kind) {
			continue
		}

		if !strings.HasSuffix(t.Name, spec.NameSuffix) {
			continue
		}

		derives := slices.Contains(t.Bases(), spec.Base)

		if derives == (spec.Mode == rule.Forbid) {
			violations = append(violations, report.Violation(spec.Definition, t.Span, t.Name, spec.Base))
		}
	}

	return violations
}

// Modifiers evaluates the modifier rules for a declaration. A rule reports once
// when none of its allowed modifiers is present.
func (d *Driver) Modifiers(t rule.TypeDecl) []rule.Violation {
	var violations []rule.Violation

	for _, spec := range d.catalog.Modifiers() {
		if spec.Kind != t.Kind {
			continue
		}

		if slices.ContainsFunc(spec.Allowed, func(m string) bool { return slices.Contains(t.Modifiers, m) }) {
			continue
		}

		violations = append(violations, report.Violation(spec.Definition, t.Span, t.Name, t.Kind))
	}

	return violations
}

// Attribute evaluates the attribute argument rules for an attribute application.
//
// Each rule checks for a blank argument before banned prefixes, so it reports at
// most one violation. Non-literal arguments are never inspected.
func (d *Driver) Attribute(a rule.Attribute) []rule.Violation {
	var violations []rule.Violation

	for _, spec := range d.catalog.Attributes() {
		if spec.Attribute != a.Name {
			continue
		}

		value, ok := a.Arguments[spec.Argument]
		if ok && !value.Literal {
			continue
		}

		text := strings.TrimSpace(value.Text)

		switch {
		case text == "":
			if spec.Blank.ID != "" {
				violations = append(violations, report.Violation(spec.Blank, a.Span, a.Name, spec.Argument))
			}

		case spec.Prefix.ID != "" && slices.ContainsFunc(spec.Prefixes, func(p string) bool { return hasPrefixFold(text, p) }):
			violations = append(violations, report.Violation(spec.Prefix, a.Span, a.Name, spec.Argument))
		}
	}

	return violations
}

// hasPrefixFold is [strings.HasPrefix] under Unicode case folding.
func hasPrefixFold(s, prefix string) bool {
	for _, p := range prefix {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || !strings.EqualFold(string(r), string(p)) {
			return false
		}

		s = s[size:]
	}

	return true
}
