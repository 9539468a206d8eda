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

	"fillmore-labs.com/ffslint/internal/report"
	"fillmore-labs.com/ffslint/internal/rule"
)

// ParameterOrder evaluates the parameter ordering rules for a parameter list.
//
// Preferred types are placed from the end backwards: the last preferred type that
// is present must be the last parameter, the one before it the parameter before
// that, and so on. Each misplaced parameter is reported with its required 1-based
// position. Extension receivers never match.
func (d *Driver) ParameterOrder(s rule.Signature) []rule.Violation {
	var violations []rule.Violation

	count := len(s.Parameters)

	for _, spec := range d.catalog.ParameterOrders() {
		matched := 0

		for _, typ := range slices.Backward(spec.Preferred) {
			i := slices.IndexFunc(s.Parameters, func(p rule.Parameter) bool { return !p.Receiver && p.Type == typ })
			if i < 0 {
				continue
			}

			matched++

			if required := count - matched; i != required {
				p := s.Parameters[i]
				violations = append(violations, report.Violation(spec.Definition, p.Span, p.Name, required+1))
			}
		}
	}

	return violations
}
