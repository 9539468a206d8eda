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

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nwidger/jsoncolor"

	"fillmore-labs.com/ffslint/internal/rule"
)

// WriteText writes one "file:line:column: severity FFSNNNN: message" line per violation.
func WriteText(w io.Writer, violations []rule.Violation) error {
	for _, v := range violations {
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", v.Location, v.Severity, v.RuleID, v.Message); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes violations as an indented JSON array.
func WriteJSON(w io.Writer, violations []rule.Violation) error {
	if violations == nil {
		violations = []rule.Violation{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(violations)
}

// WriteColorJSON writes violations as an indented, colorized JSON array for terminals.
func WriteColorJSON(w io.Writer, violations []rule.Violation) error {
	if violations == nil {
		violations = []rule.Violation{}
	}

	out, err := jsoncolor.MarshalIndent(violations, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(out, '\n'))

	return err
}
