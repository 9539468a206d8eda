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

package rule

// Severity of a violation.
type Severity uint8

// Error is the only severity: every violation breaks the build.
const Error Severity = iota

// String implements [fmt.Stringer].
func (s Severity) String() string {
	if s == Error {
		return "error"
	}

	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Violation is a single reported rule breach.
type Violation struct {
	RuleID   string   `json:"rule"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Location Span     `json:"location"`
}
