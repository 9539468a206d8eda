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

// Predicate is one of [None], [MinArgs], [ForbiddenArg], [All] or [Any].
type Predicate interface {
	predicate()
}

// None reports every matching call.
type None struct{}

// MinArgs reports calls with fewer than N arguments.
type MinArgs struct {
	N int
}

// ForbiddenArg reports calls whose argument bound to Param is an expression of
// syntax Kind and, when Text is not empty, has exactly this literal text.
type ForbiddenArg struct {
	Param string
	Kind  SyntaxKind
	Text  string
}

// All reports when every predicate reports.
type All []Predicate

// Any reports when at least one predicate reports.
type Any []Predicate

func (None) predicate()         {}
func (MinArgs) predicate()      {}
func (ForbiddenArg) predicate() {}
func (All) predicate()          {}
func (Any) predicate()          {}
