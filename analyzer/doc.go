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

// Package analyzer implements the ffslint static analysis pass.
//
// # Overview
//
// ffslint evaluates a data-driven catalog of rules against Go packages. Each
// rule has a stable id of the form FFSNNNN and reports a fixed message:
//
//   - call rules ban functions, methods, fields, package variables and types,
//     optionally only when an argument predicate holds
//   - hierarchy rules forbid or require embedded types
//   - attribute rules check the justification of //nolint directives
//   - parameter order rules place parameters of preferred types last
//
// # Example
//
//	func clock() time.Time {
//	    return time.Now() // FFS1001: Use an injected clock rather than time.Now
//	}
//
// # Configuration
//
// The builtin catalog is replaced by a YAML file with -catalog, individual rules
// are turned off with -disable=FFS1001,FFS1002. Diagnostics on lines carrying
// //nolint:ffslint, //nolint:all or //nolint:FFSNNNN are suppressed.
// Generated files are skipped unless -generated is set.
//
// The rule id is reported as the diagnostic category.
package analyzer
