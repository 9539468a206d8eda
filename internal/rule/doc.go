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

// Package rule defines the data model of the rule matching engine: rule definitions,
// argument predicates, resolved call sites and declarations, and violations.
//
// Everything in this package is plain data. Hosts produce [CallSite], [TypeDecl],
// [Attribute] and [Signature] values; the catalog holds specifications; the driver
// turns matches into [Violation] values.
package rule
