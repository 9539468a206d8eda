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

/*
Package catalog holds the immutable table of rule specifications.

A [Catalog] is built once, from the bundled [Builtin] specifications or a YAML file,
and shared read-only between analysis units. Construction fails on duplicate rule
ids and malformed specifications.

# YAML format

	calls:
	  - id: FFS1006
	    category: Security
	    message: "Do not create world-writable directories with {2}"
	    target: os.MkdirAll
	    predicate:
	      any:
	        - forbidden: {param: perm, kind: NumericLiteral, text: "0777"}
	        - forbidden: {param: perm, kind: NumericLiteral, text: "0o777"}
	hierarchies:
	  - id: FFS1012
	    message: "Type {0} must not embed {1}"
	    base: sync.Mutex
	    mode: forbid
	modifiers:
	  - id: FFS0022
	    message: Structs should be read-only
	    kind: struct
	    allowed: [readonly]
	attributes:
	  - attribute: nolint
	    argument: Justification
	    prefixes: [TODO]
	    blank: {id: FFS1010, message: nolint directive must specify a justification}
	    prefix: {id: FFS1011, message: nolint directive must not have a pending justification}
	parameter-orders:
	  - id: FFS0019
	    message: "Parameter '{0}' must be parameter {1}"
	    preferred: [context.Context]

A predicate is exactly one of none, min-args, forbidden, all or any. A missing
predicate reports every matching call.
*/
package catalog
