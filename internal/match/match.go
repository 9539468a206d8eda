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

// Package match decides whether a resolved call site violates a call specification.
package match

import (
	"slices"

	"fillmore-labs.com/ffslint/internal/rule"
)

// Result of evaluating a call site against a specification.
type Result struct {
	// Matched is true when the call violates the specification.
	Matched bool

	// Args are the message template arguments: receiver type, member name and qualified name.
	Args []any
}

// NoMatch is the [Result] of a conforming call.
var NoMatch = Result{}

// Evaluate evaluates call against spec. The caller has already selected spec by
// the qualified name of call.
func Evaluate(call rule.CallSite, spec rule.CallSpec) Result {
	if !Violates(call, spec.Predicate) {
		return NoMatch
	}

	return Result{
		Matched: true,
		Args:    []any{call.Receiver, call.Member, call.QualifiedName()},
	}
}

// Violates reports whether call violates predicate p. A nil predicate behaves like [rule.None].
//
// Argument predicates only apply to invocations and never report when the
// argument can't be bound.
func Violates(call rule.CallSite, p rule.Predicate) bool {
	switch p := p.(type) {
	case nil, rule.None:
		return true

	case rule.MinArgs:
		return call.Invocation && len(call.Arguments) < p.N

	case rule.ForbiddenArg:
		if !call.Invocation {
			return false
		}

		arg, ok := Bind(call, p.Param)
		if !ok || arg.Kind != p.Kind {
			return false
		}

		return p.Text == "" || arg.Text == p.Text

	case rule.All:
		for _, q := range p {
			if !Violates(call, q) {
				return false
			}
		}

		return len(p) > 0

	case rule.Any:
		for _, q := range p {
			if Violates(call, q) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

// Bind finds the argument bound to the declared parameter param, first by explicit
// name, then by the declared position of param.
func Bind(call rule.CallSite, param string) (rule.Argument, bool) {
	for _, arg := range call.Arguments {
		if arg.Name == param {
			return arg, true
		}
	}

	pos := slices.Index(call.Parameters, param)
	if call.Extension {
		pos-- // the receiver is not part of the argument list
	}

	if pos < 0 {
		return rule.Argument{}, false
	}

	for _, arg := range call.Arguments {
		if arg.Name == "" && arg.Ordinal == pos {
			return arg, true
		}
	}

	return rule.Argument{}, false
}
