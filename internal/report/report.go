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

// Package report turns rule matches into violations and writes them out.
package report

import (
	"sync"

	"fillmore-labs.com/ffslint/internal/rule"
)

// Violation renders the message of def with args and anchors it at span.
func Violation(def rule.Definition, span rule.Span, args ...any) rule.Violation {
	return rule.Violation{
		RuleID:   def.ID,
		Message:  Render(def.Message, args...),
		Severity: rule.Error,
		Location: span,
	}
}

// Sink receives reported violations.
type Sink interface {
	Report(v rule.Violation)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(v rule.Violation)

// Report implements [Sink].
func (f SinkFunc) Report(v rule.Violation) { f(v) }

// Collector is a [Sink] accumulating violations. It is safe for concurrent use.
type Collector struct {
	mu         sync.Mutex
	violations []rule.Violation
}

// Report implements [Sink].
func (c *Collector) Report(v rule.Violation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.violations = append(c.violations, v)
}

// Violations returns the collected violations in reporting order.
func (c *Collector) Violations() []rule.Violation {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]rule.Violation(nil), c.violations...)
}

// Emit sends all violations to sink, in order.
func Emit(sink Sink, violations []rule.Violation) {
	for _, v := range violations {
		sink.Report(v)
	}
}
