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

// Package config holds behavioral switches of the analysis pass.
package config

// BehaviorFlags are switches changing what the pass inspects.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// HonorNoLint suppresses diagnostics on lines carrying a matching //nolint directive.
	HonorNoLint
)

// Behavior is the set of enabled [BehaviorFlags].
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default switches: generated files are skipped, //nolint is honored.
func DefaultBehavior() Behavior {
	return NewBitMask(HonorNoLint)
}
