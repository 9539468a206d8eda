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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTemplate is returned for malformed message templates.
var ErrTemplate = errors.New("malformed message template")

// Render substitutes the positional placeholders {0}, {1}, ... in template.
// "{{" and "}}" produce literal braces. Placeholders without a matching argument
// are kept verbatim.
func Render(template string, args ...any) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{',
			c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte(c) // ignore error
			i++

		case c == '{':
			n, width, ok := placeholder(template[i+1:])
			if !ok || n >= len(args) {
				b.WriteByte(c) // ignore error

				continue
			}

			fmt.Fprint(&b, args[n]) // ignore error
			i += width

		default:
			b.WriteByte(c) // ignore error
		}
	}

	return b.String()
}

// Arity returns the number of arguments template refers to, that is the highest
// placeholder index plus one.
func Arity(template string) (int, error) {
	arity := 0

	for i := 0; i < len(template); i++ {
		switch c := template[i]; {
		case (c == '{' || c == '}') && i+1 < len(template) && template[i+1] == c:
			i++

		case c == '{':
			n, width, ok := placeholder(template[i+1:])
			if !ok {
				return 0, fmt.Errorf("%w: invalid placeholder at offset %d in %q", ErrTemplate, i, template)
			}

			arity = max(arity, n+1)
			i += width

		case c == '}':
			return 0, fmt.Errorf("%w: unmatched '}' at offset %d in %q", ErrTemplate, i, template)
		}
	}

	return arity, nil
}

// placeholder parses "N}" at the start of s, returning the index and the number of bytes consumed.
func placeholder(s string) (n, width int, ok bool) {
	end := strings.IndexByte(s, '}')
	if end <= 0 {
		return 0, 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 || s[0] == '+' || s[0] == '-' {
		return 0, 0, false
	}

	return n, end + 1, true
}
