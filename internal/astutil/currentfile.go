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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// ffslint is the name of the linter.
const ffslint = "ffslint"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name returns the file name as recorded in the file set.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Pos maps a byte offset back to a position in this file.
// Offsets outside of the file are clamped.
func (c CurrentFile) Pos(offset int) token.Pos {
	offset = min(max(offset, 0), c.handle.Size())

	return c.handle.Pos(offset)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint comment suppressing ruleID.
// A directive starting at pos never suppresses itself.
func (c CurrentFile) NoLintComment(pos token.Pos, ruleID string) bool {
	if c.file == nil {
		return false
	}

	// find the first comment group ending after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos+1,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.End() - p) })

	line := c.line(pos)

	for _, group := range c.file.Comments[i:] {
		for _, comment := range group.List {
			if comment.Pos() <= pos {
				continue
			}

			if c.line(comment.Pos()) != line {
				return false // not on this line
			}

			if CommentHasNoLint(comment, ruleID) {
				return true
			}
		}
	}

	return false
}

// FuncNoLint checks if pos lies inside a function declaration whose doc comment
// ends with a //nolint directive suppressing ruleID.
func (c CurrentFile) FuncNoLint(pos token.Pos, ruleID string) bool {
	if c.file == nil {
		return false
	}

	i, found := slices.BinarySearchFunc(c.file.Decls, pos, func(d ast.Decl, p token.Pos) int {
		switch {
		case d.End() <= p:
			return -1

		case d.Pos() > p:
			return 1

		default:
			return 0
		}
	})
	if !found {
		return false
	}

	fun, ok := c.file.Decls[i].(*ast.FuncDecl)

	return ok && fun.Doc != nil && CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1], ruleID)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint(?::([a-zA-Z0-9,_-]+))?(?:\s*//(.*)|\s.*)?$`)

// NoLint is a parsed //nolint directive.
type NoLint struct {
	// Linters is the list of suppressed linters, empty for all.
	Linters []string

	// Reason is the explanation following a trailing "//", if any.
	Reason string
}

// ParseNoLint parses a //nolint directive.
func ParseNoLint(comment *ast.Comment) (NoLint, bool) {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return NoLint{}, false
	}

	var n NoLint

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.TrimSpace(linter); l != "" {
			n.Linters = append(n.Linters, l)
		}
	}

	n.Reason = strings.TrimSpace(matches[2])

	return n, true
}

// Suppresses reports whether the directive applies to ruleID.
func (n NoLint) Suppresses(ruleID string) bool {
	if len(n.Linters) == 0 {
		return true
	}

	for _, linter := range n.Linters {
		if l := strings.ToLower(linter); l == ffslint || l == "all" || strings.EqualFold(linter, ruleID) {
			return true
		}
	}

	return false
}

// CommentHasNoLint checks if the provided comment contains a //nolint directive for ffslint or ruleID.
// An empty ruleID only matches directives for the whole linter.
func CommentHasNoLint(comment *ast.Comment, ruleID string) bool {
	n, ok := ParseNoLint(comment)

	return ok && n.Suppresses(ruleID)
}
