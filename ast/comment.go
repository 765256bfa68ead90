// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"
	"regexp"

	"github.com/sfi28/cfengine-beautifier/layout"
)

// Affinity is a comment's positional relationship to the nodes around it.
type Affinity int

const (
	// EndOfLine comments share their source line with the node they follow.
	EndOfLine Affinity = iota
	// Standalone comments occupy their own source line(s).
	Standalone
	// NextNode comments are demoted end-of-line comments: an end-of-line
	// comment adopted by a node that disallows them.
	NextNode
)

// Comment is a lexed `#...` line (or a run of them, once merged). Priority
// is assigned by the distributor during adoption (spec.md §4.4 Phase B) and
// disambiguates which of several end-of-line comments wins the "tail
// comment" slot for a node (spec.md §4.5).
type Comment struct {
	NodeBase

	TextLines           []string
	AffinityKind        Affinity
	OriginalIndentation int
	Priority            int
}

// NewComment returns a Comment with one text line.
func NewComment(pos Position, line string, originalIndentation int, affinity Affinity) *Comment {
	c := &Comment{NodeBase: NewNodeBase(pos), OriginalIndentation: originalIndentation, AffinityKind: affinity}
	c.TextLines = []string{line}
	return c
}

// IsEndOfLine reports whether this comment has end-of-line affinity.
func (c *Comment) IsEndOfLine() bool { return c.AffinityKind == EndOfLine }

// IsStandalone reports whether this comment has standalone affinity.
func (c *Comment) IsStandalone() bool { return c.AffinityKind == Standalone }

// PrependLine prepends a text line to a (necessarily multi-line, non
// end-of-line) comment, widening its position to start there.
func (c *Comment) PrependLine(pos Position, line string) error {
	if c.IsEndOfLine() {
		return fmt.Errorf("ast: cannot prepend a line to an end-of-line comment")
	}
	c.TextLines = append([]string{line}, c.TextLines...)
	c.position.PrependLine(pos.StartLine, pos.StartCol)
	return nil
}

// Append merges other's text lines onto c and widens c's position to cover
// other — the "multiple line comments become one multi-line comment"
// merge used when several adjacent line-comments are rendered as a block
// (spec.md §4.5 step 3).
func (c *Comment) Append(other *Comment) {
	c.TextLines = append(c.TextLines, other.TextLines...)
	c.position.EndLine = other.position.EndLine
	c.position.EndCol = other.position.EndCol
}

// mergeComments folds a run of comments into a single multi-line Comment,
// without mutating any of the inputs.
func mergeComments(cs []*Comment) *Comment {
	if len(cs) == 0 {
		return nil
	}
	merged := &Comment{
		NodeBase:            NewNodeBase(cs[0].position),
		TextLines:           append([]string{}, cs[0].TextLines...),
		AffinityKind:        cs[0].AffinityKind,
		OriginalIndentation: cs[0].OriginalIndentation,
		Priority:            cs[0].Priority,
	}
	for _, c := range cs[1:] {
		merged.Append(c)
	}
	return merged
}

// hashPrefixRun matches a `#` followed immediately by another `#`, `-` or
// `=` — such a line is emitted verbatim (spec.md §6): headers like `##hdr`
// or rules like `#---` keep their exact shape.
var hashPrefixRun = regexp.MustCompile(`^#[#\-=]`)

// renderCommentLine turns one `#...` source line into its canonical form:
// a single space is inserted after the leading `#` (and one optional tab or
// space already present is consumed) unless the line is a single `#` or
// matches hashPrefixRun, in which case it is emitted unchanged.
func renderCommentLine(line string) string {
	if len(line) <= 1 || hashPrefixRun.MatchString(line) {
		return line
	}
	rest := line[1:]
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	return "#" + " " + rest
}

func (c *Comment) Children() []Node { return nil }

func (c *Comment) linesBody(opts layout.Options) []layout.Line {
	lines := make([]layout.Line, len(c.TextLines))
	for i, raw := range c.TextLines {
		lines[i] = layout.Indented(renderCommentLine(raw), 0)
	}
	return lines
}

// Lines renders the comment's text lines; a Comment never has its own
// attached comments, so it skips the generic RenderLines template.
func (c *Comment) Lines(opts layout.Options) []layout.Line {
	lines := c.linesBody(opts)
	opts.IndentLines(lines)
	return lines
}

func (c *Comment) AddComments(comments []*Comment, parents []Node) error {
	// A Comment has no children of its own to distribute further comments
	// to; this path is not reachable on well-formed input.
	return DefaultAddComments(c, comments, parents)
}
