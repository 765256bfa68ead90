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

// Package layout holds the width-aware line model shared by every formatted
// node: Line, Options and the primitives (JoinLines, FirstThatFits) that
// decide between an inline and a multi-line rendering of a subtree.
package layout

// TabSize is the indent width of one logical nesting level.
const TabSize = 4

// Line is one line of output: its text, a leading indent (added by the
// parent when the line is not the first line of a subtree), and any
// end-of-line comment fragments to append after the text.
//
// Indent is meaningful only once HasIndent is true; a Line produced deep
// inside a subtree starts with HasIndent false and gets its indent filled in
// by the nearest ancestor that knows the subtree's nesting depth (see
// Options.IndentLines and Join).
type Line struct {
	Text        string
	Indent      int
	HasIndent   bool
	EndComments []Line
}

// NewLine returns a Line with no indent set.
func NewLine(text string) Line { return Line{Text: text} }

// Indented returns a Line with an explicit indent.
func Indented(text string, indent int) Line {
	return Line{Text: text, Indent: indent, HasIndent: true}
}

// Length is the number of columns this line occupies: its own indent plus
// its text length. End-of-line comments never affect the width decision —
// they are attached only once a candidate has already been chosen.
func (l Line) Length() int {
	indent := 0
	if l.HasIndent {
		indent = l.Indent
	}
	return len(l.Text) + indent
}

// Join concatenates l with next: the text is concatenated, the indent is
// l's if set, else next's, and end-of-line comment fragments are
// concatenated in order.
func (l Line) Join(next Line) Line {
	out := Line{Text: l.Text + next.Text}
	if l.HasIndent {
		out.Indent, out.HasIndent = l.Indent, true
	} else if next.HasIndent {
		out.Indent, out.HasIndent = next.Indent, true
	}
	if len(l.EndComments)+len(next.EndComments) > 0 {
		out.EndComments = append(append([]Line{}, l.EndComments...), next.EndComments...)
	}
	return out
}

// LineBreak is the [blank, blank] pair used by the list engine to join
// items that are separated by a full line break rather than a space.
func LineBreak() []Line { return []Line{NewLine(""), NewLine("")} }

// MaxLineLength returns the widest Length among lines, or 0 for an empty
// slice.
func MaxLineLength(lines []Line) int {
	max := 0
	for _, l := range lines {
		if n := l.Length(); n > max {
			max = n
		}
	}
	return max
}
