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

import "github.com/sfi28/cfengine-beautifier/layout"

// TailComment returns the end-of-line comment that should render after n's
// own lines — among n's attached comments with EndOfLine affinity whose
// start line n's position covers, the one with the highest Priority (spec
// §4.5 step 2). Ties keep the first one encountered.
func TailComment(n Node) *Comment {
	var best *Comment
	for _, c := range n.Comments() {
		if !c.IsEndOfLine() || !n.Pos().Covers(c.position.StartLine) {
			continue
		}
		if best == nil || c.Priority > best.Priority {
			best = c
		}
	}
	return best
}

// LineComments returns n's attached comments other than tail (spec §4.5
// step 3's input to the line-comment merge).
func LineComments(n Node, tail *Comment) []*Comment {
	var out []*Comment
	for _, c := range n.Comments() {
		if c != tail {
			out = append(out, c)
		}
	}
	return out
}

// RenderLines implements the spec §4.5 template every concrete node's
// exported Lines method forwards to: a preceding empty line, the merged
// line-comments (every attached comment but the tail comment), the node's
// own body (n.linesBody), and the
// node's trailing end-of-line comment, followed by indenting every line but
// the first by opts.Indent.
func RenderLines(n Node, opts layout.Options) []layout.Line {
	var lines []layout.Line
	if n.PrecededByEmptyLine() && opts.RespectsPrecedingEmptyLine.Bool(n.RespectsPrecedingEmptyLine()) {
		lines = append(lines, layout.NewLine(""))
	}

	if len(n.Comments()) > 0 {
		commentOpts := opts.Child(layout.Inherit)
		tail := TailComment(n)

		var tailLines []layout.Line
		if tail != nil {
			tailLines = layout.JoinLines([]layout.Line{layout.NewLine(" ")}, tail.Lines(commentOpts))
		}

		var lineCommentLines []layout.Line
		if lc := LineComments(n, tail); len(lc) > 0 {
			lineCommentLines = mergeComments(lc).Lines(commentOpts)
		}

		body := n.linesBody(opts)
		trailer := layout.Line{EndComments: tailLines}
		bodyWithTail := layout.JoinLines(body, []layout.Line{trailer})
		lines = append(lines, lineCommentLines...)
		lines = append(lines, bodyWithTail...)
	} else {
		lines = append(lines, n.linesBody(opts)...)
	}

	opts.IndentLines(lines)
	return lines
}
