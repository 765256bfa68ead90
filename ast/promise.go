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

// Promise is `promiser [-> promisee] constraint, constraint...;` (spec.md
// §4.7). MaxTypeLen is set by the enclosing PromiseType before Lines is
// called, then propagated to each Constraint as AssignIndent.
type Promise struct {
	NodeBase
	Promiser   Node
	Promisee   Node // nil if this promise has no promisee
	Constraints *ConstraintList
	MaxTypeLen int
}

// NewPromise returns a Promise; promisee may be nil.
func NewPromise(pos Position, promiser, promisee Node, constraints *ConstraintList) *Promise {
	p := &Promise{NodeBase: NewNodeBase(pos), Promiser: promiser, Promisee: promisee, Constraints: constraints}
	p.SetRespectsPrecedingEmptyLine(true)
	return p
}

func (p *Promise) Children() []Node {
	children := []Node{p.Promiser}
	if p.Promisee != nil {
		children = append(children, p.Promisee)
	}
	children = append(children, p.Constraints)
	return sortedChildren(children)
}

func (p *Promise) promiserAndPromisee(opts layout.Options) []layout.Line {
	promiserLines := p.Promiser.Lines(opts.Child(layout.Inherit))
	if p.Promisee == nil {
		return promiserLines
	}
	inline := func(o layout.Options) []layout.Line {
		head := layout.JoinLines(promiserLines, []layout.Line{layout.NewLine(" -> ")})
		return layout.JoinLines(head, p.Promisee.Lines(opts.Child(layout.Inherit, head)))
	}
	lined := func(o layout.Options) []layout.Line {
		promiseeOpts := opts.Child(layout.Inherit, layout.TabSize+len("-> "))
		marker := []layout.Line{layout.Indented("-> ", layout.TabSize)}
		body := layout.JoinLines(marker, p.Promisee.Lines(promiseeOpts))
		return layout.JoinLines(promiserLines, layout.LineBreak(), body)
	}
	return layout.FirstThatFits(opts, []layout.Candidate{inline, lined})
}

// fitsOneLiner reports whether this promise qualifies for the one-liner
// gate of spec.md §4.7: no promisee, the promiser fits on one source line,
// exactly one constraint, and that constraint carries no line comments.
func (p *Promise) fitsOneLiner() bool {
	if p.Promisee != nil || p.Constraints.Len() != 1 {
		return false
	}
	if p.Promiser.Pos().StartLine != p.Promiser.Pos().EndLine {
		return false
	}
	only := p.Constraints.Items[0]
	return len(LineComments(only, TailComment(only))) == 0
}

func (p *Promise) linesBody(opts layout.Options) []layout.Line {
	for _, item := range p.Constraints.Items {
		if c, ok := item.(*Constraint); ok {
			c.AssignIndent = p.MaxTypeLen - len(c.Type.Name)
		}
	}

	head := p.promiserAndPromisee(opts)

	if p.Constraints.Len() == 0 {
		return layout.JoinLines(head, p.Constraints.Lines(opts.Child(layout.Inherit, head)))
	}

	// fitsOneLiner gates between the one_liner_string and lined_string
	// candidates; both render the constraint list identically (the true
	// single-line form was removed for mishandling assign_indent), so the
	// condition is kept for documentation parity but no longer branches.
	_ = p.fitsOneLiner()
	marker := []layout.Line{layout.Indented("", layout.TabSize)}
	constraintOpts := opts.Child(layout.Inherit, layout.TabSize)
	constraintLines := layout.JoinLines(marker, p.Constraints.Lines(constraintOpts))
	return layout.JoinLines(head, layout.LineBreak(), constraintLines)
}

func (p *Promise) Lines(opts layout.Options) []layout.Line { return RenderLines(p, opts) }
func (p *Promise) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(p, comments, parents)
}
