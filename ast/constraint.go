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

// nonBundleOrBodyConstraintTypes are the constraint type names whose value
// can never be a bundle/body call, so that value is rendered with
// AllowBracelessArgumentList forced to false (spec.md §4.6).
var nonBundleOrBodyConstraintTypes = map[string]bool{
	"ifvarclass": true,
	"int":        true,
	"real":       true,
	"string":     true,
	"data":       true,
	"ilist":      true,
	"slist":      true,
	"rlist":      true,
}

// typeValue is the shared `type => value` renderer behind both Constraint
// (inside a promise) and Selection (inside a body): spec.md §4.6's inline
// and line-broken candidates, picked by first_that_fits.
type typeValue struct {
	NodeBase
	Type         *String
	Value        Node
	AssignIndent int

	// forceBracelessOff overrides allowsBraceless to always false; set by
	// Selection, whose value may not yet be a bundle/body call.
	forceBracelessOff bool
}

func newTypeValue(pos Position, typ *String, value Node) typeValue {
	return typeValue{NodeBase: NewNodeBase(pos), Type: typ, Value: value}
}

func (t *typeValue) Children() []Node { return sortedChildren([]Node{t.Type, t.Value}) }

func (t *typeValue) allowsBraceless() bool {
	return !t.forceBracelessOff && !nonBundleOrBodyConstraintTypes[t.Type.Name]
}

func (t *typeValue) linesBody(opts layout.Options) []layout.Line {
	typeLines := t.Type.Lines(opts.Child(layout.Inherit))
	pad := spacesLine(t.AssignIndent)
	valueOpts := opts
	valueOpts.AllowBracelessArgumentList = t.allowsBraceless()

	inline := func(o layout.Options) []layout.Line {
		head := layout.JoinLines(typeLines, []layout.Line{layout.NewLine(pad + " => ")})
		childOpts := valueOpts.Child(layout.Inherit, head)
		return layout.JoinLines(head, t.Value.Lines(childOpts))
	}
	candidates := []layout.Candidate{inline}
	if opts.MayLineBreakConstraint {
		broken := func(o layout.Options) []layout.Line {
			head := layout.JoinLines(typeLines, []layout.Line{layout.NewLine(pad + " =>")})
			childOpts := valueOpts.Child(layout.Inherit, layout.TabSize+t.AssignIndent)
			marker := []layout.Line{layout.Indented("", layout.TabSize+t.AssignIndent+3)}
			valueLines := layout.JoinLines(marker, t.Value.Lines(childOpts))
			return layout.JoinLines(head, layout.LineBreak(), valueLines)
		}
		candidates = append(candidates, broken)
	}
	return layout.FirstThatFits(opts, candidates)
}

func spacesLine(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Constraint is one `type => value` entry inside a promise's constraint
// list (spec.md §4.6).
type Constraint struct{ typeValue }

// NewConstraint returns a Constraint.
func NewConstraint(pos Position, typ *String, value Node) *Constraint {
	return &Constraint{typeValue: newTypeValue(pos, typ, value)}
}

func (c *Constraint) Lines(opts layout.Options) []layout.Line { return RenderLines(c, opts) }
func (c *Constraint) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(c, comments, parents)
}

// Selection is a body's `attribute => value` entry (spec.md §4.8): same
// rendering as Constraint, distinct type so ClassSelectionList's indent
// heuristics can tell it apart from a Class.
type Selection struct{ typeValue }

// NewSelection returns a Selection.
func NewSelection(pos Position, typ *String, value Node) *Selection {
	s := &Selection{typeValue: newTypeValue(pos, typ, value)}
	s.forceBracelessOff = true
	s.SetRespectsPrecedingEmptyLine(true)
	return s
}

// linesBody appends the trailing `;` onto the shared type=>value rendering.
func (s *Selection) linesBody(opts layout.Options) []layout.Line {
	return layout.JoinLines(s.typeValue.linesBody(opts), []layout.Line{layout.NewLine(";")})
}

func (s *Selection) Lines(opts layout.Options) []layout.Line { return RenderLines(s, opts) }
func (s *Selection) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(s, comments, parents)
}
