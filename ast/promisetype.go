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
	"regexp"

	"github.com/sfi28/cfengine-beautifier/layout"
)

// constraintTypeHead matches a rendered constraint line's leading type name
// ("type => ..."), used to measure type_max_indent (spec.md §4.8).
var constraintTypeHead = regexp.MustCompile(`^(\S+) => `)

// PromiseType is `name: class_promise_list` — one section of a bundle, e.g.
// `files:`.
type PromiseType struct {
	NodeBase
	Name             *String
	ClassPromiseList *ClassPromiseList
}

// NewPromiseType returns a PromiseType.
func NewPromiseType(pos Position, name *String, list *ClassPromiseList) *PromiseType {
	return &PromiseType{NodeBase: NewNodeBase(pos), Name: name, ClassPromiseList: list}
}

func (pt *PromiseType) Children() []Node {
	return sortedChildren([]Node{pt.Name, pt.ClassPromiseList})
}

// AfterParse does nothing for a PromiseType; PromiseTypeList performs the
// empty-type removal and the sort since it owns the sibling list (spec.md
// §4.10).
func (pt *PromiseType) AfterParse(TransformOptions) {}

func (pt *PromiseType) linesBody(opts layout.Options) []layout.Line {
	childOpts := opts.Child(layout.Inherit)

	maxTypeLen := 0
	for _, ln := range pt.ClassPromiseList.Lines(childOpts) {
		if m := constraintTypeHead.FindStringSubmatch(ln.Text); m != nil && len(m[1]) > maxTypeLen {
			maxTypeLen = len(m[1])
		}
	}
	for _, item := range pt.ClassPromiseList.Items {
		if p, ok := item.(*Promise); ok {
			p.MaxTypeLen = maxTypeLen
		}
	}

	var joinBy []layout.Line
	if pt.ClassPromiseList.Len() > 0 {
		joinBy = layout.LineBreak()
	}

	nameLines := pt.Name.Lines(childOpts)
	return layout.JoinLines(nameLines, layout.JoinLines(joinBy, pt.ClassPromiseList.Lines(childOpts)))
}

func (pt *PromiseType) Lines(opts layout.Options) []layout.Line { return RenderLines(pt, opts) }
func (pt *PromiseType) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(pt, comments, parents)
}
