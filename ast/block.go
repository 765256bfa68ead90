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

// block is the shared rendering behind Bundle and Body (spec.md §4.8):
// `element type name args child_list`, e.g. `bundle agent main { ... }` or
// `body file control { ... }`. It never allows end-of-line comments of its
// own: comments on a block land on one of its children instead.
type block struct {
	NodeBase
	Element   *String
	Type      *String
	Name      *String
	Args      *ArgumentList
	ChildList Node // *PromiseTypeList (Bundle) or *ClassSelectionList (Body)
}

func newBlock(pos Position, element, typ, name *String, args *ArgumentList, childList Node) block {
	b := block{NodeBase: NewNodeBase(pos), Element: element, Type: typ, Name: name, Args: args, ChildList: childList}
	b.allowsEndOfLineComments = false
	return b
}

func (b *block) Children() []Node {
	return sortedChildren([]Node{b.Element, b.Type, b.Name, b.Args, b.ChildList})
}

func (b *block) linesBody(opts layout.Options) []layout.Line {
	if selections, ok := b.ChildList.(*ClassSelectionList); ok {
		assignIndentForSelections(selections)
	}

	childOpts := opts.Child(layout.Inherit)
	space := []layout.Line{layout.NewLine(" ")}
	linesUntilArgs := layout.JoinLines(
		b.Element.Lines(childOpts), space,
		b.Type.Lines(childOpts), space,
		b.Name.Lines(childOpts))
	argsOpts := opts.Child(layout.Inherit, linesUntilArgs)
	return layout.JoinLines(linesUntilArgs, b.Args.Lines(argsOpts), b.ChildList.Lines(childOpts))
}

// assignIndentForSelections computes max_type_len across a body's direct
// Selection children and sets each one's AssignIndent — the Selection
// analogue of what PromiseType does for Promise/Constraint (spec.md §4.8).
func assignIndentForSelections(list *ClassSelectionList) {
	maxTypeLen := 0
	for _, item := range list.Items {
		if s, ok := item.(*Selection); ok && len(s.Type.Name) > maxTypeLen {
			maxTypeLen = len(s.Type.Name)
		}
	}
	for _, item := range list.Items {
		if s, ok := item.(*Selection); ok {
			s.AssignIndent = maxTypeLen - len(s.Type.Name)
		}
	}
}

// Bundle is `bundle <type> <name>(<args>) { <promise types> }`.
type Bundle struct{ block }

// NewBundle returns a Bundle. element is typically the literal "bundle".
func NewBundle(pos Position, element, typ, name *String, args *ArgumentList, promiseTypes *PromiseTypeList) *Bundle {
	return &Bundle{block: newBlock(pos, element, typ, name, args, promiseTypes)}
}

func (b *Bundle) Lines(opts layout.Options) []layout.Line { return RenderLines(b, opts) }
func (b *Bundle) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(b, comments, parents)
}

// Body is `body <type> <name>(<args>) { <selections> }`.
type Body struct{ block }

// NewBody returns a Body. element is typically the literal "body".
func NewBody(pos Position, element, typ, name *String, args *ArgumentList, selections *ClassSelectionList) *Body {
	return &Body{block: newBlock(pos, element, typ, name, args, selections)}
}

func (b *Body) Lines(opts layout.Options) []layout.Line { return RenderLines(b, opts) }
func (b *Body) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(b, comments, parents)
}
