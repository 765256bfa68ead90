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
	"strings"

	"github.com/sfi28/cfengine-beautifier/evalorder"
	"github.com/sfi28/cfengine-beautifier/layout"
)

// evalOrderIndex looks up a promise type's position in the canonical
// evaluation order; promise type names carry their trailing colon (e.g.
// "files:") while evalorder.Order lists bare names.
func evalOrderIndex(name string) int { return evalorder.Index(strings.TrimSuffix(name, ":")) }

func lineBreak() []layout.Line { return layout.LineBreak() }

func alwaysFalse(bool) layout.Tri { return layout.False }

func notFirst(isFirst bool) layout.Tri {
	if isFirst {
		return layout.False
	}
	return layout.Inherit
}

// doesNotRespectEmptyLineBeforeFirstItem never puts a blank line before a
// list's first item, leaving every later item to its own node flag.
func doesNotRespectEmptyLineBeforeFirstItem(isFirst bool) layout.Tri {
	if isFirst {
		return layout.False
	}
	return layout.Inherit
}

// inlinable reports whether l's items contain no comments at all — the
// precondition for InlinableList to even try its inline record (spec.md
// §4.9).
func inlinable(l *ListBase) bool {
	for _, item := range l.Items {
		if _, isComment := item.(*Comment); isComment {
			return false
		}
		if len(item.Comments()) > 0 {
			return false
		}
	}
	return true
}

// inlinableListArgs picks between inline and lined records the way
// InlinableList.list_args does: the lined record unless the list is
// inlinable AND has exactly one item.
func inlinableListArgs(l *ListBase, inlineSpec, linedSpec ListSpec) []ListSpec {
	if !inlinable(l) || l.Len() > 1 {
		return []ListSpec{linedSpec}
	}
	return []ListSpec{inlineSpec}
}

// List is a `{ a, b, c }` literal list.
type List struct{ ListBase }

// NewList returns a List with the given items (no brace anchors: the
// literal `{`/`}` text is supplied entirely by the list-argument records,
// so there is nothing for stray comments to anchor to beyond the items
// themselves).
func NewList(pos Position, items []Node) *List {
	l := &List{ListBase: NewListBase(pos, items, nil, nil)}
	l.SetSelf(l)
	l.ListArgsFn = l.listArgs
	return l
}

func (l *List) listArgs(layout.Options) []ListSpec {
	inline := ListSpec{
		JoinBy: []layout.Line{layout.NewLine(" ")}, Terminator: ",",
		Empty: []layout.Line{layout.NewLine("{}")},
		Start: []layout.Line{layout.NewLine("{ ")}, End: []layout.Line{layout.NewLine(" }")},
		RespectsPrecedingEmptyLineFn: alwaysFalse,
	}
	lined := ListSpec{
		PostfixBy: lineBreak(), Terminator: ",", EndTerminator: "",
		Empty: []layout.Line{layout.NewLine("{}")},
		Start: []layout.Line{layout.NewLine("{"), layout.NewLine("")}, End: []layout.Line{layout.NewLine("}")},
		DepthFn:                      func([]Node, Node) int { return 1 },
		RespectsPrecedingEmptyLineFn: notFirst,
	}
	return inlinableListArgs(&l.ListBase, inline, lined)
}

// ArgumentList is a function/bundle/body call's `(a, b)` argument list.
type ArgumentList struct{ ListBase }

// NewArgumentList returns an ArgumentList with the given argument items.
func NewArgumentList(pos Position, items []Node) *ArgumentList {
	l := &ArgumentList{ListBase: NewListBase(pos, items, nil, nil)}
	l.SetSelf(l)
	l.ListArgsFn = l.listArgs
	return l
}

func (l *ArgumentList) listArgs(opts layout.Options) []ListSpec {
	inline := ListSpec{
		JoinBy: []layout.Line{layout.NewLine(" ")}, Terminator: ",",
		Start: []layout.Line{layout.NewLine("(")}, End: []layout.Line{layout.NewLine(")")},
	}
	lined := ListSpec{
		JoinBy: lineBreak(), Terminator: ",", EndTerminator: ")",
		Start:   []layout.Line{layout.NewLine("(")},
		DepthFn: func([]Node, Node) int { return 1 },
	}
	if !opts.AllowBracelessArgumentList {
		empty := []layout.Line{layout.NewLine("()")}
		inline.Empty, lined.Empty = empty, empty
	}
	return inlinableListArgs(&l.ListBase, inline, lined)
}

// Specification is the document root: an ordered sequence of Bundles,
// Bodies, and top-level Comments.
type Specification struct{ ListBase }

// NewSpecification returns a Specification with the given top-level items.
func NewSpecification(pos Position, items []Node) *Specification {
	s := &Specification{ListBase: NewListBase(pos, items, nil, nil)}
	s.SetSelf(s)
	s.ListArgsFn = func(layout.Options) []ListSpec {
		return []ListSpec{{JoinBy: lineBreak(), PostfixBy: lineBreak()}}
	}
	return s
}

// classListDepthFn is class_list_depth_fn: indents a Class by one tab and
// everything else (Promise or Selection) by two, with a Comment's depth
// inferred from its original indentation and neighbouring Class/target
// positions (spec.md §4.9's "Indent policy for ClassPromiseList").
func classListDepthFn(defaultClassTabDepth int, isTarget func(Node) bool) func(items []Node, item Node) int {
	return func(items []Node, item Node) int {
		tabs := func() int {
			switch n := item.(type) {
			case *Class:
				return 1
			case *Comment:
				commentIndex := indexOf(items, item)
				hasPreviousTarget := findIndex(items, commentIndex, true, isTarget) != -1
				nextClassIndex := findIndex(items, commentIndex, false, func(n Node) bool { _, ok := n.(*Class); return ok })
				if nextClassIndex == -1 {
					nextClassIndex = len(items)
				}
				nextTargetIndex := findIndex(items, commentIndex, false, isTarget)
				if nextTargetIndex == -1 {
					nextTargetIndex = len(items)
				}
				if nextTargetIndex < nextClassIndex {
					return 2
				}
				if !hasPreviousTarget {
					return 1
				}
				if n.OriginalIndentation <= layout.TabSize*defaultClassTabDepth {
					return 1
				}
				return 2
			default:
				return 2
			}
		}
		return tabs() * layout.TabSize
	}
}

func indexOf(items []Node, item Node) int {
	for i, n := range items {
		if n == item {
			return i
		}
	}
	return -1
}

// findIndex scans items for the first node matching pred, starting at
// startIndex and moving backwards (reverse) or forwards.
func findIndex(items []Node, startIndex int, reverse bool, pred func(Node) bool) int {
	if reverse {
		for i := startIndex - 1; i >= 0; i-- {
			if pred(items[i]) {
				return i
			}
		}
		return -1
	}
	for i := startIndex + 1; i < len(items); i++ {
		if pred(items[i]) {
			return i
		}
	}
	return -1
}

func isSelection(n Node) bool { _, ok := n.(*Selection); return ok }
func isPromise(n Node) bool   { _, ok := n.(*Promise); return ok }

// afterParseClassAndSomething implements ClassAndSomethingList.after_parse:
// a non-Class item right after a Class never respects a preceding blank
// line, and a Comment always does.
func afterParseClassAndSomething(items []Node) {
	var previous Node
	for _, item := range items {
		switch {
		case isClass(previous) && !isClass(item):
			item.SetRespectsPrecedingEmptyLine(false)
		case isCommentNode(item):
			item.SetRespectsPrecedingEmptyLine(true)
		}
		previous = item
	}
}

func isClass(n Node) bool       { _, ok := n.(*Class); return ok }
func isCommentNode(n Node) bool { _, ok := n.(*Comment); return ok }

// PromiseTypeList is a bundle's `{ ... }` body: an ordered sequence of
// PromiseType and Comment items.
type PromiseTypeList struct{ ListBase }

// NewPromiseTypeList returns a PromiseTypeList; open/close anchor the `{`
// and `}` tokens so comments can attach to either brace (spec.md §4.4).
func NewPromiseTypeList(pos Position, items []Node, open, close *BraceMarker) *PromiseTypeList {
	l := &PromiseTypeList{ListBase: NewListBase(pos, items, open, close)}
	l.SetSelf(l)
	l.IsStandaloneForNode = func(item Node, c *Comment) bool { return layout.TabSize < c.OriginalIndentation }
	l.ListArgsFn = l.listArgs
	return l
}

func (l *PromiseTypeList) AddComments(comments []*Comment, parents []Node) error {
	return addCommentsToBlockChildList(&l.ListBase, comments, parents)
}

func (l *PromiseTypeList) AfterParse(opts TransformOptions) {
	if opts.RemovesEmptyPromiseTypes {
		l.Items = emptyPromiseTypesRemoved(l.Items)
	}
	if opts.SortsPromiseTypesToEvaluationOrder {
		l.Items = sortedToEvaluationOrder(l.Items)
	}
}

func (l *PromiseTypeList) listArgs(opts layout.Options) []ListSpec {
	base := ListSpec{
		JoinBy: lineBreak(), PostfixBy: lineBreak(),
		Empty: []layout.Line{layout.NewLine(" {"), layout.NewLine("}")},
		Start: []layout.Line{layout.NewLine(" {"), layout.NewLine("")}, End: []layout.Line{layout.NewLine("}")},
		DepthFn: func([]Node, Node) int { return layout.TabSize },
	}
	return []ListSpec{blockChildListArgs(&l.ListBase, opts, base)}
}

// emptyPromiseTypesRemoved drops a PromiseType with no children and no
// comments anywhere in its subtree (spec.md §4.10).
func emptyPromiseTypesRemoved(items []Node) []Node {
	var out []Node
	for _, item := range items {
		pt, ok := item.(*PromiseType)
		if !ok {
			out = append(out, item)
			continue
		}
		if pt.ClassPromiseList.Len() != 0 || nodeOrChildHasComments(pt) {
			out = append(out, item)
		}
	}
	return out
}

func nodeOrChildHasComments(n Node) bool {
	if len(n.Comments()) > 0 {
		return true
	}
	for _, c := range n.Children() {
		if nodeOrChildHasComments(c) {
			return true
		}
	}
	return false
}

// sortedToEvaluationOrder stably sorts PromiseType items by their position
// in evalorder.Order (unknown names last), then reinserts each interleaved
// Comment immediately before the item that originally followed it (or at
// the end, if it was originally last) — spec.md §4.10.
func sortedToEvaluationOrder(items []Node) []Node {
	var promiseTypes []Node
	var comments []Node
	for _, item := range items {
		if _, ok := item.(*Comment); ok {
			comments = append(comments, item)
		} else {
			promiseTypes = append(promiseTypes, item)
		}
	}
	sortedPromiseTypes := append([]Node{}, promiseTypes...)
	stableSortByEvaluationOrder(sortedPromiseTypes)

	result := append([]Node{}, sortedPromiseTypes...)
	for i := len(comments) - 1; i >= 0; i-- {
		comment := comments[i]
		originalIndex := indexOf(items, comment)
		var insertAt int
		if originalIndex == len(items)-1 {
			insertAt = len(result)
		} else {
			nextItem := items[originalIndex+1]
			insertAt = indexOf(result, nextItem)
		}
		result = append(result[:insertAt], append([]Node{comment}, result[insertAt:]...)...)
	}
	return result
}

func stableSortByEvaluationOrder(items []Node) {
	promiseIndex := func(n Node) int {
		pt, ok := n.(*PromiseType)
		if !ok {
			return 1 << 30
		}
		return evalOrderIndex(pt.Name.Name)
	}
	// insertion sort keeps it trivially stable without pulling in sort.Slice
	// comparator subtleties for a list that is always small.
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && promiseIndex(items[j-1]) > promiseIndex(items[j]) {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}

// ClassSelectionList is a body's `{ ... }` content: Class, Selection and
// Comment items.
type ClassSelectionList struct{ ListBase }

// NewClassSelectionList returns a ClassSelectionList.
func NewClassSelectionList(pos Position, items []Node, open, close *BraceMarker) *ClassSelectionList {
	l := &ClassSelectionList{ListBase: NewListBase(pos, items, open, close)}
	l.SetSelf(l)
	l.ListArgsFn = l.listArgs
	return l
}

func (l *ClassSelectionList) AddComments(comments []*Comment, parents []Node) error {
	return addCommentsToBlockChildList(&l.ListBase, comments, parents)
}

func (l *ClassSelectionList) AfterParse(TransformOptions) { afterParseClassAndSomething(l.Items) }

func (l *ClassSelectionList) listArgs(opts layout.Options) []ListSpec {
	base := ListSpec{
		PostfixBy: lineBreak(),
		Empty:     []layout.Line{layout.NewLine(" {"), layout.NewLine("}")},
		Start:     []layout.Line{layout.NewLine(" {"), layout.NewLine("")}, End: []layout.Line{layout.NewLine("}")},
		DepthFn:                      classListDepthFn(1, isSelection),
		RespectsPrecedingEmptyLineFn: doesNotRespectEmptyLineBeforeFirstItem,
	}
	return []ListSpec{blockChildListArgs(&l.ListBase, opts, base)}
}

// ClassPromiseList is a PromiseType's body: Class, Promise and Comment
// items, indented as though nested one level deeper than a bundle's own
// PromiseTypeList.
type ClassPromiseList struct{ ListBase }

// NewClassPromiseList returns a ClassPromiseList. ConsumesPrecedingEmptyLine
// is forced off (GitHub issue #6 in the original: a promise type's blank
// line is never swallowed by its own first child).
func NewClassPromiseList(pos Position, items []Node) *ClassPromiseList {
	l := &ClassPromiseList{ListBase: NewListBase(pos, items, nil, nil)}
	l.consumesPrecedingEmptyLine = false
	l.SetSelf(l)
	l.ListArgsFn = func(layout.Options) []ListSpec {
		return []ListSpec{{
			JoinBy:                       lineBreak(),
			DepthFn:                      classListDepthFn(2, isPromise),
			RespectsPrecedingEmptyLineFn: doesNotRespectEmptyLineBeforeFirstItem,
		}}
	}
	return l
}

func (l *ClassPromiseList) AfterParse(TransformOptions) { afterParseClassAndSomething(l.Items) }

// ConstraintList is a promise's `type => value, ...;` tail.
type ConstraintList struct{ ListBase }

// NewConstraintList returns a ConstraintList.
func NewConstraintList(pos Position, items []Node) *ConstraintList {
	l := &ConstraintList{ListBase: NewListBase(pos, items, nil, nil)}
	l.SetSelf(l)
	l.ListArgsFn = func(layout.Options) []ListSpec {
		return []ListSpec{{
			Empty: []layout.Line{layout.NewLine(";")}, JoinBy: lineBreak(),
			Terminator: ",", EndTerminator: ";",
		}}
	}
	return l
}
