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

// String is a literal leaf: an identifier, a quoted string, a class guard
// expression, or anything else the parser hands over as pre-rendered text.
type String struct {
	NodeBase
	Name string
}

// NewString returns a String leaf carrying name verbatim.
func NewString(pos Position, name string) *String {
	return &String{NodeBase: NewNodeBase(pos), Name: name}
}

func (s *String) linesBody(layout.Options) []layout.Line { return []layout.Line{layout.NewLine(s.Name)} }
func (s *String) Lines(opts layout.Options) []layout.Line { return RenderLines(s, opts) }
func (s *String) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(s, comments, parents)
}

// Function is a call `name(args...)`, used both as a constraint value and,
// with AllowBracelessArgumentList, as a bundle/body invocation that may
// drop its parentheses when it has no arguments.
type Function struct {
	NodeBase
	Name *String
	Args *ArgumentList
}

// NewFunction returns a Function node; args may be nil for a name with no
// call syntax at all (not currently produced by the grammar, but kept for
// robustness against a minimal parser).
func NewFunction(pos Position, name *String, args *ArgumentList) *Function {
	return &Function{NodeBase: NewNodeBase(pos), Name: name, Args: args}
}

func (f *Function) Children() []Node {
	children := []Node{f.Name}
	if f.Args != nil {
		children = append(children, f.Args)
	}
	return sortedChildren(children)
}

func (f *Function) linesBody(opts layout.Options) []layout.Line {
	nameLines := f.Name.Lines(opts.Child(layout.Inherit))
	if f.Args == nil {
		return nameLines
	}
	return layout.JoinLines(nameLines, f.Args.Lines(opts.Child(layout.Inherit, nameLines)))
}

func (f *Function) Lines(opts layout.Options) []layout.Line { return RenderLines(f, opts) }
func (f *Function) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(f, comments, parents)
}
