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

// Class is a bare class-guard expression used as a ClassPromiseList or
// ClassSelectionList item (e.g. `any::`). Its own RespectsPrecedingEmptyLine
// flag is always true; a list's respects_preceding_empty_line_fn can still
// override it, as it does for a list's first item.
type Class struct {
	NodeBase
	Expression Node
}

// NewClass returns a Class wrapping expression.
func NewClass(pos Position, expression Node) *Class {
	c := &Class{NodeBase: NewNodeBase(pos), Expression: expression}
	c.SetRespectsPrecedingEmptyLine(true)
	return c
}

func (c *Class) Children() []Node { return []Node{c.Expression} }

func (c *Class) linesBody(opts layout.Options) []layout.Line {
	return c.Expression.Lines(opts.Child(layout.Inherit))
}

func (c *Class) Lines(opts layout.Options) []layout.Line { return RenderLines(c, opts) }
func (c *Class) AddComments(comments []*Comment, parents []Node) error {
	return DefaultAddComments(c, comments, parents)
}
