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
	"sort"

	"github.com/sfi28/cfengine-beautifier/layout"
)

// ForwardPriority controls whether a node keeps comments offered to it, and
// if several candidate end-of-line comments compete for a slot, which one
// wins. PriorityNone means "adopt normally"; Low/High mean "refuse, forward
// to the parent instead" (the two only differ once forwarded, in how they
// rank against a sibling's own comments).
type ForwardPriority int

const (
	PriorityNone ForwardPriority = iota
	PriorityLow
	PriorityHigh
)

// TransformOptions carries the two structural-transform flags (spec.md §6)
// into AfterParse. Defined here rather than in package format to avoid a
// format->ast->format import cycle; format.Options is the public-facing
// superset that callers actually construct.
type TransformOptions struct {
	RemovesEmptyPromiseTypes             bool
	SortsPromiseTypesToEvaluationOrder bool
}

// Node is implemented by every AST node kind: Specification, Block/Bundle/
// Body, PromiseType, Class, Promise, Constraint/Selection, Function, String,
// Comment, and the List kinds. Lines/linesBody follows a template-method
// shape: concrete types implement linesBody (the spec's "_lines") and their
// exported Lines method is a one-line call to RenderLines, which applies the
// shared preceding-empty-line / tail-comment / indent logic from spec.md
// §4.5 around that body.
type Node interface {
	Pos() Position
	SetPos(Position)
	Children() []Node
	Comments() []*Comment
	SetComments(cs []*Comment)
	PrecededByEmptyLine() bool
	SetPrecededByEmptyLine(bool)
	RespectsPrecedingEmptyLine() bool
	SetRespectsPrecedingEmptyLine(bool)
	ConsumesPrecedingEmptyLine() bool
	AllowsEndOfLineComments() bool
	ForwardsTo() ForwardPriority

	AfterParse(opts TransformOptions)
	AddComments(comments []*Comment, parents []Node) error
	Lines(opts layout.Options) []layout.Line

	linesBody(opts layout.Options) []layout.Line
}

// NodeBase implements the attributes every Node shares (spec.md §3); every
// concrete node type embeds it and overrides linesBody (required) plus
// whichever of Children/AddComments/AfterParse it needs to specialise.
type NodeBase struct {
	position Position
	comments []*Comment

	precededByEmptyLine        bool
	respectsPrecedingEmptyLine bool
	consumesPrecedingEmptyLine bool
	allowsEndOfLineComments    bool
	forwardsTo                 ForwardPriority
}

// NewNodeBase returns a NodeBase with the common defaults: a preceding empty
// line is consumed and end-of-line comments are allowed.
func NewNodeBase(pos Position) NodeBase {
	return NodeBase{
		position:                    pos,
		consumesPrecedingEmptyLine: true,
		allowsEndOfLineComments:    true,
	}
}

func (n *NodeBase) Pos() Position     { return n.position }
func (n *NodeBase) SetPos(p Position) { n.position = p }

func (n *NodeBase) Comments() []*Comment { return n.comments }
func (n *NodeBase) SetComments(cs []*Comment) { n.comments = cs }

func (n *NodeBase) PrecededByEmptyLine() bool     { return n.precededByEmptyLine }
func (n *NodeBase) SetPrecededByEmptyLine(v bool) { n.precededByEmptyLine = v }

func (n *NodeBase) RespectsPrecedingEmptyLine() bool     { return n.respectsPrecedingEmptyLine }
func (n *NodeBase) SetRespectsPrecedingEmptyLine(v bool) { n.respectsPrecedingEmptyLine = v }

func (n *NodeBase) ConsumesPrecedingEmptyLine() bool { return n.consumesPrecedingEmptyLine }
func (n *NodeBase) AllowsEndOfLineComments() bool    { return n.allowsEndOfLineComments }
func (n *NodeBase) ForwardsTo() ForwardPriority       { return n.forwardsTo }

// Children is the zero-child default; composite node types override it.
func (n *NodeBase) Children() []Node { return nil }

// AfterParse is a no-op default; PromiseTypeList and the class/promise and
// class/selection lists override it with their structural transforms.
func (n *NodeBase) AfterParse(TransformOptions) {}

// sortedChildren sorts ns by Position.ParseIndex in place and returns it,
// the Go equivalent of the original's
// "sorted(child_by_name.values(), key=parse_index)".
func sortedChildren(ns []Node) []Node {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Pos().ParseIndex < ns[j].Pos().ParseIndex
	})
	return ns
}

