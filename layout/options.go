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

package layout

// Tri is a three-valued override: Inherit defers to the node's own default,
// True/False force the value regardless of what the node would otherwise
// pick. Kept as a real three-valued type, not a *bool, so the inheritance
// rule in Options.Child is explicit at every call site.
type Tri int

const (
	Inherit Tri = iota
	True
	False
)

// Bool resolves the tri-state against a node-level default.
func (t Tri) Bool(nodeDefault bool) bool {
	switch t {
	case True:
		return true
	case False:
		return false
	default:
		return nodeDefault
	}
}

// Options is the formatting context threaded through every Lines call: the
// page width available to the whole document, the indent accumulated by
// enclosing subtrees, and a handful of flags a node may inherit or override
// for its children.
type Options struct {
	PageWidth   int
	LineEndings string

	// Indent is added to every line but the first of this subtree.
	Indent int
	// AncestorIndent is the indent already committed by enclosing subtrees.
	AncestorIndent int

	// MayLineBreakConstraint allows a Constraint to break after "=>".
	MayLineBreakConstraint bool
	// RespectsPrecedingEmptyLine overrides a node's own flag when not Inherit.
	RespectsPrecedingEmptyLine Tri
	// AllowBracelessArgumentList permits a 0-arg call to render without "()".
	AllowBracelessArgumentList bool
}

// Depth is the total nesting depth of this subtree.
func (o Options) Depth() int { return o.Indent + o.AncestorIndent }

// AvailableWidth is the remaining horizontal budget for this subtree.
func (o Options) AvailableWidth() int { return o.PageWidth - o.Depth() }

// DepthSource is either a fixed column count (int) or a line array, whose
// last line's length is used as the column count — the two shapes
// Options.Child accepts for computing a child's own Indent.
type DepthSource interface{}

func depthOf(d DepthSource) int {
	switch v := d.(type) {
	case int:
		return v
	case []Line:
		if len(v) == 0 {
			return 0
		}
		return v[len(v)-1].Length()
	default:
		panic("layout: DepthSource must be an int or a []Line")
	}
}

// Child returns a copy of o for a nested subtree: AncestorIndent absorbs the
// current Indent, Indent becomes the sum of the supplied depth sources, and
// RespectsPrecedingEmptyLine is always replaced (never inherited) by
// respects — pass Inherit to leave the child's own node flag in charge.
func (o Options) Child(respects Tri, sources ...DepthSource) Options {
	child := o
	child.AncestorIndent += o.Indent
	indent := 0
	for _, s := range sources {
		indent += depthOf(s)
	}
	child.Indent = indent
	child.RespectsPrecedingEmptyLine = respects
	return child
}

// IndentLines adds o.Indent to every line but the first — the first line of
// a subtree is positioned by the caller that requested these lines.
func (o Options) IndentLines(lines []Line) {
	if len(lines) == 0 {
		return
	}
	for i := 1; i < len(lines); i++ {
		lines[i].Indent += o.Indent
		lines[i].HasIndent = true
	}
}
