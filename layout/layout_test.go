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

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfi28/cfengine-beautifier/layout"
)

func TestLineJoinKeepsFirstIndentWhenSet(t *testing.T) {
	a := layout.Indented("foo", 4)
	b := layout.NewLine("bar")
	joined := a.Join(b)
	assert.Equal(t, "foobar", joined.Text)
	assert.True(t, joined.HasIndent)
	assert.Equal(t, 4, joined.Indent)
}

func TestLineJoinFallsBackToSecondIndent(t *testing.T) {
	a := layout.NewLine("foo")
	b := layout.Indented("bar", 2)
	joined := a.Join(b)
	assert.Equal(t, 2, joined.Indent)
	assert.True(t, joined.HasIndent)
}

func TestJoinLinesSplicesHorizontally(t *testing.T) {
	got := layout.JoinLines(
		[]layout.Line{layout.NewLine("a"), layout.NewLine("b")},
		[]layout.Line{layout.NewLine("c"), layout.NewLine("d")},
	)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "bc", got[1].Text)
	assert.Equal(t, "d", got[2].Text)
}

func TestFirstThatFitsPicksInlineWhenItFits(t *testing.T) {
	o := layout.Options{PageWidth: 80}
	got := layout.FirstThatFits(o, []layout.Candidate{
		func(o layout.Options) []layout.Line { return []layout.Line{layout.NewLine("short")} },
		func(o layout.Options) []layout.Line { return []layout.Line{layout.NewLine("long but unused")} },
	})
	assert.Equal(t, "short", got[0].Text)
}

func TestFirstThatFitsFallsBackToLastCandidate(t *testing.T) {
	o := layout.Options{PageWidth: 4}
	got := layout.FirstThatFits(o, []layout.Candidate{
		func(o layout.Options) []layout.Line { return []layout.Line{layout.NewLine("way too long")} },
		func(o layout.Options) []layout.Line { return []layout.Line{layout.NewLine("still too long")} },
	})
	assert.Equal(t, "still too long", got[0].Text)
}

func TestOptionsChildAccumulatesAncestorIndent(t *testing.T) {
	o := layout.Options{PageWidth: 80, Indent: 4}
	child := o.Child(layout.Inherit, 2)
	assert.Equal(t, 4, child.AncestorIndent)
	assert.Equal(t, 2, child.Indent)
	assert.Equal(t, 6, child.Depth())
}

func TestOptionsChildDepthFromLineArray(t *testing.T) {
	o := layout.Options{PageWidth: 80}
	child := o.Child(layout.Inherit, []layout.Line{layout.NewLine("1234")}, 3)
	assert.Equal(t, 7, child.Indent)
}

func TestSerializeIndentsNonEmptyLinesOnly(t *testing.T) {
	lines := []layout.Line{
		layout.NewLine("vars:"),
		layout.Indented(`"x" string => "y";`, 2),
		layout.Indented("", 2),
	}
	got := layout.Serialize(lines, "\n")
	assert.Equal(t, "vars:\n  \"x\" string => \"y\";\n", got)
}

func TestSerializeAppendsEndOfLineComments(t *testing.T) {
	line := layout.NewLine(`"x" string => "y";`)
	line.EndComments = []layout.Line{layout.NewLine(" # done")}
	got := layout.Serialize([]layout.Line{line}, "\n")
	assert.Equal(t, `"x" string => "y"; # done`, got)
}
