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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfi28/cfengine-beautifier/layout"
)

func TestListInlinesShortLiteral(t *testing.T) {
	items := []Node{NewString(pos(0), `"a"`)}
	l := NewList(Position{}, items)
	lines := l.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{`{ "a" }`}, linesText(lines))
}

func TestListBreaksWhenTooWide(t *testing.T) {
	items := []Node{NewString(pos(0), `"aaaaaaaaaa"`), NewString(pos(1), `"bbbbbbbbbb"`)}
	l := NewList(Position{}, items)
	lines := l.Lines(layout.Options{PageWidth: 10})
	require.True(t, len(lines) > 1)
	require.Equal(t, "{", lines[0].Text)
}

func TestEmptyPromiseTypesRemoved(t *testing.T) {
	empty := NewPromiseType(Position{ParseIndex: 0}, NewString(pos(0), "meta:"), NewClassPromiseList(pos(0), nil))
	nonEmpty := NewPromiseType(Position{ParseIndex: 1}, NewString(pos(1), "files:"), NewClassPromiseList(pos(1), []Node{
		NewPromise(pos(2), NewString(pos(2), `"x"`), nil, NewConstraintList(pos(3), nil)),
	}))
	out := emptyPromiseTypesRemoved([]Node{empty, nonEmpty})
	require.Len(t, out, 1)
	require.Same(t, nonEmpty, out[0])
}

func TestEmptyPromiseTypeWithCommentsIsKept(t *testing.T) {
	empty := NewPromiseType(Position{ParseIndex: 0}, NewString(pos(0), "meta:"), NewClassPromiseList(pos(0), nil))
	empty.ClassPromiseList.SetComments([]*Comment{NewComment(pos(0), "# keep me", 0, Standalone)})
	out := emptyPromiseTypesRemoved([]Node{empty})
	require.Len(t, out, 1)
}

func TestStableSortByEvaluationOrder(t *testing.T) {
	files := NewPromiseType(Position{ParseIndex: 0}, NewString(pos(0), "files:"), NewClassPromiseList(pos(0), nil))
	meta := NewPromiseType(Position{ParseIndex: 1}, NewString(pos(1), "meta:"), NewClassPromiseList(pos(1), nil))
	items := []Node{files, meta}
	stableSortByEvaluationOrder(items)
	require.Equal(t, "meta:", items[0].(*PromiseType).Name.Name)
	require.Equal(t, "files:", items[1].(*PromiseType).Name.Name)
}
