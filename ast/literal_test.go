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

func pos(i int) Position { return Position{ParseIndex: i} }

func linesText(lines []layout.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestStringLines(t *testing.T) {
	s := NewString(pos(0), `"hello"`)
	lines := s.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{`"hello"`}, linesText(lines))
}

func TestFunctionWithNoArgsOmitsParens(t *testing.T) {
	name := NewString(pos(0), "mybundle")
	args := NewArgumentList(pos(1), nil)
	fn := NewFunction(pos(0), name, args)

	opts := layout.Options{PageWidth: 80, AllowBracelessArgumentList: true}
	require.Equal(t, "mybundle", linesText(fn.Lines(opts))[0])
}

func TestFunctionWithArgsKeepsParens(t *testing.T) {
	name := NewString(pos(0), "mybundle")
	a := NewString(pos(1), `"a"`)
	args := NewArgumentList(pos(2), []Node{a})
	fn := NewFunction(pos(0), name, args)

	opts := layout.Options{PageWidth: 80, AllowBracelessArgumentList: true}
	require.Equal(t, `mybundle("a")`, linesText(fn.Lines(opts))[0])
}

func TestFunctionArgsAlwaysParenthesizedWhenDisallowed(t *testing.T) {
	name := NewString(pos(0), "mybundle")
	args := NewArgumentList(pos(1), nil)
	fn := NewFunction(pos(0), name, args)

	opts := layout.Options{PageWidth: 80, AllowBracelessArgumentList: false}
	require.Equal(t, "mybundle()", linesText(fn.Lines(opts))[0])
}
