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

func TestConstraintInlineRendering(t *testing.T) {
	c := NewConstraint(pos(0), NewString(pos(0), "create"), NewString(pos(1), `"true"`))
	lines := c.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{`create => "true"`}, linesText(lines))
}

func TestConstraintAssignIndentPadsArrow(t *testing.T) {
	c := NewConstraint(pos(0), NewString(pos(0), "create"), NewString(pos(1), `"true"`))
	c.AssignIndent = 3
	lines := c.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{`create    => "true"`}, linesText(lines))
}

func TestConstraintBreaksAfterArrowWhenTooWide(t *testing.T) {
	c := NewConstraint(pos(0), NewString(pos(0), "create"), NewString(pos(1), `"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"`))
	lines := c.Lines(layout.Options{PageWidth: 20, MayLineBreakConstraint: true})
	require.True(t, len(lines) > 1)
	require.Equal(t, "create =>", lines[0].Text)
}

func TestSelectionAppendsSemicolon(t *testing.T) {
	s := NewSelection(pos(0), NewString(pos(0), "edit_line"), NewString(pos(1), `"append_if_no_line"`))
	lines := s.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{`edit_line => "append_if_no_line";`}, linesText(lines))
}

func TestSelectionForcesBracelessOff(t *testing.T) {
	name := NewString(pos(0), "mybody")
	args := NewArgumentList(pos(1), nil)
	fn := NewFunction(pos(0), name, args)
	s := NewSelection(pos(0), NewString(pos(0), "handle"), fn)

	// AllowBracelessArgumentList on the caller's options must not reach the
	// nested call: a selection's value may not yet be a bundle/body call.
	lines := s.Lines(layout.Options{PageWidth: 80, AllowBracelessArgumentList: true})
	require.Equal(t, []string{`handle => mybody();`}, linesText(lines))
}
