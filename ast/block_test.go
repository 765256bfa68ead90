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

func TestClassRespectsPrecedingEmptyLineAlways(t *testing.T) {
	c := NewClass(pos(0), NewString(pos(0), "any::"))
	require.True(t, c.RespectsPrecedingEmptyLine())
}

func TestClassRendersBareExpression(t *testing.T) {
	c := NewClass(pos(0), NewString(pos(0), "linux.debian::"))
	lines := c.Lines(layout.Options{PageWidth: 80})
	require.Equal(t, []string{"linux.debian::"}, linesText(lines))
}

func TestPromiseTypeAlignsConstraintArrows(t *testing.T) {
	promise1 := newTestPromise(`"a"`, "create", `"true"`)
	promise2 := newTestPromise(`"b"`, "ifvarclass", `"true"`)
	list := NewClassPromiseList(pos(2), []Node{promise1, promise2})
	pt := NewPromiseType(pos(3), NewString(pos(0), "files:"), list)

	lines := pt.Lines(layout.Options{PageWidth: 80})
	text := linesText(lines)
	require.Contains(t, text, `"a"`)
	require.Equal(t, len("ifvarclass"), promise1.MaxTypeLen)
	require.Equal(t, promise1.MaxTypeLen, promise2.MaxTypeLen)
}

func newTestPromise(promiser, typ, value string) *Promise {
	c := NewConstraint(pos(0), NewString(pos(0), typ), NewString(pos(1), value))
	cl := NewConstraintList(pos(0), []Node{c})
	return NewPromise(pos(0), NewString(pos(0), promiser), nil, cl)
}

func TestBundleRendersElementTypeName(t *testing.T) {
	element := NewString(pos(0), "bundle")
	typ := NewString(pos(1), "agent")
	name := NewString(pos(2), "main")
	args := NewArgumentList(pos(3), nil)
	list := NewPromiseTypeList(pos(4), nil, nil, nil)
	b := NewBundle(pos(0), element, typ, name, args, list)

	lines := b.Lines(layout.Options{PageWidth: 80, AllowBracelessArgumentList: true})
	require.Equal(t, "bundle agent main {", lines[0].Text)
}

func TestBundleNeverAllowsEndOfLineComments(t *testing.T) {
	element := NewString(pos(0), "bundle")
	typ := NewString(pos(1), "agent")
	name := NewString(pos(2), "main")
	args := NewArgumentList(pos(3), nil)
	list := NewPromiseTypeList(pos(4), nil, nil, nil)
	b := NewBundle(pos(0), element, typ, name, args, list)

	require.False(t, b.AllowsEndOfLineComments())
}
