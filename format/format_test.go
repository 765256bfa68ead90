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

package format

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfi28/cfengine-beautifier/ast"
)

func p(i int) ast.Position { return ast.Position{ParseIndex: i} }

// newPromise builds a one-constraint promise `"promiser" type => value;`.
func newPromise(idx int, promiser, typ, value string) *ast.Promise {
	constraint := ast.NewConstraint(p(0), ast.NewString(p(0), typ), ast.NewString(p(1), value))
	constraints := ast.NewConstraintList(p(0), []ast.Node{constraint})
	return ast.NewPromise(ast.Position{ParseIndex: idx}, ast.NewString(p(0), promiser), nil, constraints)
}

func newBundle(name string, promiseTypes []ast.Node) *ast.Bundle {
	element := ast.NewString(p(0), "bundle")
	typ := ast.NewString(p(1), "agent")
	nameNode := ast.NewString(p(2), name)
	args := ast.NewArgumentList(p(3), nil)
	list := ast.NewPromiseTypeList(p(4), promiseTypes, nil, nil)
	return ast.NewBundle(p(0), element, typ, nameNode, args, list)
}

func TestFormatRendersBundleWithTwoPromiseTypes(t *testing.T) {
	files := ast.NewPromiseType(ast.Position{ParseIndex: 0}, ast.NewString(p(0), "files:"),
		ast.NewClassPromiseList(p(0), []ast.Node{newPromise(0, `"/etc/motd"`, "create", `"true"`)}))
	meta := ast.NewPromiseType(ast.Position{ParseIndex: 1}, ast.NewString(p(1), "meta:"),
		ast.NewClassPromiseList(p(1), []ast.Node{newPromise(0, `"tags"`, "slist", `{ "a" }`)}))

	bundle := newBundle("main", []ast.Node{files, meta})
	spec := ast.NewSpecification(p(0), []ast.Node{bundle})

	out, err := Format(context.Background(), spec, nil, Options{PageWidth: 80, AllowBracelessArgumentList: true})
	require.NoError(t, err)
	require.Contains(t, out, "bundle agent main")
	require.Contains(t, out, `"/etc/motd"`)
}

func TestFormatSortsPromiseTypesToEvaluationOrder(t *testing.T) {
	files := ast.NewPromiseType(ast.Position{ParseIndex: 0}, ast.NewString(p(0), "files:"),
		ast.NewClassPromiseList(p(0), []ast.Node{newPromise(0, `"x"`, "create", `"true"`)}))
	meta := ast.NewPromiseType(ast.Position{ParseIndex: 1}, ast.NewString(p(1), "meta:"),
		ast.NewClassPromiseList(p(1), []ast.Node{newPromise(0, `"y"`, "slist", `{ "a" }`)}))

	bundle := newBundle("main", []ast.Node{files, meta})
	spec := ast.NewSpecification(p(0), []ast.Node{bundle})

	out, err := Format(context.Background(), spec, nil, Options{
		PageWidth:                          80,
		AllowBracelessArgumentList:         true,
		SortsPromiseTypesToEvaluationOrder: true,
	})
	require.NoError(t, err)

	metaIdx := strings.Index(out, "meta:")
	filesIdx := strings.Index(out, "files:")
	require.True(t, metaIdx >= 0 && filesIdx >= 0 && metaIdx < filesIdx)
}

func TestFormatRemovesEmptyPromiseTypes(t *testing.T) {
	empty := ast.NewPromiseType(ast.Position{ParseIndex: 0}, ast.NewString(p(0), "reports:"), ast.NewClassPromiseList(p(0), nil))
	nonEmpty := ast.NewPromiseType(ast.Position{ParseIndex: 1}, ast.NewString(p(1), "meta:"),
		ast.NewClassPromiseList(p(1), []ast.Node{newPromise(0, `"x"`, "slist", `{ "a" }`)}))

	bundle := newBundle("main", []ast.Node{empty, nonEmpty})
	spec := ast.NewSpecification(p(0), []ast.Node{bundle})

	out, err := Format(context.Background(), spec, nil, Options{
		PageWidth:                 80,
		AllowBracelessArgumentList: true,
		RemovesEmptyPromiseTypes:  true,
	})
	require.NoError(t, err)
	require.NotContains(t, out, "reports:")
}

func TestVerifyStableAgreesOnASettledTree(t *testing.T) {
	files := ast.NewPromiseType(ast.Position{ParseIndex: 0}, ast.NewString(p(0), "files:"),
		ast.NewClassPromiseList(p(0), []ast.Node{newPromise(0, `"x"`, "create", `"true"`)}))
	bundle := newBundle("main", []ast.Node{files})
	spec := ast.NewSpecification(p(0), []ast.Node{bundle})

	ok, diff, err := VerifyStable(context.Background(), spec, nil, Options{PageWidth: 80, AllowBracelessArgumentList: true})
	require.NoError(t, err)
	require.True(t, ok, diff)
}

func TestFormatOnEmptySpecificationReturnsEmptyString(t *testing.T) {
	spec := ast.NewSpecification(p(0), nil)

	out, err := Format(context.Background(), spec, nil, Options{PageWidth: 80})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFormatKeepsTrailingStandaloneCommentAfterBundle(t *testing.T) {
	bundle := newBundle("main", nil)
	spec := ast.NewSpecification(p(0), []ast.Node{bundle})

	trailing := ast.NewComment(ast.Position{StartLine: 1, ParseIndex: 100}, "# trailing", 0, ast.Standalone)

	out, err := Format(context.Background(), spec, []*ast.Comment{trailing}, Options{PageWidth: 80, AllowBracelessArgumentList: true})
	require.NoError(t, err)
	require.Contains(t, out, "# trailing")
}
