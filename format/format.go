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

	"github.com/google/go-cmp/cmp"
	"github.com/sfi28/cfengine-beautifier/ast"
	"github.com/sfi28/cfengine-beautifier/internal/log"
	"github.com/sfi28/cfengine-beautifier/layout"
)

// Format renders spec to a single string: it runs the structural
// transforms (spec.md §4.10), distributes comments (spec.md §4.4), then
// renders and serializes the resulting line tree (spec.md §4.5, §4.11).
//
// comments must be in source order. The tree rooted at spec is mutated in
// place, matching spec.md §5's description of after_parse/add_comments as
// the formatter's only side effects.
func Format(ctx context.Context, spec *ast.Specification, comments []*ast.Comment, opts Options) (string, error) {
	lines, err := render(ctx, spec, comments, opts)
	if err != nil {
		return "", err
	}
	return layout.Serialize(lines, opts.layoutOptions().LineEndings), nil
}

func render(ctx context.Context, spec *ast.Specification, comments []*ast.Comment, opts Options) ([]layout.Line, error) {
	walkAfterParse(spec, opts.transformOptions())

	if err := spec.AddComments(comments, nil); err != nil {
		log.W(ctx, "comment distribution failed", "error", err)
		return nil, structuralError("Specification", err)
	}

	return spec.Lines(opts.layoutOptions()), nil
}

// walkAfterParse calls AfterParse on every node in the tree, parent before
// children, so a list's structural transform (which may reorder or drop
// items) runs before its remaining children are visited.
func walkAfterParse(n ast.Node, opts ast.TransformOptions) {
	n.AfterParse(opts)
	for _, child := range n.Children() {
		walkAfterParse(child, opts)
	}
}

// VerifyStable renders spec once with comments, then renders the now fully
// comment-attached and transformed tree a second time with no further
// comments to distribute, and reports whether the two line trees agree —
// the runtime counterpart of spec.md §8's "re-format stability" testable
// property (rendering is a pure function of the tree once §5's mutations
// have completed). A mismatch indicates Lines is not idempotent over an
// already-settled tree; diff is a cmp.Diff of the two line arrays.
func VerifyStable(ctx context.Context, spec *ast.Specification, comments []*ast.Comment, opts Options) (ok bool, diff string, err error) {
	first, err := render(ctx, spec, comments, opts)
	if err != nil {
		return false, "", err
	}
	second, err := render(ctx, spec, nil, opts)
	if err != nil {
		return false, "", err
	}
	if d := cmp.Diff(first, second); d != "" {
		return false, d, nil
	}
	return true, "", nil
}
