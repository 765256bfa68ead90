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

// Package format turns an ast.Specification plus its comment stream into a
// final formatted string: it runs the structural transforms, distributes
// comments, renders lines and serializes them (spec.md §6).
package format

import (
	"github.com/sfi28/cfengine-beautifier/ast"
	"github.com/sfi28/cfengine-beautifier/layout"
)

// Options is the external interface's configuration surface (spec.md §6):
// the page width and line endings that drive layout.Options, plus the two
// structural-transform flags ast.TransformOptions needs.
type Options struct {
	PageWidth   int
	LineEndings string

	RemovesEmptyPromiseTypes             bool
	SortsPromiseTypesToEvaluationOrder bool

	// MayLineBreakConstraint and AllowBracelessArgumentList seed the root
	// layout.Options. Each Constraint and Selection overrides
	// AllowBracelessArgumentList for its value; MayLineBreakConstraint is
	// passed down unchanged.
	MayLineBreakConstraint     bool
	AllowBracelessArgumentList bool
}

func (o Options) layoutOptions() layout.Options {
	lineEndings := o.LineEndings
	if lineEndings == "" {
		lineEndings = "\n"
	}
	return layout.Options{
		PageWidth:                  o.PageWidth,
		LineEndings:                lineEndings,
		MayLineBreakConstraint:     o.MayLineBreakConstraint,
		AllowBracelessArgumentList: o.AllowBracelessArgumentList,
	}
}

func (o Options) transformOptions() ast.TransformOptions {
	return ast.TransformOptions{
		RemovesEmptyPromiseTypes:             o.RemovesEmptyPromiseTypes,
		SortsPromiseTypesToEvaluationOrder: o.SortsPromiseTypesToEvaluationOrder,
	}
}
