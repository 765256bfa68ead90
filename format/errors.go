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

import "github.com/pkg/errors"

// StructuralError reports a comment-distribution failure (such as
// ast.ErrLostComment) together with a node path. Format reports every such
// failure at the root path "Specification"; it does not narrow the path to
// the node where distribution failed. No other condition is reported
// through this type.
type StructuralError struct {
	Path string
	err  error
}

func (e *StructuralError) Error() string { return e.err.Error() }
func (e *StructuralError) Unwrap() error { return e.err }

func structuralError(path string, cause error) error {
	return &StructuralError{Path: path, err: errors.Wrapf(cause, "format: structural error at %s", path)}
}
