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

package evalorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfi28/cfengine-beautifier/evalorder"
)

func TestIndexOrdersKnownNames(t *testing.T) {
	assert.Less(t, evalorder.Index("vars"), evalorder.Index("classes"))
	assert.Less(t, evalorder.Index("reports"), evalorder.Index("unknown_type"))
}

func TestIndexUnknownNameSortsLast(t *testing.T) {
	assert.Equal(t, len(evalorder.Order), evalorder.Index("nonesuch"))
}
