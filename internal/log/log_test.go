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

package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfi28/cfengine-beautifier/internal/log"
)

func TestUnboundContextIsSilent(t *testing.T) {
	// Must not panic even though no Logger is bound.
	log.W(context.Background(), "ignored")
}

func TestBoundLoggerReceivesRecords(t *testing.T) {
	var got []string
	ctx := log.Bind(context.Background(), log.LoggerFunc(func(s log.Severity, msg string, kv []interface{}) {
		got = append(got, s.String()+": "+msg)
	}))

	log.W(ctx, "lost comment", "node", "PromiseType")
	log.E(ctx, "bad tree")

	require.Equal(t, []string{"Warning: lost comment", "Error: bad tree"}, got)
}
