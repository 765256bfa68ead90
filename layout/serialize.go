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

package layout

import "strings"

// Serialize joins lines into the final document text: each line is emitted
// as its indent spaces, its text, then its end-of-line comment fragments'
// text, with no indentation at all for an otherwise-empty line.
func Serialize(lines []Line, lineEndings string) string {
	if lineEndings == "" {
		lineEndings = "\n"
	}
	rendered := make([]string, len(lines))
	for i, l := range lines {
		var b strings.Builder
		b.WriteString(l.Text)
		for _, c := range l.EndComments {
			b.WriteString(c.Text)
		}
		text := b.String()
		if text == "" || !l.HasIndent || l.Indent == 0 {
			rendered[i] = text
			continue
		}
		rendered[i] = strings.Repeat(" ", l.Indent) + text
	}
	return strings.Join(rendered, lineEndings)
}
