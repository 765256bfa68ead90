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

// JoinLines is the sole primitive for splicing line arrays horizontally: the
// last line of the accumulator is merged with the first line of the next
// array via Line.Join, and the remainder of the next array is appended.
func JoinLines(arrays ...[]Line) []Line {
	var out []Line
	for _, lines := range arrays {
		if len(lines) == 0 {
			continue
		}
		if len(out) == 0 {
			out = append(out, lines...)
			continue
		}
		out[len(out)-1] = out[len(out)-1].Join(lines[0])
		out = append(out, lines[1:]...)
	}
	return out
}

// Candidate renders a node's lines under the given options; FirstThatFits
// tries a sequence of candidates in order and keeps the first whose longest
// line fits the available width.
type Candidate func(Options) []Line

// FirstThatFits returns the first candidate's result that fits
// o.AvailableWidth(), or the last candidate's result if none fit — the
// fallback that makes over-width output a non-fatal condition (spec §7).
func FirstThatFits(o Options, candidates []Candidate) []Line {
	var lines []Line
	for _, candidate := range candidates {
		lines = candidate(o)
		if MaxLineLength(lines) <= o.AvailableWidth() {
			break
		}
	}
	return lines
}
