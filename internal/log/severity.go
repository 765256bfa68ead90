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

package log

// Severity defines the severity of a logging message.
type Severity int32

const (
	// Debug indicates debug-level messages.
	Debug Severity = iota
	// Info indicates minor informational messages that should generally be ignored.
	Info
	// Warning indicates issues that might affect output quality, but do not stop formatting.
	Warning
	// Error indicates a condition formatting could not recover from.
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	}
	return "?"
}
