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

// Package log provides a small logging system that works well with
// context.Context. A Logger is bound into a context with Bind, and the
// package-level D/W/E helpers retrieve it and record a message with an
// optional set of key/value pairs. A context with no bound Logger silently
// drops everything, so call sites never need a nil check.
package log

import (
	"context"
	"fmt"
)

// Logger receives formatted log records.
type Logger interface {
	Log(severity Severity, msg string, kv []interface{})
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(severity Severity, msg string, kv []interface{})

// Log implements Logger.
func (f LoggerFunc) Log(severity Severity, msg string, kv []interface{}) {
	f(severity, msg, kv)
}

type ctxKeyTy struct{}

var ctxKey = ctxKeyTy{}

// Bind returns a context with l bound as its Logger.
func Bind(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey, l)
}

// From returns the Logger bound to ctx, or nil if none is bound.
func From(ctx context.Context) Logger {
	l, _ := ctx.Value(ctxKey).(Logger)
	return l
}

func record(ctx context.Context, severity Severity, msg string, kv ...interface{}) {
	if l := From(ctx); l != nil {
		l.Log(severity, msg, kv)
	}
}

// D records a debug-severity message.
func D(ctx context.Context, msg string, kv ...interface{}) { record(ctx, Debug, msg, kv...) }

// I records an info-severity message.
func I(ctx context.Context, msg string, kv ...interface{}) { record(ctx, Info, msg, kv...) }

// W records a warning-severity message.
func W(ctx context.Context, msg string, kv ...interface{}) { record(ctx, Warning, msg, kv...) }

// E records an error-severity message.
func E(ctx context.Context, msg string, kv ...interface{}) { record(ctx, Error, msg, kv...) }

// Fprintf is a convenience Logger that writes "severity: msg kv..." lines,
// handy for wiring into a test's t.Logf or a CLI's stderr writer.
type Fprintf func(format string, args ...interface{})

// Log implements Logger.
func (f Fprintf) Log(severity Severity, msg string, kv []interface{}) {
	if len(kv) == 0 {
		f("%s: %s", severity, msg)
		return
	}
	f("%s: %s %v", severity, msg, fmt.Sprint(kv...))
}
