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

// Package evalorder holds the fixed canonical promise-type evaluation order
// used to stable-sort a bundle's promise types.
package evalorder

// Order lists promise type names in the order CFEngine evaluates them.
// Names absent from this list sort after every named entry (Index returns
// len(Order) for them), and are stable-sorted relative to each other.
var Order = []string{
	"meta",
	"vars",
	"defaults",
	"classes",
	"users",
	"files",
	"packages",
	"guest_environments",
	"methods",
	"processes",
	"services",
	"commands",
	"storage",
	"databases",
	"access",
	"roles",
	"measurements",
	"delete_lines",
	"field_edits",
	"insert_lines",
	"replace_patterns",
	"reports",
}

var index = func() map[string]int {
	m := make(map[string]int, len(Order))
	for i, name := range Order {
		m[name] = i
	}
	return m
}()

// Index returns name's position in Order, or len(Order) if name is unknown.
func Index(name string) int {
	if i, ok := index[name]; ok {
		return i
	}
	return len(Order)
}
