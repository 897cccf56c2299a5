// Copyright 2017 Google Inc.
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

package util

import (
	"bytes"
	"strings"
)

// PathStringToElements splits the string s, which represents a gNMI string
// path into its constituent elements. It does not parse keys, which are left
// unchanged within the path - but removes escape characters from element
// names. The path returned omits any leading or trailing empty elements when
// splitting on the / character.
func PathStringToElements(path string) []string {
	parts := SplitPath(path)
	// Remove leading empty element
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	// Remove trailing empty element
	if len(parts) > 0 && path[len(path)-1] == '/' {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// SplitPath splits path across unescaped /.
// Any / inside square brackets are ignored.
func SplitPath(path string) []string {
	var parts []string
	var buf bytes.Buffer

	var inKey, inEscape bool

	var ch rune
	for _, ch = range path {
		switch {
		case ch == '[' && !inEscape:
			inKey = true
		case ch == ']' && !inEscape:
			inKey = false
		case ch == '\\' && !inEscape && !inKey:
			inEscape = true
			continue
		case ch == '/' && !inEscape && !inKey:
			parts = append(parts, buf.String())
			buf.Reset()
			continue
		}

		buf.WriteRune(ch)
		inEscape = false
	}

	if buf.Len() != 0 || (len(path) != 1 && ch == '/') {
		parts = append(parts, buf.String())
	}

	return parts
}

// StripModulePrefix removes the prefix from a YANG identifier, for example
// "foo:bar" becomes "bar". If the identifier is not of the form name or
// prefix:name it is returned unchanged.
func StripModulePrefix(name string) string {
	ps := strings.Split(name, ":")
	if len(ps) == 2 {
		return ps[1]
	}
	return name
}

// ModulePrefix returns the prefix of a YANG identifier, or the empty string
// if it is unqualified.
func ModulePrefix(name string) string {
	ps := strings.Split(name, ":")
	if len(ps) == 2 {
		return ps[0]
	}
	return ""
}

// SchemaNodeIDToElements splits a schema node identifier, such as the
// target of an augment statement ("/a:foo/a:bar"), into its unprefixed
// node names.
func SchemaNodeIDToElements(id string) []string {
	var out []string
	for _, p := range PathStringToElements(strings.TrimSpace(id)) {
		out = append(out, StripModulePrefix(p))
	}
	return out
}
