// Copyright 2026 Google Inc.
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

package genutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpenSyncFile(t *testing.T) {
	dir := t.TempDir()

	filename := filepath.Join(dir, "foo.txt")
	file, err := OpenFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	file.WriteString("42")
	if err := SyncFile(file); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "42"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpenFileError(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "foo.h")); err == nil {
		t.Errorf("OpenFile in a non-existent directory: got nil error, want error")
	}
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		desc string
		in   []string
		want string
	}{{
		desc: "empty",
		want: "",
	}, {
		desc: "definitions with trailing blank line",
		in:   []string{`#define A_PATH "/a"`, `#define A_B "/a/b"`, ""},
		want: "#define A_PATH \"/a\"\n#define A_B \"/a/b\"\n\n",
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var b bytes.Buffer
			if err := WriteLines(&b, tt.in); err != nil {
				t.Fatalf("WriteLines(%v): unexpected error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("WriteLines(%v): did not get expected output, diff(-want, +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestWriteLinesToFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "paths.h")
	if err := WriteLinesToFile(fn, []string{"/* x */", ""}); err != nil {
		t.Fatalf("WriteLinesToFile: %v", err)
	}
	got, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if want := "/* x */\n\n"; string(got) != want {
		t.Errorf("WriteLinesToFile: got %q, want %q", got, want)
	}
}

func TestCallerName(t *testing.T) {
	if got, want := CallerName(), filepath.Base(os.Args[0]); got != want {
		t.Errorf("CallerName(): got %q, want %q", got, want)
	}
	if got := CallerName(); strings.Contains(got, "/") {
		t.Errorf("CallerName(): got %q, want a base name", got)
	}
}
