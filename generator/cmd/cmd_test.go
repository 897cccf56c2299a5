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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/ycpaths/cpathgen"
	"github.com/openconfig/ycpaths/internal/ytestutil"
	"google.golang.org/protobuf/testing/protocmp"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
)

// run executes the command tree with args and returns what it wrote.
func run(args ...string) (string, error) {
	var out bytes.Buffer
	c := newRootCmd()
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func readFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("cannot read %s: %v", fn, err)
	}
	return string(b)
}

func TestGenerate(t *testing.T) {
	want := readFile(t, filepath.Join("testdata", "device.h"))

	tests := []struct {
		desc string
		args []string
	}{{
		desc: "single module",
		args: []string{"generate", "--path", "testdata", "testdata/device.yang"},
	}, {
		desc: "imported module excluded",
		args: []string{"generate", "--path", "testdata", "--exclude_modules", "device-types", "testdata/device-types.yang", "testdata/device.yang"},
	}, {
		desc: "explicit format",
		args: []string{"generate", "--path", "testdata", "--format", cpathgen.FormatName, "testdata/device.yang"},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := run(tt.args...)
			if err != nil {
				t.Fatalf("generate: unexpected error: %v", err)
			}
			if got != want {
				diff, _ := ytestutil.GenerateUnifiedDiff(want, got)
				t.Errorf("generate: did not get expected output, diff:\n%s", diff)
			}
		})
	}
}

func TestGenerateOutputFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "device.h")
	if _, err := run("generate", "--path", "testdata", "--output_file", fn, "testdata/device.yang"); err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	want := readFile(t, filepath.Join("testdata", "device.h"))
	if got := readFile(t, fn); got != want {
		diff, _ := ytestutil.GenerateUnifiedDiff(want, got)
		t.Errorf("generate: did not get expected file content, diff:\n%s", diff)
	}
}

func TestGenerateHeader(t *testing.T) {
	got, err := run("generate", "--path", "testdata", "--header", "testdata/device.yang")
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	first := strings.SplitN(got, "\n", 2)[0]
	if want := "/* Generated by " + filepath.Base(os.Args[0]) + " from device. Do not edit. */"; first != want {
		t.Errorf("generate --header: got first line %q, want %q", first, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		desc string
		args []string
	}{{
		desc: "unknown format",
		args: []string{"generate", "--format", "rust", "testdata/device.yang"},
	}, {
		desc: "no input files",
		args: []string{"generate"},
	}, {
		desc: "missing input file",
		args: []string{"generate", "testdata/missing.yang"},
	}, {
		desc: "collision in strict mode",
		args: []string{"generate", "--strict", "testdata/collide.yang"},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := run(tt.args...); err == nil {
				t.Errorf("%v: got nil error, want error", tt.args)
			}
		})
	}
}

func TestGenerateCollision(t *testing.T) {
	got, err := run("generate", "testdata/collide.yang")
	if err != nil {
		t.Fatalf("generate: unexpected error: %v", err)
	}
	if n := strings.Count(got, "#define A_B_C "); n != 2 {
		t.Errorf("generate: got %d definitions of A_B_C, want 2", n)
	}
}

func TestLookup(t *testing.T) {
	got, err := run("lookup", "--path", "testdata", "INTERFACE_ADMIN", "testdata/device.yang")
	if err != nil {
		t.Fatalf("lookup: unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"#define INTERFACE_ADMIN_STATUS \"admin-status\"\t/interface/admin-status",
		"#define INTERFACE_ADMIN_STATUS_DEFAULT 1\t/interface/admin-status#default",
		"#define INTERFACE_ADMIN_STATUS_DOWN 2\t/interface/admin-status#down",
		"#define INTERFACE_ADMIN_STATUS_UP 1\t/interface/admin-status#up",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lookup: (-want, +got):\n%s", diff)
	}

	if _, err := run("lookup", "--path", "testdata", "NOPE", "testdata/device.yang"); err == nil {
		t.Errorf("lookup NOPE: got nil error, want error")
	}

	got, err = run("lookup", "--path", "testdata", "--gnmi", "SYSTEM_PATH", "testdata/device.yang")
	if err != nil {
		t.Fatalf("lookup --gnmi: unexpected error: %v", err)
	}
	if !strings.Contains(got, "system") || !strings.Contains(got, "elem") {
		t.Errorf("lookup --gnmi: got %q, want output holding a gNMI path", got)
	}
	if strings.Contains(got, relativeNote) {
		t.Errorf("lookup --gnmi SYSTEM_PATH: got %q, absolute path marked as relative", got)
	}
}

func TestLookupRelativePath(t *testing.T) {
	got, err := run("lookup", "--path", "testdata", "--gnmi", "INTERFACE_NAME", "testdata/device.yang")
	if err != nil {
		t.Fatalf("lookup --gnmi: unexpected error: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("lookup --gnmi INTERFACE_NAME: got %q, want definition, note and path", got)
	}
	if want := "#define INTERFACE_NAME \"name\"\t/interface/name"; lines[0] != want {
		t.Errorf("lookup --gnmi INTERFACE_NAME: got first line %q, want %q", lines[0], want)
	}
	if lines[1] != relativeNote {
		t.Errorf("lookup --gnmi INTERFACE_NAME: got second line %q, want %q", lines[1], relativeNote)
	}
	if path := strings.Join(lines[2:], "\n"); !strings.Contains(path, `"name"`) {
		t.Errorf("lookup --gnmi INTERFACE_NAME: got path %q, want element name", path)
	}
}

func TestGNMIPath(t *testing.T) {
	tests := []struct {
		desc string
		in   *cpathgen.Definition
		want *gpb.Path
	}{{
		desc: "absolute path",
		in:   &cpathgen.Definition{Symbol: "A_B", Value: "/a/b", Quote: true, Source: "/a/b"},
		want: &gpb.Path{Elem: []*gpb.PathElem{{Name: "a"}, {Name: "b"}}},
	}, {
		desc: "path relative to a list entry",
		in:   &cpathgen.Definition{Symbol: "L_C_X", Value: "c/x", Quote: true, Source: "/l/c/x"},
		want: &gpb.Path{Elem: []*gpb.PathElem{{Name: "c"}, {Name: "x"}}},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if !isPath(tt.in) {
				t.Fatalf("isPath(%v): got false, want true", tt.in)
			}
			got, err := gnmiPath(tt.in)
			if err != nil {
				t.Fatalf("gnmiPath: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, protocmp.Transform()); diff != "" {
				t.Errorf("gnmiPath: (-want, +got):\n%s", diff)
			}
		})
	}

	if isPath(&cpathgen.Definition{Symbol: "A_DEFAULT", Value: "x", Quote: true, Source: "/a#default"}) {
		t.Errorf("isPath(default): got true, want false")
	}
}

func TestFormats(t *testing.T) {
	got, err := run("formats")
	if err != nil {
		t.Fatalf("formats: unexpected error: %v", err)
	}
	if want := cpathgen.FormatName + "\n"; got != want {
		t.Errorf("formats: got %q, want %q", got, want)
	}
}
