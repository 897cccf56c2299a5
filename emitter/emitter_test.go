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

package emitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/ycpaths/schematree"
)

type namesEmitter struct{}

func (namesEmitter) Emit(t *schematree.Tree, roots []schematree.Index) []string {
	var out []string
	for _, r := range roots {
		out = append(out, t.Node(r).Name)
	}
	return out
}

func TestRegistry(t *testing.T) {
	defer unregister("names")
	defer unregister("other")

	if err := Register("names", namesEmitter{}); err != nil {
		t.Fatalf("Register(names): %v", err)
	}
	if err := Register("other", namesEmitter{}); err != nil {
		t.Fatalf("Register(other): %v", err)
	}

	tests := []struct {
		desc    string
		name    string
		e       Emitter
		wantErr bool
	}{
		{desc: "duplicate", name: "names", e: namesEmitter{}, wantErr: true},
		{desc: "empty name", name: "", e: namesEmitter{}, wantErr: true},
		{desc: "nil emitter", name: "nil", wantErr: true},
	}
	for _, tt := range tests {
		if err := Register(tt.name, tt.e); (err != nil) != tt.wantErr {
			t.Errorf("%s: Register(%q): got error %v, wantErr %v", tt.desc, tt.name, err, tt.wantErr)
		}
	}

	if diff := cmp.Diff([]string{"names", "other"}, Formats()); diff != "" {
		t.Errorf("Formats(): (-want, +got):\n%s", diff)
	}

	e, err := Lookup("names")
	if err != nil {
		t.Fatalf("Lookup(names): %v", err)
	}
	tree := schematree.New()
	a := tree.AddModule(schematree.Module, "a")
	b := tree.AddModule(schematree.Module, "b")
	if diff := cmp.Diff([]string{"b", "a"}, e.Emit(tree, []schematree.Index{b, a})); diff != "" {
		t.Errorf("Emit(): (-want, +got):\n%s", diff)
	}

	if _, err := Lookup("missing"); err == nil {
		t.Errorf("Lookup(missing): got nil error, want error")
	}
}
