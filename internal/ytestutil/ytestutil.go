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

// Package ytestutil contains helpers shared by the tests of this module.
package ytestutil

import (
	"github.com/openconfig/ycpaths/schematree"
	"github.com/pmezard/go-difflib/difflib"
)

// GenerateUnifiedDiff takes two strings and generates a diff that can be
// shown to the user in a test error message.
func GenerateUnifiedDiff(want, got string) (string, error) {
	diffl := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
		Eol:      "\n",
	}
	return difflib.GetUnifiedDiffString(diffl)
}

// StatusModule returns a tree holding a single module, "device", with a
// container "status" holding an enumeration leaf "admin-status", and a list
// "members" whose entries hold a leaf "name". It returns the tree and the
// module's index.
func StatusModule() (*schematree.Tree, schematree.Index) {
	t := schematree.New()
	mod := t.AddModule(schematree.Module, "device")
	status := t.AddChild(mod, schematree.Container, "status")
	as := t.AddChild(status, schematree.Leaf, "admin-status")
	t.SetType(as, schematree.Enumeration(
		schematree.EnumWithValue("disable", "0"),
		schematree.EnumOf("enable"),
	))
	members := t.AddChild(mod, schematree.List, "members")
	name := t.AddChild(members, schematree.Leaf, "name")
	t.SetType(name, &schematree.YangType{Name: "string"})
	return t, mod
}
