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

// Package yangload reads a set of YANG modules using goyang and flattens
// them into a schematree.Tree. Parsing and validation are left to goyang;
// this package only walks the resulting statements, in declaration order,
// expanding groupings, includes and augments such that the tree holds the
// data nodes a schema instance would contain.
package yangload

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/kr/pretty"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ycpaths/schematree"
	"github.com/openconfig/ycpaths/util"
)

// Options controls how modules are loaded.
type Options struct {
	// IncludePaths are searched for imported modules and included
	// submodules.
	IncludePaths []string
	// ExcludeModules names modules that are read, and may be imported by
	// others, but are not returned as roots.
	ExcludeModules []string
	// ParseOptions are handed to the goyang library.
	ParseOptions yang.Options
}

// Load reads the YANG files named by files and returns the flattened tree
// together with the roots of the requested modules, in the order the files
// were given. Errors reported by goyang are returned as a util.Errors.
func Load(files []string, opts Options) (*schematree.Tree, []schematree.Index, error) {
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no input modules specified")
	}

	ms := yang.NewModules()
	// Add the IncludePaths to the search path of the module set, this ensures
	// that where a YANG module uses an 'import' or 'include' statement the
	// referenced module can be found.
	ms.AddPath(opts.IncludePaths...)
	ms.ParseOptions = opts.ParseOptions

	var mods []*yang.Statement
	var errs util.Errors
	for _, fn := range files {
		b, err := os.ReadFile(fn)
		if err != nil {
			errs = util.AppendErr(errs, err)
			continue
		}
		src := string(b)
		ss, err := yang.Parse(src, fn)
		if err != nil {
			errs = util.AppendErr(errs, err)
			continue
		}
		if len(ss) == 0 {
			errs = util.AppendErr(errs, fmt.Errorf("%s: no module found", fn))
			continue
		}
		if err := ms.Parse(src, fn); err != nil {
			errs = util.AppendErr(errs, err)
			continue
		}
		mods = append(mods, ss...)
	}
	if errs != nil {
		return nil, nil, errs
	}

	if errs = util.AppendErrs(errs, ms.Process()); errs != nil {
		return nil, nil, errs
	}

	return Flatten(ms, mods, opts.ExcludeModules)
}

// Flatten builds a tree from the module and submodule statements in mods,
// which must have been processed by ms. Modules named in exclude are
// skipped. Groupings, submodules and imported modules are looked up in ms.
func Flatten(ms *yang.Modules, mods []*yang.Statement, exclude []string) (*schematree.Tree, []schematree.Index, error) {
	excluded := map[string]bool{}
	for _, e := range exclude {
		excluded[e] = true
	}

	f := newFlattener(ms)
	var roots []schematree.Index
	for _, m := range mods {
		if m.Keyword != string(schematree.Module) && m.Keyword != string(schematree.Submodule) {
			return nil, nil, fmt.Errorf("%s: expected module or submodule, got %s", m.Location(), m.Keyword)
		}
		if excluded[m.Argument] {
			log.V(1).Infof("excluding module %s", m.Argument)
			continue
		}
		roots = append(roots, f.addModule(m))
	}
	f.applyAugments()

	if log.V(2) {
		for _, r := range roots {
			log.Infof("flattened %s:\n%s", f.t.Node(r).Name, pretty.Sprint(subtree(f.t, r)))
		}
	}
	return f.t, roots, nil
}

// dumpNode is the nested form of a flattened subtree, used for debug output.
type dumpNode struct {
	Keyword  schematree.Keyword
	Name     string
	Type     *schematree.YangType
	Default  *string
	Children []*dumpNode
}

// subtree returns the nodes rooted at i in nested form.
func subtree(t *schematree.Tree, i schematree.Index) *dumpNode {
	n := t.Node(i)
	d := &dumpNode{
		Keyword: n.Keyword,
		Name:    n.Name,
		Type:    n.Type,
		Default: n.Default,
	}
	for _, c := range n.Children {
		d.Children = append(d.Children, subtree(t, c))
	}
	return d
}
