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

package yangload

import (
	log "github.com/golang/glog"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ycpaths/schematree"
	"github.com/openconfig/ycpaths/util"
)

// dataKeywords are the statements that become nodes of the tree.
var dataKeywords = map[string]bool{
	"container":    true,
	"list":         true,
	"leaf":         true,
	"leaf-list":    true,
	"choice":       true,
	"case":         true,
	"anydata":      true,
	"anyxml":       true,
	"rpc":          true,
	"notification": true,
	"input":        true,
	"output":       true,
}

// shorthandCase are the statements that, when they appear directly within a
// choice, are wrapped in an implicit case of the same name.
var shorthandCase = map[string]bool{
	"container": true,
	"list":      true,
	"leaf":      true,
	"leaf-list": true,
	"anydata":   true,
	"anyxml":    true,
}

// module holds what is needed to resolve prefixed references made from
// within a module or submodule.
type module struct {
	stmt *yang.Statement
	// prefix is the module's own prefix, for a submodule that of the
	// module it belongs to.
	prefix string
	// imports maps an import prefix to the imported module's name.
	imports map[string]string
	// includes names the submodules included by the module.
	includes []string
	// belongsTo names the parent module of a submodule.
	belongsTo string
}

// scope is a lexical scope in which groupings may be defined.
type scope struct {
	stmt   *yang.Statement
	parent *scope
	mod    *module
}

// augment is a module level augment waiting for its target to exist.
type augment struct {
	stmt *yang.Statement
	sc   *scope
}

type flattener struct {
	ms      *yang.Modules
	t       *schematree.Tree
	modules map[string]*module
	// roots maps module names to their index in t.
	roots    map[string]schematree.Index
	augments []augment
	// expanding holds the groupings currently being expanded.
	expanding map[*yang.Statement]bool
}

func newFlattener(ms *yang.Modules) *flattener {
	return &flattener{
		ms:        ms,
		t:         schematree.New(),
		modules:   map[string]*module{},
		roots:     map[string]schematree.Index{},
		expanding: map[*yang.Statement]bool{},
	}
}

// moduleFor returns the module context of the module or submodule stmt.
func (f *flattener) moduleFor(stmt *yang.Statement) *module {
	if m, ok := f.modules[stmt.Argument]; ok {
		return m
	}
	m := &module{
		stmt:    stmt,
		imports: map[string]string{},
	}
	for _, s := range stmt.SubStatements() {
		switch s.Keyword {
		case "prefix":
			m.prefix = s.Argument
		case "belongs-to":
			m.belongsTo = s.Argument
			if p := substatement(s, "prefix"); p != nil {
				m.prefix = p.Argument
			}
		case "import":
			if p := substatement(s, "prefix"); p != nil {
				m.imports[p.Argument] = s.Argument
			}
		case "include":
			m.includes = append(m.includes, s.Argument)
		}
	}
	f.modules[stmt.Argument] = m
	return m
}

// lookupStatement returns the statement of the module or submodule named
// name, as loaded by goyang.
func (f *flattener) lookupStatement(name string, submodule bool) *yang.Statement {
	var m *yang.Module
	if submodule {
		m = f.ms.SubModules[name]
	} else {
		m = f.ms.Modules[name]
	}
	if m == nil {
		return nil
	}
	return m.Statement()
}

// addModule adds the module m, and the data nodes of the submodules it
// includes, to the tree.
func (f *flattener) addModule(m *yang.Statement) schematree.Index {
	mod := f.moduleFor(m)
	idx := f.t.AddModule(schematree.Keyword(m.Keyword), m.Argument)
	f.roots[m.Argument] = idx
	f.addChildren(idx, m.SubStatements(), &scope{stmt: m, mod: mod})

	for _, inc := range mod.includes {
		sub := f.lookupStatement(inc, true)
		if sub == nil {
			log.Warningf("%s: included submodule %s was not loaded", m.Argument, inc)
			continue
		}
		f.addChildren(idx, sub.SubStatements(), &scope{stmt: sub, mod: f.moduleFor(sub)})
	}
	return idx
}

// addChildren adds the data nodes among stmts as children of parent,
// expanding uses statements in place. Module level augments are queued.
func (f *flattener) addChildren(parent schematree.Index, stmts []*yang.Statement, sc *scope) {
	inChoice := f.t.Node(parent).Keyword == schematree.Choice
	for _, s := range stmts {
		switch {
		case dataKeywords[s.Keyword]:
			p := parent
			if inChoice && shorthandCase[s.Keyword] {
				p = f.t.AddChild(parent, schematree.Case, s.Argument)
			}
			// input and output statements take no argument.
			name := s.Argument
			if name == "" {
				name = s.Keyword
			}
			idx := f.t.AddChild(p, schematree.Keyword(s.Keyword), name)
			capture(f.t, idx, s)
			f.addChildren(idx, s.SubStatements(), &scope{stmt: s, parent: sc, mod: sc.mod})
		case s.Keyword == "uses":
			f.expandUses(parent, s, sc)
		case s.Keyword == "augment" && f.t.Node(parent).Keyword.IsModule():
			f.augments = append(f.augments, augment{stmt: s, sc: sc})
		}
	}
}

// expandUses adds the data nodes of the grouping referenced by u to parent,
// then applies the augments u carries.
func (f *flattener) expandUses(parent schematree.Index, u *yang.Statement, sc *scope) {
	g, gsc := f.findGrouping(u.Argument, sc)
	if g == nil {
		log.Warningf("%s: grouping %s not found", u.Location(), u.Argument)
		return
	}
	if f.expanding[g] {
		log.Warningf("%s: grouping %s is used recursively", u.Location(), u.Argument)
		return
	}
	f.expanding[g] = true
	f.addChildren(parent, g.SubStatements(), &scope{stmt: g, parent: gsc, mod: gsc.mod})
	delete(f.expanding, g)

	for _, a := range u.SubStatements() {
		if a.Keyword != "augment" {
			continue
		}
		target, ok := f.descendant(parent, util.SchemaNodeIDToElements(a.Argument))
		if !ok {
			log.Warningf("%s: augment target %s not found", a.Location(), a.Argument)
			continue
		}
		f.addChildren(target, a.SubStatements(), &scope{stmt: a, parent: sc, mod: sc.mod})
	}
}

// findGrouping returns the grouping named name, which may carry a module
// prefix, that is visible from sc, together with the scope that defines it.
func (f *flattener) findGrouping(name string, sc *scope) (*yang.Statement, *scope) {
	pfx, local := util.ModulePrefix(name), util.StripModulePrefix(name)

	if pfx != "" && pfx != sc.mod.prefix {
		modName, ok := sc.mod.imports[pfx]
		if !ok {
			return nil, nil
		}
		m := f.lookupStatement(modName, false)
		if m == nil {
			return nil, nil
		}
		return f.findTopLevelGrouping(local, f.moduleFor(m))
	}

	for s := sc; s != nil; s = s.parent {
		if g := grouping(s.stmt, local); g != nil {
			return g, s
		}
	}
	if g, gsc := f.findTopLevelGrouping(local, sc.mod); g != nil {
		return g, gsc
	}
	if sc.mod.belongsTo != "" {
		if m := f.lookupStatement(sc.mod.belongsTo, false); m != nil {
			return f.findTopLevelGrouping(local, f.moduleFor(m))
		}
	}
	return nil, nil
}

// findTopLevelGrouping looks for the grouping named name at the top level
// of mod and of the submodules it includes.
func (f *flattener) findTopLevelGrouping(name string, mod *module) (*yang.Statement, *scope) {
	if g := grouping(mod.stmt, name); g != nil {
		return g, &scope{stmt: mod.stmt, mod: mod}
	}
	for _, inc := range mod.includes {
		sub := f.lookupStatement(inc, true)
		if sub == nil {
			continue
		}
		if g := grouping(sub, name); g != nil {
			return g, &scope{stmt: sub, mod: f.moduleFor(sub)}
		}
	}
	return nil, nil
}

// applyAugments adds the data nodes of queued module level augments to
// their targets. Augments may target nodes added by other augments, so
// passes repeat while at least one augment is applied.
func (f *flattener) applyAugments() {
	pending := f.augments
	f.augments = nil
	for len(pending) > 0 {
		var next []augment
		for _, a := range pending {
			target, ok := f.augmentTarget(a)
			if !ok {
				next = append(next, a)
				continue
			}
			f.addChildren(target, a.stmt.SubStatements(), &scope{stmt: a.stmt, parent: a.sc, mod: a.sc.mod})
		}
		if len(next) == len(pending) {
			for _, a := range next {
				log.Warningf("%s: augment target %s not found", a.stmt.Location(), a.stmt.Argument)
			}
			return
		}
		pending = next
	}
}

// augmentTarget resolves the absolute target of a module level augment.
func (f *flattener) augmentTarget(a augment) (schematree.Index, bool) {
	parts := util.PathStringToElements(a.stmt.Argument)
	if len(parts) == 0 {
		return schematree.NoParent, false
	}
	modName := a.sc.mod.stmt.Argument
	if a.sc.mod.belongsTo != "" {
		modName = a.sc.mod.belongsTo
	}
	if pfx := util.ModulePrefix(parts[0]); pfx != "" && pfx != a.sc.mod.prefix {
		imported, ok := a.sc.mod.imports[pfx]
		if !ok {
			return schematree.NoParent, false
		}
		modName = imported
	}
	root, ok := f.roots[modName]
	if !ok {
		return schematree.NoParent, false
	}
	return f.descendant(root, util.SchemaNodeIDToElements(a.stmt.Argument))
}

// descendant follows the named children from i.
func (f *flattener) descendant(i schematree.Index, names []string) (schematree.Index, bool) {
	for _, n := range names {
		c, ok := f.t.Child(i, n)
		if !ok {
			return schematree.NoParent, false
		}
		i = c
	}
	return i, true
}

// capture records the type, description and default of stmt on node idx.
// Only the first occurrence of each is used.
func capture(t *schematree.Tree, idx schematree.Index, stmt *yang.Statement) {
	if s := substatement(stmt, "type"); s != nil {
		t.SetType(idx, yangType(s))
	}
	if s := substatement(stmt, "description"); s != nil {
		t.SetDescription(idx, s.Argument)
	}
	if s := substatement(stmt, "default"); s != nil {
		t.SetDefault(idx, s.Argument)
	}
}

// yangType converts a type statement. Typedefs are not resolved.
func yangType(s *yang.Statement) *schematree.YangType {
	typ := &schematree.YangType{Name: s.Argument}
	for _, e := range s.SubStatements() {
		if e.Keyword != "enum" {
			continue
		}
		en := &schematree.Enum{Name: e.Argument}
		if v := substatement(e, "value"); v != nil {
			val := v.Argument
			en.Value = &val
		}
		typ.Enums = append(typ.Enums, en)
	}
	return typ
}

// substatement returns the first substatement of s with keyword kw.
func substatement(s *yang.Statement, kw string) *yang.Statement {
	for _, c := range s.SubStatements() {
		if c.Keyword == kw {
			return c
		}
	}
	return nil
}

// grouping returns the grouping named name defined directly within s.
func grouping(s *yang.Statement, name string) *yang.Statement {
	for _, c := range s.SubStatements() {
		if c.Keyword == "grouping" && c.Argument == name {
			return c
		}
	}
	return nil
}
