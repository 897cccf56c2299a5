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

// Package cpathgen generates C preprocessor definitions for the paths of a
// YANG schema. Every data node yields a #define binding an identifier derived
// from its absolute schema path to the path used to address it at runtime.
// Leaves additionally yield constants for boolean literals, enumeration
// values and defaults.
//
// Runtime paths are reset at list entries: the children of a list are
// addressed relative to the list entry, so their paths do not carry the
// list's ancestry. Identifiers always reflect the full schema path.
package cpathgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/ycpaths/emitter"
	"github.com/openconfig/ycpaths/genutil"
	"github.com/openconfig/ycpaths/schematree"
)

// FormatName is the name under which the generator is registered with the
// emitter package.
const FormatName = "cpaths"

func init() {
	if err := emitter.Register(FormatName, NewDefaultConfig()); err != nil {
		log.Errorf("cannot register %s emitter: %v", FormatName, err)
	}
}

// GenConfig stores code generation configuration.
type GenConfig struct {
	// IncludeHeader specifies whether a comment naming the generating
	// binary and the input modules is written before the definitions.
	IncludeHeader bool
	// GeneratingBinary is the name of the binary calling the generator
	// library, it is included in the header of the output.
	GeneratingBinary string
}

// NewDefaultConfig returns a GenConfig whose output matches the plain
// definitions format: no header.
func NewDefaultConfig() *GenConfig {
	return &GenConfig{
		GeneratingBinary: genutil.CallerName(),
	}
}

// Definition is a single line of output, either a comment or a #define.
type Definition struct {
	// Comment is the text of a comment line. When it is set, the remaining
	// fields are empty.
	Comment string
	// Symbol is the identifier being defined.
	Symbol string
	// Value is the replacement text of the definition, without quotes.
	Value string
	// Quote specifies whether Value is written as a string literal.
	Quote bool
	// Source identifies the schema element that produced the definition. It
	// is the absolute schema path of the node, followed by "#" and the enum
	// or literal name for auxiliary constants.
	Source string
}

// IsComment reports whether d is a comment line.
func (d *Definition) IsComment() bool {
	return d.Symbol == ""
}

// String renders d as a line of C, without a trailing newline.
func (d *Definition) String() string {
	switch {
	case d.IsComment():
		return fmt.Sprintf("/* %s */", d.Comment)
	case d.Quote:
		return fmt.Sprintf("#define %s \"%s\"", d.Symbol, d.Value)
	default:
		return fmt.Sprintf("#define %s %s", d.Symbol, d.Value)
	}
}

// GeneratedPaths is the output of a generation run.
type GeneratedPaths struct {
	// Header is the comment line that precedes the definitions, empty if
	// no header was requested.
	Header string
	// Definitions holds the comments and definitions in output order.
	Definitions []*Definition
	// Collisions maps identifiers that were produced by more than one
	// schema element to the sources that produced them.
	Collisions map[string][]string
}

// Lines returns the output as a sequence of lines, terminated by a single
// blank line.
func (g *GeneratedPaths) Lines() []string {
	var lines []string
	if g.Header != "" {
		lines = append(lines, g.Header)
	}
	for _, d := range g.Definitions {
		lines = append(lines, d.String())
	}
	return append(lines, "")
}

// String returns the output as a single string, with each line terminated
// by a newline.
func (g *GeneratedPaths) String() string {
	var b strings.Builder
	for _, l := range g.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Emit returns the lines generated for the modules roots of t. It
// implements the emitter.Emitter interface.
func (cg *GenConfig) Emit(t *schematree.Tree, roots []schematree.Index) []string {
	return cg.GeneratePaths(t, roots).Lines()
}

// GeneratePaths walks the data nodes of each module in roots, in
// declaration order, and returns the definitions generated for them. rpc
// and notification subtrees are skipped.
func (cg *GenConfig) GeneratePaths(t *schematree.Tree, roots []schematree.Index) *GeneratedPaths {
	g := &generator{
		t:       t,
		sources: map[string]string{},
	}
	var modules []string
	for _, r := range roots {
		modules = append(modules, t.Node(r).Name)
		for _, c := range t.Children(r) {
			g.visit(c, 0, 0)
		}
	}

	out := &GeneratedPaths{
		Definitions: g.defs,
		Collisions:  g.collisions,
	}
	if cg.IncludeHeader {
		out.Header = fmt.Sprintf("/* Generated by %s from %s. Do not edit. */", cg.GeneratingBinary, strings.Join(modules, ", "))
	}
	for _, sym := range SortedCollisions(out.Collisions) {
		srcs := out.Collisions[sym]
		log.Warningf("identifier %s is generated by %d schema elements: %s", sym, len(srcs), strings.Join(srcs, ", "))
	}
	return out
}

// Emit returns the lines generated for the modules roots of t using the
// default configuration.
func Emit(t *schematree.Tree, roots []schematree.Index) []string {
	return NewDefaultConfig().Emit(t, roots)
}

// Definitions returns the definitions generated for the modules roots of t
// using the default configuration.
func Definitions(t *schematree.Tree, roots []schematree.Index) []*Definition {
	return NewDefaultConfig().GeneratePaths(t, roots).Definitions
}

// generator holds the state of a single walk.
type generator struct {
	t    *schematree.Tree
	defs []*Definition
	// sources maps each identifier emitted so far to the first source that
	// produced it.
	sources    map[string]string
	collisions map[string][]string
}

func (g *generator) comment(text string) {
	g.defs = append(g.defs, &Definition{Comment: text})
}

func (g *generator) define(symbol, value string, quote bool, source string) {
	if prev, ok := g.sources[symbol]; ok && prev != source {
		if g.collisions == nil {
			g.collisions = map[string][]string{}
		}
		if len(g.collisions[symbol]) == 0 {
			g.collisions[symbol] = []string{prev}
		}
		g.collisions[symbol] = append(g.collisions[symbol], source)
	} else if !ok {
		g.sources[symbol] = source
	}
	g.defs = append(g.defs, &Definition{
		Symbol: symbol,
		Value:  value,
		Quote:  quote,
		Source: source,
	})
}

// visit generates the definitions for node i, at depth level below its
// module, and then for its children. strip is the depth at which runtime
// paths start.
func (g *generator) visit(i schematree.Index, level, strip int) {
	n := g.t.Node(i)
	if n.Keyword == schematree.RPC || n.Keyword == schematree.Notification {
		return
	}

	// List entries are instantiated at runtime, the children of a list are
	// addressed relative to the entry.
	if p, ok := g.t.Parent(i); ok && g.t.Node(p).Keyword == schematree.List {
		strip = level
	}

	value := RuntimePath(g.t, i, level, strip)
	schemaPath := SchemaPath(g.t, i)
	symbol := Symbol(schemaPath, n.Keyword)
	log.V(2).Infof("visit %s level=%d strip=%d runtime=%s", schemaPath, level, strip, value)

	if n.Description != nil {
		g.comment(descriptionReplacer.Replace(*n.Description))
	}
	g.define(symbol, value, true, schemaPath)

	if n.Type != nil {
		switch n.Type.Name {
		case "boolean":
			g.define(symbol+trueSuffix, "true", true, schemaPath+"#true")
			g.define(symbol+falseSuffix, "false", true, schemaPath+"#false")
		case "enumeration":
			g.enumValues(symbol, schemaPath, n.Type.Enums)
		}
	}

	if n.Default != nil {
		g.defaultValue(symbol, schemaPath, n.Type, *n.Default)
	}

	for _, c := range n.Children {
		g.visit(c, level+1, strip)
	}
}

// enumValues defines a constant per enum. Enums without an explicit value
// take the value following that of the previous enum, starting at zero.
func (g *generator) enumValues(symbol, schemaPath string, enums []*schematree.Enum) {
	count := 0
	for _, e := range enums {
		sym := enumSymbol(symbol, e.Name)
		src := schemaPath + "#" + e.Name
		if e.Value == nil {
			g.define(sym, strconv.Itoa(count), false, src)
			count++
			continue
		}
		g.define(sym, *e.Value, false, src)
		v, err := strconv.Atoi(strings.TrimSpace(*e.Value))
		if err != nil {
			log.V(1).Infof("%s: enum %s has non-integer value %q, numbering continues from %d", schemaPath, e.Name, *e.Value, count+1)
		} else {
			count = v
		}
		count++
	}
}

// defaultValue defines the default of a leaf. Integer defaults are written
// as bare numbers, enumeration defaults as the explicit value of the
// matching enum and all other defaults as strings.
func (g *generator) defaultValue(symbol, schemaPath string, typ *schematree.YangType, def string) {
	sym := symbol + defaultSuffix
	src := schemaPath + "#default"
	switch {
	case typ != nil && strings.Contains(typ.Name, "int"):
		g.define(sym, def, false, src)
	case typ != nil && typ.Name == "enumeration":
		for _, e := range typ.Enums {
			if e.Name == def && e.Value != nil {
				g.define(sym, *e.Value, false, src)
				return
			}
		}
		log.Warningf("%s: default %q does not name an enum with an explicit value, %s is not generated", schemaPath, def, sym)
	default:
		g.define(sym, def, true, src)
	}
}

// SortedCollisions returns the identifiers of c in lexical order.
func SortedCollisions(c map[string][]string) []string {
	var syms []string
	for s := range c {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}
