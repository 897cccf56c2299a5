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

package cpathgen

import (
	"strings"

	"github.com/openconfig/ycpaths/schematree"
)

const (
	// pathSuffix is appended to the symbol of containers and lists, such that
	// the constant naming a location cannot be mistaken for one naming a
	// retrievable value.
	pathSuffix = "_PATH"
	// defaultSuffix is appended to the symbol of a node's default value.
	defaultSuffix = "_DEFAULT"
	trueSuffix    = "_TRUE"
	falseSuffix   = "_FALSE"
)

var (
	// symbolReplacer maps the characters of an absolute schema path that are
	// not valid in a preprocessor identifier.
	symbolReplacer = strings.NewReplacer("/", "_", "-", "_")
	// descriptionReplacer folds a multi-line description onto one line.
	descriptionReplacer = strings.NewReplacer("\r", " ", "\n", " ")
)

// RuntimePath returns the path used to address node i in a live data tree.
// level is the depth of i below its module, and strip is the depth of the
// ancestor that the path starts from. The returned path is absolute (has a
// leading "/") only when strip is zero.
func RuntimePath(t *schematree.Tree, i schematree.Index, level, strip int) string {
	p := relativePath(t, i, level, strip)
	if strip == 0 {
		return "/" + p
	}
	return p
}

// relativePath joins the names of the nodes between the ancestor of i at
// depth strip and i itself.
func relativePath(t *schematree.Tree, i schematree.Index, level, strip int) string {
	if level < strip {
		return ""
	}
	parts := make([]string, level-strip+1)
	j := len(parts) - 1
	for ; j >= 0; j-- {
		parts[j] = t.Node(i).Name
		p, ok := t.Parent(i)
		if !ok {
			break
		}
		i = p
	}
	if j > 0 {
		parts = parts[j:]
	}
	return strings.Join(parts, "/")
}

// SchemaPath returns the absolute schema path of node i, from its module
// down. Choice and case nodes are not data nodes and are skipped, unless i
// is itself a choice or case, in which case every ancestor contributes so
// that the path stays distinct from that of the enclosing data node.
func SchemaPath(t *schematree.Tree, i schematree.Index) string {
	keepChoiceCase := t.Node(i).Keyword.IsChoiceOrCase()

	var rev []string
	for cur := i; ; {
		n := t.Node(cur)
		if keepChoiceCase || !n.Keyword.IsChoiceOrCase() {
			rev = append(rev, n.Name)
		}
		p, ok := t.Parent(cur)
		if !ok || t.Node(p).Keyword.IsModule() {
			break
		}
		cur = p
	}

	var b strings.Builder
	for k := len(rev) - 1; k >= 0; k-- {
		b.WriteByte('/')
		b.WriteString(rev[k])
	}
	return b.String()
}

// Symbol returns the preprocessor identifier for the absolute schema path p
// of a node with keyword kw.
func Symbol(p string, kw schematree.Keyword) string {
	s := symbolReplacer.Replace(strings.ToUpper(strings.TrimPrefix(p, "/")))
	if kw == schematree.Container || kw == schematree.List {
		s += pathSuffix
	}
	return s
}

// enumSymbol returns the identifier of the enum named name within the leaf
// whose identifier is symbol.
func enumSymbol(symbol, name string) string {
	return symbol + "_" + strings.ReplaceAll(strings.ToUpper(name), "-", "_")
}
