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

// Package schematree stores an already parsed YANG schema as a flat arena of
// nodes. Each node refers to its parent and children by index, such that the
// generators in this module can walk the schema without depending on the
// object graph of the library that parsed it.
package schematree

import (
	"fmt"
)

// Index addresses a node within a Tree.
type Index int

// NoParent is the parent index of nodes at the root of the arena, i.e.,
// modules and submodules.
const NoParent Index = -1

// Keyword is the YANG statement keyword that produced a node.
type Keyword string

const (
	Module       Keyword = "module"
	Submodule    Keyword = "submodule"
	Container    Keyword = "container"
	List         Keyword = "list"
	Leaf         Keyword = "leaf"
	LeafList     Keyword = "leaf-list"
	Choice       Keyword = "choice"
	Case         Keyword = "case"
	RPC          Keyword = "rpc"
	Notification Keyword = "notification"
	Input        Keyword = "input"
	Output       Keyword = "output"
	Anydata      Keyword = "anydata"
	Anyxml       Keyword = "anyxml"
)

// IsModule reports whether k is the keyword of a module or submodule.
func (k Keyword) IsModule() bool {
	return k == Module || k == Submodule
}

// IsChoiceOrCase reports whether k describes a node that does not appear
// in the data tree.
func (k Keyword) IsChoiceOrCase() bool {
	return k == Choice || k == Case
}

// Enum is a single enum statement of an enumeration type.
type Enum struct {
	// Name is the argument of the enum statement.
	Name string
	// Value is the raw argument of the enum's value statement, nil if the
	// enum did not declare one.
	Value *string
}

// YangType is the subset of a YANG type statement that the generators use.
type YangType struct {
	// Name is the argument of the type statement as written in the schema,
	// e.g., "boolean", "uint32" or "inet:ipv4-address". Typedefs are not
	// resolved.
	Name string
	// Enums holds the enum statements, in declaration order, when Name is
	// "enumeration".
	Enums []*Enum
}

// Node is a single schema node.
type Node struct {
	Keyword  Keyword
	Name     string
	Parent   Index
	Children []Index
	// Type is nil when the node has no type statement.
	Type *YangType
	// Description and Default are nil when the corresponding statement is
	// absent.
	Description *string
	Default     *string
}

// Tree is an arena of schema nodes. The zero value is not usable, use New.
type Tree struct {
	nodes []*Node
	roots []Index
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid reports whether i addresses a node of t.
func (t *Tree) Valid(i Index) bool {
	return i >= 0 && int(i) < len(t.nodes)
}

func (t *Tree) mustValid(i Index) {
	if !t.Valid(i) {
		panic(fmt.Sprintf("schematree: index %d out of range [0,%d)", i, len(t.nodes)))
	}
}

func (t *Tree) add(n *Node) Index {
	t.nodes = append(t.nodes, n)
	return Index(len(t.nodes) - 1)
}

// AddModule adds a root node to the tree. kw is expected to be Module or
// Submodule.
func (t *Tree) AddModule(kw Keyword, name string) Index {
	i := t.add(&Node{Keyword: kw, Name: name, Parent: NoParent})
	t.roots = append(t.roots, i)
	return i
}

// AddChild appends a new node as the last child of parent and returns its
// index. It panics if parent is not a node of t.
func (t *Tree) AddChild(parent Index, kw Keyword, name string) Index {
	t.mustValid(parent)
	i := t.add(&Node{Keyword: kw, Name: name, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, i)
	return i
}

// SetType sets the type of node i.
func (t *Tree) SetType(i Index, typ *YangType) {
	t.mustValid(i)
	t.nodes[i].Type = typ
}

// SetDescription sets the description of node i.
func (t *Tree) SetDescription(i Index, d string) {
	t.mustValid(i)
	t.nodes[i].Description = &d
}

// SetDefault sets the raw default value of node i.
func (t *Tree) SetDefault(i Index, d string) {
	t.mustValid(i)
	t.nodes[i].Default = &d
}

// Node returns the node at index i. Callers must treat the result as read
// only. It panics if i is not a node of t.
func (t *Tree) Node(i Index) *Node {
	t.mustValid(i)
	return t.nodes[i]
}

// Parent returns the parent of node i and whether it has one.
func (t *Tree) Parent(i Index) (Index, bool) {
	p := t.Node(i).Parent
	return p, p != NoParent
}

// Children returns the children of node i in declaration order.
func (t *Tree) Children(i Index) []Index {
	return t.Node(i).Children
}

// Roots returns the module and submodule nodes in the order they were added.
func (t *Tree) Roots() []Index {
	return t.roots
}

// Depth returns the number of ancestors of node i below its module, such
// that a top-level data node has depth 0. Module nodes have depth -1.
func (t *Tree) Depth(i Index) int {
	d := -1
	for p, ok := t.Parent(i); ok; p, ok = t.Parent(p) {
		d++
	}
	return d
}

// Find returns the node reached by following the named children from the
// root named path[0]. Choice and case nodes must be named explicitly.
func (t *Tree) Find(path ...string) (Index, bool) {
	if len(path) == 0 {
		return NoParent, false
	}
	var cur Index = NoParent
	for _, r := range t.roots {
		if t.nodes[r].Name == path[0] {
			cur = r
			break
		}
	}
	if cur == NoParent {
		return NoParent, false
	}
	for _, name := range path[1:] {
		next, ok := t.child(cur, name)
		if !ok {
			return NoParent, false
		}
		cur = next
	}
	return cur, true
}

// child returns the first child of i named name.
func (t *Tree) child(i Index, name string) (Index, bool) {
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Name == name {
			return c, true
		}
	}
	return NoParent, false
}

// Child returns the child of node i named name.
func (t *Tree) Child(i Index, name string) (Index, bool) {
	t.mustValid(i)
	return t.child(i, name)
}

// Enumeration returns an enumeration type holding enums.
func Enumeration(enums ...*Enum) *YangType {
	return &YangType{Name: "enumeration", Enums: enums}
}

// EnumOf returns an enum without an explicit value.
func EnumOf(name string) *Enum {
	return &Enum{Name: name}
}

// EnumWithValue returns an enum whose value statement has argument v.
func EnumWithValue(name, v string) *Enum {
	return &Enum{Name: name, Value: &v}
}
