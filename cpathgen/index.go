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
	"sort"

	"github.com/derekparker/trie"
)

// Index supports lookup of generated definitions by identifier.
type Index struct {
	t *trie.Trie
}

// NewIndex builds an Index over defs. Comments are ignored. Where an
// identifier is defined more than once, all of its definitions are kept in
// output order.
func NewIndex(defs []*Definition) *Index {
	t := trie.New()
	for _, d := range defs {
		if d.IsComment() {
			continue
		}
		if n, ok := t.Find(d.Symbol); ok {
			n.Meta().(*entry).defs = append(n.Meta().(*entry).defs, d)
			continue
		}
		t.Add(d.Symbol, &entry{defs: []*Definition{d}})
	}
	return &Index{t: t}
}

type entry struct {
	defs []*Definition
}

// Lookup returns the definitions of symbol, nil if it was not generated.
func (x *Index) Lookup(symbol string) []*Definition {
	n, ok := x.t.Find(symbol)
	if !ok {
		return nil
	}
	return n.Meta().(*entry).defs
}

// PrefixSearch returns the definitions of every identifier beginning with
// prefix, ordered by identifier.
func (x *Index) PrefixSearch(prefix string) []*Definition {
	syms := x.t.PrefixSearch(prefix)
	sort.Strings(syms)
	var out []*Definition
	for _, s := range syms {
		out = append(out, x.Lookup(s)...)
	}
	return out
}

// Len returns the number of distinct identifiers in the index.
func (x *Index) Len() int {
	return len(x.t.Keys())
}
