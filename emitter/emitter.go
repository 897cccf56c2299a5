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

// Package emitter maintains the set of output formats that a schema tree can
// be rendered to. Generator packages register themselves under a format name
// when they are imported; binaries look formats up by the name the user
// supplies.
package emitter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openconfig/ycpaths/schematree"
)

// Emitter renders the modules roots of a schema tree as lines of text.
type Emitter interface {
	Emit(t *schematree.Tree, roots []schematree.Index) []string
}

var (
	mu       sync.RWMutex
	emitters = map[string]Emitter{}
)

// Register makes e available under name. It returns an error if name is
// empty or already registered.
func Register(name string, e Emitter) error {
	if name == "" {
		return fmt.Errorf("emitter: empty format name")
	}
	if e == nil {
		return fmt.Errorf("emitter: nil emitter for format %s", name)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := emitters[name]; ok {
		return fmt.Errorf("emitter: format %s already registered", name)
	}
	emitters[name] = e
	return nil
}

// Lookup returns the emitter registered under name.
func Lookup(name string) (Emitter, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := emitters[name]
	if !ok {
		return nil, fmt.Errorf("emitter: unknown format %q, registered formats: %v", name, formats())
	}
	return e, nil
}

// Formats returns the registered format names in lexical order.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	return formats()
}

func formats() []string {
	var names []string
	for n := range emitters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// unregister removes name from the registry, it is used by tests.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(emitters, name)
}
