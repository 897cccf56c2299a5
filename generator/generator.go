// Copyright 2017 Google Inc.
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

// Binary generator generates C preprocessor definitions for the paths of an
// input YANG schema. The input set of YANG modules are read, parsed using
// Goyang, and handed to the emitter registered for the requested output
// format.
package main

import (
	"github.com/openconfig/ycpaths/generator/cmd"

	// Register the output formats.
	_ "github.com/openconfig/ycpaths/cpathgen"
)

func main() {
	cmd.Execute()
}
