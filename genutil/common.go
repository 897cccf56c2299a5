// Copyright 2019 Google Inc.
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

// Package genutil provides utility functions for packages that generate
// output based on a YANG schema.
package genutil

import (
	"os"
	"path/filepath"
)

// CallerName returns the name of the Go binary that is currently running.
func CallerName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		// In the case that we cannot determine the current running binary's name
		// this is non-fatal, so return a default string.
		return "unknown - unable to determine calling binary name"
	}
	return filepath.Base(os.Args[0])
}
