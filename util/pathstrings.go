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

package util

import (
	"fmt"
	"strings"

	gnmipb "github.com/openconfig/gnmi/proto/gnmi"
)

// StringToStructuredPath converts a generated runtime path to a gnmi.Path.
// Generated paths never carry list keys, so each element becomes a PathElem
// holding only a name. Paths relative to a list entry are converted in the
// same way, see IsRelativePath.
func StringToStructuredPath(path string) (*gnmipb.Path, error) {
	parts := PathStringToElements(path)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty path %q", path)
	}

	gpath := &gnmipb.Path{}
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, " []") {
			return nil, fmt.Errorf("invalid element %q in path %s", p, path)
		}
		gpath.Elem = append(gpath.Elem, &gnmipb.PathElem{Name: p})
	}
	return gpath, nil
}

// IsRelativePath reports whether path is addressed from an enclosing list
// entry rather than from the root of the data tree.
func IsRelativePath(path string) bool {
	return !strings.HasPrefix(path, "/")
}
