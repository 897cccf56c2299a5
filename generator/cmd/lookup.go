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

package cmd

import (
	"fmt"
	"strings"

	"github.com/openconfig/ycpaths/cpathgen"
	"github.com/openconfig/ycpaths/util"
	"github.com/openconfig/ycpaths/yangload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/encoding/prototext"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
)

// relativeNote precedes the gNMI form of a path that is addressed from the
// enclosing list entry.
const relativeNote = "# relative to the enclosing list entry"

func newLookupCmd() *cobra.Command {
	lookup := &cobra.Command{
		Use:   "lookup [flags] PREFIX FILE...",
		RunE:  lookupDefinitions,
		Short: "Prints the definitions whose identifier begins with PREFIX.",
		Args:  cobra.MinimumNArgs(2),
	}

	lookup.Flags().Bool("gnmi", false, "If set to true, the path of each definition is also printed as a gNMI Path.")

	return lookup
}

func lookupDefinitions(cmd *cobra.Command, args []string) error {
	tree, roots, err := yangload.Load(args[1:], loadOptions())
	if err != nil {
		return fmt.Errorf("error loading modules: %v", err)
	}

	x := cpathgen.NewIndex(cpathgen.Definitions(tree, roots))
	defs := x.PrefixSearch(args[0])
	if len(defs) == 0 {
		return fmt.Errorf("no identifier begins with %s", args[0])
	}

	w := cmd.OutOrStdout()
	for _, d := range defs {
		fmt.Fprintf(w, "%s\t%s\n", d.String(), d.Source)
		if !viper.GetBool("gnmi") || !isPath(d) {
			continue
		}
		p, err := gnmiPath(d)
		if err != nil {
			return err
		}
		if util.IsRelativePath(d.Value) {
			fmt.Fprintln(w, relativeNote)
		}
		fmt.Fprintln(w, prototext.Format(p))
	}
	return nil
}

// isPath reports whether d binds the path of a schema node, rather than one
// of the constants generated for a leaf's values.
func isPath(d *cpathgen.Definition) bool {
	return d.Quote && !strings.Contains(d.Source, "#")
}

// gnmiPath returns the path bound by d as a gNMI Path. Paths of nodes within
// a list entry are relative and yield a Path relative to that entry.
func gnmiPath(d *cpathgen.Definition) (*gpb.Path, error) {
	p, err := util.StringToStructuredPath(d.Value)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to a gNMI path: %v", d.Symbol, err)
	}
	return p, nil
}
