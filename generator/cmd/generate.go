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

	log "github.com/golang/glog"
	"github.com/openconfig/ycpaths/cpathgen"
	"github.com/openconfig/ycpaths/emitter"
	"github.com/openconfig/ycpaths/genutil"
	"github.com/openconfig/ycpaths/yangload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd() *cobra.Command {
	gen := &cobra.Command{
		Use:   "generate [flags] FILE...",
		RunE:  generate,
		Short: "Generates path definitions for the input YANG modules.",
		Args:  cobra.MinimumNArgs(1),
	}

	gen.Flags().String("output_file", "", "The file that the generated definitions should be written to, stdout if unset.")
	gen.Flags().String("format", cpathgen.FormatName, "The output format, see the formats command for the supported values.")
	gen.Flags().Bool("header", false, "If set to true, a comment naming the generating binary and input modules is written first.")
	gen.Flags().Bool("strict", false, "If set to true, generation fails when two schema elements map to the same identifier.")

	return gen
}

func generate(cmd *cobra.Command, args []string) error {
	e, err := emitter.Lookup(viper.GetString("format"))
	if err != nil {
		return err
	}

	tree, roots, err := yangload.Load(args, loadOptions())
	if err != nil {
		return fmt.Errorf("error loading modules: %v", err)
	}

	var lines []string
	switch cg := e.(type) {
	case *cpathgen.GenConfig:
		// Copy such that the registered configuration is left untouched.
		c := *cg
		c.IncludeHeader = viper.GetBool("header")
		gp := c.GeneratePaths(tree, roots)
		if viper.GetBool("strict") && len(gp.Collisions) != 0 {
			return fmt.Errorf("identifiers generated by more than one schema element: %v", cpathgen.SortedCollisions(gp.Collisions))
		}
		lines = gp.Lines()
	default:
		lines = e.Emit(tree, roots)
	}

	out := viper.GetString("output_file")
	if out == "" {
		return genutil.WriteLines(cmd.OutOrStdout(), lines)
	}
	log.V(1).Infof("writing %d lines to %s", len(lines), out)
	return genutil.WriteLinesToFile(out, lines)
}
