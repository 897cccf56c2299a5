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

// Package cmd implements the command tree of the generator binary.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ycpaths/yangload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the generator command tree against os.Args and exits with a
// non-zero status on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "generator",
		Short:         "generator writes C preprocessor definitions for the paths of a set of YANG modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfgFile := rootCmd.PersistentFlags().String("config_file", "", "Path to config file.")
	rootCmd.PersistentFlags().StringSlice("path", nil, "Comma separated list of paths to be recursively searched for included modules or submodules within the defined YANG modules.")
	rootCmd.PersistentFlags().StringSlice("exclude_modules", nil, "Comma separated set of module names that are read but for which no output is generated.")
	rootCmd.PersistentFlags().Bool("ignore_circdeps", false, "If set to true, circular dependencies between submodules are ignored.")
	// glog registers its flags with the standard library flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		viper.SetEnvPrefix(envPrefix)
		viper.AutomaticEnv()
		return nil
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newFormatsCmd())
	return rootCmd
}

// envPrefix is prepended to configuration keys, upper-cased, when they are
// read from the environment, e.g., YCPATHS_PATH.
const envPrefix = "ycpaths"

// loadOptions builds the yangload options from the configuration shared by
// all commands. Each include path is searched recursively.
func loadOptions() yangload.Options {
	var includePaths []string
	for _, p := range viper.GetStringSlice("path") {
		includePaths = append(includePaths, filepath.Join(p, "..."))
	}
	return yangload.Options{
		IncludePaths:   includePaths,
		ExcludeModules: viper.GetStringSlice("exclude_modules"),
		ParseOptions: yang.Options{
			IgnoreSubmoduleCircularDependencies: viper.GetBool("ignore_circdeps"),
		},
	}
}
