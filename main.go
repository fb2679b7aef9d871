// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cybrota/bstree/bst"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func main() {
	banner := fmt.Sprintf("bstree %s%s%s: build, inspect and edit an unbalanced binary search tree", Green, version, Reset)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build the 10, 3, 19, 14 demo tree and print it",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Demo inserts 10, 3, 19 and 14, prints the tree, deletes 10 and prints it again"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(os.Stdout)
		},
	}

	var cmdBuild = &cobra.Command{
		Use:   "build [items...]",
		Short: "Build a tree from items and print it",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Build inserts items from arguments, --items and --file, then applies --delete"),
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := LoadConfig()
			kind := resolveKind(cmd, config)

			showDiagram := config.Display.ShowDiagram
			if cmd.Flags().Changed("diagram") {
				showDiagram, _ = cmd.Flags().GetBool("diagram")
			}

			opts := buildOptions{
				Args:        args,
				Items:       cmd.Flag("items").Value.String(),
				File:        cmd.Flag("file").Value.String(),
				Delete:      cmd.Flag("delete").Value.String(),
				ShowDiagram: showDiagram,
				Load:        loadOptionsFromConfig(config),
				Out:         os.Stdout,
			}

			var err error
			switch kind {
			case KindInt:
				err = buildTree(bst.New[int](), parseInt, opts)
			case KindFloat:
				err = buildTree(bst.New[float64](), parseFloat, opts)
			case KindString:
				err = buildTree(bst.New[string](), parseString, opts)
			}
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
		},
	}

	cmdBuild.Flags().String("items", "", "items to insert, split with shell quoting rules")
	cmdBuild.Flags().String("file", "", "file with items to insert, '#' starts a comment line")
	cmdBuild.Flags().String("delete", "", "items to delete after inserting")
	cmdBuild.Flags().Bool("diagram", false, "print the shape of the tree")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive shell over a tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Shell lets you put, delete and find items while watching the tree change"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := LoadConfig()
			kind := resolveKind(cmd, config)
			rc := NewRenderCache()

			var err error
			switch kind {
			case KindInt:
				err = runShell(bst.New[int](), parseInt, kind, rc)
			case KindFloat:
				err = runShell(bst.New[float64](), parseFloat, kind, rc)
			case KindString:
				err = runShell(bst.New[string](), parseString, kind, rc)
			}
			if err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bstree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show bstree configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bstree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bstree",
		Version: version,
		Long:    banner,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			runDemo(os.Stdout)
		},
	}
	rootCmd.PersistentFlags().String("kind", "", "item kind: int, float or string (default from config)")

	rootCmd.AddCommand(cmdDemo, cmdBuild, cmdShell, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveKind picks the item kind from --kind, falling back to the config.
func resolveKind(cmd *cobra.Command, config *Config) string {
	kind := config.Tree.ItemKind
	if cmd.Flags().Changed("kind") {
		kind = cmd.Flag("kind").Value.String()
	}
	if _, ok := itemKinds[kind]; !ok {
		log.Fatalf("Unknown item kind %q: want %s, %s or %s", kind, KindInt, KindFloat, KindString)
	}
	return kind
}
