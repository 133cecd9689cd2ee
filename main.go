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

	"github.com/cybrota/avlstep/avl"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var keysFlag string
	var preview, noColor bool

	runReplay := func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig()
		if err != nil {
			return err
		}
		keys, err := resolveSequence(args, keysFlag, config)
		if err != nil {
			return err
		}
		p := newPrinter(cmd.OutOrStdout(), config.Run.Color && !noColor)
		writeReplay(p, avl.Replay(keys), preview || config.Run.Preview)
		return nil
	}

	var cmdRun = &cobra.Command{
		Use:   "run [keys...]",
		Short: "Insert a key sequence step by step and show every rotation",
		Long: `Run inserts the given keys one at a time into an empty AVL tree. After each
insertion it prints the rotations performed, the in-order keys and the height
and balance factor of every node. Keys come from the arguments, the --keys
flag, or run.sequence in the configuration file, in that order.`,
		Example: "  avlstep run 30 20 10\n  avlstep run --keys \"10,20,30,40,50,25\" --preview",
		RunE:    runReplay,
	}
	cmdRun.Flags().StringVar(&keysFlag, "keys", "", "comma or space separated keys to insert")
	cmdRun.Flags().BoolVar(&preview, "preview", false, "also show each tree before rebalancing")
	cmdRun.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	var count int
	var seed int64
	var quiet bool
	var cmdVerify = &cobra.Command{
		Use:   "verify",
		Short: "Insert random keys and check the AVL invariants after each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			vc := config.Verify
			if cmd.Flags().Changed("count") {
				vc.Count = count
			}
			if cmd.Flags().Changed("seed") {
				vc.Seed = seed
			}
			if err := vc.validate(); err != nil {
				return err
			}

			var progress = cmd.ErrOrStderr()
			if quiet {
				progress = nil
			}
			res, err := runStress(vc, progress)
			if err != nil {
				return err
			}
			writeStressResult(newPrinter(cmd.OutOrStdout(), config.Run.Color && !noColor), res)
			return nil
		},
	}
	cmdVerify.Flags().IntVar(&count, "count", 0, "number of distinct keys to insert (default from config)")
	cmdVerify.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	cmdVerify.Flags().BoolVar(&quiet, "quiet", false, "hide the progress bar")
	cmdVerify.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(newPrinter(cmd.OutOrStdout(), false))
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlstep version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlstep",
		Version:       version,
		Short:         "Step-by-step AVL tree insertion with a rotation log",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to run when no subcommand is provided
		RunE: runReplay,
	}
	rootCmd.Flags().StringVar(&keysFlag, "keys", "", "comma or space separated keys to insert")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "also show each tree before rebalancing")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(cmdRun, cmdVerify, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("avlstep: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
