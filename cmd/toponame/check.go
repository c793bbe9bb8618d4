// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/tagvectors"
)

func checkCommand(a *app) *cli.Command {
	var verbose bool
	return &cli.Command{
		Name:    "check",
		Summary: "Run tag decoding conformance vectors",
		Description: "Decode every vector in each JSONC FILE and compare with its\n" +
			"expectation. Prints failures (and passes with --verbose) and exits 1\n" +
			"if any vector fails.",
		Usage: "toponame check [--verbose] FILE...",
		Examples: []cli.Example{
			{Command: "toponame check lib/tagvectors/testdata/vectors.jsonc"},
		},
		Flags: func() *pflag.FlagSet {
			verbose = false
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "also list passing vectors")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one FILE is required")
			}
			total, failed := 0, 0
			for _, path := range args {
				file, err := tagvectors.ReadFile(path)
				if err != nil {
					return err
				}
				results := file.Run()
				for _, result := range results {
					switch {
					case result.Err != nil:
						fmt.Fprintf(a.stdout, "FAIL %s: %q: %v\n", result.Vector.Name, result.Vector.Input, result.Err)
					case verbose:
						fmt.Fprintf(a.stdout, "ok   %s\n", result.Vector.Name)
					}
				}
				total += len(results)
				failed += tagvectors.Failed(results)
				a.logger.Debug("checked vectors", "file", path, "vectors", len(results))
			}
			fmt.Fprintf(a.stdout, "%d vectors, %d failed\n", total, failed)
			if failed > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
