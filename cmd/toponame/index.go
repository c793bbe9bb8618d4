// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/mappedname"
)

func indexCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "index",
		Summary: "Convert names without provenance to indexed keys",
		Description: "Parse each NAME as an indexed key (kind plus index, e.g. Face6) and\n" +
			"print its kind, index, and type character. Names with a postfix or\n" +
			"a non-canonical index are rejected.",
		Usage: "toponame index NAME...",
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one NAME is required")
			}
			rejected := 0
			for _, arg := range args {
				key, ok := mappedname.New(arg).ToIndexed()
				if !ok {
					fmt.Fprintf(a.stdout, "%s\tnot an indexed name\n", arg)
					rejected++
					continue
				}
				typeChar := "-"
				if c := key.TypeChar(); c != 0 {
					typeChar = string(c)
				}
				fmt.Fprintf(a.stdout, "%s\t%s\t%d\t%s\n", mappedname.FromIndexed(key), key.Type(), key.Index(), typeChar)
			}
			if rejected > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
