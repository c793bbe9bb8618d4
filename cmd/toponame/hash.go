// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/codec"
	"github.com/bureau-foundation/toponame/lib/compress"
	"github.com/bureau-foundation/toponame/lib/stringid"
)

type hashParams struct {
	table       string
	compression string
	list        bool
	dump        bool
	dryRun      bool
}

// dumpTable prints the snapshot at path in CBOR diagnostic notation.
func dumpTable(a *app, path string) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no string id table at %s", path)
	}
	if err != nil {
		return fmt.Errorf("opening string id table: %w", err)
	}
	defer file.Close()

	payload, tag, err := stringid.ReadPayload(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	notation, err := codec.Diagnose(payload)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	a.logger.Debug("dumping string id table", "table", path, "compression", tag, "bytes", len(payload))
	_, err = fmt.Fprintln(a.stdout, notation)
	return err
}

func hashCommand(a *app) *cli.Command {
	var params hashParams
	return &cli.Command{
		Name:    "hash",
		Summary: "Assign string ids to labels",
		Description: "Look up or assign the id of each LABEL in the persisted string-id\n" +
			"table and print it. New ids are saved back to the table unless\n" +
			"--dry-run is given. With --list, print the whole table instead.",
		Usage: "toponame hash [flags] LABEL...",
		Examples: []cli.Example{
			{Description: "Assign an id", Command: "toponame hash 'Body/Sketch001/Pad'"},
			{Description: "List a table", Command: "toponame hash --table ids.snapshot --list"},
			{Description: "Show the raw snapshot", Command: "toponame hash --dump"},
		},
		Flags: func() *pflag.FlagSet {
			params = hashParams{}
			flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
			flagSet.StringVar(&params.table, "table", "", "snapshot file (default: hasher.table)")
			flagSet.StringVar(&params.compression, "compression", "", "none, lz4, zstd, or auto (default: hasher.compression)")
			flagSet.BoolVar(&params.list, "list", false, "print every entry in the table")
			flagSet.BoolVar(&params.dump, "dump", false, "print the stored snapshot in CBOR diagnostic notation")
			flagSet.BoolVar(&params.dryRun, "dry-run", false, "do not save new ids")
			return flagSet
		},
		Run: func(args []string) error {
			table := params.table
			if table == "" {
				table = a.config.Hasher.Table
			}
			compression := params.compression
			if compression == "" {
				compression = a.config.Hasher.Compression
			}
			tag, err := compress.ParseTag(compression)
			if err != nil {
				return err
			}
			if params.dump {
				if len(args) != 0 {
					return fmt.Errorf("--dump takes no LABEL arguments")
				}
				return dumpTable(a, table)
			}
			if len(args) == 0 && !params.list {
				return fmt.Errorf("at least one LABEL is required (or --list)")
			}

			logger := a.logger.With("command", "hash", "table", table)
			hasher, err := stringid.LoadFile(table, logger)
			if err != nil {
				return err
			}

			before := hasher.Len()
			for _, label := range args {
				id := hasher.ID(label)
				if id.IsZero() {
					return fmt.Errorf("labels must not be empty")
				}
				fmt.Fprintf(a.stdout, "%s\t%s\n", id, label)
			}
			if params.list {
				for id, label := range hasher.Entries() {
					fmt.Fprintf(a.stdout, "%s\t%s\n", id, label)
				}
			}

			added := hasher.Len() - before
			if added == 0 || params.dryRun {
				return nil
			}
			if err := a.config.EnsurePaths(); err != nil {
				return err
			}
			if err := hasher.SaveFile(table, tag); err != nil {
				return err
			}
			logger.Info("saved string id table", "added", added, "entries", hasher.Len())
			return nil
		},
	}
}
