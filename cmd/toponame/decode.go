// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/mappedname"
)

// decodeParams are the decode mode flags shared by decode and explain.
type decodeParams struct {
	negative    bool
	noRecursive bool
	outputJSON  bool
}

func (p *decodeParams) bind(flagSet *pflag.FlagSet) {
	*p = decodeParams{}
	flagSet.BoolVar(&p.negative, "negative", false, "report negative tags with their sign (also set by decode.negative)")
	flagSet.BoolVar(&p.noRecursive, "no-recursive", false, "stop at the last tag segment even if its tag is zero")
	flagSet.BoolVar(&p.outputJSON, "json", false, "output as JSON")
}

// mode combines the flags with the configured defaults. Flags can only
// turn the configured behavior on (negative) or off (recursive).
func (p *decodeParams) mode(a *app) mappedname.TagMode {
	var mode mappedname.TagMode
	if a.config.Decode.Recursive && !p.noRecursive {
		mode |= mappedname.TagRecursive
	}
	if a.config.Decode.Negative || p.negative {
		mode |= mappedname.TagNegative
	}
	return mode
}

// decodeRecord is the JSON form of one decoded name.
type decodeRecord struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Tag      int64  `json:"tag"`
	Type     string `json:"type,omitempty"`
	Len      int    `json:"len"`
	Pos      int    `json:"pos"`
	Postfix  string `json:"postfix,omitempty"`
	Previous string `json:"previous,omitempty"`
	Decimal  bool   `json:"decimal,omitempty"`
}

func decodeName(text string, mode mappedname.TagMode) decodeRecord {
	name := mappedname.New(text)
	record := decodeRecord{Name: name.String()}
	tag, ok := name.FindTag(mode)
	if !ok {
		return record
	}
	record.Found = true
	record.Tag = tag.Value
	record.Type = string(tag.Type)
	record.Len = tag.Len
	record.Pos = tag.Pos
	record.Postfix = tag.Postfix
	record.Previous = mappedname.Slice(name, 0, tag.Len).String()
	record.Decimal = tag.Decimal
	return record
}

func decodeCommand(a *app) *cli.Command {
	var params decodeParams
	return &cli.Command{
		Name:    "decode",
		Summary: "Decode the tag segment of element names",
		Description: "Decode the last tag segment of each NAME: the tag of the object whose\n" +
			"operation produced the element, the element type, and the name it\n" +
			"had before the operation. Exits 1 if any NAME carries no valid tag.",
		Usage: "toponame decode [flags] NAME...",
		Examples: []cli.Example{
			{Description: "Decode a fused face", Command: "toponame decode 'Face6;:M2;FUS;:H1:8,F'"},
			{Description: "Keep the sign of a negative tag", Command: "toponame decode --negative 'Face1;:H-5,F'"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			params.bind(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one NAME is required")
			}
			mode := params.mode(a)

			records := make([]decodeRecord, 0, len(args))
			missing := 0
			for _, arg := range args {
				record := decodeName(arg, mode)
				if !record.Found {
					missing++
				}
				records = append(records, record)
			}
			a.logger.Debug("decoded names", "count", len(records), "missing", missing, "mode", mode)

			if params.outputJSON {
				if err := cli.WriteJSON(a.stdout, records); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(a.stdout, 2, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tTAG\tTYPE\tLEN\tPREVIOUS")
				for _, record := range records {
					if !record.Found {
						fmt.Fprintf(tw, "%s\t-\t-\t-\t(no tag)\n", record.Name)
						continue
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\n", record.Name, record.Tag, record.Type, record.Len, record.Previous)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if missing > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
