// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/mappedname"
)

type encodeParams struct {
	base     string
	ops      []string
	tag      int64
	window   int
	typeChar string
	decimal  bool
}

// encodeName stamps the op codes and a tag segment onto base. A negative
// window means "the op codes just written", the usual case.
func encodeName(params encodeParams) (mappedname.Name, error) {
	if params.base == "" {
		return mappedname.Name{}, fmt.Errorf("--base is required")
	}
	if len(params.typeChar) != 1 {
		return mappedname.Name{}, fmt.Errorf("--type must be a single character, got %q", params.typeChar)
	}

	name := mappedname.New(params.base)
	start := name.Len()
	for _, op := range params.ops {
		if op == "" {
			continue
		}
		if !strings.HasPrefix(op, mappedname.ElementMapPrefix) {
			op = mappedname.ElementMapPrefix + op
		}
		name.AppendString(op)
	}

	if params.decimal {
		name.AppendString(mappedname.EncodeDecimalTag(params.tag, start, params.typeChar[0]))
	} else {
		window := params.window
		if window < 0 {
			window = name.Len() - start
		}
		if window > name.Len() {
			return mappedname.Name{}, fmt.Errorf("--window %d exceeds the name length %d", window, name.Len())
		}
		name.AppendTag(params.tag, window, params.typeChar[0])
	}

	// Refuse to print a name the decoder would not read back.
	tag, ok := name.FindTag(mappedname.TagNegative)
	if !ok || tag.Value != params.tag {
		return mappedname.Name{}, fmt.Errorf("encoded name %q does not decode (type %q may be reserved)", name.String(), params.typeChar)
	}
	return name, nil
}

func encodeCommand(a *app) *cli.Command {
	var params encodeParams
	return &cli.Command{
		Name:    "encode",
		Summary: "Stamp op codes and a tag segment onto a name",
		Description: "Build an element name from --base, the --op segments in order, and a\n" +
			"tag segment. The tag segment's window defaults to the op codes written.",
		Usage: "toponame encode --base NAME [--op SEGMENT]... --tag N [--type C] [flags]",
		Examples: []cli.Example{
			{Description: "A fused face", Command: "toponame encode --base Face6 --op ';:M2' --op FUS --tag 1 --type F"},
			{Description: "Legacy decimal encoding", Command: "toponame encode --base Face6 --op FUS --tag 3 --decimal"},
		},
		Flags: func() *pflag.FlagSet {
			params = encodeParams{}
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.StringVar(&params.base, "base", "", "name the operation started from (e.g. Face6 or #1a)")
			flagSet.StringArrayVar(&params.ops, "op", nil, "op-code segment; the ';' prefix is added if missing (repeatable)")
			flagSet.Int64Var(&params.tag, "tag", 0, "tag of the object whose operation produced the element")
			flagSet.IntVar(&params.window, "window", -1, "op-code window length (default: the op codes written)")
			flagSet.StringVar(&params.typeChar, "type", "F", "element type character")
			flagSet.BoolVar(&params.decimal, "decimal", false, "write a legacy ';:T' segment")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			name, err := encodeName(params)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded name", "base", params.base, "ops", len(params.ops), "length", name.Len())
			_, err = name.WriteTo(a.stdout)
			if err == nil {
				_, err = fmt.Fprintln(a.stdout)
			}
			return err
		},
	}
}
