// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/element"
	"github.com/bureau-foundation/toponame/lib/mappedname"
)

// segmentKinds maps segment markers to descriptions. Longer markers
// come first so ";:MG" is not read as ";:M".
var segmentKinds = []struct {
	marker      string
	description string
}{
	{mappedname.PostfixModGen, "modified, generated"},
	{mappedname.PostfixTag, "tag"},
	{mappedname.PostfixDecimalTag, "tag (legacy)"},
	{mappedname.PostfixExternalTag, "external tag"},
	{mappedname.PostfixChild, "child"},
	{mappedname.PostfixIndex, "index"},
	{mappedname.PostfixUpper, "upper"},
	{mappedname.PostfixLower, "lower"},
	{mappedname.PostfixMod, "modified"},
	{mappedname.PostfixGen, "generated"},
	{mappedname.PostfixDuplicate, "duplicate"},
}

type segmentRecord struct {
	Text        string `json:"text"`
	Offset      int    `json:"offset"`
	Description string `json:"description"`
	IsTag       bool   `json:"is_tag,omitempty"`
}

type explainRecord struct {
	decodeRecord
	Base     string          `json:"base"`
	Segments []segmentRecord `json:"segments"`
}

// splitName parses text with everything from the first element-map
// prefix on as the postfix.
func splitName(text string) mappedname.Name {
	name := mappedname.New(text)
	text = name.String()
	index := strings.Index(text, mappedname.ElementMapPrefix)
	if index <= 0 {
		return name
	}
	return mappedname.WithPostfix(mappedname.New(text[:index]), text[index:])
}

// explainName splits name into segments and describes each. Tag
// segments are decoded on their own, without walking back, so each
// reports its own tag and op-code window.
func explainName(name mappedname.Name, mode mappedname.TagMode) explainRecord {
	record := explainRecord{
		decodeRecord: decodeName(name.String(), mode),
		Base:         name.Base(),
	}
	offset := name.PostfixStart()
	for _, text := range name.Segments() {
		segment := segmentRecord{Text: text, Offset: offset, Description: "op code"}
		for _, kind := range segmentKinds {
			if strings.HasPrefix(text, kind.marker) {
				segment.Description = kind.description
				break
			}
		}
		if strings.HasPrefix(text, mappedname.PostfixTag) || strings.HasPrefix(text, mappedname.PostfixDecimalTag) {
			prefix := mappedname.Slice(name, 0, offset+len(text))
			if tag, ok := prefix.FindTag(mode &^ mappedname.TagRecursive); ok {
				segment.IsTag = true
				segment.Description = fmt.Sprintf("%s %d (%s), name before it %q",
					segment.Description, tag.Value, kindName(tag.Type), mappedname.Slice(name, 0, tag.Len).String())
			} else {
				segment.Description = "malformed tag"
			}
		}
		record.Segments = append(record.Segments, segment)
		offset += len(text)
	}
	return record
}

func kindName(typeChar byte) string {
	if kind := element.KindOf(typeChar); kind != "" {
		return kind
	}
	return string(typeChar)
}

type explainStyles struct {
	label   lipgloss.Style
	base    lipgloss.Style
	tag     lipgloss.Style
	op      lipgloss.Style
	note    lipgloss.Style
	missing lipgloss.Style
}

func newExplainStyles(renderer *lipgloss.Renderer, segmentWidth int) explainStyles {
	return explainStyles{
		label:   renderer.NewStyle().Bold(true).Width(10),
		base:    renderer.NewStyle().Foreground(lipgloss.Color("12")),
		tag:     renderer.NewStyle().Foreground(lipgloss.Color("10")).Width(segmentWidth),
		op:      renderer.NewStyle().Foreground(lipgloss.Color("11")).Width(segmentWidth),
		note:    renderer.NewStyle().Faint(true),
		missing: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// newRenderer returns a lipgloss renderer for w. color is auto, always,
// or never; auto colors only terminals.
func newRenderer(w io.Writer, color string) (*lipgloss.Renderer, error) {
	renderer := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	case "auto":
		if !cli.IsTerminal(w) {
			renderer.SetColorProfile(termenv.Ascii)
		}
	default:
		return nil, fmt.Errorf("--color must be auto, always, or never, got %q", color)
	}
	return renderer, nil
}

func writeExplanation(w io.Writer, record explainRecord, styles explainStyles) {
	fmt.Fprintf(w, "%s%s\n", styles.label.Render("name"), record.Name)
	fmt.Fprintf(w, "%s%s\n", styles.label.Render("base"), styles.base.Render(record.Base))
	for i, segment := range record.Segments {
		label := ""
		if i == 0 {
			label = "segments"
		}
		style := styles.op
		if segment.IsTag {
			style = styles.tag
		}
		fmt.Fprintf(w, "%s%s  %s\n", styles.label.Render(label), style.Render(segment.Text), styles.note.Render(segment.Description))
	}
	if !record.Found {
		fmt.Fprintf(w, "%s%s\n", styles.label.Render("decoded"), styles.missing.Render("no valid tag"))
		return
	}
	fmt.Fprintf(w, "%stag %d, %s, from %q\n", styles.label.Render("decoded"),
		record.Tag, kindName(record.Type[0]), record.Previous)
}

func explainCommand(a *app) *cli.Command {
	var (
		params decodeParams
		color  string
	)
	return &cli.Command{
		Name:    "explain",
		Summary: "Break an element name into its segments",
		Description: "Show the base of NAME and each provenance segment, decode every\n" +
			"tag segment on its own, and decode the name as a whole.",
		Usage: "toponame explain [flags] NAME",
		Examples: []cli.Example{
			{Command: "toponame explain '#94;:G0;XTR;:H19:8,F;:H1a,F;BND:-1:0;:H1b:10,F'"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("explain", pflag.ContinueOnError)
			params.bind(flagSet)
			flagSet.StringVar(&color, "color", "auto", "colorize output: auto, always, never")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one NAME is required")
			}
			record := explainName(splitName(args[0]), params.mode(a))
			if params.outputJSON {
				return cli.WriteJSON(a.stdout, record)
			}

			renderer, err := newRenderer(a.stdout, color)
			if err != nil {
				return err
			}
			segmentWidth := 0
			for _, segment := range record.Segments {
				segmentWidth = max(segmentWidth, len(segment.Text))
			}
			writeExplanation(a.stdout, record, newExplainStyles(renderer, segmentWidth))
			return nil
		},
	}
}
