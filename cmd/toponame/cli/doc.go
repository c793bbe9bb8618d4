// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the toponame
// binary.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet] factory,
// and a Run function. Commands are assembled into a tree in
// cmd/toponame and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and help output with examples. Help and
// usage errors go to the root command's Stderr, so tests can capture
// them.
//
// Unknown subcommands and flags get a "did you mean" suggestion when a
// known name is within edit distance 3.
//
// [NewCommandLogger] builds the slog logger commands share, and
// [ExitError] lets a command exit non-zero after printing its own
// output.
package cli
