// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/toponame/cmd/toponame/cli"
	"github.com/bureau-foundation/toponame/lib/config"
	"github.com/bureau-foundation/toponame/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Commands that print their own output return an ExitError.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs.
type app struct {
	stdout io.Writer
	stderr io.Writer
	config *config.Config
	logger *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) error {
	global := pflag.NewFlagSet("toponame", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	configPath := global.String("config", "", "path to the YAML configuration file (default: $"+config.EnvironmentVariable+")")
	logLevel := global.String("log-level", "", "override log.level: debug, info, warn, error")
	showVersion := global.Bool("version", false, "print version information and exit")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			root(nil).PrintHelp(stderr)
			return nil
		}
		return fmt.Errorf("%w\n\nRun 'toponame --help' for usage.", err)
	}
	if *showVersion {
		fmt.Fprintln(stdout, "toponame", version.Full())
		return nil
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a := &app{
		stdout: stdout,
		stderr: stderr,
		config: cfg,
		logger: cli.NewCommandLogger(stderr, cfg.SlogLevel()),
	}
	command := root(a)
	command.Stderr = stderr
	return command.Execute(global.Args())
}

// loadConfig reads the file named by --config, then TOPONAME_CONFIG,
// and falls back to the defaults when neither is set.
func loadConfig(path string) (*config.Config, error) {
	switch {
	case path != "":
		return config.LoadFile(path)
	case os.Getenv(config.EnvironmentVariable) != "":
		return config.Load()
	default:
		return config.Default().Expand(), nil
	}
}

// root builds the command tree. a may be nil when only help is printed.
func root(a *app) *cli.Command {
	return &cli.Command{
		Name:        "toponame",
		Description: "Inspect and build persistent element names.",
		Usage:       "toponame [--config FILE] [--log-level LEVEL] [--version] <command> [flags]",
		Subcommands: []*cli.Command{
			decodeCommand(a),
			explainCommand(a),
			encodeCommand(a),
			indexCommand(a),
			checkCommand(a),
			hashCommand(a),
		},
	}
}
