// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "TOPONAME_CONFIG"

// Config is the master configuration for the toponame tools.
type Config struct {
	// Paths configures file locations.
	Paths PathsConfig `yaml:"paths"`

	// Decode configures how tag segments are decoded.
	Decode DecodeConfig `yaml:"decode"`

	// Hasher configures the persisted string-id table.
	Hasher HasherConfig `yaml:"hasher"`

	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	// Root is the base directory for toponame data.
	Root string `yaml:"root"`
}

// DecodeConfig configures tag decoding.
type DecodeConfig struct {
	// Negative keeps the sign of negative tags instead of reporting
	// absolute values.
	// Default: false
	Negative bool `yaml:"negative"`

	// Recursive walks back through zero-tag segments and narrows
	// op-code windows around embedded tags.
	// Default: true
	Recursive bool `yaml:"recursive"`
}

// HasherConfig configures the string-id table.
type HasherConfig struct {
	// Table is the snapshot file the table is loaded from and saved to.
	// Default: ${TOPONAME_ROOT}/ids.snapshot
	Table string `yaml:"table"`

	// Compression is the snapshot compression: none, lz4, zstd, or
	// auto to pick by probing the data.
	// Default: zstd
	Compression string `yaml:"compression"`
}

// LogConfig configures diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. LoadFile starts from it,
// so a config file only needs the fields it changes.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Paths: PathsConfig{
			Root: filepath.Join(homeDir, ".cache", "toponame"),
		},
		Decode: DecodeConfig{
			Recursive: true,
		},
		Hasher: HasherConfig{
			Table:       "${TOPONAME_ROOT}/ids.snapshot",
			Compression: "zstd",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the TOPONAME_CONFIG environment
// variable. It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your toponame.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path over the
// defaults and expands path variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.expandVariables()
	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Expand applies path variable expansion to a config built in code,
// such as Default().
func (c *Config) Expand() *Config {
	c.expandVariables()
	return c
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"TOPONAME_ROOT": c.Paths.Root,
		"HOME":          os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["TOPONAME_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Hasher.Table = expandVars(c.Hasher.Table, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	compressionValues = []string{"none", "lz4", "zstd", "auto"}
	levelValues       = []string{"debug", "info", "warn", "error"}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}
	if c.Hasher.Table == "" {
		errs = append(errs, fmt.Errorf("hasher.table is required"))
	}
	if !slices.Contains(compressionValues, c.Hasher.Compression) {
		errs = append(errs, fmt.Errorf("hasher.compression must be one of: %v", compressionValues))
	}
	if !slices.Contains(levelValues, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levelValues))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel returns Log.Level as a slog.Level. Unknown values map to
// info; Validate reports them.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EnsurePaths creates the root directory and the table's directory.
func (c *Config) EnsurePaths() error {
	for _, path := range []string{c.Paths.Root, filepath.Dir(c.Hasher.Table)} {
		if path == "" || path == "." {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}
