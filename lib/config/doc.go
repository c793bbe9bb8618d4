// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the toponame
// tools.
//
// Configuration is loaded from a single file specified by either the
// TOPONAME_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. Commands that run without any configuration use
// [Default].
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${TOPONAME_ROOT}, and ${VAR:-default} patterns are expanded.
// No other environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Decode, Hasher, Log
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other toponame packages.
package config
