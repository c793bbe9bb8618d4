// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Toponame inspects and builds persistent element names.
//
//	toponame decode 'Face6;:M2;FUS;:H1:8,F'
//	toponame explain 'Face6;:M2;FUS;:H1:8,F'
//	toponame encode --base Face6 --op ';:M2' --op FUS --tag 1 --type F
//	toponame index Face6
//	toponame check lib/tagvectors/testdata/vectors.jsonc
//	toponame hash 'Body/Sketch001/Pad'
//
// Global flags come before the command: --config selects a YAML
// configuration file (otherwise TOPONAME_CONFIG, otherwise built-in
// defaults), --log-level overrides the configured level, and --version
// prints build information.
package main
