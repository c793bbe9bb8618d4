// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tagvectors loads and runs conformance vectors for tag segment
// decoding.
//
// Vectors are authored as JSONC files (JSON extended with // line
// comments, /* block comments */, and trailing commas) so each case can
// carry a note explaining the byte offsets it checks. A vector names an
// input element name, the decode mode, and either the expected decoded
// tag or null for "no tag found". The package's own testdata file is
// the reference set; `toponame check` runs any file against the
// decoder in this build.
package tagvectors
