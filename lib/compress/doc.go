// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress compresses persisted snapshots (string-id tables,
// reference chains) with a one-byte algorithm tag.
//
// Two layers are provided. [Compress] and [Decompress] operate on raw
// blocks and leave the caller to record the tag and uncompressed size.
// [Frame] and [Unframe] wrap a block in a self-describing header (tag
// byte followed by the uncompressed size as a uvarint) so a snapshot
// file can be read back without side information. Frame falls back to
// [TagNone] when the chosen algorithm does not shrink the data.
package compress
