// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package stringid maps long labels to compact integer ids so element
// names can refer to them by id instead of embedding the label.
//
// An [ID] prints as "#" followed by lowercase hex and implements the id
// reference contract of mappedname.RefChain. A [Hasher] hands out ids
// in first-seen order, keyed by a BLAKE3 keyed digest of the label so
// the table does not hold long labels as map keys. Tables persist as
// compressed CBOR snapshots ([Hasher.Save], [Load]); loading verifies
// every digest.
package stringid
