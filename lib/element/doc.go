// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package element provides the indexed key of a geometric sub-element:
// a kind ("Face", "Edge", "Vertex") paired with a one-based index, as in
// "Face3". An index of zero means the key is unindexed and is written
// without digits.
//
// [Indexed] is the stable, provenance-free address of an element in one
// particular model rebuild. Persistent names built on top of it (see
// package mappedname) record how that element came to exist so that
// references survive renumbering.
//
// This package has no dependencies on other toponame packages.
package element
