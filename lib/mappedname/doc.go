// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mappedname provides persistent element names: byte strings
// that record, inline, how a geometric sub-element came to exist so that
// references to it keep resolving after the geometry kernel renumbers
// faces, edges, and vertices.
//
// A [Name] is a base (usually an indexed key such as "Face6" or a
// hashed id such as "#1a") followed by a postfix: zero or more
// provenance segments, each introduced by the element-map prefix ";".
// Tag segments record the generation that produced the element:
//
//	Face6;:M2;FUS;:H1:8,F
//	|    |         |
//	|    |         tag 1, 8 characters of op codes before it, a face
//	|    op codes (";:M2" modification, ";FUS" fuse)
//	base
//
// [Name.FindTag] recovers the tag, the length of the name preceding the
// segment's op codes, and the element type from any name, walking back
// through zero-tag segments to the generation that actually produced the
// element. It understands both encodings: the current hexadecimal one
// (";:H", with omittable tag and length) and the legacy decimal one
// (";:T"). Malformed segments are reported as absent, never as partial
// results.
//
// Names are built on a copy-on-write buffer (package cow) and behave as
// values. [Name.Copy] is O(1) and counts the sharing; plain assignment
// is O(1) too. Appending never changes bytes another Name can see: a
// Name writes into its buffer in place only past the end of every other
// view of it, and otherwise moves to a new buffer.
//
// [RefChain] attaches several candidate names, each with a sorted set
// of auxiliary id references, to one element when a merge leaves it
// ambiguous.
package mappedname
