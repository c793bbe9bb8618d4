// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cow provides [Box], a copy-on-write cell for values that are
// cheap to share and expensive to copy.
//
// A Box owns one reference to a heap handle holding a value of type T.
// Any number of Boxes may reference the same handle. Reading goes
// through [Box.Const], which never allocates. Writing goes through
// [Box.Mut], which first clones the value into a private handle when
// the current handle is referenced by more than one Box. There is no
// other path to a mutable value, so whether a statement can trigger a
// copy is visible at the call site:
//
//	names := cow.New([]byte("Face1"), bytes.Clone)
//	other := names.Share()     // refcount 2, no copy
//	_ = other.Const()          // read, no copy
//	p := other.Mut()           // clone happens here
//	*p = append(*p, ";:H1,F"...)
//
// Go assignment copies the slot, not the ownership: "b := a" leaves
// both variables on one reference. Such a copy never writes in place.
// Only the Box variable that created a handle through [Box.Reset] or a
// cloning [Box.Mut] may do that, so the first Mut of a copied or moved
// Box clones. Use [Box.Share] to create an owner
// that the reference count sees. Owners dropped without [Box.Release]
// return their reference when the garbage collector reclaims them.
//
// The reference count is atomic, so Boxes sharing a handle may be used
// from different goroutines. A single Box is not safe for concurrent
// mutation.
//
// This package has no dependencies on other toponame packages.
package cow
