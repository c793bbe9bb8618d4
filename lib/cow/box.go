// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cow

import (
	"runtime"
	"sync/atomic"
	"weak"
)

// handle is the shared allocation behind one or more Boxes.
type handle[T any] struct {
	value T
	clone func(T) T
	refs  atomic.Int64

	// writer is the Box that may write value in place. Only handles
	// created by Reset (and so by a cloning Mut) have one. It is weak so
	// that a handle never keeps its writer, and through it the owner
	// token, reachable.
	writer weak.Pointer[Box[T]]
}

// owner is the per-reference token the garbage collector watches. Go
// copies of a Box share it, so it releases the reference at most once.
type owner struct {
	released atomic.Bool
}

// Box is a copy-on-write cell. The zero value is an empty Box holding
// the zero T; the first call to Mut allocates its handle.
//
// A Box copied by assignment is not counted as an owner, but it is
// never allowed to write in place: its first Mut clones. Writes made in
// place by the Box that holds the handle remain visible through copies
// taken before them, so a copy that must stay independent of later
// writes is made with Share.
type Box[T any] struct {
	handle  *handle[T]
	owner   *owner
	cleanup runtime.Cleanup
}

// New allocates a fresh handle for value and returns its only owner.
// clone produces the deep copy Mut needs when the handle is shared; nil
// means a plain value copy, which is correct only for types without
// reference semantics. A Box from New is returned by value, so its first
// Mut clones.
func New[T any](value T, clone func(T) T) Box[T] {
	return attach(&handle[T]{value: value, clone: clone})
}

// attach registers a new owner of h.
func attach[T any](h *handle[T]) Box[T] {
	h.refs.Add(1)
	token := new(owner)
	cleanup := runtime.AddCleanup(token, func(h *handle[T]) { h.refs.Add(-1) }, h)
	return Box[T]{handle: h, owner: token, cleanup: cleanup}
}

// Const returns the current value without copying it. When T has
// reference semantics the result aliases the shared value and must not
// be modified.
func (b Box[T]) Const() T {
	if b.handle == nil {
		var zero T
		return zero
	}
	return b.handle.value
}

// Exclusive reports whether Mut would return the value without cloning
// it: this Box is the handle's only counted owner and is the same
// variable that created the handle.
func (b *Box[T]) Exclusive() bool {
	h := b.handle
	return h != nil &&
		h.refs.Load() == 1 &&
		!b.owner.released.Load() &&
		h.writer == weak.Make(b)
}

// Mut returns a pointer to a value owned by this Box alone. Unless the
// Box is Exclusive, the value is first cloned into a fresh handle.
func (b *Box[T]) Mut() *T {
	if b.Exclusive() {
		return &b.handle.value
	}
	var (
		value T
		clone func(T) T
	)
	if shared := b.handle; shared != nil {
		value, clone = shared.value, shared.clone
		if clone != nil {
			value = clone(value)
		}
	}
	b.Reset(value, clone)
	return &b.handle.value
}

// Reset releases the current reference and stores value in a fresh
// handle that this Box may write in place.
func (b *Box[T]) Reset(value T, clone func(T) T) {
	b.Release()
	*b = attach(&handle[T]{value: value, clone: clone, writer: weak.Make(b)})
}

// IsUnshared reports whether no other counted owner references this
// Box's handle. Copies made by assignment are not counted. A Box without
// a handle is unshared.
func (b Box[T]) IsUnshared() bool {
	return b.handle == nil || b.handle.refs.Load() <= 1
}

// Share returns a new owner of the same handle. No value is copied.
func (b Box[T]) Share() Box[T] {
	if b.handle == nil {
		return Box[T]{}
	}
	return attach(b.handle)
}

// Release drops this Box's reference and leaves it empty. The reference
// is dropped once even when several copies of the Box are released.
// Calling Release on an empty Box does nothing.
func (b *Box[T]) Release() {
	if b.handle == nil {
		return
	}
	if b.owner.released.CompareAndSwap(false, true) {
		b.cleanup.Stop()
		b.handle.refs.Add(-1)
	}
	runtime.KeepAlive(b.owner)
	*b = Box[T]{}
}

// Refs returns the number of owners of this Box's handle, or 0 for a
// Box without one.
func (b Box[T]) Refs() int64 {
	if b.handle == nil {
		return 0
	}
	return b.handle.refs.Load()
}
