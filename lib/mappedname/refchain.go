// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

import (
	"iter"
	"slices"
)

// IDRef is an auxiliary id reference attached to a name, typically a
// hashed string id. R is the implementing type itself.
type IDRef[R any] interface {
	Bytes() []byte
	Compare(other R) int
}

// RefEntry is one candidate name and its id references.
type RefEntry[R IDRef[R]] struct {
	Name Name
	IDs  []R
}

// RefChain holds one or more candidate names for a single element,
// each with a sorted, duplicate-free set of id references. Entries keep
// the order they were appended in. The zero value is an empty chain.
type RefChain[R IDRef[R]] struct {
	entries []RefEntry[R]
}

// NewRefChain returns a chain whose head is name. An empty name yields
// an empty chain.
func NewRefChain[R IDRef[R]](name Name, ids ...R) RefChain[R] {
	var chain RefChain[R]
	chain.Append(name, ids)
	return chain
}

// IsValid reports whether the chain has a non-empty head.
func (c *RefChain[R]) IsValid() bool {
	return len(c.entries) > 0
}

// Len returns the number of entries.
func (c *RefChain[R]) Len() int {
	return len(c.entries)
}

// Head returns the first entry, or the zero entry for an empty chain.
// The returned name shares its buffer with the chain's copy.
func (c *RefChain[R]) Head() RefEntry[R] {
	if len(c.entries) == 0 {
		return RefEntry[R]{}
	}
	head := c.entries[0]
	return RefEntry[R]{Name: head.Name.Copy(), IDs: slices.Clone(head.IDs)}
}

// Append adds name with ids at the end of the chain. Empty names are
// ignored. ids is copied, then sorted and deduplicated.
func (c *RefChain[R]) Append(name Name, ids []R) {
	if name.IsEmpty() {
		return
	}
	c.entries = append(c.entries, RefEntry[R]{Name: name.Copy(), IDs: compact(ids)})
}

// Erase removes the first entry whose name equals name and reports
// whether one was found. Erasing the head promotes its successor.
func (c *RefChain[R]) Erase(name Name) bool {
	for i := range c.entries {
		if c.entries[i].Name.Equal(name) {
			c.entries[i].Name.Release()
			c.entries = slices.Delete(c.entries, i, i+1)
			return true
		}
	}
	return false
}

// Find returns a copy of the id references of the first entry named
// name.
func (c *RefChain[R]) Find(name Name) ([]R, bool) {
	for _, entry := range c.entries {
		if entry.Name.Equal(name) {
			return slices.Clone(entry.IDs), true
		}
	}
	return nil, false
}

// Clear empties the chain.
func (c *RefChain[R]) Clear() {
	for i := range c.entries {
		c.entries[i].Name.Release()
	}
	c.entries = nil
}

// All iterates over the entries in order. The id slices are the
// chain's own and must not be modified.
func (c *RefChain[R]) All() iter.Seq2[Name, []R] {
	return func(yield func(Name, []R) bool) {
		for _, entry := range c.entries {
			if !yield(entry.Name.Copy(), entry.IDs) {
				return
			}
		}
	}
}

// compact returns a sorted copy of ids without duplicates.
func compact[R IDRef[R]](ids []R) []R {
	if len(ids) == 0 {
		return nil
	}
	result := slices.Clone(ids)
	slices.SortFunc(result, func(a, b R) int { return a.Compare(b) })
	return slices.CompactFunc(result, func(a, b R) bool { return a.Compare(b) == 0 })
}
