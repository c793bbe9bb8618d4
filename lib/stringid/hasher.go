// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stringid

import (
	"iter"
	"log/slog"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/toponame/lib/mappedname"
)

// Digest is the BLAKE3 keyed digest of a label.
type Digest [32]byte

// labelDomainKey separates label digests from any other BLAKE3 use.
// Changing it invalidates every persisted table.
var labelDomainKey = [32]byte{
	't', 'o', 'p', 'o', 'n', 'a', 'm', 'e', '.', 's', 't', 'r', 'i', 'n', 'g', 'i',
	'd', '.', 'l', 'a', 'b', 'e', 'l', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// LabelDigest returns the digest a Hasher keys label by.
func LabelDigest(label string) Digest {
	hasher, err := blake3.NewKeyed(labelDomainKey[:])
	if err != nil {
		panic("stringid: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(label))
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Hasher assigns ids to labels. Ids start at 1 and follow first-seen
// order. It is safe for concurrent use.
type Hasher struct {
	logger *slog.Logger

	mu       sync.Mutex
	byDigest map[Digest]ID
	labels   []string // labels[id-1]
}

// NewHasher returns an empty table. A nil logger discards records.
func NewHasher(logger *slog.Logger) *Hasher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hasher{
		logger:   logger,
		byDigest: make(map[Digest]ID),
	}
}

// ID returns the id of label, assigning the next one if the label is
// new. The empty label has the zero id.
func (h *Hasher) ID(label string) ID {
	if label == "" {
		return ID{}
	}
	digest := LabelDigest(label)

	h.mu.Lock()
	defer h.mu.Unlock()

	if id, ok := h.byDigest[digest]; ok {
		if h.labels[id.value-1] != label {
			panic("stringid: BLAKE3 digest collision between distinct labels")
		}
		return id
	}
	h.labels = append(h.labels, label)
	id := ID{value: int64(len(h.labels))}
	h.byDigest[digest] = id
	h.logger.Debug("assigned string id", "id", id, "label_bytes", len(label))
	return id
}

// Name returns a mapped name holding the id of label, assigning one if
// needed.
func (h *Hasher) Name(label string) mappedname.Name {
	id := h.ID(label)
	if id.IsZero() {
		return mappedname.Name{}
	}
	return mappedname.FromIDRef(id)
}

// Lookup returns the label assigned id.
func (h *Hasher) Lookup(id ID) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if id.value < 1 || id.value > int64(len(h.labels)) {
		return "", false
	}
	return h.labels[id.value-1], true
}

// Len returns the number of labels in the table.
func (h *Hasher) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.labels)
}

// Entries iterates over the table in id order. It sees the table as it
// was when iteration started.
func (h *Hasher) Entries() iter.Seq2[ID, string] {
	h.mu.Lock()
	labels := h.labels[:len(h.labels):len(h.labels)]
	h.mu.Unlock()
	return func(yield func(ID, string) bool) {
		for i, label := range labels {
			if !yield(ID{value: int64(i + 1)}, label) {
				return
			}
		}
	}
}
