// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stringid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/toponame/lib/codec"
	"github.com/bureau-foundation/toponame/lib/compress"
)

// snapshotMagic starts every snapshot file.
var snapshotMagic = []byte("TPNS")

// snapshotVersion is the only snapshot layout Load accepts.
const snapshotVersion = 1

// ErrCorruptSnapshot is wrapped by every Load error caused by the
// snapshot's contents rather than by reading it.
var ErrCorruptSnapshot = errors.New("corrupt string id snapshot")

type snapshot struct {
	Version int             `cbor:"version"`
	Entries []snapshotEntry `cbor:"entries"`
}

type snapshotEntry struct {
	ID     ID     `cbor:"id"`
	Label  string `cbor:"label"`
	Digest Digest `cbor:"digest"`
}

// Save writes the table to w as a CBOR snapshot compressed with tag.
// compress.TagAuto picks the algorithm from the data.
func (h *Hasher) Save(w io.Writer, tag compress.Tag) error {
	record := snapshot{Version: snapshotVersion}
	for id, label := range h.Entries() {
		record.Entries = append(record.Entries, snapshotEntry{ID: id, Label: label, Digest: LabelDigest(label)})
	}

	var encoded bytes.Buffer
	if err := codec.NewEncoder(&encoded).Encode(record); err != nil {
		return fmt.Errorf("encoding string id snapshot: %w", err)
	}
	data := encoded.Bytes()
	frame, used, err := compress.Frame(data, tag)
	if err != nil {
		return fmt.Errorf("compressing string id snapshot: %w", err)
	}
	if _, err := w.Write(snapshotMagic); err != nil {
		return fmt.Errorf("writing string id snapshot: %w", err)
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("writing string id snapshot: %w", err)
	}

	h.logger.Debug("saved string id snapshot",
		"entries", len(record.Entries),
		"compression", used,
		"encoded_bytes", len(data),
		"stored_bytes", len(frame),
	)
	return nil
}

// ReadPayload reads a snapshot's header and frame and returns the
// decompressed CBOR payload and the compression it was stored with.
func ReadPayload(r io.Reader) ([]byte, compress.Tag, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading string id snapshot: %w", err)
	}
	frame, ok := bytes.CutPrefix(raw, snapshotMagic)
	if !ok {
		return nil, 0, fmt.Errorf("%w: missing header", ErrCorruptSnapshot)
	}
	data, tag, err := compress.Unframe(frame)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return data, tag, nil
}

// Load reads a snapshot written by Save into a new Hasher. Ids must be
// dense from 1 and every stored digest must match its label.
func Load(r io.Reader, logger *slog.Logger) (*Hasher, error) {
	hasher := NewHasher(logger)

	data, tag, err := ReadPayload(r)
	if err != nil {
		return nil, err
	}

	var record snapshot
	decoder := codec.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if decoder.NumBytesRead() != len(data) {
		return nil, fmt.Errorf("%w: %d bytes after the payload", ErrCorruptSnapshot, len(data)-decoder.NumBytesRead())
	}
	if record.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrCorruptSnapshot, record.Version, snapshotVersion)
	}

	for i, entry := range record.Entries {
		if entry.ID.value != int64(i+1) {
			return nil, fmt.Errorf("%w: entry %d has id %s", ErrCorruptSnapshot, i, entry.ID)
		}
		if entry.Label == "" {
			return nil, fmt.Errorf("%w: id %s has an empty label", ErrCorruptSnapshot, entry.ID)
		}
		digest := LabelDigest(entry.Label)
		if digest != entry.Digest {
			return nil, fmt.Errorf("%w: digest mismatch for id %s", ErrCorruptSnapshot, entry.ID)
		}
		if _, duplicate := hasher.byDigest[digest]; duplicate {
			return nil, fmt.Errorf("%w: duplicate label at id %s", ErrCorruptSnapshot, entry.ID)
		}
		hasher.byDigest[digest] = entry.ID
		hasher.labels = append(hasher.labels, entry.Label)
	}

	hasher.logger.Debug("loaded string id snapshot",
		"entries", len(hasher.labels),
		"compression", tag,
	)
	return hasher, nil
}

// LoadFile loads the snapshot at path. A missing file yields an empty
// table.
func LoadFile(path string, logger *slog.Logger) (*Hasher, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewHasher(logger), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening string id table: %w", err)
	}
	defer file.Close()

	hasher, err := Load(file, logger)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return hasher, nil
}

// SaveFile writes the table to path. The snapshot is written to a
// temporary file in the same directory and renamed into place, so
// readers never see a partial table.
func (h *Hasher) SaveFile(path string, tag compress.Tag) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating string id table directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(directory, "ids-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp string id table: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := h.Save(tmpFile, tag); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp string id table: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming string id table into place: %w", err)
	}
	success = true
	return nil
}
