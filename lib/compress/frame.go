// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// maxFrameSize bounds the uncompressed size a header may claim, so a
// corrupt header cannot force a huge allocation.
const maxFrameSize = 1 << 30

// Frame compresses data with tag and prepends the frame header. The
// returned tag is the one actually used: the one Select picked for
// TagAuto, and TagNone when the data did not compress.
func Frame(data []byte, tag Tag) ([]byte, Tag, error) {
	switch {
	case len(data) == 0:
		tag = TagNone
	case tag == TagAuto:
		tag = Select(data)
	}
	payload, err := Compress(data, tag)
	if errors.Is(err, ErrIncompressible) {
		tag, payload = TagNone, data
	} else if err != nil {
		return nil, 0, err
	}

	frame := make([]byte, 0, 1+binary.MaxVarintLen64+len(payload))
	frame = append(frame, byte(tag))
	frame = binary.AppendUvarint(frame, uint64(len(data)))
	frame = append(frame, payload...)
	return frame, tag, nil
}

// Unframe decodes a frame written by Frame and returns the original
// data and the tag it was stored with.
func Unframe(frame []byte) ([]byte, Tag, error) {
	if len(frame) == 0 {
		return nil, 0, errors.New("compressed frame is empty")
	}
	tag := Tag(frame[0])
	size, n := binary.Uvarint(frame[1:])
	if n <= 0 {
		return nil, 0, errors.New("compressed frame: invalid size header")
	}
	if size > maxFrameSize {
		return nil, 0, fmt.Errorf("compressed frame: size %d exceeds limit %d", size, maxFrameSize)
	}
	data, err := Decompress(frame[1+n:], tag, int(size))
	if err != nil {
		return nil, 0, fmt.Errorf("compressed frame (%s): %w", tag, err)
	}
	return data, tag, nil
}
