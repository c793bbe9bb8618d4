// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

import (
	"fmt"

	"github.com/bureau-foundation/toponame/lib/codec"
)

// nameRecord is the CBOR form of a Name. The text form alone cannot
// say where the base ends.
type nameRecord struct {
	Base    string `cbor:"base"`
	Postfix string `cbor:"postfix,omitempty"`
}

// MarshalText implements encoding.TextMarshaler with the whole name.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed
// as New does, so the result has no postfix.
func (n *Name) UnmarshalText(data []byte) error {
	n.Set(string(data))
	return nil
}

// MarshalCBOR implements cbor.Marshaler, keeping the base/postfix split.
func (n Name) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(nameRecord{Base: n.Base(), Postfix: n.Postfix()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (n *Name) UnmarshalCBOR(data []byte) error {
	var record nameRecord
	if err := codec.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("decoding mapped name: %w", err)
	}
	n.Clear()
	*n = newName([]byte(record.Base+record.Postfix), len(record.Base))
	return nil
}

// refRecord is the CBOR form of one RefChain entry.
type refRecord[R IDRef[R]] struct {
	Name Name `cbor:"name"`
	IDs  []R  `cbor:"ids,omitempty"`
}

// MarshalCBOR implements cbor.Marshaler as an array of entries.
func (c *RefChain[R]) MarshalCBOR() ([]byte, error) {
	records := make([]refRecord[R], 0, len(c.entries))
	for _, entry := range c.entries {
		records = append(records, refRecord[R]{Name: entry.Name, IDs: entry.IDs})
	}
	return codec.Marshal(records)
}

// UnmarshalCBOR implements cbor.Unmarshaler. Entries are appended as
// Append would, so empty names are dropped and id sets are compacted.
func (c *RefChain[R]) UnmarshalCBOR(data []byte) error {
	var records []refRecord[R]
	if err := codec.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decoding name reference chain: %w", err)
	}
	c.Clear()
	for _, record := range records {
		c.Append(record.Name, record.IDs)
	}
	return nil
}
