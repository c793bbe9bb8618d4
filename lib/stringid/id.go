// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stringid

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// idPrefix starts the text form of every id.
const idPrefix = "#"

// ID is a compact reference to a label in a Hasher. The zero value
// refers to nothing.
type ID struct {
	value int64
}

// Value returns the numeric id.
func (id ID) Value() int64 { return id.value }

// IsZero reports whether id refers to nothing.
func (id ID) IsZero() bool { return id.value == 0 }

// Bytes returns the text form, "#" followed by lowercase hex.
func (id ID) Bytes() []byte {
	return strconv.AppendInt([]byte(idPrefix), id.value, 16)
}

func (id ID) String() string { return string(id.Bytes()) }

// Compare orders ids by value.
func (id ID) Compare(other ID) int { return cmp.Compare(id.value, other.value) }

// ParseID parses the text form produced by Bytes.
func ParseID(text string) (ID, error) {
	digits, ok := strings.CutPrefix(text, idPrefix)
	if !ok || digits == "" || digits[0] == '-' || digits[0] == '+' {
		return ID{}, fmt.Errorf("invalid string id %q", text)
	}
	value, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return ID{}, fmt.Errorf("invalid string id %q: %w", text, err)
	}
	return ID{value: value}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) { return id.Bytes(), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
