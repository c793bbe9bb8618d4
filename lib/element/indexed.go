// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"fmt"
	"strconv"
)

// Element type characters stamped into name tags.
const (
	Face   byte = 'F'
	Edge   byte = 'E'
	Vertex byte = 'V'
)

// KindOf returns the element kind for a type character, or "" when the
// character is not one of Face, Edge, or Vertex.
func KindOf(typeChar byte) string {
	switch typeChar {
	case Face:
		return "Face"
	case Edge:
		return "Edge"
	case Vertex:
		return "Vertex"
	default:
		return ""
	}
}

// Indexed is a kind plus index key such as "Face3". The zero value is
// the null key.
type Indexed struct {
	typ   string
	index int
}

// NewIndexed constructs a validated key. The kind must be one or more
// ASCII letters or underscores and the index must not be negative.
func NewIndexed(typ string, index int) (Indexed, error) {
	if typ == "" {
		return Indexed{}, fmt.Errorf("invalid indexed name: kind is empty")
	}
	for i := 0; i < len(typ); i++ {
		if !isKindByte(typ[i]) {
			return Indexed{}, fmt.Errorf("invalid indexed name: kind %q contains %q", typ, typ[i])
		}
	}
	if index < 0 {
		return Indexed{}, fmt.Errorf("invalid indexed name: index %d is negative", index)
	}
	return Indexed{typ: typ, index: index}, nil
}

// ParseIndexed parses the text form produced by [Indexed.String]: kind
// characters followed by an optional decimal index. Leading zeros are
// rejected so that every key has exactly one text form.
func ParseIndexed(text string) (Indexed, bool) {
	split := 0
	for split < len(text) && isKindByte(text[split]) {
		split++
	}
	if split == 0 {
		return Indexed{}, false
	}
	digits := text[split:]
	if digits == "" {
		return Indexed{typ: text}, true
	}
	if digits[0] == '0' {
		return Indexed{}, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Indexed{}, false
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return Indexed{}, false
	}
	return Indexed{typ: text[:split], index: index}, true
}

// Type returns the kind, e.g. "Face".
func (k Indexed) Type() string { return k.typ }

// Index returns the index, 0 for an unindexed key.
func (k Indexed) Index() int { return k.index }

// IsNull reports whether this is the zero-value key.
func (k Indexed) IsNull() bool { return k.typ == "" }

// TypeChar returns the first kind character, which is the type
// character used in name tags, or 0 for the null key.
func (k Indexed) TypeChar() byte {
	if k.typ == "" {
		return 0
	}
	return k.typ[0]
}

// String returns the kind followed by the index digits, if any.
func (k Indexed) String() string {
	if k.index == 0 {
		return k.typ
	}
	return k.typ + strconv.Itoa(k.index)
}

func isKindByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
