// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

import (
	"bytes"
	"strconv"
)

// TagMode selects how FindTag reports a tag.
type TagMode uint8

const (
	// TagRecursive walks back through zero-tag segments to the last
	// segment with a non-zero tag, and looks inside a segment's op-code
	// window for embedded tag segments when computing its length.
	TagRecursive TagMode = 1 << iota

	// TagNegative returns negative tags as they are written. Without
	// it, tags are returned as absolute values. Negative tags are used
	// to disambiguate elements.
	TagNegative
)

// DefaultTagMode is recursive, absolute-value decoding.
const DefaultTagMode = TagRecursive

// Tag is a decoded tag segment.
type Tag struct {
	// Pos is the offset of the segment's marker (";:H" or ";:T").
	Pos int

	// Value is the tag: the id of the object whose operation produced
	// the element.
	Value int64

	// Len is the length of the name that precedes the segment's op
	// codes. Slice(name, 0, Len) is the element's name before the
	// operation.
	Len int

	// Type is the element type character, e.g. 'F' for a face.
	Type byte

	// Postfix is the name from Pos to the end.
	Postfix string

	// Decimal is true for the legacy ";:T" encoding.
	Decimal bool
}

// FindTag decodes the last tag segment of the name. It returns false
// when the name carries no tag segment or the segment is malformed.
//
// In recursive mode a zero tag does not stop the search: the name
// before the segment's op codes is searched in turn until a non-zero
// tag turns up. The result then reports Pos and Postfix of the segment
// found first and Value, Len, and Type of the segment the walk ended
// on. If the walk finds nothing, the zero-tag segment itself is
// returned.
func (n Name) FindTag(mode TagMode) (Tag, bool) {
	return findTag(n.view, mode)
}

// Example, with the current generation marker ";:H":
//
//	#94;:G0;XTR;:H19:8,F;:H1a,F;BND:-1:0;:H1b:10,F
//	                    |              |   ^^ ^^
//	                    |              |   |   |
//	                    ---len = 0x10---  tag len
func findTag(data []byte, mode TagMode) (Tag, bool) {
	decimal := false
	pos := bytes.LastIndex(data, []byte(PostfixTag))
	if pos < 0 {
		pos = bytes.LastIndex(data, []byte(PostfixDecimalTag))
		if pos < 0 {
			return Tag{}, false
		}
		decimal = true
	}

	body := tagBody{buf: data[pos+len(PostfixTag):]}
	base := 16
	if decimal {
		base = 10
	}

	negative := body.accept('-')
	var tag int64
	var separator byte
	if !decimal && (body.peek() == ',' || body.peek() == ':') {
		// A zero tag is omitted in the current generation.
		separator = body.next()
	} else {
		value, ok := body.number(base)
		if !ok {
			return Tag{}, false
		}
		tag = value
		separator = body.next()
	}
	if negative {
		tag = -tag
	}

	var length int64
	var typeChar byte
	switch {
	case separator == ':':
		value, ok := body.number(base)
		if !ok {
			return Tag{}, false
		}
		length = value
		lengthSeparator := body.next()
		if lengthSeparator != ',' && !(decimal && lengthSeparator == ':') {
			return Tag{}, false
		}
		typeChar = body.next()
	case separator == ',' && !decimal:
		// No length field: the type character follows directly.
		typeChar = body.next()
	default:
		return Tag{}, false
	}
	if !isTypeChar(typeChar) || !body.done() {
		return Tag{}, false
	}
	// Both generations: a length reaching past the segment start would
	// make Len point outside the name.
	if length > int64(pos) {
		return Tag{}, false
	}

	window := int(length)
	precedingLen := window
	if !decimal {
		if window != 0 && mode&TagRecursive != 0 {
			window = embeddedWindow(data, pos, window)
		}
		// The hex length counts op-code characters before the segment;
		// turn it into the length of the name before them.
		precedingLen = pos - window
	}

	result := Tag{
		Pos:     pos,
		Value:   tag,
		Len:     precedingLen,
		Type:    typeChar,
		Postfix: string(data[pos:]),
		Decimal: decimal,
	}

	if tag == 0 && mode&TagRecursive != 0 {
		if inner, ok := findTag(data[:precedingLen], mode); ok {
			result.Value = inner.Value
			result.Len = inner.Len
			result.Type = inner.Type
			return result, true
		}
	}

	if result.Value < 0 && mode&TagNegative == 0 {
		result.Value = -result.Value
	}
	return result, true
}

// embeddedWindow narrows the op-code window [pos-window, pos) of a
// hierarchical name. When the window holds an embedded tag segment,
// only the op codes after that segment belong to this one:
//
//	#94;:G0;XTR;:H19:8,F;:H1a,F;BND:-1:0;:H1b:10,F
//	                    ^      ^        ^
//	                    next   end      pos
//
// The narrowed window is [end, pos), or empty when no op code follows
// the embedded segment.
func embeddedWindow(data []byte, pos, window int) int {
	next := bytes.LastIndex(data[pos-window:pos], []byte(PostfixTag))
	if next < 0 {
		return window
	}
	next += pos - window
	if next+1 >= pos {
		return 0
	}
	end := bytes.Index(data[next+1:pos], []byte(ElementMapPrefix))
	if end < 0 {
		return 0
	}
	return pos - (end + next + 1)
}

// tagBody is a cursor over the text following a tag marker.
type tagBody struct {
	buf []byte
	off int
}

func (b *tagBody) peek() byte {
	if b.off >= len(b.buf) {
		return 0
	}
	return b.buf[b.off]
}

func (b *tagBody) next() byte {
	c := b.peek()
	if c != 0 {
		b.off++
	}
	return c
}

func (b *tagBody) accept(c byte) bool {
	if b.peek() == c {
		b.off++
		return true
	}
	return false
}

func (b *tagBody) done() bool {
	return b.off == len(b.buf)
}

// number consumes an unsigned run of digits in base and returns its
// value. It fails on an empty run or overflow.
func (b *tagBody) number(base int) (int64, bool) {
	start := b.off
	for b.off < len(b.buf) && isDigit(b.buf[b.off], base) {
		b.off++
	}
	if b.off == start {
		return 0, false
	}
	value, err := strconv.ParseInt(string(b.buf[start:b.off]), base, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// isTypeChar accepts any printable, non-space byte that is not itself
// part of the segment grammar.
func isTypeChar(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	switch c {
	case ';', ':', ',', '-':
		return false
	}
	return true
}

// EncodeTag returns a current-generation tag segment. window is the
// number of op-code characters written between the name the operation
// started from and this segment. A zero tag and a zero window are
// omitted.
func EncodeTag(tag int64, window int, typeChar byte) string {
	buffer := make([]byte, 0, 24)
	buffer = append(buffer, PostfixTag...)
	if tag < 0 {
		buffer = append(buffer, '-')
		buffer = strconv.AppendUint(buffer, uint64(-tag), 16)
	} else if tag > 0 {
		buffer = strconv.AppendInt(buffer, tag, 16)
	}
	if window > 0 {
		buffer = append(buffer, ':')
		buffer = strconv.AppendInt(buffer, int64(window), 16)
	}
	buffer = append(buffer, ',', typeChar)
	return string(buffer)
}

// EncodeDecimalTag returns a legacy tag segment. Unlike EncodeTag,
// length is the length of the whole name before the postfix and both
// fields are always written.
func EncodeDecimalTag(tag int64, length int, typeChar byte) string {
	buffer := make([]byte, 0, 24)
	buffer = append(buffer, PostfixDecimalTag...)
	buffer = strconv.AppendInt(buffer, tag, 10)
	buffer = append(buffer, ':')
	buffer = strconv.AppendInt(buffer, int64(length), 10)
	buffer = append(buffer, ',', typeChar)
	return string(buffer)
}

// AppendTag stamps a current-generation tag segment onto the name.
func (n *Name) AppendTag(tag int64, window int, typeChar byte) {
	n.AppendString(EncodeTag(tag, window, typeChar))
}

// AppendOp stamps an op-code segment such as ";:M2" (marker PostfixMod,
// body "2") or ";FUS" (marker ElementMapPrefix, body "FUS").
func (n *Name) AppendOp(marker, body string) {
	n.AppendString(marker + body)
}
