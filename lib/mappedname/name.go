// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

import (
	"bytes"
	"io"
	"strings"

	"github.com/bureau-foundation/toponame/lib/cow"
	"github.com/bureau-foundation/toponame/lib/element"
)

// Name is a persistent element name: a byte string split into a base
// and a postfix of provenance segments. The zero value is the empty
// name.
//
// Read methods never copy the underlying buffer. Methods with pointer
// receivers only ever add bytes, and write into the buffer in place only
// past the end of every Name that views it. A Name copied by assignment
// or passed by value is therefore an independent value; Copy is the
// same thing with the sharing counted.
type Name struct {
	data         cow.Box[[]byte]
	view         []byte
	postfixStart int
}

// ByteSource is anything with a byte representation that can seed a
// name, such as a hashed string id.
type ByteSource interface {
	Bytes() []byte
}

func newName(data []byte, postfixStart int) Name {
	if len(data) == 0 {
		return Name{}
	}
	return Name{data: cow.New(data, bytes.Clone), view: data, postfixStart: postfixStart}
}

// New returns a name holding text with no postfix. A single leading
// element-map prefix is a formatting convention, not data, and is
// stripped.
func New(text string) Name {
	if len(text) >= len(ElementMapPrefix) && text[:len(ElementMapPrefix)] == ElementMapPrefix {
		text = text[len(ElementMapPrefix):]
	}
	return newName([]byte(text), len(text))
}

// FromIndexed returns the name of an indexed key: the kind followed by
// the index digits when the index is positive.
func FromIndexed(key element.Indexed) Name {
	text := key.String()
	return newName([]byte(text), len(text))
}

// FromIDRef returns a name holding the byte representation of ref.
func FromIDRef(ref ByteSource) Name {
	data := bytes.Clone(ref.Bytes())
	return newName(data, len(data))
}

// Slice returns the bytes [start, start+size) of other as a new name.
// A size of All selects everything from start on. The base/postfix
// split is carried over from other, shifted by start.
func Slice(other Name, start, size int) Name {
	var result Name
	result.Append(other, start, size)
	return result
}

// WithPostfix returns other followed by postfix, with postfix as the
// whole of the new name's postfix.
func WithPostfix(other Name, postfix string) Name {
	source := other.Bytes()
	data := make([]byte, 0, len(source)+len(postfix))
	data = append(data, source...)
	data = append(data, postfix...)
	return newName(data, len(source))
}

// Copy returns a name sharing this name's buffer. No bytes are copied
// until one of the two is mutated.
func (n Name) Copy() Name {
	return Name{data: n.data.Share(), view: n.view, postfixStart: n.postfixStart}
}

// Set replaces the contents with text, as New does.
func (n *Name) Set(text string) {
	n.data.Release()
	*n = New(text)
}

// grow appends piece. The buffer is extended in place when this Name
// created it and nothing has been written past this Name's end;
// otherwise the bytes move to a new buffer.
func (n *Name) grow(piece []byte) {
	if n.data.Exclusive() {
		buffer := n.data.Mut()
		if len(*buffer) == len(n.view) {
			*buffer = append(*buffer, piece...)
			n.view = *buffer
			return
		}
	}
	buffer := make([]byte, 0, max(2*len(n.view), len(n.view)+len(piece)))
	buffer = append(buffer, n.view...)
	buffer = append(buffer, piece...)
	n.data.Reset(buffer, bytes.Clone)
	n.view = buffer
}

// AppendString appends text. When the name was empty, text becomes its
// base.
func (n *Name) AppendString(text string) {
	if text == "" {
		return
	}
	if n.Len() == 0 {
		n.postfixStart = len(text)
	}
	n.grow([]byte(text))
}

// Append appends the bytes [start, start+size) of other; a size of All
// runs to the end of other. When the name was empty, its base/postfix
// split is taken from other, shifted by start.
func (n *Name) Append(other Name, start, size int) {
	source := other.Bytes()
	if start < 0 {
		start = 0
	}
	if start > len(source) {
		start = len(source)
	}
	end := len(source)
	if size >= 0 && size < end-start {
		end = start + size
	}
	piece := source[start:end]
	if len(piece) == 0 {
		return
	}
	if n.Len() == 0 {
		if other.postfixStart >= start {
			n.postfixStart = min(other.postfixStart-start, len(piece))
		} else {
			n.postfixStart = 0
		}
	}
	n.grow(piece)
}

// Plus returns a copy of n with other appended.
func (n Name) Plus(other Name) Name {
	result := n.Copy()
	result.Append(other, 0, All)
	return result
}

// PlusString returns a copy of n with text appended.
func (n Name) PlusString(text string) Name {
	result := n.Copy()
	result.AppendString(text)
	return result
}

// Clear empties the name.
func (n *Name) Clear() {
	n.data.Release()
	n.view = nil
	n.postfixStart = 0
}

// Release drops this name's reference to its buffer, leaving it empty.
// It is the same as Clear.
func (n *Name) Release() {
	n.Clear()
}

// Bytes returns the whole name. The slice aliases the shared buffer
// and must not be modified.
func (n Name) Bytes() []byte {
	return n.view
}

// String returns the whole name, base and postfix.
func (n Name) String() string {
	return string(n.view)
}

// Base returns the bytes before the postfix.
func (n Name) Base() string {
	return string(n.view[:n.postfixStart])
}

// Postfix returns the provenance segments after the base.
func (n Name) Postfix() string {
	return string(n.view[n.postfixStart:])
}

// PostfixStart returns the offset where the postfix begins.
func (n Name) PostfixStart() int {
	return n.postfixStart
}

// Len returns the length of the name in bytes.
func (n Name) Len() int {
	return len(n.view)
}

// IsEmpty reports whether the name has no bytes.
func (n Name) IsEmpty() bool {
	return n.Len() == 0
}

// At returns the byte at index i. It panics if i is out of range.
func (n Name) At(i int) byte {
	return n.view[i]
}

// IsUnshared reports whether no other Name shares this name's buffer.
func (n Name) IsUnshared() bool {
	return n.data.IsUnshared()
}

// Equal reports whether both names hold the same bytes. The
// base/postfix split does not take part in the comparison.
func (n Name) Equal(other Name) bool {
	return bytes.Equal(n.view, other.view)
}

// Compare compares the names byte by byte over base and postfix
// together and returns -1, 0, or +1. When one name is a prefix of the
// other, the shorter one sorts first.
func (n Name) Compare(other Name) int {
	return bytes.Compare(n.view, other.view)
}

// Less reports whether n sorts before other.
func (n Name) Less(other Name) bool {
	return n.Compare(other) < 0
}

// Find returns the offset of the first occurrence of target at or after
// start, or -1.
func (n Name) Find(target string, start int) int {
	data := n.view
	if start < 0 {
		start = 0
	}
	if start > len(data) {
		return -1
	}
	index := bytes.Index(data[start:], []byte(target))
	if index < 0 {
		return -1
	}
	return start + index
}

// RFind returns the offset of the last occurrence of target that begins
// at or before start, or -1. A start of All searches the whole name.
func (n Name) RFind(target string, start int) int {
	data := n.view
	limit := len(data)
	if start >= 0 && start+len(target) < limit {
		limit = start + len(target)
	}
	return bytes.LastIndex(data[:limit], []byte(target))
}

// HasPrefix reports whether the name, from offset on, begins with
// target.
func (n Name) HasPrefix(target string, offset int) bool {
	data := n.view
	if offset < 0 || offset > len(data) {
		return false
	}
	return bytes.HasPrefix(data[offset:], []byte(target))
}

// HasSuffix reports whether the name ends with target.
func (n Name) HasSuffix(target string) bool {
	return bytes.HasSuffix(n.view, []byte(target))
}

// ToIndexed converts a name without provenance back into its indexed
// key. It fails for names carrying a postfix and for bases that are not
// a kind followed by an optional index.
func (n Name) ToIndexed() (element.Indexed, bool) {
	data := n.view
	if n.postfixStart != len(data) {
		return element.Indexed{}, false
	}
	return element.ParseIndexed(string(data))
}

// WriteTo writes the whole name to w.
func (n Name) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(n.view)
	return int64(written), err
}

// Segments splits the postfix into its provenance segments, each
// starting with the element-map prefix. Text before the first prefix,
// if any, is returned as a segment of its own.
func (n Name) Segments() []string {
	postfix := n.Postfix()
	var segments []string
	for postfix != "" {
		next := strings.Index(postfix[1:], ElementMapPrefix)
		if next < 0 {
			segments = append(segments, postfix)
			break
		}
		segments = append(segments, postfix[:next+1])
		postfix = postfix[next+1:]
	}
	return segments
}
