// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/toponame/lib/element"
)

// hexID is a ByteSource standing in for a hashed string id.
type hexID string

func (id hexID) Bytes() []byte { return []byte("#" + string(id)) }

func mustIndexed(t *testing.T, typ string, index int) element.Indexed {
	t.Helper()
	key, err := element.NewIndexed(typ, index)
	if err != nil {
		t.Fatalf("NewIndexed(%q, %d): %v", typ, index, err)
	}
	return key
}

func checkSplit(t *testing.T, name Name, wantBase, wantPostfix string) {
	t.Helper()
	if name.Base() != wantBase {
		t.Errorf("Base() = %q, want %q", name.Base(), wantBase)
	}
	if name.Postfix() != wantPostfix {
		t.Errorf("Postfix() = %q, want %q", name.Postfix(), wantPostfix)
	}
	if name.String() != wantBase+wantPostfix {
		t.Errorf("String() = %q, want %q", name.String(), wantBase+wantPostfix)
	}
}

func TestNewStripsPrefix(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "TEST", want: "TEST"},
		{text: ";TEST", want: "TEST"},
		{text: ";;TEST", want: ";TEST"},
		{text: ";", want: ""},
		{text: "", want: ""},
		{text: "Face6;:H1,F", want: "Face6;:H1,F"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name := New(tt.text)
			checkSplit(t, name, tt.want, "")
			if name.IsEmpty() != (tt.want == "") {
				t.Errorf("IsEmpty() = %v for %q", name.IsEmpty(), tt.want)
			}
		})
	}
	if New(";X").String() != New("X").String() {
		t.Error("prefixed and bare text produce different names")
	}
}

func TestFromIndexed(t *testing.T) {
	tests := []struct {
		typ   string
		index int
		want  string
	}{
		{typ: "Face", index: 6, want: "Face6"},
		{typ: "Edge", index: 0, want: "Edge"},
		{typ: "Vertex", index: 120, want: "Vertex120"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			key := mustIndexed(t, tt.typ, tt.index)
			name := FromIndexed(key)
			checkSplit(t, name, tt.want, "")

			back, ok := name.ToIndexed()
			if !ok {
				t.Fatalf("ToIndexed() failed for %q", name)
			}
			if back != key {
				t.Errorf("ToIndexed() = %v, want %v", back, key)
			}
		})
	}
}

func TestFromIDRef(t *testing.T) {
	name := FromIDRef(hexID("1a"))
	checkSplit(t, name, "#1a", "")
	if _, ok := name.ToIndexed(); ok {
		t.Error("ToIndexed() succeeded for a hashed name")
	}
}

func TestToIndexedRejectsPostfix(t *testing.T) {
	name := WithPostfix(New("Face6"), ";:H1,F")
	if key, ok := name.ToIndexed(); ok {
		t.Errorf("ToIndexed() = %v for a name with postfix", key)
	}
	if _, ok := New("Face6;x").ToIndexed(); ok {
		t.Error("ToIndexed() accepted a non-conforming base")
	}
	if _, ok := (Name{}).ToIndexed(); ok {
		t.Error("ToIndexed() accepted the empty name")
	}
}

func TestWithPostfix(t *testing.T) {
	name := WithPostfix(New("Face6"), ";:M2;FUS")
	checkSplit(t, name, "Face6", ";:M2;FUS")
	if name.PostfixStart() != 5 {
		t.Errorf("PostfixStart() = %d, want 5", name.PostfixStart())
	}
}

func TestSlice(t *testing.T) {
	source := WithPostfix(New("Face6"), ";:M2;FUS")

	tests := []struct {
		name        string
		start       int
		size        int
		wantBase    string
		wantPostfix string
	}{
		{name: "whole", start: 0, size: All, wantBase: "Face6", wantPostfix: ";:M2;FUS"},
		{name: "base-only", start: 0, size: 5, wantBase: "Face6", wantPostfix: ""},
		{name: "inside-base", start: 0, size: 3, wantBase: "Fac", wantPostfix: ""},
		{name: "from-middle-of-base", start: 2, size: All, wantBase: "ce6", wantPostfix: ";:M2;FUS"},
		{name: "inside-postfix", start: 9, size: All, wantBase: "", wantPostfix: ";FUS"},
		{name: "at-split", start: 5, size: 4, wantBase: "", wantPostfix: ";:M2"},
		{name: "past-end", start: 40, size: All, wantBase: "", wantPostfix: ""},
		{name: "oversized", start: 0, size: 100, wantBase: "Face6", wantPostfix: ";:M2;FUS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSplit(t, Slice(source, tt.start, tt.size), tt.wantBase, tt.wantPostfix)
		})
	}
}

func TestAppendString(t *testing.T) {
	var name Name
	name.AppendString("Face6")
	checkSplit(t, name, "Face6", "")

	name.AppendString(";:M2")
	name.AppendString(";FUS")
	checkSplit(t, name, "Face6", ";:M2;FUS")
}

func TestAppendName(t *testing.T) {
	history := WithPostfix(New("Edge1"), ";:H2,E")

	var name Name
	name.Append(history, 0, All)
	checkSplit(t, name, "Edge1", ";:H2,E")

	name.Append(New("Face2"), 0, All)
	checkSplit(t, name, "Edge1", ";:H2,EFace2")

	var tail Name
	tail.Append(history, 5, All)
	checkSplit(t, tail, "", ";:H2,E")
}

func TestAppendSelf(t *testing.T) {
	name := New("Face")
	name.Append(name, 0, All)
	if name.String() != "FaceFace" {
		t.Errorf("self append = %q, want %q", name.String(), "FaceFace")
	}
}

func TestPlusDoesNotMutate(t *testing.T) {
	base := New("Face6")
	extended := base.PlusString(";:M2")
	joined := base.Plus(New(";FUS"))

	if base.String() != "Face6" {
		t.Errorf("receiver mutated to %q", base.String())
	}
	checkSplit(t, extended, "Face6", ";:M2")
	if joined.String() != "Face6FUS" {
		t.Errorf("Plus() = %q, want %q", joined.String(), "Face6FUS")
	}

	var empty Name
	checkSplit(t, empty.PlusString("Face1"), "Face1", "")
}

func TestSet(t *testing.T) {
	name := WithPostfix(New("Face6"), ";:H1,F")
	name.Set(";Edge2")
	checkSplit(t, name, "Edge2", "")
}

func TestClear(t *testing.T) {
	name := WithPostfix(New("Face6"), ";:H1,F")
	shared := name.Copy()
	name.Clear()

	if !name.IsEmpty() || name.PostfixStart() != 0 {
		t.Errorf("Clear left %q at split %d", name.String(), name.PostfixStart())
	}
	checkSplit(t, shared, "Face6", ";:H1,F")

	name.AppendString("Vertex1")
	checkSplit(t, name, "Vertex1", "")
}

func TestCopyOnWrite(t *testing.T) {
	original := New("Face6")
	duplicate := original.Copy()

	if original.IsUnshared() || duplicate.IsUnshared() {
		t.Fatal("copies report unshared before any mutation")
	}
	if &original.Bytes()[0] != &duplicate.Bytes()[0] {
		t.Fatal("Copy cloned the buffer")
	}

	duplicate.AppendTag(1, 0, element.Face)

	if original.String() != "Face6" {
		t.Errorf("original = %q after mutating the copy", original.String())
	}
	if duplicate.String() != "Face6;:H1,F" {
		t.Errorf("copy = %q, want %q", duplicate.String(), "Face6;:H1,F")
	}
	if !original.IsUnshared() || !duplicate.IsUnshared() {
		t.Error("names still shared after the first mutation")
	}
}

func TestCopyReadsDoNotUnshare(t *testing.T) {
	original := WithPostfix(New("Face6"), ";:M2;FUS;:H1:8,F")
	duplicate := original.Copy()

	_ = duplicate.String()
	_ = duplicate.Base()
	_ = duplicate.Postfix()
	_ = duplicate.Find(PostfixTag, 0)
	_ = duplicate.RFind(PostfixTag, All)
	_, _ = duplicate.FindTag(DefaultTagMode)
	_ = duplicate.Compare(original)

	if duplicate.IsUnshared() {
		t.Error("read operations cloned the buffer")
	}
}

func TestCompare(t *testing.T) {
	names := []Name{
		New("Face6;:H1,F"),
		New("Edge1"),
		New("Face6"),
		New(""),
		New("Face10"),
		WithPostfix(New("Face"), "6"),
	}
	sorted := slices.Clone(names)
	slices.SortFunc(sorted, func(a, b Name) int { return a.Compare(b) })

	var got []string
	for _, name := range sorted {
		got = append(got, name.String())
	}
	want := []string{"", "Edge1", "Face10", "Face6", "Face6", "Face6;:H1,F"}
	if !slices.Equal(got, want) {
		t.Errorf("sorted = %q, want %q", got, want)
	}

	for _, a := range names {
		for _, b := range names {
			if a.Compare(b) != -b.Compare(a) {
				t.Errorf("Compare(%q, %q) is not antisymmetric", a, b)
			}
			if a.Compare(b) != bytes.Compare(a.Bytes(), b.Bytes()) {
				t.Errorf("Compare(%q, %q) disagrees with byte order", a, b)
			}
			if (a.Compare(b) < 0) != a.Less(b) {
				t.Errorf("Less(%q, %q) disagrees with Compare", a, b)
			}
			if (a.Compare(b) == 0) != a.Equal(b) {
				t.Errorf("Equal(%q, %q) disagrees with Compare", a, b)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	name := New("#94;:G0;XTR;:H19:8,F;:H1a,F;BND:-1:0;:H1b:10,F")
	text := name.String()

	if got, want := name.Find(PostfixTag, 0), strings.Index(text, PostfixTag); got != want {
		t.Errorf("Find = %d, want %d", got, want)
	}
	first := name.Find(PostfixTag, 0)
	if got, want := name.Find(PostfixTag, first+1), first+1+strings.Index(text[first+1:], PostfixTag); got != want {
		t.Errorf("Find from %d = %d, want %d", first+1, got, want)
	}
	if got := name.Find("nothing", 0); got != -1 {
		t.Errorf("Find(missing) = %d, want -1", got)
	}
	if got := name.Find(PostfixTag, 1000); got != -1 {
		t.Errorf("Find past end = %d, want -1", got)
	}

	last := strings.LastIndex(text, PostfixTag)
	if got := name.RFind(PostfixTag, All); got != last {
		t.Errorf("RFind = %d, want %d", got, last)
	}
	if got, want := name.RFind(PostfixTag, last-1), strings.LastIndex(text[:last-1+len(PostfixTag)], PostfixTag); got != want {
		t.Errorf("RFind before %d = %d, want %d", last, got, want)
	}
	if got := name.RFind(PostfixTag, last); got != last {
		t.Errorf("RFind at %d = %d, want %d", last, got, last)
	}

	if !name.HasPrefix("#94", 0) || !name.HasPrefix(";:G0", 3) || name.HasPrefix("#94", 1) {
		t.Error("HasPrefix mismatch")
	}
	if name.HasPrefix("", 1000) {
		t.Error("HasPrefix past end succeeded")
	}
	if !name.HasSuffix(":10,F") || name.HasSuffix(":10,E") {
		t.Error("HasSuffix mismatch")
	}
	if name.At(0) != '#' || name.Len() != len(text) {
		t.Error("At/Len mismatch")
	}
}

func TestWriteTo(t *testing.T) {
	var buffer bytes.Buffer
	name := WithPostfix(New("Face6"), ";:M2;FUS;:H1:8,F")
	written, err := name.WriteTo(&buffer)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if written != int64(name.Len()) || buffer.String() != name.String() {
		t.Errorf("WriteTo wrote %d bytes %q", written, buffer.String())
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name Name
		want []string
	}{
		{name: New("Face6"), want: nil},
		{name: Name{}, want: nil},
		{name: WithPostfix(New("Face6"), ";:M2;FUS;:H1:8,F"), want: []string{";:M2", ";FUS", ";:H1:8,F"}},
		{name: WithPostfix(New("#1a"), "x;:H2,E"), want: []string{"x", ";:H2,E"}},
		{name: WithPostfix(New("Edge1"), ";"), want: []string{";"}},
	}
	for _, tt := range tests {
		if got := tt.name.Segments(); !slices.Equal(got, tt.want) {
			t.Errorf("Segments(%q) = %q, want %q", tt.name.String(), got, tt.want)
		}
	}
}

func TestAssignmentIsIndependent(t *testing.T) {
	original := New("Face6")
	assigned := original
	assigned.AppendString(";:M2")

	if original.String() != "Face6" {
		t.Errorf("original = %q after appending to an assigned copy", original.String())
	}
	checkSplit(t, assigned, "Face6", ";:M2")

	// The writer keeps appending after a copy was taken.
	snapshot := assigned
	assigned.AppendString(";FUS")
	if snapshot.String() != "Face6;:M2" {
		t.Errorf("snapshot = %q after the writer appended", snapshot.String())
	}
	snapshot.AppendString(";:G0")
	if assigned.String() != "Face6;:M2;FUS" {
		t.Errorf("writer = %q after the snapshot appended", assigned.String())
	}
	if snapshot.String() != "Face6;:M2;:G0" {
		t.Errorf("snapshot = %q, want %q", snapshot.String(), "Face6;:M2;:G0")
	}
}

func TestValueParameterIsIndependent(t *testing.T) {
	stamp := func(name Name) string {
		name.AppendTag(1, 8, element.Face)
		return name.String()
	}
	caller := New("Edge1")
	caller.AppendString(";:M2")

	if got := stamp(caller); got != "Edge1;:M2;:H1:8,F" {
		t.Errorf("stamped = %q", got)
	}
	if caller.String() != "Edge1;:M2" {
		t.Errorf("caller = %q after a callee stamped its copy", caller.String())
	}

	names := []Name{caller, caller}
	names[0].AppendString(";D1")
	if names[1].String() != "Edge1;:M2" || caller.String() != "Edge1;:M2" {
		t.Errorf("slice elements share writes: %q, %q", names[1].String(), caller.String())
	}
}

func TestAppendGrowsInPlace(t *testing.T) {
	name := New("Face6")
	name.AppendString(";:M2")
	first := &name.Bytes()[0]
	name.AppendString(";")
	if &name.Bytes()[0] != first {
		t.Error("append to an unshared name moved its buffer")
	}
}
