// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

// names is text shaped like a string-id table: long, repetitive.
func names(count int) []byte {
	var builder strings.Builder
	for i := range count {
		builder.WriteString("Face6;:M2;FUS;:H1:8,F;:U;CUT;:H")
		builder.WriteByte(byte('a' + i%26))
		builder.WriteString(",E\n")
	}
	return []byte(builder.String())
}

func noise(size int) []byte {
	random := rand.New(rand.NewPCG(1, 2))
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(random.Uint32())
	}
	return data
}

func TestTagNames(t *testing.T) {
	for _, tag := range []Tag{TagNone, TagLZ4, TagZstd, TagAuto} {
		parsed, err := ParseTag(tag.String())
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", tag.String(), err)
		}
		if parsed != tag {
			t.Errorf("ParseTag(%q) = %v, want %v", tag.String(), parsed, tag)
		}
	}
	if _, err := ParseTag("gzip"); err == nil {
		t.Error("ParseTag(gzip) succeeded")
	}
	if got := Tag(9).String(); got != "unknown(9)" {
		t.Errorf("Tag(9).String() = %q", got)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	data := names(200)
	for _, tag := range []Tag{TagNone, TagLZ4, TagZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			compressed, err := Compress(data, tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if tag != TagNone && len(compressed) >= len(data) {
				t.Errorf("compressed %d bytes to %d", len(data), len(compressed))
			}
			restored, err := Decompress(compressed, tag, len(data))
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(restored, data) {
				t.Error("round trip changed the data")
			}
		})
	}
}

func TestCompressIncompressible(t *testing.T) {
	data := noise(4096)
	for _, tag := range []Tag{TagLZ4, TagZstd} {
		if _, err := Compress(data, tag); !errors.Is(err, ErrIncompressible) {
			t.Errorf("Compress(noise, %v) error = %v, want ErrIncompressible", tag, err)
		}
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	data := names(50)
	for _, tag := range []Tag{TagNone, TagLZ4, TagZstd} {
		compressed, err := Compress(data, tag)
		if err != nil {
			t.Fatalf("Compress(%v): %v", tag, err)
		}
		if _, err := Decompress(compressed, tag, len(data)+1); err == nil {
			t.Errorf("Decompress(%v) accepted a wrong size", tag)
		}
	}
	if _, err := Decompress(nil, Tag(7), 0); err == nil {
		t.Error("Decompress accepted an unknown tag")
	}
	if _, err := Compress(data, TagAuto); err == nil {
		t.Error("Compress accepted TagAuto")
	}
}

func TestFrame(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		tag     Tag
		wantTag Tag
	}{
		{name: "zstd", data: names(100), tag: TagZstd, wantTag: TagZstd},
		{name: "lz4", data: names(100), tag: TagLZ4, wantTag: TagLZ4},
		{name: "none", data: names(3), tag: TagNone, wantTag: TagNone},
		{name: "noise-falls-back", data: noise(1024), tag: TagZstd, wantTag: TagNone},
		{name: "empty", data: nil, tag: TagLZ4, wantTag: TagNone},
		{name: "auto-text", data: names(200), tag: TagAuto, wantTag: TagZstd},
		{name: "auto-noise", data: noise(1024), tag: TagAuto, wantTag: TagNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, used, err := Frame(tt.data, tt.tag)
			if err != nil {
				t.Fatalf("Frame: %v", err)
			}
			if used != tt.wantTag {
				t.Errorf("Frame used %v, want %v", used, tt.wantTag)
			}
			data, stored, err := Unframe(frame)
			if err != nil {
				t.Fatalf("Unframe: %v", err)
			}
			if stored != used {
				t.Errorf("Unframe tag = %v, want %v", stored, used)
			}
			if !bytes.Equal(data, tt.data) {
				t.Error("frame round trip changed the data")
			}
		})
	}
}

func TestUnframeRejectsCorruption(t *testing.T) {
	frame, _, err := Frame(names(100), TagZstd)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	tests := []struct {
		name  string
		frame []byte
	}{
		{name: "empty", frame: nil},
		{name: "truncated-header", frame: []byte{byte(TagLZ4), 0x80}},
		{name: "oversized", frame: []byte{byte(TagNone), 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{name: "truncated-payload", frame: frame[:len(frame)/2]},
		{name: "unknown-tag", frame: append([]byte{9}, frame[1:]...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Unframe(tt.frame); err == nil {
				t.Error("Unframe accepted a corrupt frame")
			}
		})
	}
}

func TestSelect(t *testing.T) {
	if got := Select(nil); got != TagNone {
		t.Errorf("Select(nil) = %v, want none", got)
	}
	if got := Select(names(200)); got != TagZstd {
		t.Errorf("Select(text) = %v, want zstd", got)
	}
	if got := Select(noise(4096)); got != TagNone {
		t.Errorf("Select(noise) = %v, want none", got)
	}
}
