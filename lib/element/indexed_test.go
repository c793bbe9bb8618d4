// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package element_test

import (
	"testing"

	"github.com/bureau-foundation/toponame/lib/element"
)

func TestNewIndexed(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		index   int
		want    string
		wantErr bool
	}{
		{name: "face", typ: "Face", index: 3, want: "Face3"},
		{name: "unindexed", typ: "Edge", index: 0, want: "Edge"},
		{name: "underscore", typ: "My_Kind", index: 12, want: "My_Kind12"},
		{name: "empty-kind", typ: "", index: 1, wantErr: true},
		{name: "digit-in-kind", typ: "Face1", index: 1, wantErr: true},
		{name: "negative", typ: "Face", index: -1, wantErr: true},
		{name: "separator-in-kind", typ: "Fa;ce", index: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := element.NewIndexed(tt.typ, tt.index)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", key)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key.String() != tt.want {
				t.Errorf("String() = %q, want %q", key.String(), tt.want)
			}
			if key.Type() != tt.typ || key.Index() != tt.index {
				t.Errorf("got (%q, %d), want (%q, %d)", key.Type(), key.Index(), tt.typ, tt.index)
			}
		})
	}
}

func TestParseIndexed(t *testing.T) {
	tests := []struct {
		text      string
		wantType  string
		wantIndex int
		wantOK    bool
	}{
		{text: "Face6", wantType: "Face", wantIndex: 6, wantOK: true},
		{text: "Vertex", wantType: "Vertex", wantOK: true},
		{text: "Edge120", wantType: "Edge", wantIndex: 120, wantOK: true},
		{text: "", wantOK: false},
		{text: "12", wantOK: false},
		{text: "Face0", wantOK: false},
		{text: "Face03", wantOK: false},
		{text: "Face3a", wantOK: false},
		{text: "Face6;:H1,F", wantOK: false},
		{text: "Face99999999999999999999999", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			key, ok := element.ParseIndexed(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseIndexed(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				if !key.IsNull() {
					t.Errorf("failed parse returned non-null key %v", key)
				}
				return
			}
			if key.Type() != tt.wantType || key.Index() != tt.wantIndex {
				t.Errorf("got (%q, %d), want (%q, %d)", key.Type(), key.Index(), tt.wantType, tt.wantIndex)
			}
			if key.String() != tt.text {
				t.Errorf("String() = %q, want %q", key.String(), tt.text)
			}
		})
	}
}

func TestTypeChar(t *testing.T) {
	key, err := element.NewIndexed("Face", 1)
	if err != nil {
		t.Fatalf("NewIndexed: %v", err)
	}
	if key.TypeChar() != element.Face {
		t.Errorf("TypeChar() = %q, want %q", key.TypeChar(), element.Face)
	}
	if element.KindOf(key.TypeChar()) != "Face" {
		t.Errorf("KindOf(%q) = %q, want Face", key.TypeChar(), element.KindOf(key.TypeChar()))
	}
	if (element.Indexed{}).TypeChar() != 0 {
		t.Error("null key has a type char")
	}
	if element.KindOf('X') != "" {
		t.Error("KindOf('X') is not empty")
	}
}
