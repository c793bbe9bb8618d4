// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tagvectors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/toponame/lib/mappedname"
)

// File is a set of vectors.
type File struct {
	Description string   `json:"description,omitempty"`
	Vectors     []Vector `json:"vectors"`
}

// Vector is one decoding case.
type Vector struct {
	Name  string `json:"name"`
	Input string `json:"input"`

	// Negative and NoRecursive select the decode mode. The zero value
	// is the default mode.
	Negative    bool `json:"negative,omitempty"`
	NoRecursive bool `json:"no_recursive,omitempty"`

	// Expect is nil when the input must not decode.
	Expect *Expect `json:"expect"`
}

// Expect is the decoded tag a vector requires.
type Expect struct {
	Pos     int    `json:"pos"`
	Tag     int64  `json:"tag"`
	Len     int    `json:"len"`
	Type    string `json:"type"`
	Decimal bool   `json:"decimal,omitempty"`
}

// Mode returns the decode mode the vector selects.
func (v Vector) Mode() mappedname.TagMode {
	var mode mappedname.TagMode
	if !v.NoRecursive {
		mode |= mappedname.TagRecursive
	}
	if v.Negative {
		mode |= mappedname.TagNegative
	}
	return mode
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals and validates the vectors.
func Parse(data []byte) (*File, error) {
	stripped := jsonc.ToJSON(data)

	var file File
	if err := json.Unmarshal(stripped, &file); err != nil {
		return nil, fmt.Errorf("parsing tag vectors: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// ReadFile reads and parses a JSONC vectors file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Validate checks that every vector is named uniquely and that expected
// type fields hold exactly one character.
func (f *File) Validate() error {
	var errs []error
	if len(f.Vectors) == 0 {
		errs = append(errs, errors.New("no vectors"))
	}
	seen := make(map[string]bool, len(f.Vectors))
	for i, vector := range f.Vectors {
		if vector.Name == "" {
			errs = append(errs, fmt.Errorf("vector %d: name is required", i))
		} else if seen[vector.Name] {
			errs = append(errs, fmt.Errorf("vector %q: duplicate name", vector.Name))
		}
		seen[vector.Name] = true
		if vector.Expect != nil && len(vector.Expect.Type) != 1 {
			errs = append(errs, fmt.Errorf("vector %q: expect.type must be one character, got %q", vector.Name, vector.Expect.Type))
		}
	}
	return errors.Join(errs...)
}
