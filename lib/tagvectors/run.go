// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tagvectors

import (
	"fmt"

	"github.com/bureau-foundation/toponame/lib/mappedname"
)

// Result is the outcome of one vector.
type Result struct {
	Vector Vector
	Got    mappedname.Tag
	Found  bool

	// Err describes the mismatch; nil means the vector passed.
	Err error
}

// Check decodes the vector's input and compares it with the
// expectation.
func (v Vector) Check() Result {
	tag, found := mappedname.New(v.Input).FindTag(v.Mode())
	result := Result{Vector: v, Got: tag, Found: found}

	switch {
	case v.Expect == nil && found:
		result.Err = fmt.Errorf("decoded %s, want no tag", describe(tag))
	case v.Expect == nil:
		// Correctly rejected.
	case !found:
		result.Err = fmt.Errorf("no tag decoded, want %s", v.Expect)
	default:
		want := mappedname.Tag{
			Pos:     v.Expect.Pos,
			Value:   v.Expect.Tag,
			Len:     v.Expect.Len,
			Type:    v.Expect.Type[0],
			Postfix: tag.Postfix,
			Decimal: v.Expect.Decimal,
		}
		if tag != want {
			result.Err = fmt.Errorf("decoded %s, want %s", describe(tag), v.Expect)
		}
	}
	return result
}

// Run checks every vector in order.
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Vectors))
	for _, vector := range f.Vectors {
		results = append(results, vector.Check())
	}
	return results
}

// Failed counts the results with an error.
func Failed(results []Result) int {
	count := 0
	for _, result := range results {
		if result.Err != nil {
			count++
		}
	}
	return count
}

func (e *Expect) String() string {
	return fmt.Sprintf("pos=%d tag=%d len=%d type=%s decimal=%t", e.Pos, e.Tag, e.Len, e.Type, e.Decimal)
}

func describe(tag mappedname.Tag) string {
	return fmt.Sprintf("pos=%d tag=%d len=%d type=%c decimal=%t", tag.Pos, tag.Value, tag.Len, tag.Type, tag.Decimal)
}
