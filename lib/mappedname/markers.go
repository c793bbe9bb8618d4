// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mappedname

// ElementMapPrefix marks the beginning of a mapped name and of every
// provenance segment within one. It never appears doubled.
const ElementMapPrefix = ";"

// MissingPrefix marks a reference whose element no longer exists.
const MissingPrefix = "?"

// Segment markers. Only PostfixTag and PostfixDecimalTag are parsed by
// this package; the rest are opaque op codes written by the element
// map.
const (
	PostfixTag         = ElementMapPrefix + ":H"
	PostfixDecimalTag  = ElementMapPrefix + ":T"
	PostfixExternalTag = ElementMapPrefix + ":X"
	PostfixChild       = ElementMapPrefix + ":C"
	PostfixIndex       = ElementMapPrefix + ":I"
	PostfixUpper       = ElementMapPrefix + ":U"
	PostfixLower       = ElementMapPrefix + ":L"
	PostfixMod         = ElementMapPrefix + ":M"
	PostfixGen         = ElementMapPrefix + ":G"
	PostfixModGen      = ElementMapPrefix + ":MG"
	PostfixDuplicate   = ElementMapPrefix + "D"
)

// All selects everything from a start offset to the end of a name, and
// tells RFind to search from the end.
const All = -1
