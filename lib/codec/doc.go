// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR encoding configuration used to
// persist element names, reference chains, and string-id tables.
//
// Persisted names are compared byte for byte when a model is reloaded,
// so the encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same logical data always produces identical bytes.
//
// For buffer-oriented operations (snapshots, single records):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (a sequence of records in one file):
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// Types implementing encoding.TextMarshaler (stringid.ID, for example)
// are written as CBOR text strings. Types that need more than their
// text form, such as mappedname.Name with its base/postfix split,
// implement cbor.Marshaler on top of this package.
package codec
