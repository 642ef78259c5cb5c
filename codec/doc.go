// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Firepath's standard CBOR encoding
// configuration.
//
// Resource names and path values serialize to two formats:
//
//   - JSON for external interfaces: CLI output and configuration
//     files, through the encoding.TextMarshaler implementations on
//     the firepath types.
//   - CBOR for compact storage and wire transport of records that
//     embed resource names.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every consumer encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, so encoded names are safe to compare or hash.
//
// For buffer-oriented operations (files, cache entries):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets, pipes):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
package codec
