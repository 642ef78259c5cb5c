// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import "strings"

// DocumentID is a validated document identifier. The rules are the
// same as CollectionID's: 1-1500 bytes, no '/', not "." or "..", and
// not both starting and ending with "__" (reserved).
//
// DocumentID is an immutable value type, comparable with ==. The zero
// value is not valid; use IsZero to check.
type DocumentID struct {
	id string
}

// NewDocumentID validates and wraps a raw document id string.
func NewDocumentID(s string) (DocumentID, error) {
	if err := validateResourceID(s, "document id"); err != nil {
		return DocumentID{}, err
	}
	return DocumentID{id: s}, nil
}

// String returns the document id string.
func (d DocumentID) String() string { return d.id }

// IsZero reports whether the DocumentID is the zero value.
func (d DocumentID) IsZero() bool { return d.id == "" }

// Compare orders document ids lexicographically by their string value.
func (d DocumentID) Compare(o DocumentID) int { return strings.Compare(d.id, o.id) }

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (d DocumentID) MarshalText() ([]byte, error) {
	return []byte(d.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (d *DocumentID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = DocumentID{}
		return nil
	}
	parsed, err := NewDocumentID(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
