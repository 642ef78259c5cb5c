// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import "strings"

// CollectionID is a validated collection identifier: 1-1500 bytes, no
// '/', not "." or "..", and not both starting and ending with "__"
// (reserved).
//
// CollectionID is an immutable value type, comparable with ==. The
// zero value is not valid; use IsZero to check.
type CollectionID struct {
	id string
}

// NewCollectionID validates and wraps a raw collection id string.
func NewCollectionID(s string) (CollectionID, error) {
	if err := validateResourceID(s, "collection id"); err != nil {
		return CollectionID{}, err
	}
	return CollectionID{id: s}, nil
}

// String returns the collection id string.
func (c CollectionID) String() string { return c.id }

// IsZero reports whether the CollectionID is the zero value.
func (c CollectionID) IsZero() bool { return c.id == "" }

// Compare orders collection ids lexicographically by their string
// value.
func (c CollectionID) Compare(o CollectionID) int { return strings.Compare(c.id, o.id) }

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (c CollectionID) MarshalText() ([]byte, error) {
	return []byte(c.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (c *CollectionID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*c = CollectionID{}
		return nil
	}
	parsed, err := NewCollectionID(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
