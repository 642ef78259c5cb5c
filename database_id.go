// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import "strings"

// defaultDatabaseID is the literal name of the default database. It is
// always a valid database id regardless of the other rules.
const defaultDatabaseID = "(default)"

// DatabaseID is a validated database identifier: either the literal
// "(default)", or 4-63 bytes of lowercase ASCII letters, digits, and
// hyphens, starting with a letter and not ending with a hyphen.
//
// DatabaseID is an immutable value type, comparable with ==. Unlike
// the other identifier types its zero value IS valid: it is the
// default database. "(default)" is normalized to the zero value at
// construction so that equality by == holds between constructed and
// zero-value instances.
type DatabaseID struct {
	// id is empty for the default database.
	id string
}

// NewDatabaseID validates and wraps a raw database id string.
// "(default)" yields the zero value.
func NewDatabaseID(s string) (DatabaseID, error) {
	if s == defaultDatabaseID {
		return DatabaseID{}, nil
	}
	if err := validateLabelID(s, "database id", 4, 63); err != nil {
		return DatabaseID{}, err
	}
	return DatabaseID{id: s}, nil
}

// String returns the database id string; "(default)" for the zero
// value.
func (d DatabaseID) String() string {
	if d.id == "" {
		return defaultDatabaseID
	}
	return d.id
}

// IsDefault reports whether this is the default database.
func (d DatabaseID) IsDefault() bool { return d.id == "" }

// Compare orders database ids lexicographically by their string value
// (the default database compares as "(default)").
func (d DatabaseID) Compare(o DatabaseID) int {
	return strings.Compare(d.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. The zero value
// marshals as "(default)".
func (d DatabaseID) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both empty input
// and "(default)" produce the default database.
func (d *DatabaseID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = DatabaseID{}
		return nil
	}
	parsed, err := NewDatabaseID(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
