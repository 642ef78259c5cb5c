// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// projectIDReservedSubstrings may not appear anywhere in a project id.
var projectIDReservedSubstrings = []string{"google", "null", "undefined", "ssl"}

// ProjectID is a validated project identifier: 6-30 bytes of lowercase
// ASCII letters, digits, and hyphens, starting with a letter, not
// ending with a hyphen, and containing none of the reserved substrings
// "google", "null", "undefined", "ssl".
//
// ProjectID is an immutable value type, comparable with ==. The zero
// value is not valid; use IsZero to check.
type ProjectID struct {
	id string
}

// NewProjectID validates and wraps a raw project id string.
func NewProjectID(s string) (ProjectID, error) {
	if err := validateLabelID(s, "project id", 6, 30); err != nil {
		return ProjectID{}, err
	}
	for _, reserved := range projectIDReservedSubstrings {
		if strings.Contains(s, reserved) {
			return ProjectID{}, fmt.Errorf("project id %q contains reserved substring %q: %w", s, reserved, ErrMatchesReservedIDPattern)
		}
	}
	return ProjectID{id: s}, nil
}

// String returns the project id string.
func (p ProjectID) String() string { return p.id }

// IsZero reports whether the ProjectID is the zero value.
func (p ProjectID) IsZero() bool { return p.id == "" }

// Compare orders project ids lexicographically by their string value.
func (p ProjectID) Compare(o ProjectID) int { return strings.Compare(p.id, o.id) }

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (p ProjectID) MarshalText() ([]byte, error) {
	return []byte(p.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (p *ProjectID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = ProjectID{}
		return nil
	}
	parsed, err := NewProjectID(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
