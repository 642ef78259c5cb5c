// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

const (
	// maxResourceIDLength is the maximum byte length of a collection or
	// document id.
	maxResourceIDLength = 1500

	// maxNameLength is the maximum byte length of any rooted name
	// string (database name, root document name, collection name,
	// document name).
	maxNameLength = 6144

	// Fixed literal segments of a rooted name:
	// projects/{project_id}/databases/{database_id}/documents.
	projectsLiteral  = "projects"
	databasesLiteral = "databases"
	documentsLiteral = "documents"

	// rootSegmentCount is the number of segments in a root document
	// name. The relative path of a fully-qualified name starts at this
	// segment index.
	rootSegmentCount = 5
)

// labelChars is the character class shared by project and database
// ids: lowercase ASCII letters, digits, hyphen.
var labelChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		labelChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		labelChars[c] = true
	}
	labelChars['-'] = true
}

func isLowerLetter(c byte) bool { return 'a' <= c && c <= 'z' }

// validateLabelID enforces the rules shared by project and database
// ids: byte length within [minLength, maxLength], characters restricted
// to labelChars, first byte a lowercase letter, last byte not a hyphen.
func validateLabelID(s, label string, minLength, maxLength int) error {
	if len(s) < minLength || len(s) > maxLength {
		return fmt.Errorf("%s %q is %d bytes, want %d-%d: %w", label, s, len(s), minLength, maxLength, ErrLengthOutOfBounds)
	}
	for i := 0; i < len(s); i++ {
		if !labelChars[s[i]] {
			return fmt.Errorf("%s %q has byte %q at position %d: %w", label, s, s[i], i, ErrContainsInvalidCharacter)
		}
	}
	if !isLowerLetter(s[0]) {
		return fmt.Errorf("%s %q: %w", label, s, ErrStartsWithNonLetter)
	}
	if s[len(s)-1] == '-' {
		return fmt.Errorf("%s %q: %w", label, s, ErrEndsWithHyphen)
	}
	return nil
}

// validateResourceID enforces the rules shared by collection and
// document ids: 1-1500 bytes, no '/', not "." or "..", and not both
// starting and ending with "__".
func validateResourceID(s, label string) error {
	if len(s) < 1 || len(s) > maxResourceIDLength {
		return fmt.Errorf("%s is %d bytes, want 1-%d: %w", label, len(s), maxResourceIDLength, ErrLengthOutOfBounds)
	}
	if strings.ContainsRune(s, '/') {
		return fmt.Errorf("%s %q: %w", label, s, ErrContainsSlash)
	}
	if s == "." || s == ".." {
		return fmt.Errorf("%s %q: %w", label, s, ErrSinglePeriodOrDoublePeriods)
	}
	if strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__") {
		return fmt.Errorf("%s %q: %w", label, s, ErrMatchesReservedIDPattern)
	}
	return nil
}

// splitRootedName splits a fully-qualified name string into its rooted
// prefix (the first rootSegmentCount segments) and relative path
// remainder, enforcing the shared length bound and the remainder's
// segment parity. wantOddRemainder selects collection-name parity
// (odd remainder segment count) over document-name parity (even,
// non-zero).
func splitRootedName(s, label string, wantOddRemainder bool) (root, relative string, err error) {
	if len(s) < 1 || len(s) > maxNameLength {
		return "", "", fmt.Errorf("%s is %d bytes, want 1-%d: %w", label, len(s), maxNameLength, ErrLengthOutOfBounds)
	}
	parts := strings.Split(s, "/")
	remainder := len(parts) - rootSegmentCount
	if remainder < 1 || (remainder%2 == 1) != wantOddRemainder {
		return "", "", fmt.Errorf("%s %q has %d path components: %w", label, s, len(parts), ErrInvalidNumberOfPathComponents)
	}
	root = strings.Join(parts[:rootSegmentCount], "/")
	relative = strings.Join(parts[rootSegmentCount:], "/")
	return root, relative, nil
}
