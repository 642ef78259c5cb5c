// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import "errors"

// Validation failures are reported as one of the sentinel errors below,
// usually wrapped with the offending input for context. Match with
// errors.Is:
//
//	_, err := firepath.NewCollectionID("chat/rooms")
//	errors.Is(err, firepath.ErrContainsSlash) // true
//
// Descend operations that validate a caller-supplied raw string
// (CollectionPath.Doc, DocumentName.Collection, ...) additionally
// prefix the failure with which argument could not be converted
// ("document id conversion", "collection path conversion", ...); the
// underlying sentinel is still reachable through errors.Is.
var (
	// ErrContainsInvalidCharacter reports a byte outside the segment's
	// allowed character class (lowercase ASCII letters, digits, hyphen
	// for project and database ids).
	ErrContainsInvalidCharacter = errors.New("contains invalid character")

	// ErrContainsSlash reports a '/' inside a single path segment.
	ErrContainsSlash = errors.New("contains slash")

	// ErrEndsWithHyphen reports a project or database id ending in '-'.
	ErrEndsWithHyphen = errors.New("ends with hyphen")

	// ErrInvalidName reports a fixed literal segment mismatch in a
	// rooted name (the "projects", "databases", or "documents" marker).
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidNumberOfPathComponents reports a segment count that
	// cannot form the target type: wrong count for a rooted prefix, or
	// wrong parity for a fully-qualified collection/document name.
	ErrInvalidNumberOfPathComponents = errors.New("invalid number of path components")

	// ErrLengthOutOfBounds reports a byte length outside the type's
	// bounds (6-30 for project ids, 4-63 for database ids, 1-1500 for
	// collection/document ids, 1-6144 for full names).
	ErrLengthOutOfBounds = errors.New("length out of bounds")

	// ErrMatchesReservedIDPattern reports a reserved identifier: a
	// collection/document id both starting and ending with "__", or a
	// project id containing a reserved substring ("google", "null",
	// "undefined", "ssl").
	ErrMatchesReservedIDPattern = errors.New("matches reserved id pattern")

	// ErrNotContainsSlash reports a document path with no '/': a
	// document path always has an enclosing collection and can never be
	// a single segment.
	ErrNotContainsSlash = errors.New("does not contain slash")

	// ErrSinglePeriodOrDoublePeriods reports an id that is exactly "."
	// or "..".
	ErrSinglePeriodOrDoublePeriods = errors.New("single period or double periods")

	// ErrStartsWithNonLetter reports a project or database id whose
	// first byte is not a lowercase ASCII letter.
	ErrStartsWithNonLetter = errors.New("starts with non-letter")
)
