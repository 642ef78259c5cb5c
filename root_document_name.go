// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// RootDocumentName is the document root of a database:
// projects/{project_id}/databases/{database_id}/documents. It is the
// fixed-shape prefix every fully-qualified collection or document name
// starts with.
//
// RootDocumentName is an immutable value type, comparable with ==.
// The zero value is not valid; use IsZero to check.
type RootDocumentName struct {
	database DatabaseName
}

// NewRootDocumentName wraps an already-validated database name.
func NewRootDocumentName(database DatabaseName) RootDocumentName {
	return RootDocumentName{database: database}
}

// ParseRootDocumentName parses a 5-segment root document name,
// checking the "projects", "databases", and "documents" literal
// segments and validating the two variable segments.
func ParseRootDocumentName(s string) (RootDocumentName, error) {
	if len(s) < 1 || len(s) > maxNameLength {
		return RootDocumentName{}, fmt.Errorf("root document name is %d bytes, want 1-%d: %w", len(s), maxNameLength, ErrLengthOutOfBounds)
	}
	parts := strings.Split(s, "/")
	if len(parts) != rootSegmentCount {
		return RootDocumentName{}, fmt.Errorf("root document name %q has %d path components, want %d: %w", s, len(parts), rootSegmentCount, ErrInvalidNumberOfPathComponents)
	}
	if parts[0] != projectsLiteral || parts[2] != databasesLiteral || parts[4] != documentsLiteral {
		return RootDocumentName{}, fmt.Errorf("root document name %q: %w", s, ErrInvalidName)
	}
	projectID, err := NewProjectID(parts[1])
	if err != nil {
		return RootDocumentName{}, err
	}
	databaseID, err := NewDatabaseID(parts[3])
	if err != nil {
		return RootDocumentName{}, err
	}
	return RootDocumentName{database: NewDatabaseName(projectID, databaseID)}, nil
}

// DatabaseName returns the database this root belongs to.
func (r RootDocumentName) DatabaseName() DatabaseName { return r.database }

// Collection builds the fully-qualified name of the collection at the
// given relative path. The string may be a bare collection id
// ("chatrooms") or a multi-segment collection path
// ("chatrooms/chatroom1/messages").
func (r RootDocumentName) Collection(collectionPath string) (CollectionName, error) {
	path, err := ParseCollectionPath(collectionPath)
	if err != nil {
		return CollectionName{}, fmt.Errorf("collection path conversion: %w", err)
	}
	return NewCollectionName(r, path), nil
}

// Doc builds the fully-qualified name of the document at the given
// relative path, e.g. "chatrooms/chatroom1" or
// "chatrooms/chatroom1/messages/message1".
func (r RootDocumentName) Doc(documentPath string) (DocumentName, error) {
	path, err := ParseDocumentPath(documentPath)
	if err != nil {
		return DocumentName{}, fmt.Errorf("document path conversion: %w", err)
	}
	return NewDocumentName(r, path), nil
}

// String returns the canonical form:
// projects/{project_id}/databases/{database_id}/documents.
func (r RootDocumentName) String() string {
	return r.database.String() + "/" + documentsLiteral
}

// IsZero reports whether the RootDocumentName is the zero value.
func (r RootDocumentName) IsZero() bool { return r.database.IsZero() }

// Compare orders root document names lexicographically by their
// canonical string form.
func (r RootDocumentName) Compare(o RootDocumentName) int {
	return strings.Compare(r.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (r RootDocumentName) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (r *RootDocumentName) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = RootDocumentName{}
		return nil
	}
	parsed, err := ParseRootDocumentName(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
