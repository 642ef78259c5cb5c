// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// DatabaseName is the rooted name of a database:
// projects/{project_id}/databases/{database_id}.
//
// DatabaseName is an immutable value type, comparable with ==. The
// zero value is not valid; use IsZero to check.
type DatabaseName struct {
	projectID  ProjectID
	databaseID DatabaseID
}

// NewDatabaseName combines an already-validated project id and
// database id.
func NewDatabaseName(projectID ProjectID, databaseID DatabaseID) DatabaseName {
	return DatabaseName{projectID: projectID, databaseID: databaseID}
}

// NewDefaultDatabaseName builds the name of the default database of
// the project given as a raw id string.
func NewDefaultDatabaseName(projectID string) (DatabaseName, error) {
	id, err := NewProjectID(projectID)
	if err != nil {
		return DatabaseName{}, err
	}
	return DatabaseName{projectID: id}, nil
}

// ParseDatabaseName parses a 4-segment database name, checking the
// "projects" and "databases" literal segments and validating the two
// variable segments.
func ParseDatabaseName(s string) (DatabaseName, error) {
	if len(s) < 1 || len(s) > maxNameLength {
		return DatabaseName{}, fmt.Errorf("database name is %d bytes, want 1-%d: %w", len(s), maxNameLength, ErrLengthOutOfBounds)
	}
	parts := strings.Split(s, "/")
	if len(parts) != 4 {
		return DatabaseName{}, fmt.Errorf("database name %q has %d path components, want 4: %w", s, len(parts), ErrInvalidNumberOfPathComponents)
	}
	if parts[0] != projectsLiteral || parts[2] != databasesLiteral {
		return DatabaseName{}, fmt.Errorf("database name %q: %w", s, ErrInvalidName)
	}
	projectID, err := NewProjectID(parts[1])
	if err != nil {
		return DatabaseName{}, err
	}
	databaseID, err := NewDatabaseID(parts[3])
	if err != nil {
		return DatabaseName{}, err
	}
	return DatabaseName{projectID: projectID, databaseID: databaseID}, nil
}

// ProjectID returns the project id component.
func (n DatabaseName) ProjectID() ProjectID { return n.projectID }

// DatabaseID returns the database id component.
func (n DatabaseName) DatabaseID() DatabaseID { return n.databaseID }

// RootDocumentName returns the document root of this database, the
// base all relative paths attach to.
func (n DatabaseName) RootDocumentName() RootDocumentName {
	return RootDocumentName{database: n}
}

// Collection builds the fully-qualified name of the collection at the
// given relative path (a bare id or a multi-segment path).
func (n DatabaseName) Collection(collectionPath string) (CollectionName, error) {
	return n.RootDocumentName().Collection(collectionPath)
}

// Doc builds the fully-qualified name of the document at the given
// relative path.
func (n DatabaseName) Doc(documentPath string) (DocumentName, error) {
	return n.RootDocumentName().Doc(documentPath)
}

// String returns the canonical form:
// projects/{project_id}/databases/{database_id}.
func (n DatabaseName) String() string {
	return projectsLiteral + "/" + n.projectID.String() + "/" + databasesLiteral + "/" + n.databaseID.String()
}

// IsZero reports whether the DatabaseName is the zero value. A name
// with a project id and the default database id is not zero.
func (n DatabaseName) IsZero() bool { return n.projectID.IsZero() }

// Compare orders database names lexicographically by their canonical
// string form.
func (n DatabaseName) Compare(o DatabaseName) int {
	return strings.Compare(n.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (n DatabaseName) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (n *DatabaseName) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*n = DatabaseName{}
		return nil
	}
	parsed, err := ParseDatabaseName(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
