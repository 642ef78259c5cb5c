// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// CollectionName is the fully-qualified name of a collection:
// {root_document_name}/{collection_path}.
//
// CollectionName is an immutable value type. Use Equal for equality.
// The zero value is not valid; use IsZero to check.
type CollectionName struct {
	root RootDocumentName
	path CollectionPath
}

// NewCollectionName attaches an already-validated relative collection
// path to a root document name.
func NewCollectionName(root RootDocumentName, path CollectionPath) CollectionName {
	return CollectionName{root: root, path: path}
}

// ParseCollectionName parses a fully-qualified collection name: the
// first five segments are the root document name, the remainder (an
// odd number of segments, at least one) is the relative collection
// path. Each half is parsed by its own parser.
func ParseCollectionName(s string) (CollectionName, error) {
	rootPart, relativePart, err := splitRootedName(s, "collection name", true)
	if err != nil {
		return CollectionName{}, err
	}
	root, err := ParseRootDocumentName(rootPart)
	if err != nil {
		return CollectionName{}, err
	}
	path, err := ParseCollectionPath(relativePart)
	if err != nil {
		return CollectionName{}, err
	}
	return CollectionName{root: root, path: path}, nil
}

// CollectionID returns the leaf collection id.
func (n CollectionName) CollectionID() CollectionID { return n.path.CollectionID() }

// CollectionPath returns the relative path below the root.
func (n CollectionName) CollectionPath() CollectionPath { return n.path }

// RootDocumentName returns the root prefix.
func (n CollectionName) RootDocumentName() RootDocumentName { return n.root }

// DatabaseName returns the database this collection belongs to.
func (n CollectionName) DatabaseName() DatabaseName { return n.root.DatabaseName() }

// Doc descends into the document with the given raw id, validating it.
func (n CollectionName) Doc(documentID string) (DocumentName, error) {
	path, err := n.path.Doc(documentID)
	if err != nil {
		return DocumentName{}, err
	}
	return DocumentName{root: n.root, path: path}, nil
}

// DocID descends into the document with the given already-validated
// id.
func (n CollectionName) DocID(documentID DocumentID) DocumentName {
	return DocumentName{root: n.root, path: n.path.DocID(documentID)}
}

// Parent returns the fully-qualified name of the document enclosing
// this collection. ok is false for a root-level collection.
func (n CollectionName) Parent() (parent DocumentName, ok bool) {
	path, ok := n.path.Parent()
	if !ok {
		return DocumentName{}, false
	}
	return DocumentName{root: n.root, path: path}, true
}

// String returns the canonical slash-delimited form.
func (n CollectionName) String() string {
	return n.root.String() + "/" + n.path.String()
}

// IsZero reports whether the CollectionName is the zero value.
func (n CollectionName) IsZero() bool { return n.root.IsZero() && n.path.IsZero() }

// Equal reports structural equality via the canonical string form.
func (n CollectionName) Equal(o CollectionName) bool { return n.String() == o.String() }

// Compare orders collection names lexicographically by their canonical
// string form.
func (n CollectionName) Compare(o CollectionName) int {
	return strings.Compare(n.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (n CollectionName) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (n *CollectionName) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*n = CollectionName{}
		return nil
	}
	parsed, err := ParseCollectionName(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal collection name: %w", err)
	}
	*n = parsed
	return nil
}
