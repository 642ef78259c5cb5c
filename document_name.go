// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// DocumentName is the fully-qualified name of a document:
// {root_document_name}/{document_path}.
//
// DocumentName is an immutable value type. Use Equal for equality.
// The zero value is not valid; use IsZero to check.
type DocumentName struct {
	root RootDocumentName
	path DocumentPath
}

// NewDocumentName attaches an already-validated relative document path
// to a root document name.
func NewDocumentName(root RootDocumentName, path DocumentPath) DocumentName {
	return DocumentName{root: root, path: path}
}

// ParseDocumentName parses a fully-qualified document name: the first
// five segments are the root document name, the remainder (an even
// number of segments, at least two) is the relative document path.
func ParseDocumentName(s string) (DocumentName, error) {
	rootPart, relativePart, err := splitRootedName(s, "document name", false)
	if err != nil {
		return DocumentName{}, err
	}
	root, err := ParseRootDocumentName(rootPart)
	if err != nil {
		return DocumentName{}, err
	}
	path, err := ParseDocumentPath(relativePart)
	if err != nil {
		return DocumentName{}, err
	}
	return DocumentName{root: root, path: path}, nil
}

// DocumentID returns the leaf document id.
func (n DocumentName) DocumentID() DocumentID { return n.path.DocumentID() }

// CollectionID returns the id of the collection containing the leaf
// document.
func (n DocumentName) CollectionID() CollectionID { return n.path.CollectionID() }

// DocumentPath returns the relative path below the root.
func (n DocumentName) DocumentPath() DocumentPath { return n.path }

// RootDocumentName returns the root prefix.
func (n DocumentName) RootDocumentName() RootDocumentName { return n.root }

// DatabaseName returns the database this document belongs to.
func (n DocumentName) DatabaseName() DatabaseName { return n.root.DatabaseName() }

// Collection descends into the relative collection path given as a raw
// string (a bare id or a multi-segment path; segments are preserved,
// see DocumentPath.AppendCollectionPath).
func (n DocumentName) Collection(collectionPath string) (CollectionName, error) {
	path, err := n.path.Collection(collectionPath)
	if err != nil {
		return CollectionName{}, err
	}
	return CollectionName{root: n.root, path: path}, nil
}

// AppendCollectionPath descends into an already-validated relative
// collection path, re-rooting it under this document.
func (n DocumentName) AppendCollectionPath(path CollectionPath) CollectionName {
	return CollectionName{root: n.root, path: n.path.AppendCollectionPath(path)}
}

// Doc descends into the relative document path given as a raw string,
// e.g. "messages/message1" or "messages/message1/col/doc".
func (n DocumentName) Doc(documentPath string) (DocumentName, error) {
	path, err := n.path.Doc(documentPath)
	if err != nil {
		return DocumentName{}, err
	}
	return DocumentName{root: n.root, path: path}, nil
}

// AppendDocumentPath descends into an already-validated relative
// document path, re-rooting it under this document.
func (n DocumentName) AppendDocumentPath(path DocumentPath) DocumentName {
	return DocumentName{root: n.root, path: n.path.AppendDocumentPath(path)}
}

// Parent returns the fully-qualified name of the collection containing
// this document. A document is never root, so the parent always
// exists.
func (n DocumentName) Parent() CollectionName {
	return CollectionName{root: n.root, path: n.path.Parent()}
}

// ParentDocumentName climbs two levels: the document enclosing this
// document's collection. ok is false when the collection is at the
// root level.
func (n DocumentName) ParentDocumentName() (parent DocumentName, ok bool) {
	path, ok := n.path.Parent().Parent()
	if !ok {
		return DocumentName{}, false
	}
	return DocumentName{root: n.root, path: path}, true
}

// String returns the canonical slash-delimited form.
func (n DocumentName) String() string {
	return n.root.String() + "/" + n.path.String()
}

// IsZero reports whether the DocumentName is the zero value.
func (n DocumentName) IsZero() bool { return n.root.IsZero() && n.path.IsZero() }

// Equal reports structural equality via the canonical string form.
func (n DocumentName) Equal(o DocumentName) bool { return n.String() == o.String() }

// Compare orders document names lexicographically by their canonical
// string form.
func (n DocumentName) Compare(o DocumentName) int {
	return strings.Compare(n.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (n DocumentName) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (n *DocumentName) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*n = DocumentName{}
		return nil
	}
	parsed, err := ParseDocumentName(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal document name: %w", err)
	}
	*n = parsed
	return nil
}
