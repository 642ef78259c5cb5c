// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// CollectionPath is a relative path ending on a collection:
// {collection_id} or {document_path}/{collection_id}. A root-level
// collection has no parent document path.
//
// CollectionPath is an immutable value type. Its parent chain is held
// by owned indirection and never mutated, so values may be shared and
// copied freely. Use Equal for equality (the struct contains a
// pointer, so == compares identity, not structure). The zero value is
// not valid; use IsZero to check.
type CollectionPath struct {
	parent       *DocumentPath // nil for a root-level collection
	collectionID CollectionID
}

// NewCollectionPath builds a collection path from an already-validated
// parent document path (nil for a root-level collection) and
// collection id. The parent is copied; the new path does not alias the
// caller's value.
func NewCollectionPath(parent *DocumentPath, collectionID CollectionID) CollectionPath {
	path := CollectionPath{collectionID: collectionID}
	if parent != nil {
		p := *parent
		path.parent = &p
	}
	return path
}

// ParseCollectionPath parses a relative collection path. The segment
// after the last '/' is the collection id; everything before it, when
// present, must parse as a document path.
func ParseCollectionPath(s string) (CollectionPath, error) {
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		collectionID, err := NewCollectionID(s)
		if err != nil {
			return CollectionPath{}, err
		}
		return CollectionPath{collectionID: collectionID}, nil
	}
	parent, err := ParseDocumentPath(s[:i])
	if err != nil {
		return CollectionPath{}, err
	}
	collectionID, err := NewCollectionID(s[i+1:])
	if err != nil {
		return CollectionPath{}, err
	}
	return CollectionPath{parent: &parent, collectionID: collectionID}, nil
}

// CollectionID returns the leaf collection id.
func (p CollectionPath) CollectionID() CollectionID { return p.collectionID }

// Parent returns the enclosing document path. ok is false for a
// root-level collection.
func (p CollectionPath) Parent() (parent DocumentPath, ok bool) {
	if p.parent == nil {
		return DocumentPath{}, false
	}
	return *p.parent, true
}

// Doc descends into the document with the given raw id, validating it.
func (p CollectionPath) Doc(documentID string) (DocumentPath, error) {
	id, err := NewDocumentID(documentID)
	if err != nil {
		return DocumentPath{}, fmt.Errorf("document id conversion: %w", err)
	}
	return NewDocumentPath(p, id), nil
}

// DocID descends into the document with the given already-validated
// id.
func (p CollectionPath) DocID(documentID DocumentID) DocumentPath {
	return NewDocumentPath(p, documentID)
}

// String returns the canonical slash-delimited form.
func (p CollectionPath) String() string {
	if p.parent == nil {
		return p.collectionID.String()
	}
	return p.parent.String() + "/" + p.collectionID.String()
}

// IsZero reports whether the CollectionPath is the zero value.
func (p CollectionPath) IsZero() bool { return p.parent == nil && p.collectionID.IsZero() }

// Equal reports structural equality. Since ids cannot contain '/',
// two valid paths are structurally equal exactly when their canonical
// strings are equal.
func (p CollectionPath) Equal(o CollectionPath) bool { return p.String() == o.String() }

// Compare orders collection paths lexicographically by their canonical
// string form.
func (p CollectionPath) Compare(o CollectionPath) int {
	return strings.Compare(p.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (p CollectionPath) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return []byte{}, nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (p *CollectionPath) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = CollectionPath{}
		return nil
	}
	parsed, err := ParseCollectionPath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
