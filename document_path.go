// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath

import (
	"fmt"
	"strings"
)

// DocumentPath is a relative path ending on a document:
// {collection_path}/{document_id}. A document path always has an
// enclosing collection path; it can never be a single segment.
//
// DocumentPath is an immutable value type. Use Equal for equality.
// The zero value is not valid; use IsZero to check.
type DocumentPath struct {
	collectionPath CollectionPath
	documentID     DocumentID
}

// NewDocumentPath builds a document path from an already-validated
// enclosing collection path and document id.
func NewDocumentPath(collectionPath CollectionPath, documentID DocumentID) DocumentPath {
	return DocumentPath{collectionPath: collectionPath, documentID: documentID}
}

// ParseDocumentPath parses a relative document path. The segment after
// the last '/' is the document id; everything before it must parse as
// a collection path. A string with no '/' is rejected.
func ParseDocumentPath(s string) (DocumentPath, error) {
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return DocumentPath{}, fmt.Errorf("document path %q: %w", s, ErrNotContainsSlash)
	}
	collectionPath, err := ParseCollectionPath(s[:i])
	if err != nil {
		return DocumentPath{}, err
	}
	documentID, err := NewDocumentID(s[i+1:])
	if err != nil {
		return DocumentPath{}, err
	}
	return DocumentPath{collectionPath: collectionPath, documentID: documentID}, nil
}

// DocumentID returns the leaf document id.
func (p DocumentPath) DocumentID() DocumentID { return p.documentID }

// CollectionID returns the id of the collection containing the leaf
// document.
func (p DocumentPath) CollectionID() CollectionID { return p.collectionPath.CollectionID() }

// Parent returns the enclosing collection path. A document path is
// never root, so the parent always exists.
func (p DocumentPath) Parent() CollectionPath { return p.collectionPath }

// Collection descends into the relative collection path given as a raw
// string. The string may be a bare collection id ("messages") or a
// multi-segment collection path ("messages/message1/col"); in the
// latter case the parsed path is re-rooted under p, preserving every
// segment (see AppendCollectionPath).
func (p DocumentPath) Collection(collectionPath string) (CollectionPath, error) {
	parsed, err := ParseCollectionPath(collectionPath)
	if err != nil {
		return CollectionPath{}, fmt.Errorf("collection path conversion: %w", err)
	}
	return p.AppendCollectionPath(parsed), nil
}

// Doc descends into the relative document path given as a raw string,
// e.g. "messages/message1" or "messages/message1/col/doc". The parsed
// path is re-rooted under p (see AppendDocumentPath).
func (p DocumentPath) Doc(documentPath string) (DocumentPath, error) {
	parsed, err := ParseDocumentPath(documentPath)
	if err != nil {
		return DocumentPath{}, fmt.Errorf("document path conversion: %w", err)
	}
	return p.AppendDocumentPath(parsed), nil
}

// AppendCollectionPath re-roots an already-validated relative
// collection path under p: the result is p's chain followed by every
// segment of path, identifiers unchanged. Only the root of path moves;
// path itself came from a parse or prior navigation, so no segment is
// re-validated.
func (p DocumentPath) AppendCollectionPath(path CollectionPath) CollectionPath {
	// Unwind path into its identifiers, leaf first. documentIDs[k] is
	// the document segment directly above collectionIDs[k].
	var collectionIDs []CollectionID
	var documentIDs []DocumentID
	current := path
	for {
		collectionIDs = append(collectionIDs, current.collectionID)
		if current.parent == nil {
			break
		}
		documentIDs = append(documentIDs, current.parent.documentID)
		current = current.parent.collectionPath
	}

	// Rebuild from the root identifier down, attached to p.
	result := NewCollectionPath(&p, collectionIDs[len(collectionIDs)-1])
	for i := len(documentIDs) - 1; i >= 0; i-- {
		document := NewDocumentPath(result, documentIDs[i])
		result = NewCollectionPath(&document, collectionIDs[i])
	}
	return result
}

// AppendDocumentPath re-roots an already-validated relative document
// path under p, preserving every segment.
func (p DocumentPath) AppendDocumentPath(path DocumentPath) DocumentPath {
	return NewDocumentPath(p.AppendCollectionPath(path.collectionPath), path.documentID)
}

// String returns the canonical slash-delimited form.
func (p DocumentPath) String() string {
	return p.collectionPath.String() + "/" + p.documentID.String()
}

// IsZero reports whether the DocumentPath is the zero value.
func (p DocumentPath) IsZero() bool { return p.collectionPath.IsZero() && p.documentID.IsZero() }

// Equal reports structural equality via the canonical string form.
func (p DocumentPath) Equal(o DocumentPath) bool { return p.String() == o.String() }

// Compare orders document paths lexicographically by their canonical
// string form.
func (p DocumentPath) Compare(o DocumentPath) int {
	return strings.Compare(p.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler. A zero value marshals
// as empty text.
func (p DocumentPath) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return []byte{}, nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the zero value.
func (p *DocumentPath) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = DocumentPath{}
		return nil
	}
	parsed, err := ParseDocumentPath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
