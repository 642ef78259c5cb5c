// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

// Package firepath provides strongly typed, immutable resource names
// for a hierarchical document database: collections nested under
// documents nested under a database root. Every path segment and every
// composite path is represented by a validated value type with a
// canonical slash-delimited string form.
//
// The type hierarchy mirrors the path grammar:
//
//   - Identifiers (a single validated segment): ProjectID, DatabaseID,
//     CollectionID, DocumentID.
//   - Relative paths (an alternating chain of collection and document
//     segments without the database root): CollectionPath,
//     DocumentPath.
//   - Rooted prefixes: DatabaseName
//     (projects/{project}/databases/{database}) and RootDocumentName
//     (the same with a trailing "documents" segment).
//   - Fully-qualified names (a rooted prefix plus a relative path):
//     CollectionName, DocumentName.
//
// All constructors and parsers validate their inputs and return errors
// for invalid names; the error kinds are the package-level sentinels in
// errors.go, detectable with errors.Is. Once constructed, a value is
// immutable: navigation methods (Doc, Collection, Parent,
// AppendCollectionPath, ...) produce new independent values and never
// mutate the receiver, so values may be shared freely across
// goroutines.
//
// The canonical serialization form is the slash-delimited string:
// parsing the String() of any valid value reproduces an equal value.
// JSON, YAML, and CBOR marshaling use this canonical form via
// encoding.TextMarshaler.
package firepath
