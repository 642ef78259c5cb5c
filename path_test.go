// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package firepath_test

import (
	"errors"
	"testing"

	"github.com/firepath-foundation/firepath"
)

func TestParseCollectionPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "root-level", path: "chatrooms"},
		{name: "nested", path: "chatrooms/chatroom1/messages"},
		{name: "deeply-nested", path: "chatrooms/chatroom1/messages/message1/col"},
		{name: "empty", path: "", wantErr: firepath.ErrLengthOutOfBounds},
		{name: "even-segments", path: "chatrooms/chatroom1", wantErr: firepath.ErrNotContainsSlash},
		{name: "trailing-slash", path: "chatrooms/", wantErr: firepath.ErrNotContainsSlash},
		{name: "reserved-leaf", path: "chatrooms/chatroom1/__x__", wantErr: firepath.ErrMatchesReservedIDPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := firepath.ParseCollectionPath(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCollectionPath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCollectionPath(%q): %v", tt.path, err)
			}
			if path.String() != tt.path {
				t.Errorf("String() = %q, want %q", path.String(), tt.path)
			}
			reparsed, err := firepath.ParseCollectionPath(path.String())
			if err != nil {
				t.Fatalf("re-parse: %v", err)
			}
			if !reparsed.Equal(path) {
				t.Errorf("re-parse of %q is not equal to the original", tt.path)
			}
		})
	}
}

func TestParseDocumentPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "single-pair", path: "chatrooms/chatroom1"},
		{name: "two-pairs", path: "chatrooms/chatroom1/messages/message1"},
		{name: "no-slash", path: "chatrooms", wantErr: firepath.ErrNotContainsSlash},
		{name: "empty", path: "", wantErr: firepath.ErrNotContainsSlash},
		{name: "odd-segments", path: "chatrooms/chatroom1/messages", wantErr: firepath.ErrNotContainsSlash},
		{name: "empty-document-id", path: "chatrooms/", wantErr: firepath.ErrLengthOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := firepath.ParseDocumentPath(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDocumentPath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDocumentPath(%q): %v", tt.path, err)
			}
			if path.String() != tt.path {
				t.Errorf("String() = %q, want %q", path.String(), tt.path)
			}
		})
	}
}

func TestCollectionPathNavigation(t *testing.T) {
	path, err := firepath.ParseCollectionPath("chatrooms/chatroom1/messages")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}

	if got := path.CollectionID().String(); got != "messages" {
		t.Errorf("CollectionID() = %q, want %q", got, "messages")
	}

	parent, ok := path.Parent()
	if !ok {
		t.Fatal("Parent() ok = false for nested collection path")
	}
	if parent.String() != "chatrooms/chatroom1" {
		t.Errorf("Parent() = %q, want %q", parent.String(), "chatrooms/chatroom1")
	}

	document, err := path.Doc("message1")
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}
	if document.String() != "chatrooms/chatroom1/messages/message1" {
		t.Errorf("Doc() = %q, want %q", document.String(), "chatrooms/chatroom1/messages/message1")
	}

	// Doc with an invalid raw id wraps the id failure as a conversion
	// error; the sentinel stays reachable.
	if _, err := path.Doc("__x__"); !errors.Is(err, firepath.ErrMatchesReservedIDPattern) {
		t.Errorf("Doc(\"__x__\") error = %v, want %v", err, firepath.ErrMatchesReservedIDPattern)
	}

	root, err := firepath.ParseCollectionPath("chatrooms")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}
	if _, ok := root.Parent(); ok {
		t.Error("Parent() ok = true for root-level collection path")
	}
}

func TestCollectionPathDocID(t *testing.T) {
	path, err := firepath.ParseCollectionPath("chatrooms")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}
	id, err := firepath.NewDocumentID("chatroom1")
	if err != nil {
		t.Fatalf("NewDocumentID: %v", err)
	}
	want, err := firepath.ParseDocumentPath("chatrooms/chatroom1")
	if err != nil {
		t.Fatalf("ParseDocumentPath: %v", err)
	}
	if got := path.DocID(id); !got.Equal(want) {
		t.Errorf("DocID() = %q, want %q", got.String(), want.String())
	}
}

func TestDocumentPathNavigation(t *testing.T) {
	path, err := firepath.ParseDocumentPath("chatrooms/chatroom1/messages/message1")
	if err != nil {
		t.Fatalf("ParseDocumentPath: %v", err)
	}

	if got := path.DocumentID().String(); got != "message1" {
		t.Errorf("DocumentID() = %q, want %q", got, "message1")
	}
	if got := path.CollectionID().String(); got != "messages" {
		t.Errorf("CollectionID() = %q, want %q", got, "messages")
	}
	if got := path.Parent().String(); got != "chatrooms/chatroom1/messages" {
		t.Errorf("Parent() = %q, want %q", got, "chatrooms/chatroom1/messages")
	}

	collection, err := path.Collection("col")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if collection.String() != "chatrooms/chatroom1/messages/message1/col" {
		t.Errorf("Collection() = %q, want %q", collection.String(), "chatrooms/chatroom1/messages/message1/col")
	}
}

// Appending a multi-segment relative path re-roots its whole chain
// under the receiver: every identifier is preserved, only the root
// changes.
func TestDocumentPathReRooting(t *testing.T) {
	base, err := firepath.ParseDocumentPath("chatrooms/chatroom1")
	if err != nil {
		t.Fatalf("ParseDocumentPath: %v", err)
	}

	t.Run("collection-string", func(t *testing.T) {
		got, err := base.Collection("messages/message1/col")
		if err != nil {
			t.Fatalf("Collection: %v", err)
		}
		want, err := firepath.ParseCollectionPath("chatrooms/chatroom1/messages/message1/col")
		if err != nil {
			t.Fatalf("ParseCollectionPath: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("Collection() = %q, want %q", got.String(), want.String())
		}
	})

	t.Run("collection-typed", func(t *testing.T) {
		relative, err := firepath.ParseCollectionPath("messages/message1/col")
		if err != nil {
			t.Fatalf("ParseCollectionPath: %v", err)
		}
		got := base.AppendCollectionPath(relative)
		if got.String() != "chatrooms/chatroom1/messages/message1/col" {
			t.Errorf("AppendCollectionPath() = %q, want %q", got.String(), "chatrooms/chatroom1/messages/message1/col")
		}
		// The argument is unchanged: re-rooting builds a new chain.
		if relative.String() != "messages/message1/col" {
			t.Errorf("argument mutated to %q", relative.String())
		}
	})

	t.Run("document-string", func(t *testing.T) {
		got, err := base.Doc("messages/message1/col/doc")
		if err != nil {
			t.Fatalf("Doc: %v", err)
		}
		if got.String() != "chatrooms/chatroom1/messages/message1/col/doc" {
			t.Errorf("Doc() = %q, want %q", got.String(), "chatrooms/chatroom1/messages/message1/col/doc")
		}
	})

	t.Run("document-typed", func(t *testing.T) {
		relative, err := firepath.ParseDocumentPath("messages/message1")
		if err != nil {
			t.Fatalf("ParseDocumentPath: %v", err)
		}
		got := base.AppendDocumentPath(relative)
		if got.String() != "chatrooms/chatroom1/messages/message1" {
			t.Errorf("AppendDocumentPath() = %q, want %q", got.String(), "chatrooms/chatroom1/messages/message1")
		}
	})
}

func TestPathConstructors(t *testing.T) {
	collectionID, err := firepath.NewCollectionID("chatrooms")
	if err != nil {
		t.Fatalf("NewCollectionID: %v", err)
	}
	root := firepath.NewCollectionPath(nil, collectionID)
	if root.String() != "chatrooms" {
		t.Errorf("NewCollectionPath() = %q, want %q", root.String(), "chatrooms")
	}

	documentID, err := firepath.NewDocumentID("chatroom1")
	if err != nil {
		t.Fatalf("NewDocumentID: %v", err)
	}
	document := firepath.NewDocumentPath(root, documentID)
	if document.String() != "chatrooms/chatroom1" {
		t.Errorf("NewDocumentPath() = %q, want %q", document.String(), "chatrooms/chatroom1")
	}

	messagesID, err := firepath.NewCollectionID("messages")
	if err != nil {
		t.Fatalf("NewCollectionID: %v", err)
	}
	nested := firepath.NewCollectionPath(&document, messagesID)
	if nested.String() != "chatrooms/chatroom1/messages" {
		t.Errorf("NewCollectionPath() = %q, want %q", nested.String(), "chatrooms/chatroom1/messages")
	}
}

func TestPathEqual(t *testing.T) {
	a, err := firepath.ParseCollectionPath("chatrooms/chatroom1/messages")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}
	b, err := firepath.ParseCollectionPath("chatrooms/chatroom1/messages")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}
	c, err := firepath.ParseCollectionPath("chatrooms/chatroom2/messages")
	if err != nil {
		t.Fatalf("ParseCollectionPath: %v", err)
	}
	if !a.Equal(b) {
		t.Error("equal paths compare unequal")
	}
	if a.Equal(c) {
		t.Error("different paths compare equal")
	}
}
