// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"

	"github.com/firepath-foundation/firepath"
)

// watchRecord is a representative stored record carrying resource
// names alongside plain fields.
type watchRecord struct {
	Document firepath.DocumentName `json:"document"`
	Database firepath.DatabaseName `json:"database"`
	Revision int                   `json:"revision"`
}

func testDocumentName(t *testing.T) firepath.DocumentName {
	t.Helper()
	name, err := firepath.ParseDocumentName("projects/my-project/databases/my-database/documents/chatrooms/chatroom1")
	if err != nil {
		t.Fatalf("ParseDocumentName: %v", err)
	}
	return name
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	document := testDocumentName(t)
	original := watchRecord{
		Document: document,
		Database: document.DatabaseName(),
		Revision: 42,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded watchRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Document.Equal(original.Document) {
		t.Errorf("document mismatch: got %q, want %q", decoded.Document.String(), original.Document.String())
	}
	if decoded.Database != original.Database {
		t.Errorf("database mismatch: got %q, want %q", decoded.Database.String(), original.Database.String())
	}
	if decoded.Revision != original.Revision {
		t.Errorf("revision mismatch: got %d, want %d", decoded.Revision, original.Revision)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	document := testDocumentName(t)
	record := watchRecord{Document: document, Database: document.DatabaseName(), Revision: 7}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(record)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding is not deterministic: %x != %x", first, again)
		}
	}
}

func TestNameEncodesAsTextString(t *testing.T) {
	document := testDocumentName(t)

	data, err := Marshal(document)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// A value encoded through TextMarshaler decodes into a plain
	// string as well as back into the typed form.
	var s string
	if err := Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal into string: %v", err)
	}
	if s != document.String() {
		t.Errorf("encoded text = %q, want %q", s, document.String())
	}
}

func TestUnmarshalRejectsInvalidName(t *testing.T) {
	// Odd segment count after the root: not a document name.
	data, err := Marshal("projects/my-project/databases/my-database/documents/chatrooms")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var document firepath.DocumentName
	if err := Unmarshal(data, &document); err == nil {
		t.Error("Unmarshal accepted an invalid document name")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	document := testDocumentName(t)
	records := []watchRecord{
		{Document: document, Database: document.DatabaseName(), Revision: 1},
		{Document: document, Database: document.DatabaseName(), Revision: 2},
	}

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buf)
	for i, want := range records {
		var got watchRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got.Revision != want.Revision || !got.Document.Equal(want.Document) {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}
