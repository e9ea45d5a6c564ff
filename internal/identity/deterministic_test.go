package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDDeterministic(t *testing.T) {
	a := RecordUUID("/es/about")
	b := RecordUUID("/es/about")
	if a == uuid.Nil {
		t.Fatalf("expected non-nil uuid")
	}
	if a != b {
		t.Fatalf("expected stable uuid, got %s and %s", a, b)
	}
}

func TestUUIDDistinctAcrossKeys(t *testing.T) {
	if RecordUUID("/about") == RecordUUID("/es/about") {
		t.Fatalf("distinct paths must derive distinct ids")
	}
	if RecordUUID("/about") == DefinitionUUID("/about") {
		t.Fatalf("record and definition namespaces must not collide")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if UUID("  ") != uuid.Nil {
		t.Fatalf("blank key must map to uuid.Nil")
	}
}
