package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RecordUUID derives the identifier for an emitted page record. Localized
// paths are unique across a build, which makes them a stable identity key.
func RecordUUID(localizedPath string) uuid.UUID {
	return UUID("go-localize:record:" + strings.TrimSpace(localizedPath))
}

// DefinitionUUID derives the identifier for a page definition.
func DefinitionUUID(originalPath string) uuid.UUID {
	return UUID("go-localize:definition:" + strings.TrimSpace(originalPath))
}
