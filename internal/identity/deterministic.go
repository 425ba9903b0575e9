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

// LanguageUUID derives the identity of a language row from its code.
func LanguageUUID(code string) uuid.UUID {
	return UUID("promptda:language:" + strings.ToLower(strings.TrimSpace(code)))
}

// TranslationUUID derives the identity of a translation row from its composite
// key. Racing upserts for the same (kind, content, language) triple therefore
// converge on a single row.
func TranslationUUID(kind string, contentID uuid.UUID, language string) uuid.UUID {
	return UUID("promptda:translation:" + strings.ToLower(strings.TrimSpace(kind)) + ":" +
		contentID.String() + ":" + strings.ToLower(strings.TrimSpace(language)))
}
