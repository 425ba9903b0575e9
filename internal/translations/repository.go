package translations

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/promptda/promptda/internal/catalog"
)

var (
	ErrKindInvalid       = errors.New("translations: unknown content kind")
	ErrContentIDRequired = errors.New("translations: content id required")
	ErrLanguageRequired  = errors.New("translations: language code required")
)

// NotFoundError represents a missing translation row. Absence is the expected
// steady state; callers treat it as "fall back", never as a failure.
type NotFoundError struct {
	Kind      catalog.Kind
	ContentID uuid.UUID
	Language  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("translation (%s, %s, %s) not found", e.Kind, e.ContentID, e.Language)
}

// Repository abstracts storage for translation rows.
type Repository interface {
	// FindOne returns the row for the composite key, or NotFoundError.
	FindOne(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, language string) (*Translation, error)
	// Upsert merges the supplied field values into the row for the composite
	// key, creating it when absent. Fields not present in values survive from
	// prior saves, and blank values never clear a stored field. Reports
	// whether the row was created.
	Upsert(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, language string, values catalog.FieldValues) (*Translation, bool, error)
	// ListForContent returns every translation row of a content record.
	ListForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) ([]*Translation, error)
	// DeleteForContent removes every translation row of a content record.
	DeleteForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) error
}

// NewTranslationRepository creates a typed bun repository for translation rows.
func NewTranslationRepository(db *bun.DB) repository.Repository[*Translation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Translation]{
		NewRecord: func() *Translation { return &Translation{} },
		GetID: func(t *Translation) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Translation, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(t *Translation) string {
			if t == nil {
				return ""
			}
			return t.ID.String()
		},
	})
}
