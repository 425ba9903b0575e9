package translations

import (
	"context"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/identity"
)

// BunRepository implements Repository against a Bun-backed database.
type BunRepository struct {
	repo repository.Repository[*Translation]
	now  func() time.Time
}

// NewBunRepository constructs a translation repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a translation repository with optional caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewTranslationRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunRepository{repo: base, now: time.Now}
}

func (r *BunRepository) FindOne(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, language string) (*Translation, error) {
	normalized := NormalizeLanguage(language)
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", string(kind))
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.content_id = ?", contentID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.language_code = ?", normalized)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, kind, contentID, language)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Kind: kind, ContentID: contentID, Language: language}
	}
	return records[0], nil
}

// Upsert loads the keyed row, merges the supplied fields, and writes it back;
// absent rows are inserted with a deterministic ID so racing writers converge.
func (r *BunRepository) Upsert(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, language string, values catalog.FieldValues) (*Translation, bool, error) {
	if !kind.Valid() {
		return nil, false, ErrKindInvalid
	}
	if contentID == uuid.Nil {
		return nil, false, ErrContentIDRequired
	}
	normalized := NormalizeLanguage(language)
	if normalized == "" {
		return nil, false, ErrLanguageRequired
	}

	now := r.now()
	existing, err := r.FindOne(ctx, kind, contentID, normalized)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, false, err
		}

		row := &Translation{
			ID:           identity.TranslationUUID(string(kind), contentID, normalized),
			Kind:         kind,
			ContentID:    contentID,
			LanguageCode: normalized,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		applyFieldValues(row, values)
		created, err := r.repo.Create(ctx, row)
		if err != nil {
			return nil, false, err
		}
		return created, true, nil
	}

	applyFieldValues(existing, values)
	existing.UpdatedAt = now

	updated, err := r.repo.Update(ctx, existing)
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

func (r *BunRepository) ListForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) ([]*Translation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.kind = ?", string(kind))
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.content_id = ?", contentID)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, kind, contentID, "")
	}
	return records, nil
}

func (r *BunRepository) DeleteForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) error {
	records, err := r.ListForContent(ctx, kind, contentID)
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := r.repo.Delete(ctx, &Translation{ID: record.ID}); err != nil {
			return err
		}
	}
	return nil
}

func mapRepositoryError(err error, kind catalog.Kind, contentID uuid.UUID, language string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Kind: kind, ContentID: contentID, Language: language}
	}
	return fmt.Errorf("translation repository error: %w", err)
}
