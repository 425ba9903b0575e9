package translations

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/identity"
)

type rowKey struct {
	kind     catalog.Kind
	content  uuid.UUID
	language string
}

// MemoryRepository is an in-memory translation store for scaffolding and tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[rowKey]*Translation
	now  func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[rowKey]*Translation),
		now:  time.Now,
	}
}

// FindOne returns the row for the composite key, or NotFoundError.
func (m *MemoryRepository) FindOne(_ context.Context, kind catalog.Kind, contentID uuid.UUID, language string) (*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := rowKey{kind: kind, content: contentID, language: NormalizeLanguage(language)}
	row, ok := m.rows[key]
	if !ok {
		return nil, &NotFoundError{Kind: kind, ContentID: contentID, Language: language}
	}
	return row.Clone(), nil
}

// Upsert merges the supplied values into the keyed row, creating it if needed.
func (m *MemoryRepository) Upsert(_ context.Context, kind catalog.Kind, contentID uuid.UUID, language string, values catalog.FieldValues) (*Translation, bool, error) {
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

	m.mu.Lock()
	defer m.mu.Unlock()

	key := rowKey{kind: kind, content: contentID, language: normalized}
	now := m.now()

	row, ok := m.rows[key]
	created := !ok
	if created {
		row = &Translation{
			ID:           identity.TranslationUUID(string(kind), contentID, normalized),
			Kind:         kind,
			ContentID:    contentID,
			LanguageCode: normalized,
			CreatedAt:    now,
		}
		m.rows[key] = row
	}

	applyFieldValues(row, values)
	row.UpdatedAt = now

	return row.Clone(), created, nil
}

// ListForContent returns the translation rows of a content record ordered by
// language code.
func (m *MemoryRepository) ListForContent(_ context.Context, kind catalog.Kind, contentID uuid.UUID) ([]*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Translation, 0)
	for key, row := range m.rows {
		if key.kind == kind && key.content == contentID {
			out = append(out, row.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LanguageCode < out[j].LanguageCode })
	return out, nil
}

// DeleteForContent removes every translation row of a content record.
func (m *MemoryRepository) DeleteForContent(_ context.Context, kind catalog.Kind, contentID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.rows {
		if key.kind == kind && key.content == contentID {
			delete(m.rows, key)
		}
	}
	return nil
}
