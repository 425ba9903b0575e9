package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type slugKey struct {
	kind Kind
	slug string
}

// MemoryRepository is an in-memory content store for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	contents  map[uuid.UUID]*Content
	slugIndex map[slugKey]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory content repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		contents:  make(map[uuid.UUID]*Content),
		slugIndex: make(map[slugKey]uuid.UUID),
	}
}

// Create inserts the supplied record.
func (m *MemoryRepository) Create(_ context.Context, record *Content) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := record.Clone()
	m.contents[copied.ID] = copied
	m.slugIndex[slugKey{kind: copied.Kind, slug: copied.Slug}] = copied.ID
	return copied.Clone(), nil
}

// GetByID retrieves a record by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.contents[id]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: id.String()}
	}
	return rec.Clone(), nil
}

// GetBySlug retrieves a record by kind and slug.
func (m *MemoryRepository) GetBySlug(_ context.Context, kind Kind, slug string) (*Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slugKey{kind: kind, slug: slug}]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: slug}
	}
	return m.contents[id].Clone(), nil
}

// List returns every record, optionally filtered by kind.
func (m *MemoryRepository) List(_ context.Context, kinds ...Kind) ([]*Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Content, 0, len(m.contents))
	for _, rec := range m.contents {
		if len(kinds) > 0 && !kindMatches(rec.Kind, kinds) {
			continue
		}
		out = append(out, rec.Clone())
	}
	return out, nil
}

// Update replaces a stored record.
func (m *MemoryRepository) Update(_ context.Context, record *Content) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.contents[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: record.ID.String()}
	}
	delete(m.slugIndex, slugKey{kind: existing.Kind, slug: existing.Slug})

	copied := record.Clone()
	m.contents[copied.ID] = copied
	m.slugIndex[slugKey{kind: copied.Kind, slug: copied.Slug}] = copied.ID
	return copied.Clone(), nil
}

// Delete removes a record entirely.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.contents[id]
	if !ok {
		return &NotFoundError{Resource: "content", Key: id.String()}
	}
	delete(m.slugIndex, slugKey{kind: existing.Kind, slug: existing.Slug})
	delete(m.contents, id)
	return nil
}

func kindMatches(kind Kind, kinds []Kind) bool {
	for _, candidate := range kinds {
		if candidate == kind {
			return true
		}
	}
	return false
}
