package languages

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepository is an in-memory language store for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	languages map[string]*Language
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		languages: make(map[string]*Language),
	}
}

// Put inserts or replaces a language.
func (m *MemoryRepository) Put(lang *Language) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *lang
	m.languages[strings.ToLower(lang.Code)] = &copied
}

// GetByCode resolves a language by code (case-insensitive).
func (m *MemoryRepository) GetByCode(_ context.Context, code string) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lang, ok := m.languages[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &NotFoundError{Code: code}
	}
	copied := *lang
	return &copied, nil
}

// List returns every stored language ordered by code.
func (m *MemoryRepository) List(_ context.Context) ([]*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Language, 0, len(m.languages))
	for _, lang := range m.languages {
		copied := *lang
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
