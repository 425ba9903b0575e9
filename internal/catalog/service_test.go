package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/languages"
	"github.com/promptda/promptda/pkg/interfaces"
)

type fakeTranslationStore struct {
	upserts []map[string]FieldValues
	deletes int
	failErr error
}

func (f *fakeTranslationStore) UpsertTranslations(_ context.Context, _ Kind, _ uuid.UUID, translations map[string]FieldValues) (report interfaces.UpsertReport) {
	f.upserts = append(f.upserts, translations)
	for language := range translations {
		report.Outcomes = append(report.Outcomes, interfaces.UpsertOutcome{Language: language, Err: f.failErr})
	}
	return report
}

func (f *fakeTranslationStore) DeleteForContent(context.Context, Kind, uuid.UUID) error {
	f.deletes++
	return f.failErr
}

func seedLanguages() *languages.MemoryRepository {
	repo := languages.NewMemoryRepository()
	repo.Put(&languages.Language{ID: uuid.New(), Code: "en", Display: "English", IsDefault: true})
	repo.Put(&languages.Language{ID: uuid.New(), Code: "tr", Display: "Turkish"})
	return repo
}

func newTestService(store TranslationStore) (Service, *MemoryRepository) {
	contents := NewMemoryRepository()
	svc := NewService(contents, seedLanguages(), store,
		WithClock(func() time.Time { return time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC) }),
	)
	return svc, contents
}

func TestCreateValidatesRequest(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), CreateContentRequest{Kind: "bogus", Title: "x", AuthorID: uuid.New()})
	if err == nil {
		t.Fatal("expected validation error for bogus kind")
	}

	_, err = svc.Create(context.Background(), CreateContentRequest{Kind: KindPrompt, AuthorID: uuid.New()})
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}

	_, err = svc.Create(context.Background(), CreateContentRequest{Kind: KindPrompt, Title: "x"})
	if err == nil {
		t.Fatal("expected validation error for missing author")
	}
}

func TestCreateNormalizesSlugFromTitle(t *testing.T) {
	svc, _ := newTestService(nil)

	record, err := svc.Create(context.Background(), CreateContentRequest{
		Kind:     KindPrompt,
		Title:    "Hello World Prompt",
		AuthorID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if record.Slug != "hello-world-prompt" {
		t.Fatalf("expected slug derived from title, got %q", record.Slug)
	}
}

func TestCreateRejectsDuplicateSlugPerKind(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	author := uuid.New()
	if _, err := svc.Create(ctx, CreateContentRequest{Kind: KindPrompt, Slug: "greeting", Title: "One", AuthorID: author}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	if _, err := svc.Create(ctx, CreateContentRequest{Kind: KindPrompt, Slug: "greeting", Title: "Two", AuthorID: author}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
	// The same slug under another kind is a different address.
	if _, err := svc.Create(ctx, CreateContentRequest{Kind: KindBlog, Slug: "greeting", Title: "Three", AuthorID: author}); err != nil {
		t.Fatalf("cross-kind Create error: %v", err)
	}
}

func TestCreateRejectsUnknownTranslationLanguage(t *testing.T) {
	svc, _ := newTestService(&fakeTranslationStore{})

	_, err := svc.Create(context.Background(), CreateContentRequest{
		Kind:     KindPrompt,
		Title:    "Hello",
		AuthorID: uuid.New(),
		Translations: map[string]FieldValues{
			"xx": {FieldTitle: "???"},
		},
	})
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestCreateAppliesTranslationsBestEffort(t *testing.T) {
	store := &fakeTranslationStore{failErr: errors.New("store down")}
	svc, contents := newTestService(store)

	record, err := svc.Create(context.Background(), CreateContentRequest{
		Kind:     KindPrompt,
		Title:    "Hello",
		AuthorID: uuid.New(),
		Translations: map[string]FieldValues{
			"tr": {FieldTitle: "Merhaba"},
		},
	})
	if err != nil {
		t.Fatalf("Create must not fail on translation store errors, got %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected one upsert call, got %d", len(store.upserts))
	}
	if _, getErr := contents.GetByID(context.Background(), record.ID); getErr != nil {
		t.Fatalf("expected record persisted, got %v", getErr)
	}
}

func TestUpdateAppliesPointerFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	record, err := svc.Create(ctx, CreateContentRequest{
		Kind:        KindBlog,
		Title:       "Original",
		Description: "Original description",
		AuthorID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	title := "Updated"
	updated, err := svc.Update(ctx, UpdateContentRequest{ID: record.ID, Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "Updated" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Description != "Original description" {
		t.Fatalf("nil pointer must leave field untouched, got %q", updated.Description)
	}
}

func TestDeleteClearsTranslations(t *testing.T) {
	ctx := context.Background()
	store := &fakeTranslationStore{}
	svc, contents := newTestService(store)

	record, err := svc.Create(ctx, CreateContentRequest{Kind: KindPrompt, Title: "Hello", AuthorID: uuid.New()})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if store.deletes != 1 {
		t.Fatalf("expected translation cleanup, got %d calls", store.deletes)
	}
	if _, err := contents.GetByID(ctx, record.ID); err == nil {
		t.Fatal("expected record removed")
	}
}

func TestDeleteToleratesTranslationCleanupFailure(t *testing.T) {
	ctx := context.Background()
	store := &fakeTranslationStore{failErr: errors.New("store down")}
	svc, _ := newTestService(store)

	record, err := svc.Create(ctx, CreateContentRequest{Kind: KindPrompt, Title: "Hello", AuthorID: uuid.New()})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete must tolerate cleanup failures, got %v", err)
	}
}
