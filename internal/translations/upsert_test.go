package translations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/catalog"
)

type upsertFailingRepository struct {
	*MemoryRepository
	failLanguage string
	failErr      error
}

func (f *upsertFailingRepository) Upsert(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, language string, values catalog.FieldValues) (*Translation, bool, error) {
	if NormalizeLanguage(language) == f.failLanguage {
		return nil, false, f.failErr
	}
	return f.MemoryRepository.Upsert(ctx, kind, contentID, language, values)
}

func TestUpsertTranslationsMergesIntoExistingRow(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	if !report.AllApplied() {
		t.Fatalf("first upsert failed: %+v", report.Outcomes)
	}

	report = svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldDescription: "Dunya"},
	})
	if !report.AllApplied() {
		t.Fatalf("second upsert failed: %+v", report.Outcomes)
	}

	row, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	title, ok := row.FieldValue(catalog.FieldTitle)
	if !ok || title != "Merhaba" {
		t.Fatalf("expected merged title to survive, got %q (ok=%v)", title, ok)
	}
	description, ok := row.FieldValue(catalog.FieldDescription)
	if !ok || description != "Dunya" {
		t.Fatalf("expected merged description, got %q (ok=%v)", description, ok)
	}

	rows, err := repo.ListForContent(ctx, catalog.KindPrompt, contentID)
	if err != nil {
		t.Fatalf("ListForContent error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(rows))
	}
}

func TestUpsertTranslationsBlankValueNeverClearsStoredField(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	if !report.AllApplied() {
		t.Fatalf("seed upsert failed: %+v", report.Outcomes)
	}

	report = svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {
			catalog.FieldTitle:       "   ",
			catalog.FieldDescription: "Dunya",
		},
	})
	if !report.AllApplied() {
		t.Fatalf("second upsert failed: %+v", report.Outcomes)
	}

	row, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if title, ok := row.FieldValue(catalog.FieldTitle); !ok || title != "Merhaba" {
		t.Fatalf("blank value must not clear the stored title, got %q (ok=%v)", title, ok)
	}
	if description, ok := row.FieldValue(catalog.FieldDescription); !ok || description != "Dunya" {
		t.Fatalf("expected description to be stored, got %q (ok=%v)", description, ok)
	}
}

func TestUpsertTranslationsSkipsBlankOnlyPayload(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldTitle: "  "},
	})
	if len(report.Skipped) != 1 || report.Skipped[0] != "tr" {
		t.Fatalf("expected a blank-only payload to be skipped, got %v", report.Skipped)
	}
	if _, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr"); err == nil {
		t.Fatal("expected no row for a blank-only payload")
	}
}

func TestMemoryRepositoryUpsertIgnoresBlankValues(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	contentID := uuid.New()
	if _, _, err := repo.Upsert(ctx, catalog.KindPrompt, contentID, "tr", catalog.FieldValues{
		catalog.FieldTitle: "Merhaba",
	}); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}
	if _, _, err := repo.Upsert(ctx, catalog.KindPrompt, contentID, "tr", catalog.FieldValues{
		catalog.FieldTitle: "",
	}); err != nil {
		t.Fatalf("blank upsert: %v", err)
	}

	row, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if title, ok := row.FieldValue(catalog.FieldTitle); !ok || title != "Merhaba" {
		t.Fatalf("expected the stored title to survive, got %q (ok=%v)", title, ok)
	}
}

func TestUpsertTranslationsSkipsBaseLanguage(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"en": {catalog.FieldTitle: "Hello"},
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	if len(report.Skipped) != 1 || report.Skipped[0] != "en" {
		t.Fatalf("expected base language to be skipped, got %v", report.Skipped)
	}
	if len(report.Outcomes) != 1 || report.Outcomes[0].Language != "tr" {
		t.Fatalf("expected a single tr outcome, got %+v", report.Outcomes)
	}

	if _, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "en"); err == nil {
		t.Fatal("expected no base-language row to be written")
	}
	if _, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr"); err != nil {
		t.Fatalf("expected tr row, got error: %v", err)
	}
}

func TestUpsertTranslationsContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("disk full")
	repo := &upsertFailingRepository{
		MemoryRepository: NewMemoryRepository(),
		failLanguage:     "de",
		failErr:          storeErr,
	}
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"de": {catalog.FieldTitle: "Hallo"},
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	if report.AllApplied() {
		t.Fatal("expected a failed outcome")
	}
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Language != "de" || !errors.Is(failed[0].Err, storeErr) {
		t.Fatalf("expected de failure, got %+v", failed)
	}

	if _, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr"); err != nil {
		t.Fatalf("expected tr write to succeed despite de failure: %v", err)
	}
}

func TestUpsertTranslationsFiltersIneligibleFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindThread, contentID, map[string]catalog.FieldValues{
		"tr": {
			catalog.FieldTitle:      "Tartisma",
			catalog.FieldSEOContent: "never stored for threads",
		},
	})
	if !report.AllApplied() {
		t.Fatalf("upsert failed: %+v", report.Outcomes)
	}

	row, err := repo.FindOne(ctx, catalog.KindThread, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if _, ok := row.FieldValue(catalog.FieldSEOContent); ok {
		t.Fatal("seo content must not be stored for thread translations")
	}
	if title, ok := row.FieldValue(catalog.FieldTitle); !ok || title != "Tartisma" {
		t.Fatalf("expected title to be stored, got %q (ok=%v)", title, ok)
	}
}

func TestUpsertTranslationsSkipsBlankLanguageCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	report := svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"  ": {catalog.FieldTitle: "nowhere"},
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	if len(report.Skipped) != 1 {
		t.Fatalf("expected blank language code to be skipped, got %v", report.Skipped)
	}
	if len(report.Outcomes) != 1 || report.Outcomes[0].Language != "tr" {
		t.Fatalf("expected a single tr outcome, got %+v", report.Outcomes)
	}
}

func TestUpsertTranslationsDeterministicRowIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldTitle: "Merhaba"},
	})
	first, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}

	svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"TR": {catalog.FieldDescription: "Dunya"},
	})
	second, err := repo.FindOne(ctx, catalog.KindPrompt, contentID, "tr")
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same row identity, got %s vs %s", first.ID, second.ID)
	}
}

func TestDeleteForContentRemovesAllLanguages(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithBaseLanguage("en"))

	contentID := uuid.New()
	svc.UpsertTranslations(ctx, catalog.KindPrompt, contentID, map[string]catalog.FieldValues{
		"tr": {catalog.FieldTitle: "Merhaba"},
		"de": {catalog.FieldTitle: "Hallo"},
	})
	if err := svc.DeleteForContent(ctx, catalog.KindPrompt, contentID); err != nil {
		t.Fatalf("DeleteForContent error: %v", err)
	}

	rows, err := repo.ListForContent(ctx, catalog.KindPrompt, contentID)
	if err != nil {
		t.Fatalf("ListForContent error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows after delete, got %d", len(rows))
	}
}
