package di

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/runtimeconfig"
	"github.com/promptda/promptda/internal/settings"
)

func testConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.I18N.Languages = []string{"en", "tr", "de"}
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestNewContainerDefaultsToMemory(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}
	if container.CatalogService() == nil {
		t.Fatal("expected a catalog service")
	}
	if container.TranslationService() == nil {
		t.Fatal("expected a translation service")
	}
	if container.LanguageService() == nil {
		t.Fatal("expected a language service")
	}
	if container.TranslationAdminService() == nil {
		t.Fatal("expected a translation admin service")
	}
	if container.MarkdownRenderer() == nil {
		t.Fatal("expected a markdown renderer")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.I18N.BaseLanguage = ""

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrBaseLanguageRequired) {
		t.Fatalf("expected ErrBaseLanguageRequired, got %v", err)
	}
}

func TestContainerSeedsConfiguredLanguages(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}

	ctx := context.Background()
	lang, err := container.LanguageService().ResolveByCode(ctx, "tr")
	if err != nil {
		t.Fatalf("ResolveByCode error: %v", err)
	}
	if lang.Code != "tr" {
		t.Fatalf("expected tr, got %q", lang.Code)
	}

	def, err := container.LanguageService().Default(ctx)
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if def.Code != "en" {
		t.Fatalf("expected en default, got %q", def.Code)
	}
}

func TestContainerEndToEndAuthorAndResolve(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}

	ctx := context.Background()
	record, err := container.CatalogService().Create(ctx, catalog.CreateContentRequest{
		Kind:        catalog.KindPrompt,
		Title:       "Hello",
		Description: "World",
		AuthorID:    uuid.New(),
		Translations: map[string]catalog.FieldValues{
			"tr": {catalog.FieldTitle: "Merhaba"},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	resolved, err := container.TranslationService().Resolve(ctx, record, record.Kind, record.ID, "tr")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved.Title != "Merhaba" || resolved.Description != "World" {
		t.Fatalf("resolution mismatch: %q / %q", resolved.Title, resolved.Description)
	}
}

func TestContainerAdminSettingsChangeResolution(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}

	ctx := context.Background()
	record, err := container.CatalogService().Create(ctx, catalog.CreateContentRequest{
		Kind:        catalog.KindPrompt,
		Title:       "Hello",
		Description: "World",
		AuthorID:    uuid.New(),
		Translations: map[string]catalog.FieldValues{
			"tr": {catalog.FieldTitle: "Merhaba"},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := container.TranslationAdminService().ApplySettings(ctx, settings.Settings{
		TranslationsEnabled: false,
	}); err != nil {
		t.Fatalf("ApplySettings error: %v", err)
	}

	resolved, err := container.TranslationService().Resolve(ctx, record, record.Kind, record.ID, "tr")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved.Title != "Hello" {
		t.Fatalf("expected base content while translations are off, got %q", resolved.Title)
	}

	if err := container.TranslationAdminService().ApplySettings(ctx, settings.Settings{
		TranslationsEnabled: true,
	}); err != nil {
		t.Fatalf("ApplySettings error: %v", err)
	}

	resolved, err = container.TranslationService().Resolve(ctx, record, record.Kind, record.ID, "tr")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved.Title != "Merhaba" {
		t.Fatalf("expected translation after re-enabling, got %q", resolved.Title)
	}
}

func TestContainerRequireTranslationsDrivesCompletenessCheck(t *testing.T) {
	cfg := testConfig()
	cfg.Features.RequireTranslations = true

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}

	ctx := context.Background()
	record, err := container.CatalogService().Create(ctx, catalog.CreateContentRequest{
		Kind:     catalog.KindPrompt,
		Title:    "Hello",
		AuthorID: uuid.New(),
		Translations: map[string]catalog.FieldValues{
			"tr": {catalog.FieldTitle: "Merhaba"},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	missing, err := container.TranslationService().CheckTranslations(ctx, record.Kind, record.ID, nil)
	if err != nil {
		t.Fatalf("CheckTranslations error: %v", err)
	}
	if len(missing) != 1 || missing[0] != "de" {
		t.Fatalf("expected missing [de], got %v", missing)
	}
}

func TestContainerStateReflectsFeatures(t *testing.T) {
	cfg := testConfig()
	cfg.Features.RequireTranslations = true
	cfg.Features.StrictTranslationLookups = true

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer error: %v", err)
	}
	state := container.SettingsState()
	if !state.Enabled() || !state.Required() || !state.StrictLookups() {
		t.Fatalf("expected feature toggles in state, got %+v", state.Snapshot())
	}
}
