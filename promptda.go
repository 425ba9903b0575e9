package promptda

import (
	"errors"

	admintranslations "github.com/promptda/promptda/internal/admin/translations"
	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/di"
	"github.com/promptda/promptda/internal/languages"
	"github.com/promptda/promptda/internal/markdown"
	"github.com/promptda/promptda/internal/settings"
	"github.com/promptda/promptda/internal/translations"
	"github.com/promptda/promptda/pkg/interfaces"
)

var errNilModule = errors.New("promptda: module is not initialised")

// Kind discriminates content record variants.
type Kind = catalog.Kind

// Supported content kinds.
const (
	KindPrompt = catalog.KindPrompt
	KindScript = catalog.KindScript
	KindHook   = catalog.KindHook
	KindTool   = catalog.KindTool
	KindBlog   = catalog.KindBlog
	KindThread = catalog.KindThread
)

// Field names a translatable content attribute.
type Field = catalog.Field

// Translatable field names.
const (
	FieldTitle           = catalog.FieldTitle
	FieldDescription     = catalog.FieldDescription
	FieldBody            = catalog.FieldBody
	FieldMetaTitle       = catalog.FieldMetaTitle
	FieldMetaDescription = catalog.FieldMetaDescription
	FieldOGTitle         = catalog.FieldOGTitle
	FieldOGDescription   = catalog.FieldOGDescription
	FieldSEOContent      = catalog.FieldSEOContent
)

// FieldValues is a sparse per-language set of translated field values.
type FieldValues = catalog.FieldValues

// Content is the canonical base-language record.
type Content = catalog.Content

// CreateContentRequest exports the content authoring request.
type CreateContentRequest = catalog.CreateContentRequest

// UpdateContentRequest exports the content update request.
type UpdateContentRequest = catalog.UpdateContentRequest

// CatalogService exports the content authoring service contract.
type CatalogService = catalog.Service

// TranslationService exports the translation resolver contract.
type TranslationService = translations.Service

// TranslationMeta reports how a resolution request was satisfied.
type TranslationMeta = interfaces.TranslationMeta

// UpsertReport carries per-language translation write outcomes.
type UpsertReport = interfaces.UpsertReport

// UpsertOutcome is a single language's translation write outcome.
type UpsertOutcome = interfaces.UpsertOutcome

// Language is a registered display language.
type Language = languages.Language

// Settings are the runtime translation toggles.
type Settings = settings.Settings

// TranslationAdminService exports the settings admin helper contract.
type TranslationAdminService = *admintranslations.Service

// MarkdownRenderer exports the body renderer.
type MarkdownRenderer = *markdown.Renderer

// TranslatableFields returns the translatable-field list for a content kind.
func TranslatableFields(kind Kind) []Field {
	return catalog.TranslatableFields(kind)
}

// Module is the top level promptda runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a promptda module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the content authoring service.
func (m *Module) Catalog() CatalogService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CatalogService()
}

// Translations returns the translation resolver.
func (m *Module) Translations() TranslationService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TranslationService()
}

// Languages returns the public language registry.
func (m *Module) Languages() LanguageService {
	return newLanguageService(m)
}

// TranslationAdmin returns the settings admin helper service.
func (m *Module) TranslationAdmin() TranslationAdminService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TranslationAdminService()
}

// SettingsState returns the shared runtime toggles.
func (m *Module) SettingsState() *settings.State {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SettingsState()
}

// Markdown returns the body renderer.
func (m *Module) Markdown() MarkdownRenderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownRenderer()
}
