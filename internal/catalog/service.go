package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/languages"
	"github.com/promptda/promptda/internal/logging"
	"github.com/promptda/promptda/pkg/interfaces"
)

// Service exposes content authoring use cases.
type Service interface {
	Create(ctx context.Context, req CreateContentRequest) (*Content, error)
	Get(ctx context.Context, id uuid.UUID) (*Content, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Content, error)
	List(ctx context.Context, kinds ...Kind) ([]*Content, error)
	Update(ctx context.Context, req UpdateContentRequest) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository abstracts storage operations for content records.
type Repository interface {
	Create(ctx context.Context, record *Content) (*Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Content, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Content, error)
	List(ctx context.Context, kinds ...Kind) ([]*Content, error)
	Update(ctx context.Context, record *Content) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LanguageRepository resolves languages by code.
type LanguageRepository interface {
	GetByCode(ctx context.Context, code string) (*languages.Language, error)
}

// TranslationStore is the write-side translation collaborator. Upserts are
// best-effort: the returned report carries per-language outcomes and the
// service logs failures without failing the content save.
type TranslationStore interface {
	UpsertTranslations(ctx context.Context, kind Kind, contentID uuid.UUID, translations map[string]FieldValues) interfaces.UpsertReport
	DeleteForContent(ctx context.Context, kind Kind, contentID uuid.UUID) error
}

// CreateContentRequest captures the information required to author content.
type CreateContentRequest struct {
	Kind       Kind
	Slug       string
	AuthorID   uuid.UUID
	CategoryID *uuid.UUID
	ImageURL   *string

	Title           string
	Description     string
	Body            string
	MetaTitle       string
	MetaDescription string
	OGTitle         string
	OGDescription   string
	SEOContent      string

	// Translations maps language code to the sparse field values supplied for
	// that language. The base language, if present, is skipped on write.
	Translations map[string]FieldValues
}

// Validate checks request shape before any storage access.
func (r CreateContentRequest) Validate() error {
	errs := validation.Errors{}
	if !r.Kind.Valid() {
		errs["kind"] = validation.NewError("catalog.create.kind_invalid", "kind is not a supported content kind")
	}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = validation.NewError("catalog.create.title_required", "title is required")
	}
	if r.AuthorID == uuid.Nil {
		errs["author_id"] = validation.NewError("catalog.create.author_required", "author_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateContentRequest captures mutable fields for an existing record. Nil
// pointers leave the stored value untouched.
type UpdateContentRequest struct {
	ID uuid.UUID

	Title           *string
	Description     *string
	Body            *string
	MetaTitle       *string
	MetaDescription *string
	OGTitle         *string
	OGDescription   *string
	SEOContent      *string
	CategoryID      *uuid.UUID
	ImageURL        *string
	PublishedAt     *time.Time

	Translations map[string]FieldValues
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new records.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a structured logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	contents     Repository
	langs        LanguageRepository
	translations TranslationStore
	logger       interfaces.Logger
	now          func() time.Time
	id           IDGenerator
}

// NewService constructs a content authoring service. The translation store may
// be nil, in which case translation payloads are ignored.
func NewService(contents Repository, langs LanguageRepository, translations TranslationStore, opts ...ServiceOption) Service {
	s := &service{
		contents:     contents,
		langs:        langs,
		translations: translations,
		logger:       logging.NoOp(),
		now:          time.Now,
		id:           uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create authors a new base-language record, then applies the submitted
// translations best-effort.
func (s *service) Create(ctx context.Context, req CreateContentRequest) (*Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	normalized, err := s.normalizeSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	if existing, err := s.contents.GetBySlug(ctx, req.Kind, normalized); err == nil && existing != nil {
		return nil, ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := s.checkLanguages(ctx, req.Translations); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Content{
		ID:              s.id(),
		Kind:            req.Kind,
		Slug:            normalized,
		Title:           req.Title,
		Description:     req.Description,
		Body:            req.Body,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		OGTitle:         req.OGTitle,
		OGDescription:   req.OGDescription,
		SEOContent:      req.SEOContent,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		ImageURL:        req.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.contents.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.applyTranslations(ctx, created.Kind, created.ID, req.Translations)
	return created, nil
}

// Get fetches a record by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Content, error) {
	if id == uuid.Nil {
		return nil, ErrContentIDRequired
	}
	return s.contents.GetByID(ctx, id)
}

// GetBySlug fetches a record by kind and slug.
func (s *service) GetBySlug(ctx context.Context, kind Kind, slugValue string) (*Content, error) {
	if !kind.Valid() {
		return nil, ErrKindInvalid
	}
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, ErrSlugRequired
	}
	return s.contents.GetBySlug(ctx, kind, slugValue)
}

// List returns records, optionally filtered by kind.
func (s *service) List(ctx context.Context, kinds ...Kind) ([]*Content, error) {
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, ErrKindInvalid
		}
	}
	return s.contents.List(ctx, kinds...)
}

// Update mutates the base record, then applies the submitted translations
// best-effort.
func (s *service) Update(ctx context.Context, req UpdateContentRequest) (*Content, error) {
	if req.ID == uuid.Nil {
		return nil, ErrContentIDRequired
	}

	record, err := s.contents.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLanguages(ctx, req.Translations); err != nil {
		return nil, err
	}

	applyStringPtr(req.Title, &record.Title)
	applyStringPtr(req.Description, &record.Description)
	applyStringPtr(req.Body, &record.Body)
	applyStringPtr(req.MetaTitle, &record.MetaTitle)
	applyStringPtr(req.MetaDescription, &record.MetaDescription)
	applyStringPtr(req.OGTitle, &record.OGTitle)
	applyStringPtr(req.OGDescription, &record.OGDescription)
	applyStringPtr(req.SEOContent, &record.SEOContent)
	if req.CategoryID != nil {
		id := *req.CategoryID
		record.CategoryID = &id
	}
	if req.ImageURL != nil {
		url := *req.ImageURL
		record.ImageURL = &url
	}
	if req.PublishedAt != nil {
		at := *req.PublishedAt
		record.PublishedAt = &at
	}
	record.UpdatedAt = s.now()

	updated, err := s.contents.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.applyTranslations(ctx, updated.Kind, updated.ID, req.Translations)
	return updated, nil
}

// Delete removes the record and clears its translation rows so none dangle.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrContentIDRequired
	}

	record, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.contents.Delete(ctx, id); err != nil {
		return err
	}

	if s.translations != nil {
		if err := s.translations.DeleteForContent(ctx, record.Kind, record.ID); err != nil {
			// Dangling rows are tolerated at read time; cleanup is advisory.
			s.logger.Warn("catalog: translation cleanup failed",
				"content_id", record.ID.String(),
				"kind", record.Kind.String(),
				"error", err)
		}
	}
	return nil
}

// applyTranslations performs the fire-and-forget translation write after a
// successful base save. Failures are logged, never returned.
func (s *service) applyTranslations(ctx context.Context, kind Kind, contentID uuid.UUID, translations map[string]FieldValues) {
	if s.translations == nil || len(translations) == 0 {
		return
	}

	report := s.translations.UpsertTranslations(ctx, kind, contentID, translations)
	for _, failed := range report.Failed() {
		s.logger.Warn("catalog: translation upsert failed",
			"content_id", contentID.String(),
			"kind", kind.String(),
			"language", failed.Language,
			"error", failed.Err)
	}
}

func (s *service) checkLanguages(ctx context.Context, translations map[string]FieldValues) error {
	if s.langs == nil || len(translations) == 0 {
		return nil
	}
	for code := range translations {
		if strings.TrimSpace(code) == "" {
			return ErrUnknownLanguage
		}
		if _, err := s.langs.GetByCode(ctx, code); err != nil {
			return ErrUnknownLanguage
		}
	}
	return nil
}

func (s *service) normalizeSlug(raw, title string) (string, error) {
	source := strings.TrimSpace(raw)
	if source == "" {
		source = title
	}
	if strings.TrimSpace(source) == "" {
		return "", ErrSlugRequired
	}
	normalized, err := slug.Normalize(source)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func applyStringPtr(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}
