package translations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/logging"
	"github.com/promptda/promptda/internal/settings"
	"github.com/promptda/promptda/pkg/interfaces"
)

// Service exposes the translation read and write use cases. Resolution is a
// pure merge over one store lookup; missing data is the normal steady state
// and never surfaces as an error.
type Service interface {
	// Resolve returns a display-ready projection of base for the requested
	// language. The base record is never mutated; when the requested language
	// is the base language the record is returned as-is without a store read.
	Resolve(ctx context.Context, base *catalog.Content, kind catalog.Kind, contentID uuid.UUID, language string) (*catalog.Content, error)
	// ResolveWithMeta behaves like Resolve and also reports how the request
	// was satisfied.
	ResolveWithMeta(ctx context.Context, base *catalog.Content, kind catalog.Kind, contentID uuid.UUID, language string) (*catalog.Content, interfaces.TranslationMeta, error)
	// ResolveAll resolves a listing of records, each against its own kind and
	// identity. Lookups are independent; one record's fallback never affects
	// another's.
	ResolveAll(ctx context.Context, items []*catalog.Content, language string) ([]*catalog.Content, error)
	// UpsertTranslations writes the supplied per-language field values,
	// skipping the base language. Each language upsert is independent;
	// failures are reported, not raised.
	UpsertTranslations(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, translations map[string]catalog.FieldValues) interfaces.UpsertReport
	// DeleteForContent clears every translation row of a content record.
	DeleteForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) error
	// AvailableLanguages reports which languages have a usable translation row.
	AvailableLanguages(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) ([]string, error)
	// CheckTranslations reports which of the required languages are missing a
	// usable translation row. The base language is never reported missing.
	// With an empty required list the supported language set is checked when
	// the runtime toggles demand complete translations.
	CheckTranslations(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, required []string) ([]string, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithBaseLanguage sets the canonical authoring language (default "en").
func WithBaseLanguage(code string) ServiceOption {
	return func(s *service) {
		if normalized := NormalizeLanguage(code); normalized != "" {
			s.baseLanguage = normalized
		}
	}
}

// WithStrictLookups propagates store read failures from Resolve instead of
// degrading to base-language output.
func WithStrictLookups(strict bool) ServiceOption {
	return func(s *service) {
		s.strict = strict
	}
}

// WithState attaches the shared runtime toggles. The state is consulted on
// every resolution: translations switch off entirely when disabled, and the
// strict-lookup toggle takes effect without rebuilding the service.
func WithState(state *settings.State) ServiceOption {
	return func(s *service) {
		s.state = state
	}
}

// WithSupportedLanguages declares the full language surface. CheckTranslations
// falls back to this set when translations are required and the caller does
// not name an explicit required list.
func WithSupportedLanguages(codes []string) ServiceOption {
	return func(s *service) {
		s.supported = normalizeLanguageSet(codes)
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

// WithClock overrides the clock used by write-path bookkeeping.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	repo         Repository
	baseLanguage string
	strict       bool
	state        *settings.State
	supported    []string
	logger       interfaces.Logger
	now          func() time.Time
}

// translationsEnabled reports whether resolution may consult the store. With
// no state attached translations are always on.
func (s *service) translationsEnabled() bool {
	return s.state == nil || s.state.Enabled()
}

// strictLookups merges the construction-time flag with the runtime toggle.
func (s *service) strictLookups() bool {
	return s.strict || s.state.StrictLookups()
}

// NewService constructs a translation service over the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:         repo,
		baseLanguage: "en",
		logger:       logging.NoOp(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Resolve(ctx context.Context, base *catalog.Content, kind catalog.Kind, contentID uuid.UUID, language string) (*catalog.Content, error) {
	resolved, _, err := s.ResolveWithMeta(ctx, base, kind, contentID, language)
	return resolved, err
}

func (s *service) ResolveWithMeta(ctx context.Context, base *catalog.Content, kind catalog.Kind, contentID uuid.UUID, language string) (*catalog.Content, interfaces.TranslationMeta, error) {
	meta := interfaces.TranslationMeta{
		RequestedLanguage: NormalizeLanguage(language),
		BaseLanguage:      s.baseLanguage,
	}
	if base == nil {
		return nil, meta, nil
	}

	// The base language never has translation rows; skip the store.
	if meta.RequestedLanguage == "" || strings.EqualFold(meta.RequestedLanguage, s.baseLanguage) {
		return base, meta, nil
	}

	// Runtime kill switch: serve base-language content without a lookup.
	if !s.translationsEnabled() {
		meta.FallbackUsed = true
		return base, meta, nil
	}

	fields := catalog.TranslatableFields(kind)
	if len(fields) == 0 {
		meta.FallbackUsed = true
		return base, meta, nil
	}

	row, err := s.repo.FindOne(ctx, kind, contentID, meta.RequestedLanguage)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			meta.FallbackUsed = true
			return base, meta, nil
		}
		if s.strictLookups() {
			return nil, meta, err
		}
		// Availability over correctness: a translation store hiccup must not
		// block rendering the base-language record.
		s.logger.Warn("translations: lookup failed, serving base language",
			"content_id", contentID.String(),
			"kind", kind.String(),
			"language", meta.RequestedLanguage,
			"error", err)
		meta.FallbackUsed = true
		return base, meta, nil
	}

	resolved := base.Clone()
	for _, field := range fields {
		if value, ok := row.FieldValue(field); ok {
			resolved.SetTranslatableValue(field, value)
			meta.TranslatedFields = append(meta.TranslatedFields, string(field))
		}
	}
	meta.FallbackUsed = len(meta.TranslatedFields) < len(fields)
	return resolved, meta, nil
}

func (s *service) ResolveAll(ctx context.Context, items []*catalog.Content, language string) ([]*catalog.Content, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]*catalog.Content, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		resolved, err := s.Resolve(ctx, item, item.Kind, item.ID, language)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

func (s *service) AvailableLanguages(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) ([]string, error) {
	if contentID == uuid.Nil {
		return nil, ErrContentIDRequired
	}

	rows, err := s.repo.ListForContent(ctx, kind, contentID)
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(rows))
	seen := map[string]struct{}{}
	for _, row := range rows {
		if row == nil || !row.HasAnyValue() {
			continue
		}
		code := NormalizeLanguage(row.LanguageCode)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		languages = append(languages, code)
	}
	if len(languages) == 0 {
		return nil, nil
	}
	return languages, nil
}

func (s *service) CheckTranslations(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, required []string) ([]string, error) {
	if contentID == uuid.Nil {
		return nil, ErrContentIDRequired
	}

	requiredLanguages := normalizeLanguageSet(required)
	if len(requiredLanguages) == 0 && s.state.Required() {
		// Complete translations demanded: the whole supported surface counts.
		requiredLanguages = s.supported
	}
	if len(requiredLanguages) == 0 {
		return nil, nil
	}

	available, err := s.AvailableLanguages(ctx, kind, contentID)
	if err != nil {
		return nil, err
	}
	index := map[string]struct{}{}
	for _, code := range available {
		index[code] = struct{}{}
	}

	missing := make([]string, 0)
	for _, code := range requiredLanguages {
		if strings.EqualFold(code, s.baseLanguage) {
			continue
		}
		if _, ok := index[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	return missing, nil
}

func normalizeLanguageSet(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, 0, len(codes))
	seen := map[string]struct{}{}
	for _, code := range codes {
		normalized := NormalizeLanguage(code)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
