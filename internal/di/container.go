package di

import (
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	admintranslations "github.com/promptda/promptda/internal/admin/translations"
	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/internal/identity"
	"github.com/promptda/promptda/internal/languages"
	"github.com/promptda/promptda/internal/logging"
	"github.com/promptda/promptda/internal/logging/gologger"
	"github.com/promptda/promptda/internal/markdown"
	"github.com/promptda/promptda/internal/runtimeconfig"
	"github.com/promptda/promptda/internal/settings"
	"github.com/promptda/promptda/internal/translations"
	"github.com/promptda/promptda/pkg/interfaces"
)

// Container wires module dependencies. Memory-backed repositories are the
// default; supplying a Bun database switches every store to its persistent
// implementation, optionally wrapped with the repository cache.
type Container struct {
	config runtimeconfig.Config

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	clock          func() time.Time

	contentRepo     catalog.Repository
	languageRepo    languages.Repository
	translationRepo translations.Repository
	settingsRepo    settings.Repository

	catalogSvc     catalog.Service
	languageSvc    languages.Service
	translationSvc translations.Service
	adminSvc       *admintranslations.Service

	state    *settings.State
	renderer *markdown.Renderer
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB switches the container to Bun-backed repositories.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache wraps Bun-backed repositories with the repository cache.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logging provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithClock overrides the clock used by the wired services.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithContentRepository overrides the content repository binding.
func WithContentRepository(repo catalog.Repository) Option {
	return func(c *Container) {
		c.contentRepo = repo
	}
}

// WithLanguageRepository overrides the language repository binding.
func WithLanguageRepository(repo languages.Repository) Option {
	return func(c *Container) {
		c.languageRepo = repo
	}
}

// WithTranslationRepository overrides the translation repository binding.
func WithTranslationRepository(repo translations.Repository) Option {
	return func(c *Container) {
		c.translationRepo = repo
	}
}

// WithSettingsRepository overrides the settings repository binding.
func WithSettingsRepository(repo settings.Repository) Option {
	return func(c *Container) {
		c.settingsRepo = repo
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		config: cfg,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.contentRepo == nil {
		if c.bunDB != nil {
			c.contentRepo = catalog.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.contentRepo = catalog.NewMemoryRepository()
		}
	}
	if c.languageRepo == nil {
		if c.bunDB != nil {
			c.languageRepo = languages.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.languageRepo = seedLanguageRepository(cfg)
		}
	}
	if c.translationRepo == nil {
		if c.bunDB != nil {
			c.translationRepo = translations.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.translationRepo = translations.NewMemoryRepository()
		}
	}
	if c.settingsRepo == nil {
		if c.bunDB != nil {
			c.settingsRepo = settings.NewBunRepository(c.bunDB)
		} else {
			c.settingsRepo = settings.NewMemoryRepository()
		}
	}

	c.state = settings.NewState(settings.Settings{
		TranslationsEnabled: true,
		RequireTranslations: cfg.Features.RequireTranslations,
		StrictLookups:       cfg.Features.StrictTranslationLookups,
	})

	c.translationSvc = translations.NewService(c.translationRepo,
		translations.WithBaseLanguage(cfg.BaseLanguage()),
		translations.WithState(c.state),
		translations.WithSupportedLanguages(cfg.SupportedLanguages()),
		translations.WithLogger(logging.TranslationsLogger(c.loggerProvider)),
		translations.WithClock(c.clock),
	)

	c.languageSvc = languages.NewService(c.languageRepo)

	c.catalogSvc = catalog.NewService(c.contentRepo, c.languageRepo, c.translationSvc,
		catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		catalog.WithClock(c.clock),
	)

	c.adminSvc = admintranslations.NewService(c.settingsRepo,
		admintranslations.WithState(c.state),
		admintranslations.WithLogger(logging.SettingsLogger(c.loggerProvider)),
		admintranslations.WithClock(c.clock),
	)

	c.renderer = markdown.NewRenderer(markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Markdown.Extensions,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	}))

	return c, nil
}

// Config returns the validated configuration the container was built from.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// CatalogService returns the content authoring service.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// TranslationService returns the translation resolver.
func (c *Container) TranslationService() translations.Service {
	return c.translationSvc
}

// LanguageService returns the language registry.
func (c *Container) LanguageService() languages.Service {
	return c.languageSvc
}

// TranslationAdminService returns the settings admin helper.
func (c *Container) TranslationAdminService() *admintranslations.Service {
	return c.adminSvc
}

// SettingsRepository returns the settings store.
func (c *Container) SettingsRepository() settings.Repository {
	return c.settingsRepo
}

// SettingsState returns the shared runtime toggles.
func (c *Container) SettingsState() *settings.State {
	return c.state
}

// MarkdownRenderer returns the body renderer.
func (c *Container) MarkdownRenderer() *markdown.Renderer {
	return c.renderer
}

// LoggerProvider exposes the wired logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return nil, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, runtimeconfig.ErrLoggingProviderUnknown
	}
}

// seedLanguageRepository pre-populates the in-memory registry from the
// configured language surface so memory deployments resolve codes out of the
// box. The base language is flagged as the default.
func seedLanguageRepository(cfg runtimeconfig.Config) *languages.MemoryRepository {
	repo := languages.NewMemoryRepository()
	for _, code := range cfg.SupportedLanguages() {
		repo.Put(&languages.Language{
			ID:        identity.LanguageUUID(code),
			Code:      code,
			Display:   strings.ToUpper(code),
			IsActive:  true,
			IsDefault: code == cfg.BaseLanguage(),
		})
	}
	return repo
}
