package runtimeconfig

import (
	"errors"
	"strings"
)

var (
	// ErrBaseLanguageRequired indicates the configuration is missing a base language.
	ErrBaseLanguageRequired = errors.New("runtimeconfig: base language is required")
	// ErrBaseLanguageUnsupported indicates the base language is absent from the supported set.
	ErrBaseLanguageUnsupported = errors.New("runtimeconfig: base language must be listed in supported languages")
	// ErrLoggingProviderUnknown indicates an unrecognised logging provider name.
	ErrLoggingProviderUnknown = errors.New("runtimeconfig: unknown logging provider")
	// ErrLoggingLevelInvalid indicates an unrecognised logging level.
	ErrLoggingLevelInvalid = errors.New("runtimeconfig: invalid logging level")
	// ErrLoggingFormatInvalid indicates an unrecognised logging format.
	ErrLoggingFormatInvalid = errors.New("runtimeconfig: invalid logging format")
)

// Config is the top-level runtime configuration for the promptda module.
type Config struct {
	Site     SiteConfig
	I18N     I18NConfig
	Features Features
	Logging  LoggingConfig
	Markdown MarkdownConfig
}

// SiteConfig carries site-wide values consumed by surrounding tooling.
type SiteConfig struct {
	URL string
}

// I18NConfig declares the language surface of the site. BaseLanguage is the
// canonical authoring language; it never receives translation rows.
type I18NConfig struct {
	BaseLanguage string
	Languages    []string
}

// Features toggles optional behaviour.
type Features struct {
	// StrictTranslationLookups propagates store read failures from the
	// resolver instead of degrading to base-language output.
	StrictTranslationLookups bool
	// RequireTranslations makes completeness checks treat every supported
	// language as required.
	RequireTranslations bool
}

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// MarkdownConfig tunes the markdown body renderer.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// DefaultConfig returns opinionated defaults: English base language, JSON
// logging through go-logger, GFM markdown.
func DefaultConfig() Config {
	return Config{
		I18N: I18NConfig{
			BaseLanguage: "en",
			Languages:    []string{"en"},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
		},
	}
}

// Validate normalizes and checks the configuration, returning the first
// violation encountered.
func (c *Config) Validate() error {
	c.I18N.BaseLanguage = strings.ToLower(strings.TrimSpace(c.I18N.BaseLanguage))
	if c.I18N.BaseLanguage == "" {
		return ErrBaseLanguageRequired
	}

	languages := make([]string, 0, len(c.I18N.Languages))
	seen := map[string]struct{}{}
	for _, code := range c.I18N.Languages {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		languages = append(languages, normalized)
	}
	c.I18N.Languages = languages

	if _, ok := seen[c.I18N.BaseLanguage]; !ok {
		return ErrBaseLanguageUnsupported
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}

// BaseLanguage satisfies interfaces.SettingsProvider.
func (c Config) BaseLanguage() string {
	return c.I18N.BaseLanguage
}

// SupportedLanguages satisfies interfaces.SettingsProvider.
func (c Config) SupportedLanguages() []string {
	out := make([]string, len(c.I18N.Languages))
	copy(out, c.I18N.Languages)
	return out
}

// SiteURL satisfies interfaces.SettingsProvider.
func (c Config) SiteURL() string {
	return c.Site.URL
}
