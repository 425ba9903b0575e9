package interfaces

// SettingsProvider exposes the site-wide values the translation runtime needs.
// Implementations are injected rather than read from ambient globals so tests
// and hosts can supply their own.
type SettingsProvider interface {
	// BaseLanguage returns the canonical authoring language code (e.g. "en").
	BaseLanguage() string
	// SupportedLanguages returns every display language the site serves,
	// including the base language.
	SupportedLanguages() []string
	// SiteURL returns the canonical site URL used by surrounding tooling.
	SiteURL() string
}
