package promptda

import "github.com/promptda/promptda/internal/runtimeconfig"

// Config is the module's runtime configuration.
type Config = runtimeconfig.Config

// SiteConfig carries site-wide values.
type SiteConfig = runtimeconfig.SiteConfig

// I18NConfig declares the language surface of the site.
type I18NConfig = runtimeconfig.I18NConfig

// Features toggles optional behaviour.
type Features = runtimeconfig.Features

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig = runtimeconfig.LoggingConfig

// MarkdownConfig tunes the markdown body renderer.
type MarkdownConfig = runtimeconfig.MarkdownConfig

// Configuration validation errors.
var (
	ErrBaseLanguageRequired    = runtimeconfig.ErrBaseLanguageRequired
	ErrBaseLanguageUnsupported = runtimeconfig.ErrBaseLanguageUnsupported
)

// DefaultConfig returns the default module configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
