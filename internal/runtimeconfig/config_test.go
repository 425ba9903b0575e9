package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.BaseLanguage() != "en" {
		t.Fatalf("expected en base language, got %q", cfg.BaseLanguage())
	}
}

func TestValidateNormalizesLanguages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18N.BaseLanguage = " EN "
	cfg.I18N.Languages = []string{"EN", "tr", " TR ", "", "de"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	got := cfg.SupportedLanguages()
	want := []string{"en", "tr", "de"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestValidateRequiresBaseLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18N.BaseLanguage = "   "

	if err := cfg.Validate(); !errors.Is(err, ErrBaseLanguageRequired) {
		t.Fatalf("expected ErrBaseLanguageRequired, got %v", err)
	}
}

func TestValidateRequiresBaseInSupportedSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18N.BaseLanguage = "en"
	cfg.I18N.Languages = []string{"tr", "de"}

	if err := cfg.Validate(); !errors.Is(err, ErrBaseLanguageUnsupported) {
		t.Fatalf("expected ErrBaseLanguageUnsupported, got %v", err)
	}
}

func TestValidateLoggingSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestSupportedLanguagesReturnsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.I18N.Languages = []string{"en", "tr"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	out := cfg.SupportedLanguages()
	out[0] = "xx"
	if cfg.SupportedLanguages()[0] != "en" {
		t.Fatal("mutating the returned slice must not affect the config")
	}
}
