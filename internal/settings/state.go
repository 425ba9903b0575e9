package settings

import "sync/atomic"

// State provides a concurrency-safe view of the translation toggles. Request
// paths read it on every resolution, so it avoids locks entirely.
type State struct {
	enabled atomic.Bool
	require atomic.Bool
	strict  atomic.Bool
}

// NewState constructs a state seeded with settings.
func NewState(settings Settings) *State {
	st := &State{}
	st.Apply(settings)
	return st
}

// Apply replaces every toggle from the supplied settings.
func (s *State) Apply(settings Settings) {
	if s == nil {
		return
	}
	s.enabled.Store(settings.TranslationsEnabled)
	s.require.Store(settings.RequireTranslations)
	s.strict.Store(settings.StrictLookups)
}

// Enabled reports whether translations are served at all.
func (s *State) Enabled() bool {
	if s == nil {
		return false
	}
	return s.enabled.Load()
}

// RequireTranslations reports the raw required toggle.
func (s *State) RequireTranslations() bool {
	if s == nil {
		return false
	}
	return s.require.Load()
}

// Required reports whether translations are required when enabled.
func (s *State) Required() bool {
	if s == nil {
		return false
	}
	return s.enabled.Load() && s.require.Load()
}

// StrictLookups reports whether store failures should surface to callers.
func (s *State) StrictLookups() bool {
	if s == nil {
		return false
	}
	return s.strict.Load()
}

// Snapshot returns the current toggles as a Settings value.
func (s *State) Snapshot() Settings {
	if s == nil {
		return Settings{}
	}
	return Settings{
		TranslationsEnabled: s.enabled.Load(),
		RequireTranslations: s.require.Load(),
		StrictLookups:       s.strict.Load(),
	}
}

// SetEnabled updates the enabled toggle.
func (s *State) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.enabled.Store(enabled)
}

// SetRequireTranslations updates the required toggle.
func (s *State) SetRequireTranslations(required bool) {
	if s == nil {
		return
	}
	s.require.Store(required)
}

// SetStrictLookups updates the strict-lookup toggle.
func (s *State) SetStrictLookups(strict bool) {
	if s == nil {
		return
	}
	s.strict.Store(strict)
}
