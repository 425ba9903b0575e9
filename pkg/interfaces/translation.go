package interfaces

// TranslationMeta describes how a display-language request was satisfied for a
// resolved content record.
type TranslationMeta struct {
	RequestedLanguage string `json:"requested_language"`
	BaseLanguage      string `json:"base_language"`
	// TranslatedFields lists the fields the translation row actually supplied;
	// everything else fell back to the base-language value.
	TranslatedFields []string `json:"translated_fields,omitempty"`
	FallbackUsed     bool     `json:"fallback_used"`
}

// UpsertOutcome captures the result of a single per-language translation write.
type UpsertOutcome struct {
	Language string `json:"language"`
	Created  bool   `json:"created"`
	Err      error  `json:"-"`
}

// UpsertReport aggregates the independent per-language outcomes of a batch
// translation write. Failures never abort the batch; callers log them.
type UpsertReport struct {
	Outcomes []UpsertOutcome `json:"outcomes"`
	Skipped  []string        `json:"skipped,omitempty"`
}

// Failed returns the outcomes that carry an error.
func (r UpsertReport) Failed() []UpsertOutcome {
	var failed []UpsertOutcome
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// AllApplied reports whether every attempted language upsert succeeded.
func (r UpsertReport) AllApplied() bool {
	return len(r.Failed()) == 0
}
