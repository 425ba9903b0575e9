package translations

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/pkg/interfaces"
)

// UpsertTranslations writes the supplied languages one by one. The base
// language is skipped, never written. Each language upsert stands alone: a
// failure is recorded in the report and logged while the remaining languages
// still proceed. The base content save has already happened by the time this
// runs, so nothing here rolls anything back.
func (s *service) UpsertTranslations(ctx context.Context, kind catalog.Kind, contentID uuid.UUID, translations map[string]catalog.FieldValues) interfaces.UpsertReport {
	report := interfaces.UpsertReport{}
	if len(translations) == 0 {
		return report
	}

	eligible := map[catalog.Field]struct{}{}
	for _, field := range catalog.TranslatableFields(kind) {
		eligible[field] = struct{}{}
	}

	for _, language := range sortedLanguages(translations) {
		normalized := NormalizeLanguage(language)
		if normalized == "" || strings.EqualFold(normalized, s.baseLanguage) {
			report.Skipped = append(report.Skipped, language)
			continue
		}

		values := filterFields(translations[language], eligible)
		if len(values) == 0 {
			report.Skipped = append(report.Skipped, language)
			continue
		}

		_, created, err := s.repo.Upsert(ctx, kind, contentID, normalized, values)
		if err != nil {
			s.logger.Warn("translations: upsert failed",
				"content_id", contentID.String(),
				"kind", kind.String(),
				"language", normalized,
				"error", err)
		}
		report.Outcomes = append(report.Outcomes, interfaces.UpsertOutcome{
			Language: normalized,
			Created:  created,
			Err:      err,
		})
	}

	return report
}

// DeleteForContent clears every translation row of a content record. Used by
// delete flows so rows do not dangle after the base record is gone.
func (s *service) DeleteForContent(ctx context.Context, kind catalog.Kind, contentID uuid.UUID) error {
	if contentID == uuid.Nil {
		return ErrContentIDRequired
	}
	return s.repo.DeleteForContent(ctx, kind, contentID)
}

func sortedLanguages(translations map[string]catalog.FieldValues) []string {
	out := make([]string, 0, len(translations))
	for language := range translations {
		out = append(out, language)
	}
	sort.Strings(out)
	return out
}

func filterFields(values catalog.FieldValues, eligible map[catalog.Field]struct{}) catalog.FieldValues {
	if len(values) == 0 {
		return nil
	}
	out := catalog.FieldValues{}
	for field, value := range values {
		if _, ok := eligible[field]; !ok {
			continue
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		out[field] = value
	}
	return out
}
