package translations

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/promptda/promptda/internal/catalog"
)

// Translation stores the localized variant of a content record for one
// language. Columns are sparse: a nil or blank column means the field has no
// translation and falls back to the base-language value at read time.
//
// At most one row exists per (kind, content_id, language_code) triple; the row
// ID is derived deterministically from that composite key.
type Translation struct {
	bun.BaseModel `bun:"table:content_translations,alias:tr"`

	ID           uuid.UUID    `bun:",pk,type:uuid"          json:"id"`
	Kind         catalog.Kind `bun:"kind,notnull"           json:"kind"`
	ContentID    uuid.UUID    `bun:"content_id,notnull,type:uuid" json:"content_id"`
	LanguageCode string       `bun:"language_code,notnull"  json:"language_code"`

	Title           *string `bun:"title"            json:"title,omitempty"`
	Description     *string `bun:"description"      json:"description,omitempty"`
	Body            *string `bun:"body"             json:"body,omitempty"`
	MetaTitle       *string `bun:"meta_title"       json:"meta_title,omitempty"`
	MetaDescription *string `bun:"meta_description" json:"meta_description,omitempty"`
	OGTitle         *string `bun:"og_title"         json:"og_title,omitempty"`
	OGDescription   *string `bun:"og_description"   json:"og_description,omitempty"`
	SEOContent      *string `bun:"seo_content"      json:"seo_content,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// FieldValue returns the translated value for a field, reporting whether the
// row carries a usable (non-blank) value for it.
func (t *Translation) FieldValue(field catalog.Field) (string, bool) {
	if t == nil {
		return "", false
	}
	var value *string
	switch field {
	case catalog.FieldTitle:
		value = t.Title
	case catalog.FieldDescription:
		value = t.Description
	case catalog.FieldBody:
		value = t.Body
	case catalog.FieldMetaTitle:
		value = t.MetaTitle
	case catalog.FieldMetaDescription:
		value = t.MetaDescription
	case catalog.FieldOGTitle:
		value = t.OGTitle
	case catalog.FieldOGDescription:
		value = t.OGDescription
	case catalog.FieldSEOContent:
		value = t.SEOContent
	}
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", false
	}
	return *value, true
}

// SetFieldValue stores a translated value for a field.
func (t *Translation) SetFieldValue(field catalog.Field, value string) {
	if t == nil {
		return
	}
	copied := value
	switch field {
	case catalog.FieldTitle:
		t.Title = &copied
	case catalog.FieldDescription:
		t.Description = &copied
	case catalog.FieldBody:
		t.Body = &copied
	case catalog.FieldMetaTitle:
		t.MetaTitle = &copied
	case catalog.FieldMetaDescription:
		t.MetaDescription = &copied
	case catalog.FieldOGTitle:
		t.OGTitle = &copied
	case catalog.FieldOGDescription:
		t.OGDescription = &copied
	case catalog.FieldSEOContent:
		t.SEOContent = &copied
	}
}

// applyFieldValues merges the supplied values onto the row. Blank values are
// ignored so a sparse write can never clear a stored translation; clearing a
// field means deleting the row and writing it again.
func applyFieldValues(t *Translation, values catalog.FieldValues) {
	for field, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		t.SetFieldValue(field, value)
	}
}

// HasAnyValue reports whether the row carries at least one usable field.
func (t *Translation) HasAnyValue() bool {
	if t == nil {
		return false
	}
	for _, field := range catalog.TranslatableFields(t.Kind) {
		if _, ok := t.FieldValue(field); ok {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the row.
func (t *Translation) Clone() *Translation {
	if t == nil {
		return nil
	}
	copied := *t
	copied.Title = cloneStringPtr(t.Title)
	copied.Description = cloneStringPtr(t.Description)
	copied.Body = cloneStringPtr(t.Body)
	copied.MetaTitle = cloneStringPtr(t.MetaTitle)
	copied.MetaDescription = cloneStringPtr(t.MetaDescription)
	copied.OGTitle = cloneStringPtr(t.OGTitle)
	copied.OGDescription = cloneStringPtr(t.OGDescription)
	copied.SEOContent = cloneStringPtr(t.SEOContent)
	return &copied
}

func cloneStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}

// NormalizeLanguage canonicalizes a language code for keying and comparison.
func NormalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
