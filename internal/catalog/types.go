package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Kind discriminates the content record variants the marketplace serves.
type Kind string

const (
	KindPrompt Kind = "prompt"
	KindScript Kind = "script"
	KindHook   Kind = "hook"
	KindTool   Kind = "tool"
	KindBlog   Kind = "blog"
	KindThread Kind = "thread"
)

// Kinds returns every supported content kind.
func Kinds() []Kind {
	return []Kind{KindPrompt, KindScript, KindHook, KindTool, KindBlog, KindThread}
}

// ParseKind normalizes a raw kind tag, reporting whether it is supported.
func ParseKind(raw string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case KindPrompt, KindScript, KindHook, KindTool, KindBlog, KindThread:
		return kind, true
	}
	return "", false
}

// Valid reports whether the kind is one of the supported variants.
func (k Kind) Valid() bool {
	_, ok := ParseKind(string(k))
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// Field names a translatable scalar attribute of a content record.
type Field string

const (
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldBody            Field = "body"
	FieldMetaTitle       Field = "meta_title"
	FieldMetaDescription Field = "meta_description"
	FieldOGTitle         Field = "og_title"
	FieldOGDescription   Field = "og_description"
	FieldSEOContent      Field = "seo_content"
)

var marketplaceFields = []Field{
	FieldTitle,
	FieldDescription,
	FieldBody,
	FieldMetaTitle,
	FieldMetaDescription,
	FieldOGTitle,
	FieldOGDescription,
	FieldSEOContent,
}

// Community threads carry no OG/SEO landing copy.
var threadFields = []Field{
	FieldTitle,
	FieldBody,
	FieldMetaTitle,
	FieldMetaDescription,
}

// TranslatableFields returns the statically declared translatable-field list
// for a content kind. Unknown kinds translate nothing.
func TranslatableFields(kind Kind) []Field {
	switch kind {
	case KindPrompt, KindScript, KindHook, KindTool, KindBlog:
		out := make([]Field, len(marketplaceFields))
		copy(out, marketplaceFields)
		return out
	case KindThread:
		out := make([]Field, len(threadFields))
		copy(out, threadFields)
		return out
	default:
		return nil
	}
}

// FieldValues is a sparse set of translatable field values, as supplied by an
// authoring form for a single language.
type FieldValues map[Field]string

// Category is the taxonomy a content record belongs to. It is joined read-only
// state; translations never touch it.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID   uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug string    `bun:"slug,notnull"  json:"slug"`
	Name string    `bun:"name,notnull"  json:"name"`
}

// Content is the canonical base-language record for every marketplace kind.
// The translatable string fields hold base-language copy; everything else
// passes through resolution untouched.
type Content struct {
	bun.BaseModel `bun:"table:contents,alias:c"`

	ID   uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Kind Kind      `bun:"kind,notnull"  json:"kind"`
	Slug string    `bun:"slug,notnull"  json:"slug"`

	Title           string `bun:"title,notnull"    json:"title"`
	Description     string `bun:"description"      json:"description"`
	Body            string `bun:"body"             json:"body"`
	MetaTitle       string `bun:"meta_title"       json:"meta_title"`
	MetaDescription string `bun:"meta_description" json:"meta_description"`
	OGTitle         string `bun:"og_title"         json:"og_title"`
	OGDescription   string `bun:"og_description"   json:"og_description"`
	SEOContent      string `bun:"seo_content"      json:"seo_content"`

	AuthorID   uuid.UUID  `bun:"author_id,notnull,type:uuid" json:"author_id"`
	CategoryID *uuid.UUID `bun:"category_id,type:uuid"       json:"category_id,omitempty"`
	ImageURL   *string    `bun:"image_url"                   json:"image_url,omitempty"`
	ViewCount  int        `bun:"view_count,notnull,default:0" json:"view_count"`
	LikeCount  int        `bun:"like_count,notnull,default:0" json:"like_count"`

	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero"   json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// TranslatableValue returns the base-language value of a translatable field.
func (c *Content) TranslatableValue(field Field) string {
	if c == nil {
		return ""
	}
	switch field {
	case FieldTitle:
		return c.Title
	case FieldDescription:
		return c.Description
	case FieldBody:
		return c.Body
	case FieldMetaTitle:
		return c.MetaTitle
	case FieldMetaDescription:
		return c.MetaDescription
	case FieldOGTitle:
		return c.OGTitle
	case FieldOGDescription:
		return c.OGDescription
	case FieldSEOContent:
		return c.SEOContent
	}
	return ""
}

// SetTranslatableValue overwrites a translatable field on the record.
func (c *Content) SetTranslatableValue(field Field, value string) {
	if c == nil {
		return
	}
	switch field {
	case FieldTitle:
		c.Title = value
	case FieldDescription:
		c.Description = value
	case FieldBody:
		c.Body = value
	case FieldMetaTitle:
		c.MetaTitle = value
	case FieldMetaDescription:
		c.MetaDescription = value
	case FieldOGTitle:
		c.OGTitle = value
	case FieldOGDescription:
		c.OGDescription = value
	case FieldSEOContent:
		c.SEOContent = value
	}
}

// Clone returns a shallow copy of the record. Relation pointers are shared;
// translations only ever rewrite scalar text fields on the copy.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
