package markdown

import (
	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/pkg/interfaces"
)

// Renderer projects the Markdown body of a content record to HTML. Bodies are
// rendered after translation resolution, so the renderer never needs to know
// which language the record carries.
type Renderer struct {
	parser interfaces.MarkdownParser
}

// NewRenderer wraps a Markdown parser. A nil parser falls back to the default
// goldmark configuration.
func NewRenderer(parser interfaces.MarkdownParser) *Renderer {
	if parser == nil {
		parser = NewGoldmarkParser(interfaces.ParseOptions{})
	}
	return &Renderer{parser: parser}
}

// RenderBody converts the record's body to HTML. Empty bodies render to an
// empty string without touching the parser.
func (r *Renderer) RenderBody(record *catalog.Content) (string, error) {
	if record == nil || record.Body == "" {
		return "", nil
	}
	out, err := r.parser.Parse([]byte(record.Body))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
