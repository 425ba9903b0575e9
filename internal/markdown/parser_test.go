package markdown

import (
	"strings"
	"testing"

	"github.com/promptda/promptda/internal/catalog"
	"github.com/promptda/promptda/pkg/interfaces"
)

func TestParseRendersHTML(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := p.Parse([]byte("# Title\n\nSome **bold** text."))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") {
		t.Fatalf("expected a heading, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold text, got %q", html)
	}
}

func TestParseDefaultExtensionsIncludeGFM(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := p.Parse([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !strings.Contains(string(out), "<del>gone</del>") {
		t.Fatalf("expected strikethrough rendering, got %q", string(out))
	}
}

func TestParseSafeModeSuppressesRawHTML(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})

	out, err := p.Parse([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("expected raw HTML to be suppressed, got %q", string(out))
	}
}

func TestParseWithOptionsUnknownExtensionIgnored(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := p.ParseWithOptions([]byte("plain"), interfaces.ParseOptions{
		Extensions: []string{"gfm", "does-not-exist"},
	})
	if err != nil {
		t.Fatalf("ParseWithOptions error: %v", err)
	}
	if !strings.Contains(string(out), "plain") {
		t.Fatalf("expected content to render, got %q", string(out))
	}
}

func TestRenderBody(t *testing.T) {
	r := NewRenderer(nil)

	record := &catalog.Content{Body: "A *prompt* body."}
	html, err := r.RenderBody(record)
	if err != nil {
		t.Fatalf("RenderBody error: %v", err)
	}
	if !strings.Contains(html, "<em>prompt</em>") {
		t.Fatalf("expected emphasis, got %q", html)
	}

	empty, err := r.RenderBody(&catalog.Content{})
	if err != nil {
		t.Fatalf("RenderBody empty error: %v", err)
	}
	if empty != "" {
		t.Fatalf("expected empty output for empty body, got %q", empty)
	}
}
