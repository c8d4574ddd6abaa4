package view

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownRenderer converts rendered ".md" templates to HTML.
// Any other path is passed through unchanged.
type MarkdownRenderer struct {
	next Renderer
	md   goldmark.Markdown
}

// NewMarkdownRenderer wraps next with markdown conversion
func NewMarkdownRenderer(next Renderer) *MarkdownRenderer {
	return &MarkdownRenderer{
		next: next,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render renders path with the wrapped renderer and converts markdown output to HTML
func (r *MarkdownRenderer) Render(path string, data map[string]any) (string, error) {
	content, err := r.next.Render(path, data)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(filepath.Ext(path), ".md") {
		return content, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown %q: %w", path, err)
	}
	return buf.String(), nil
}
