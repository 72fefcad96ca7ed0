package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a terminal of the given width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	// Style is a glamour standard style name such as "dark" or "light".
	// Empty picks one from the terminal background.
	Style string
}

// Render implements MarkdownRenderer.
func (g GlamourRenderer) Render(content string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if g.Style != "" {
		opts = append(opts, glamour.WithStandardStyle(g.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content, falling back to the raw text when rendering fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	if width < 20 {
		width = 20
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return out
}
