package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders section intros for the terminal.
type Markdown struct {
	renderer *glamour.TermRenderer
	width    int
}

// MinMarkdownWidth is the narrowest wrap width a renderer is built for.
const MinMarkdownWidth = 20

// MarkdownWrap returns the wrap width a renderer built for width uses.
func MarkdownWrap(width int) int {
	if width < MinMarkdownWidth {
		return MinMarkdownWidth
	}
	return width
}

// NewMarkdown returns a renderer for the given theme ("auto", "dark",
// "light", or any glamour standard style such as "notty") wrapping at width.
func NewMarkdown(theme string, width int) (*Markdown, error) {
	width = MarkdownWrap(width)

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch theme {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(theme))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Markdown{renderer: r, width: width}, nil
}

// Width returns the wrap width the renderer was built for.
func (m *Markdown) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Render renders md. A nil renderer, or a rendering failure, yields the
// source text unchanged.
func (m *Markdown) Render(md string) string {
	if m == nil || m.renderer == nil {
		return strings.TrimSpace(md)
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return strings.TrimSpace(md)
	}
	return strings.Trim(out, "\n")
}
