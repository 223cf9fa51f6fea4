// Package render turns generated answers into HTML for the dashboard.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts markdown to HTML. Raw HTML in the source is dropped.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with table, strikethrough, task list and linkify support.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.TaskList,
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render returns the HTML for src.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

var defaultRenderer = NewRenderer()

// Markdown renders src with the default Renderer.
func Markdown(src string) (string, error) {
	return defaultRenderer.Render(src)
}
