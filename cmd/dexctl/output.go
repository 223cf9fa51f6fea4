package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Colors
var (
	primaryColor = lipgloss.Color("39")  // Blue
	accentColor  = lipgloss.Color("76")  // Green
	errorColor   = lipgloss.Color("196") // Red
	warningColor = lipgloss.Color("214") // Orange
	mutedColor   = lipgloss.Color("240") // Gray
)

// printer writes command output as JSON or styled text.
type printer struct {
	w        io.Writer
	json     bool
	renderer *lipgloss.Renderer
}

func (g *Globals) printer() *printer {
	w := g.writer()
	return &printer{w: w, json: g.JSON, renderer: lipgloss.NewRenderer(w)}
}

// emit prints v as indented JSON with --json, otherwise calls text.
func (p *printer) emit(v any, text func()) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.w, p.renderer.NewStyle().Bold(true).Foreground(primaryColor).Render(s))
}

func (p *printer) ok(s string) {
	fmt.Fprintln(p.w, p.renderer.NewStyle().Foreground(accentColor).Render(s))
}

func (p *printer) warn(s string) {
	fmt.Fprintln(p.w, p.renderer.NewStyle().Foreground(warningColor).Render(s))
}

func (p *printer) fail(s string) {
	fmt.Fprintln(p.w, p.renderer.NewStyle().Foreground(errorColor).Render(s))
}

func (p *printer) muted(s string) {
	fmt.Fprintln(p.w, p.renderer.NewStyle().Foreground(mutedColor).Render(s))
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// table prints rows under headers with a rounded border.
func (p *printer) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		p.muted("(nothing to show)")
		return
	}

	header := p.renderer.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cell := p.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.renderer.NewStyle().Foreground(mutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	fmt.Fprintln(p.w, t.Render())
}

// yesNo renders a flag for table cells.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
