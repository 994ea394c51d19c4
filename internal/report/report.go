// Package report renders command results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

var (
	// titleStyle for bold headings
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for stale indicators
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// linkStyle for anchors in the entry preview
	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	// boxStyle for the preview box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// Summary describes the outcome of generating a TOC for one file.
type Summary struct {
	Input    string
	Output   string
	Entries  int
	Replaced bool
	Changed  bool
}

// Action returns what happened to the TOC block.
func (s Summary) Action() string {
	switch {
	case !s.Changed:
		return "up to date"
	case s.Replaced:
		return "updated"
	default:
		return "inserted"
	}
}

// FormatSummary writes a one-line result after generation
func FormatSummary(w io.Writer, s Summary) {
	indicator := successStyle.Render("✓")
	if !s.Changed {
		indicator = dimStyle.Render("=")
	}

	target := s.Output
	if target == "" {
		target = s.Input
	}

	fmt.Fprintf(w, "%s Table of Contents %s in %s %s\n",
		indicator,
		s.Action(),
		titleStyle.Render(target),
		dimStyle.Render(fmt.Sprintf("(%s)", pluralize(s.Entries, "entry", "entries"))),
	)
}

// FormatCheck writes the result of checking a file's TOC
func FormatCheck(w io.Writer, path string, current bool) {
	if current {
		fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("✓"), titleStyle.Render(path), dimStyle.Render("table of contents is up to date"))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", warnStyle.Render("✗"), titleStyle.Render(path), warnStyle.Render("table of contents is missing or stale"))
}

// FormatEntries renders the entries as an indented preview box
func FormatEntries(w io.Writer, title string, entries []toc.Entry) {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))

	if len(entries) == 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("no matching headers"))
	}
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("  ", e.Depth))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%d.", e.Number)))
		sb.WriteString(" ")
		sb.WriteString(e.Text)
		sb.WriteString(" ")
		sb.WriteString(linkStyle.Render("#" + e.Slug))
	}

	fmt.Fprintln(w, boxStyle.Render(sb.String()))
}

// FormatError writes an error message
func FormatError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
