package toc

import (
	"fmt"
	"strings"
)

// indentWidth is the number of spaces per nesting depth.
const indentWidth = 4

// Render numbers headers as nested ordered-list items and assigns each a
// unique anchor. Depth is measured from the shallowest level present, and
// each depth keeps its own counter that restarts under a new parent.
func Render(headers []Header) []Entry {
	if len(headers) == 0 {
		return nil
	}

	baseline := headers[0].Level
	for _, h := range headers[1:] {
		if h.Level < baseline {
			baseline = h.Level
		}
	}

	slugger := NewSlugger()
	entries := make([]Entry, 0, len(headers))

	// counters[d] is the last number used at depth d under the current parent.
	var counters []int

	for _, h := range headers {
		depth := h.Level - baseline

		// Leaving deeper scopes drops their counters; entering a deeper
		// scope starts fresh ones, including for skipped levels.
		if len(counters) > depth+1 {
			counters = counters[:depth+1]
		}
		for len(counters) < depth+1 {
			counters = append(counters, 0)
		}
		counters[depth]++

		entries = append(entries, Entry{
			Header: h,
			Depth:  depth,
			Number: counters[depth],
			Slug:   slugger.Slug(h.Text),
		})
	}

	return entries
}

// FormatEntry renders one list line, e.g. "    2. [Usage](#usage)".
func FormatEntry(e Entry) string {
	return fmt.Sprintf("%s%d. [%s](#%s)", strings.Repeat(" ", e.Depth*indentWidth), e.Number, e.Text, e.Slug)
}

// Block returns the lines of a TOC block: the title, a blank line, the list
// and a closing blank line. Without entries it is the title and one blank.
func Block(title string, entries []Entry) []string {
	lines := make([]string, 0, len(entries)+3)
	lines = append(lines, title, "")
	if len(entries) == 0 {
		return lines
	}
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}
	return append(lines, "")
}
