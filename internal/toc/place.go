package toc

import (
	"strings"

	"github.com/itsmostafa/mdtoc/internal/markdown"
)

// place returns lines with block replacing the existing TOC region, or
// inserted at the layout's insertion point when there is none.
func place(lines []string, l layout, block []string) []string {
	if l.existing != nil {
		return splice(lines, l.existing.start, l.existing.end, fitTrailing(block, lines, l.existing.end))
	}

	at := l.insertAt
	block = fitTrailing(block, lines, at)
	if at > 0 && !markdown.IsBlank(lines[at-1]) {
		separator := ""
		if strings.HasSuffix(block[0], "\r") {
			separator = "\r"
		}
		block = append([]string{separator}, block...)
	}
	return splice(lines, at, at, block)
}

// fitTrailing drops the block's closing blank line when the line that will
// follow it is already blank or the document ends there.
func fitTrailing(block, lines []string, next int) []string {
	if len(block) == 0 || !markdown.IsBlank(block[len(block)-1]) {
		return block
	}
	if next >= len(lines) || markdown.IsBlank(lines[next]) {
		return block[:len(block)-1]
	}
	return block
}

// splice replaces lines[start:end] with repl without modifying lines.
func splice(lines []string, start, end int, repl []string) []string {
	out := make([]string, 0, len(lines)-(end-start)+len(repl))
	out = append(out, lines[:start]...)
	out = append(out, repl...)
	return append(out, lines[end:]...)
}
