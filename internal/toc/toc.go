package toc

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/mdtoc/internal/config"
)

// Build validates cfg, then extracts the headers of content, renders the
// table of contents and places it in the document. Nothing is produced when
// the configuration is invalid.
func Build(content string, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generating table of contents: %w", err)
	}

	lines := splitLines(content)
	l := scan(lines, cfg)
	entries := Render(l.headers)

	block := Block(cfg.TOCTitle, entries)
	if strings.Contains(content, "\r\n") {
		block = withCR(block)
	}

	out := strings.Join(place(lines, l, block), "\n")
	if strings.HasSuffix(content, "\n") {
		out += "\n"
	}

	return &Result{
		Content:  out,
		Entries:  entries,
		Replaced: l.existing != nil,
		Changed:  out != content,
	}, nil
}

// Generate is Build returning only the updated document.
func Generate(content string, cfg config.Config) (string, error) {
	result, err := Build(content, cfg)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// withCR terminates generated lines with "\r" so they match a CRLF document.
func withCR(block []string) []string {
	out := make([]string, len(block))
	for i, line := range block {
		out[i] = line + "\r"
	}
	return out
}
