// Package markdown classifies single lines of a markdown document.
//
// The classifiers are deliberately line-oriented: they answer "is this line
// an ATX header / a code fence / a list item" without building a document
// tree, which is all the TOC generator needs.
package markdown

import (
	"regexp"
	"strings"
)

// Header is an ATX header recognised on a single line.
type Header struct {
	Level int
	Text  string
}

// Fence is an opening code fence delimiter.
type Fence struct {
	Char   byte
	Length int
}

var (
	headerPattern   = regexp.MustCompile(`^[ \t]*(#{1,6})[ \t]+(.*)$`)
	fencePattern    = regexp.MustCompile("^[ \\t]*(`{3,}|~{3,})(.*)$")
	listItemPattern = regexp.MustCompile(`^[ \t]*(\d{1,9}[.)]|[-*+])[ \t]+\S`)
)

// ParseHeader reports whether line is an ATX header and returns its level and
// text. The closing sequence of '#' characters is stripped from the text.
func ParseHeader(line string) (Header, bool) {
	matches := headerPattern.FindStringSubmatch(trimCR(line))
	if matches == nil {
		return Header{}, false
	}

	text := stripClosingHashes(strings.TrimRight(matches[2], " \t"))
	if text == "" {
		return Header{}, false
	}

	return Header{
		Level: len(matches[1]),
		Text:  text,
	}, true
}

// stripClosingHashes removes an optional closing run of '#'. The run only
// counts as closing when it is the whole text or preceded by whitespace, so
// "C#" keeps its hash.
func stripClosingHashes(text string) string {
	stripped := strings.TrimRight(text, "#")
	if stripped == text {
		return text
	}
	if stripped == "" {
		return ""
	}
	if last := stripped[len(stripped)-1]; last == ' ' || last == '\t' {
		return strings.TrimRight(stripped, " \t")
	}
	return text
}

// ParseFence reports whether line opens a fenced code block.
func ParseFence(line string) (Fence, bool) {
	matches := fencePattern.FindStringSubmatch(trimCR(line))
	if matches == nil {
		return Fence{}, false
	}

	marker := matches[1]
	// An info string on a backtick fence may not contain backticks.
	if marker[0] == '`' && strings.Contains(matches[2], "`") {
		return Fence{}, false
	}

	return Fence{Char: marker[0], Length: len(marker)}, true
}

// Closes reports whether line closes the fence f: the same character, at
// least as many of them, and nothing else on the line.
func (f Fence) Closes(line string) bool {
	trimmed := strings.TrimSpace(trimCR(line))
	if len(trimmed) < f.Length {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != f.Char {
			return false
		}
	}
	return true
}

// IsListItem reports whether line is an ordered or bullet list item with
// content.
func IsListItem(line string) bool {
	return listItemPattern.MatchString(trimCR(line))
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// SameHeader reports whether two lines denote the same header: identical
// once surrounding whitespace is removed, or both headers with equal level
// and text.
func SameHeader(a, b string) bool {
	if strings.TrimSpace(a) == strings.TrimSpace(b) {
		return true
	}
	ha, ok := ParseHeader(a)
	if !ok {
		return false
	}
	hb, ok := ParseHeader(b)
	if !ok {
		return false
	}
	return ha.Level == hb.Level && ha.Text == hb.Text
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
