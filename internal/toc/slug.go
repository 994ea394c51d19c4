package toc

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugger generates unique GitHub-style anchors for one document.
type Slugger struct {
	occurrences map[string]int
	lower       cases.Caser
}

// NewSlugger returns a Slugger with no anchors reserved.
func NewSlugger() *Slugger {
	return &Slugger{
		occurrences: make(map[string]int),
		lower:       cases.Lower(language.Und),
	}
}

// Slug returns the anchor for text. Repeated anchors get "-1", "-2", ...
// appended, and a suffixed anchor is itself reserved.
func (s *Slugger) Slug(text string) string {
	base := slugify(s.lower.String(text))

	slug := base
	for {
		if _, taken := s.occurrences[slug]; !taken {
			break
		}
		s.occurrences[base]++
		slug = base + "-" + strconv.Itoa(s.occurrences[base])
	}
	s.occurrences[slug] = 0

	return slug
}

// Slugify returns the GitHub anchor for text without duplicate tracking.
func Slugify(text string) string {
	return slugify(cases.Lower(language.Und).String(text))
}

// slugify drops everything except letters, digits, marks, '_' and '-', and
// turns each whitespace run into a single hyphen. lowered must already be
// lowercase.
func slugify(lowered string) string {
	var sb strings.Builder
	pendingSpace := false

	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r):
			if pendingSpace {
				sb.WriteByte('-')
				pendingSpace = false
			}
			sb.WriteRune(r)
		}
	}

	return strings.Trim(sb.String(), "-")
}
