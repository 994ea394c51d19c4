package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

func TestSummaryAction(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{"unchanged", Summary{Replaced: true, Changed: false}, "up to date"},
		{"replaced", Summary{Replaced: true, Changed: true}, "updated"},
		{"inserted", Summary{Replaced: false, Changed: true}, "inserted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Action())
		})
	}
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, Summary{Input: "README.md", Entries: 1, Changed: true})

	out := buf.String()
	assert.Contains(t, out, "inserted")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "1 entry")
}

func TestFormatSummary_PrefersOutputPath(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, Summary{Input: "README.md", Output: "out.md", Entries: 3, Replaced: true, Changed: true})

	out := buf.String()
	assert.Contains(t, out, "out.md")
	assert.NotContains(t, out, "README.md")
	assert.Contains(t, out, "3 entries")
}

func TestFormatCheck(t *testing.T) {
	var buf bytes.Buffer
	FormatCheck(&buf, "docs.md", true)
	assert.Contains(t, buf.String(), "up to date")

	buf.Reset()
	FormatCheck(&buf, "docs.md", false)
	assert.Contains(t, buf.String(), "missing or stale")
}

func TestFormatEntries(t *testing.T) {
	entries := toc.Render([]toc.Header{
		{Level: 2, Text: "Install"},
		{Level: 3, Text: "From source"},
	})

	var buf bytes.Buffer
	FormatEntries(&buf, "## Table of Contents", entries)

	out := buf.String()
	assert.Contains(t, out, "Table of Contents")
	assert.Contains(t, out, "Install")
	assert.Contains(t, out, "#install")
	assert.Contains(t, out, "#from-source")
}

func TestFormatEntries_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatEntries(&buf, "## Contents", nil)
	assert.Contains(t, buf.String(), "no matching headers")
}

func TestFormatError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error: boom")
}
