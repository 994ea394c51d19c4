package toc

import (
	"strings"

	"github.com/itsmostafa/mdtoc/internal/config"
	"github.com/itsmostafa/mdtoc/internal/markdown"
)

// scanState tracks where the extraction pass is relative to the document
// title and its description paragraph.
type scanState int

const (
	stateBeforeTitle scanState = iota
	stateAfterTitle
	stateInDescription
	stateAfterDescription
	stateScanning
	stateInFence
)

// scanner carries the state of one extraction pass.
type scanner struct {
	lines  []string
	levels map[int]bool
	title  string

	state  scanState
	resume scanState
	fence  markdown.Fence

	out layout
}

// Extract returns the headers of content that belong in the table of
// contents, in document order. The configuration is assumed valid.
func Extract(content string, cfg config.Config) []Header {
	return scan(splitLines(content), cfg).headers
}

// scan makes a single forward pass over lines.
func scan(lines []string, cfg config.Config) layout {
	s := &scanner{
		lines:  lines,
		levels: cfg.Levels(),
		title:  cfg.TOCTitle,
		state:  stateBeforeTitle,
		out:    layout{title: -1},
	}

	for i := 0; i < len(lines); i++ {
		i = s.step(i)
	}

	return s.out
}

// step processes line i and returns the index of the last line consumed.
func (s *scanner) step(i int) int {
	line := s.lines[i]

	if s.state == stateInFence {
		if s.fence.Closes(line) {
			s.state = s.resume
		}
		return i
	}

	if fence, ok := markdown.ParseFence(line); ok {
		// A fence ends the title area; the TOC goes above the code.
		if s.state != stateBeforeTitle {
			s.state = stateScanning
		}
		s.resume = s.state
		s.fence = fence
		s.state = stateInFence
		return i
	}

	header, isHeader := markdown.ParseHeader(line)
	blank := markdown.IsBlank(line)

	switch s.state {
	case stateBeforeTitle:
		// A level-1 TOC title at the top is the existing block, not the
		// document title.
		if isHeader && header.Level == 1 && !markdown.SameHeader(line, s.title) {
			s.out.title = i
			s.out.insertAt = i + 1
			s.state = stateAfterTitle
			return i
		}
	case stateAfterTitle:
		if blank {
			s.out.insertAt = i + 1
			return i
		}
		if !isHeader {
			s.out.insertAt = i + 1
			s.state = stateInDescription
			return i
		}
		s.state = stateScanning
	case stateInDescription:
		if blank {
			s.out.insertAt = i + 1
			s.state = stateAfterDescription
			return i
		}
		if !isHeader {
			s.out.insertAt = i + 1
			return i
		}
		s.state = stateScanning
	case stateAfterDescription:
		if blank {
			s.out.insertAt = i + 1
			return i
		}
		s.state = stateScanning
	}

	if !isHeader {
		return i
	}

	// The TOC's own title is never an entry.
	if markdown.SameHeader(line, s.title) {
		if s.out.existing == nil {
			block := existingBlock(s.lines, i)
			s.out.existing = &block
			return block.end - 1
		}
		return i
	}

	if s.levels[header.Level] {
		s.out.headers = append(s.out.headers, Header{
			Level: header.Level,
			Text:  header.Text,
			Line:  i,
		})
	}
	return i
}

// existingBlock measures the TOC block whose title is on line start: the
// title, at most one blank line, a contiguous run of list items and one
// trailing blank line.
func existingBlock(lines []string, start int) span {
	i := start + 1
	if i < len(lines) && markdown.IsBlank(lines[i]) {
		i++
	}

	items := i
	for items < len(lines) && markdown.IsListItem(lines[items]) {
		items++
	}
	if items == i {
		// Title with an empty list.
		return span{start: start, end: i}
	}

	end := items
	if end < len(lines) && markdown.IsBlank(lines[end]) {
		end++
	}
	return span{start: start, end: end}
}

// splitLines splits content on '\n'. A final newline does not produce an
// empty last line.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
