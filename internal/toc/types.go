package toc

// Header is an ATX header retained for the table of contents.
type Header struct {
	Level int
	Text  string
	// Line is the 0-indexed line number in the source document.
	Line int
}

// Entry is a rendered TOC item.
type Entry struct {
	Header
	Depth  int    // nesting depth below the shallowest retained level
	Number int    // position among siblings, starting at 1
	Slug   string // anchor without the leading '#'
}

// Result is the outcome of generating a table of contents.
type Result struct {
	// Content is the full document with the TOC inserted or replaced
	Content string
	// Entries are the rendered items in document order
	Entries []Entry
	// Replaced is true when an existing TOC block was found and replaced
	Replaced bool
	// Changed is true when Content differs from the input
	Changed bool
}

// span is a half-open range of line indices.
type span struct {
	start int
	end   int
}

// layout is what the extraction pass learns about a document.
type layout struct {
	headers []Header
	// title is the line of the first H1, -1 when there is none
	title int
	// insertAt is the line before which a new TOC block goes
	insertAt int
	// existing is the first TOC block found, nil when there is none
	existing *span
}
