// Package toc generates a numbered table of contents for a markdown document
// and splices it into the document.
//
// # Overview
//
// Generation is a two-step pipeline over the document's lines:
//
//   - Extraction: a single forward pass finds the document title (first H1),
//     the description paragraph below it, any existing TOC block and every
//     ATX header in the configured levels. Lines inside fenced code blocks
//     are never headers.
//
//   - Rendering and placement: headers become a nested ordered list of
//     GitHub anchor links. The list replaces an existing TOC block, or is
//     inserted after the title and description when there is none.
//
// Everything outside the replaced or inserted region is left untouched, and
// running the generator on its own output changes nothing.
//
// # Usage
//
//	cfg := config.Default()
//	out, err := toc.Generate(content, cfg)
//
// Build returns the same content together with the rendered entries and
// whether anything changed, which is what the check command uses.
package toc
