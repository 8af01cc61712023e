// Package core defines the shared types and stage interfaces for mdtoc.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// Header represents a single ATX header found in a Markdown document.
type Header struct {
	// Level is the count of opening '#' characters (1–6).
	Level int
	// Title is the inline heading text, stripped of surrounding whitespace
	// and of a space-preceded closing hash run.
	Title string
	// Line is the 1-based source line the header was found on.
	Line int
}

// Link represents a Markdown link found in a document.
type Link struct {
	Text string
	Href string
	// Line and Col locate the start of the link text, both 1-based.
	Line int
	Col  int
}

// TocOptions controls how the table of contents is rendered.
type TocOptions struct {
	// Indent is the number of spaces per heading level.
	Indent int
	// Bullet is the list marker, "-" or "*".
	Bullet string
	// Anchors emits each entry as a [title](#slug) link instead of bare text.
	Anchors bool
	// DedupeSlugs suffixes repeated slugs with -1, -2, ... so every anchor
	// is unique. The first occurrence keeps the bare slug.
	DedupeSlugs bool
}

// DefaultTocOptions returns the rendering defaults: two-space indent,
// '*' bullets, anchor links, deduplicated slugs.
func DefaultTocOptions() TocOptions {
	return TocOptions{
		Indent:      2,
		Bullet:      "*",
		Anchors:     true,
		DedupeSlugs: true,
	}
}

// FetchResult holds the response body and metadata from a fetch.
// Non-2xx responses are results, not errors: the link checker reports
// status codes rather than failing on them.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       string
}

// Extractor produces the ordered sequence of headers in a document.
type Extractor interface {
	Extract(doc string) []Header
}

// Renderer converts an ordered header sequence into the TOC text block.
type Renderer interface {
	Render(headers []Header) string
}

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
