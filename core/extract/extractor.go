// Package extract implements the Extractor interface.
// It scans a Markdown document line by line for ATX headers (1–6 leading
// '#' characters), skipping anything inside a fenced code block.
package extract

import (
	"strings"

	"github.com/gaurav-prasanna/mdtoc/core"
)

// HeaderExtractor finds ATX headers in Markdown text.
// It holds no state; fence tracking lives on the stack of Extract, so a
// single extractor is safe to use concurrently across documents.
type HeaderExtractor struct{}

// New creates a HeaderExtractor.
func New() *HeaderExtractor {
	return &HeaderExtractor{}
}

// Extract returns the headers of doc in source order. Duplicate titles are
// kept; a document without headers yields nil. Malformed input never fails:
// lines that don't match the header rules simply contribute nothing, and an
// unterminated fence swallows every line after it.
func (e *HeaderExtractor) Extract(doc string) []core.Header {
	var headers []core.Header

	// fence is the delimiter character of the open fence, 0 when outside.
	// Only a run of the same character closes the fence.
	var fence byte

	for i, line := range strings.Split(doc, "\n") {
		if marker, ok := fenceDelimiter(line); ok {
			switch fence {
			case 0:
				fence = marker
			case marker:
				fence = 0
			}
			// A fence line is never a header candidate.
			continue
		}
		if fence != 0 {
			continue
		}

		h, ok := parseHeader(line)
		if !ok {
			continue
		}
		h.Line = i + 1
		headers = append(headers, h)
	}
	return headers
}

// fenceDelimiter reports whether line opens or closes a fenced code block:
// a run of 3+ backticks or 3+ tildes, indented by at most 3 spaces.
// It returns the delimiter character on a match.
func fenceDelimiter(line string) (byte, bool) {
	i := 0
	for i < len(line) && i <= 3 && line[i] == ' ' {
		i++
	}
	if i > 3 || i >= len(line) {
		return 0, false
	}
	marker := line[i]
	if marker != '`' && marker != '~' {
		return 0, false
	}
	run := 0
	for i < len(line) && line[i] == marker {
		run++
		i++
	}
	if run < 3 {
		return 0, false
	}
	return marker, true
}

// parseHeader classifies a single line outside any fence. A header is
// 0–3 leading spaces (tabs count as spaces here), 1–6 '#' characters, then
// end of line or at least one space/tab. Seven or more hashes disqualify
// the line, as does any other character directly after the hash run.
func parseHeader(line string) (core.Header, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i > 3 {
		return core.Header{}, false
	}

	level := 0
	for i < len(line) && line[i] == '#' {
		level++
		i++
	}
	if level < 1 || level > 6 {
		return core.Header{}, false
	}
	if i < len(line) && line[i] != ' ' && line[i] != '\t' {
		return core.Header{}, false
	}

	return core.Header{Level: level, Title: cleanTitle(line[i:])}, true
}

// cleanTitle strips the raw header text: surrounding whitespace goes, and a
// trailing run of '#' goes only when a space precedes it ("## Title ##"
// becomes "Title", but "## Title##" keeps its hashes). A run that makes up
// the entire title ("# ###") is stripped to the empty title.
func cleanTitle(rest string) string {
	title := strings.TrimLeft(rest, " \t")
	title = strings.TrimRight(title, " \t")

	end := len(title)
	for end > 0 && title[end-1] == '#' {
		end--
	}
	if end == len(title) {
		return title
	}
	if end == 0 || title[end-1] == ' ' || title[end-1] == '\t' {
		return strings.TrimRight(title[:end], " \t")
	}
	return title
}
