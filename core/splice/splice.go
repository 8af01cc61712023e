// Package splice locates the TOC marker pair in a Markdown document and
// replaces everything between the markers with a freshly rendered block.
package splice

import (
	"errors"
	"regexp"
)

// Marker lines delimiting the generated block. Everything between one
// start/end pair is owned by mdtoc and rewritten on every update.
const (
	StartMarker = "<!---toc start-->"
	EndMarker   = "<!---toc end-->"
)

var (
	// ErrMissingMarkers means the document has no start/end marker pair.
	ErrMissingMarkers = errors.New("document missing toc start/end markers")
	// ErrMultipleMarkers means more than one marker pair was found.
	ErrMultipleMarkers = errors.New("multiple toc start/end marker pairs detected")
)

// tocBlock matches the marker pair and everything between, plus any
// horizontal whitespace hugging the markers on their own lines.
var tocBlock = regexp.MustCompile(`(?s)[ \t]*` + StartMarker + `.*?` + EndMarker + `[ \t]*`)

// Replace returns doc with the TOC block replaced by toc. A non-empty toc
// is padded with a blank line on each side; an empty toc leaves the markers
// on adjacent lines. Exactly one marker pair must be present.
func Replace(doc, toc string) (string, error) {
	matches := tocBlock.FindAllStringIndex(doc, -1)
	switch len(matches) {
	case 0:
		return "", ErrMissingMarkers
	case 1:
	default:
		return "", ErrMultipleMarkers
	}

	block := StartMarker + "\n" + EndMarker
	if toc != "" {
		block = StartMarker + "\n\n" + toc + "\n\n" + EndMarker
	}

	m := matches[0]
	return doc[:m[0]] + block + doc[m[1]:], nil
}
