// Package render implements the Renderer interface.
// It turns an ordered header sequence into the indented Markdown list that
// gets spliced between the TOC markers.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/mdtoc/core"
)

// TocRenderer renders headers as an indented bullet list with anchor links.
type TocRenderer struct {
	opts core.TocOptions
}

// New creates a TocRenderer with the given options.
func New(opts core.TocOptions) *TocRenderer {
	return &TocRenderer{opts: opts}
}

// Render produces the TOC block: one line per header, indented by
// Indent×(level-1) spaces. Lines are joined with '\n' and there is no
// trailing newline; an empty sequence renders the empty string. Rendering
// is deterministic, so the same sequence always yields identical output.
func (r *TocRenderer) Render(headers []core.Header) string {
	var b strings.Builder
	seen := map[string]int{}

	for i, h := range headers {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", r.opts.Indent*(h.Level-1)))
		b.WriteString(r.opts.Bullet)
		b.WriteByte(' ')
		if r.opts.Anchors {
			fmt.Fprintf(&b, "[%s](#%s)", escape(h.Title), r.slug(h.Title, seen))
		} else {
			b.WriteString(escape(h.Title))
		}
	}
	return b.String()
}

// Anchors returns the "#slug" fragment for every header, deduplicated the
// same way Render deduplicates, so the link checker validates against
// exactly the anchors the rendered TOC points at.
func (r *TocRenderer) Anchors(headers []core.Header) []string {
	anchors := make([]string, 0, len(headers))
	seen := map[string]int{}
	for _, h := range headers {
		anchors = append(anchors, "#"+r.slug(h.Title, seen))
	}
	return anchors
}

// slug derives the anchor for a title, applying the -1, -2, ... suffix for
// repeats when deduplication is on. seen carries the per-document counts.
func (r *TocRenderer) slug(title string, seen map[string]int) string {
	s := Slugify(title)
	if !r.opts.DedupeSlugs {
		return s
	}
	n := seen[s]
	seen[s]++
	if n > 0 {
		s += "-" + strconv.Itoa(n)
	}
	return s
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Everything that is not a letter, digit, underscore, or hyphen is
	// dropped from slugs. Unicode letters and digits survive.
	slugInvalid = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

// Slugify converts a header title into its GitHub-style anchor: lowercase,
// whitespace runs become single hyphens, punctuation is dropped. A result
// ending in a double hyphen is collapsed to end in exactly one.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.Trim(s, " \t#")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	if strings.HasSuffix(s, "--") {
		s = strings.Trim(s, "-") + "-"
	}
	return s
}

// escape backslash-escapes '[' and ']' so titles can't break the link text.
func escape(title string) string {
	title = strings.ReplaceAll(title, "[", `\[`)
	return strings.ReplaceAll(title, "]", `\]`)
}
