// Package linkcheck finds the Markdown links in a document and validates
// them: in-document fragments against the generated TOC anchors, http(s)
// links by probing the target and, when the link carries a fragment,
// looking the anchor up in the fetched page.
package linkcheck

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/mdtoc/core"
)

// linkPattern matches [text](url). The URL group tolerates one level of
// parentheses nested inside the link's own, for URLs like
// https://example.com/co(mp)uting.
var linkPattern = regexp.MustCompile(`\[([^\[\]]+)\]\(((?:[^\s)(]|\([^\s)(]*\))*)\)`)

// Links returns every Markdown link in doc, in source order, located by the
// line and column of its display text.
func Links(doc string) []core.Link {
	matches := linkPattern.FindAllStringSubmatchIndex(doc, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		line, col := lineCol(doc, m[2])
		links = append(links, core.Link{
			Text: doc[m[2]:m[3]],
			Href: doc[m[4]:m[5]],
			Line: line,
			Col:  col,
		})
	}
	return links
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(doc string, pos int) (int, int) {
	line, col := 1, 1
	for i, ch := range doc {
		if i >= pos {
			break
		}
		if ch == '\n' || ch == '\r' {
			line, col = line+1, 1
		} else {
			col++
		}
	}
	return line, col
}

// Status classifies a checked link.
type Status int

const (
	// StatusValid means the target resolves (known anchor or 2xx page).
	StatusValid Status = iota
	// StatusInvalid means the target is broken (unknown anchor, missing
	// remote anchor, or a non-2xx response).
	StatusInvalid
	// StatusUnreachable means the probe itself failed at transport level.
	StatusUnreachable
	// StatusUnknown means the link scheme is not one the checker handles.
	StatusUnknown
)

// Result is the verdict for one link.
type Result struct {
	Link   core.Link
	Status Status
	// Detail is a human-readable note: the HTTP status, the transport
	// error, or why the link was skipped.
	Detail string
}

// Checker validates links against a document's anchor set and the network.
// Probed pages are cached per URL, so a link that appears many times is
// fetched once.
type Checker struct {
	fetcher core.Fetcher
	anchors map[string]struct{}
	cache   map[string]*probe
}

type probe struct {
	res *core.FetchResult
	err error
}

// New creates a Checker. anchors is the document's valid "#slug" set,
// normally renderer.Anchors on the extracted headers.
func New(fetcher core.Fetcher, anchors []string) *Checker {
	set := make(map[string]struct{}, len(anchors))
	for _, a := range anchors {
		set[a] = struct{}{}
	}
	return &Checker{
		fetcher: fetcher,
		anchors: set,
		cache:   map[string]*probe{},
	}
}

// Check validates a single link.
func (c *Checker) Check(ctx context.Context, link core.Link) Result {
	switch {
	case strings.HasPrefix(link.Href, "#"):
		if _, ok := c.anchors[link.Href]; ok {
			return Result{Link: link, Status: StatusValid, Detail: "anchor found"}
		}
		return Result{Link: link, Status: StatusInvalid, Detail: "no such anchor in document"}

	case strings.HasPrefix(link.Href, "http://") || strings.HasPrefix(link.Href, "https://"):
		return c.checkHTTP(ctx, link)

	default:
		return Result{Link: link, Status: StatusUnknown, Detail: "unrecognized link type"}
	}
}

func (c *Checker) checkHTTP(ctx context.Context, link core.Link) Result {
	target, fragment, _ := strings.Cut(link.Href, "#")

	p := c.cache[target]
	if p == nil {
		res, err := c.fetcher.Fetch(ctx, target)
		p = &probe{res: res, err: err}
		c.cache[target] = p
	}
	if p.err != nil {
		return Result{Link: link, Status: StatusUnreachable, Detail: p.err.Error()}
	}

	detail := "Response: " + strconv.Itoa(p.res.StatusCode)
	if p.res.StatusCode < 200 || p.res.StatusCode >= 300 {
		return Result{Link: link, Status: StatusInvalid, Detail: detail}
	}
	if fragment != "" && !hasAnchor(p.res.Body, fragment) {
		return Result{Link: link, Status: StatusInvalid, Detail: detail + ", missing anchor #" + fragment}
	}
	return Result{Link: link, Status: StatusValid, Detail: detail}
}

// hasAnchor reports whether the HTML contains an element with the given id,
// or an <a> with a matching name attribute. Attribute values are compared
// directly instead of building a CSS selector from untrusted input.
func hasAnchor(html, fragment string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	found := false
	doc.Find("[id],a[name]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if id, ok := s.Attr("id"); ok && id == fragment {
			found = true
			return false
		}
		if name, ok := s.Attr("name"); ok && name == fragment {
			found = true
			return false
		}
		return true
	})
	return found
}
