package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaurav-prasanna/mdtoc/core"
	"github.com/gaurav-prasanna/mdtoc/core/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_Basic(t *testing.T) {
	doc := "[link here](https://github.com/scottfrazer/mdtoc/)"

	links := Links(doc)

	require.Len(t, links, 1)
	assert.Equal(t, "link here", links[0].Text)
	assert.Equal(t, "https://github.com/scottfrazer/mdtoc/", links[0].Href)
}

func TestLinks_NestedParensInURL(t *testing.T) {
	doc := "[multi parens??](https://google.com/co(mp)uting(iscool))"

	links := Links(doc)

	require.Len(t, links, 1)
	assert.Equal(t, "multi parens??", links[0].Text)
	assert.Equal(t, "https://google.com/co(mp)uting(iscool)", links[0].Href)
}

func TestLinks_LineAndColumn(t *testing.T) {
	doc := "intro\nsee [docs](#docs) here"

	links := Links(doc)

	require.Len(t, links, 1)
	// Line/col point at the start of the link text, not the bracket.
	assert.Equal(t, 2, links[0].Line)
	assert.Equal(t, 6, links[0].Col)
}

func TestLinks_None(t *testing.T) {
	assert.Empty(t, Links("no links in here"))
}

func TestCheck_Fragments(t *testing.T) {
	c := New(fetch.New(), []string{"#setup", "#setup-1"})

	res := c.Check(context.Background(), core.Link{Href: "#setup"})
	assert.Equal(t, StatusValid, res.Status)

	res = c.Check(context.Background(), core.Link{Href: "#setup-1"})
	assert.Equal(t, StatusValid, res.Status)

	res = c.Check(context.Background(), core.Link{Href: "#missing"})
	assert.Equal(t, StatusInvalid, res.Status)
}

func TestCheck_UnrecognizedScheme(t *testing.T) {
	c := New(fetch.New(), nil)

	res := c.Check(context.Background(), core.Link{Href: "mailto:someone@example.com"})

	assert.Equal(t, StatusUnknown, res.Status)
	assert.Equal(t, "unrecognized link type", res.Detail)
}

func TestCheck_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			w.Write([]byte("<html><body>fine</body></html>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(fetch.New(), nil)

	res := c.Check(context.Background(), core.Link{Href: srv.URL + "/ok"})
	assert.Equal(t, StatusValid, res.Status)
	assert.Equal(t, "Response: 200", res.Detail)

	res = c.Check(context.Background(), core.Link{Href: srv.URL + "/gone"})
	assert.Equal(t, StatusInvalid, res.Status)
	assert.Equal(t, "Response: 404", res.Detail)
}

func TestCheck_RemoteFragment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h2 id="install">Install</h2><a name="legacy"></a></body></html>`))
	}))
	defer srv.Close()

	c := New(fetch.New(), nil)

	res := c.Check(context.Background(), core.Link{Href: srv.URL + "#install"})
	assert.Equal(t, StatusValid, res.Status)

	res = c.Check(context.Background(), core.Link{Href: srv.URL + "#legacy"})
	assert.Equal(t, StatusValid, res.Status)

	res = c.Check(context.Background(), core.Link{Href: srv.URL + "#nope"})
	assert.Equal(t, StatusInvalid, res.Status)
	assert.Contains(t, res.Detail, "missing anchor #nope")
}

func TestCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(fetch.New(), nil)

	res := c.Check(context.Background(), core.Link{Href: srv.URL})
	assert.Equal(t, StatusUnreachable, res.Status)
}

func TestCheck_CachesProbes(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	c := New(fetch.New(), nil)
	c.Check(context.Background(), core.Link{Href: srv.URL})
	c.Check(context.Background(), core.Link{Href: srv.URL + "#frag"})
	c.Check(context.Background(), core.Link{Href: srv.URL})

	assert.Equal(t, 1, hits)
}
