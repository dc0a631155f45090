package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attrdoc/internal/iotest"
	"golang.org/x/net/html"
)

func TestIntegration_noBrokenLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc      string
		file      string
		highlight string
	}{
		{desc: "plain", file: "testdata/config.nix", highlight: "attrdoc-plain"},
		{desc: "github", file: "testdata/config.nix", highlight: "github"},
		{desc: "monokai", file: "testdata/config.nix", highlight: "monokai"},
		{desc: "dotted keys", file: "testdata/dotted.nix", highlight: "attrdoc-plain"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var page bytes.Buffer
			exitCode := (&mainCmd{
				Stdout: &page,
				Stderr: iotest.Writer(t),
			}).Run([]string{"-mode=html", "-debug", "-highlight=" + tt.highlight, tt.file})
			require.Zero(t, exitCode)

			outDir := t.TempDir()
			require.NoError(t,
				os.WriteFile(filepath.Join(outDir, "index.html"), page.Bytes(), 0o644))

			srv := httptest.NewServer(http.FileServer(http.FS(os.DirFS(outDir))))
			t.Cleanup(srv.Close)

			w := newURLWalker(t)
			w.Walk(srv.URL + "/")
			assert.NotEmpty(t, w.fragments, "page should link to its options")
		})
	}
}

// urlWalker visits all local pages for the generated documentation
// and verifies that none of the links are broken.
// Links to fragments must name an element on the target page.
type urlWalker struct {
	t      *testing.T
	host   string
	seen   map[string]struct{}
	queue  []*url.URL
	client *http.Client

	ids       map[string]map[string]struct{} // page => element IDs
	fragments []*url.URL
}

func newURLWalker(t *testing.T) *urlWalker {
	return &urlWalker{
		t:      t,
		seen:   make(map[string]struct{}),
		client: http.DefaultClient,
		ids:    make(map[string]map[string]struct{}),
	}
}

func (w *urlWalker) Walk(startPage string) {
	u, err := url.Parse(startPage)
	require.NoError(w.t, err)
	w.host = u.Host

	w.queue = append(w.queue, u)
	for len(w.queue) > 0 {
		var u *url.URL
		u, w.queue = w.queue[0], w.queue[1:]
		w.visit(u)
	}

	for _, frag := range w.fragments {
		page := *frag
		page.Fragment = ""
		_, ok := w.ids[page.String()][frag.Fragment]
		assert.True(w.t, ok, "broken link: %v", frag)
	}
}

func (w *urlWalker) visit(dest *url.URL) {
	if _, ok := w.seen[dest.String()]; ok {
		return
	}
	w.seen[dest.String()] = struct{}{}

	w.t.Log("Visiting", dest)
	res, err := w.client.Get(dest.String())
	if !assert.NoError(w.t, err, "error visiting %v", dest) {
		return
	}
	defer res.Body.Close()
	if !assert.Equal(w.t, 200, res.StatusCode, "bad response from %v: %v", dest, res.Status) {
		return
	}

	ids := make(map[string]struct{})
	w.ids[dest.String()] = ids

	tokz := html.NewTokenizer(res.Body)
	for {
		if tokz.Next() == html.ErrorToken {
			err := tokz.Err()
			if errors.Is(err, io.EOF) {
				err = nil
			}
			assert.NoError(w.t, err, "error reading %v", dest)
			break
		}

		tok := tokz.Token()
		if tok.Type != html.StartTagToken {
			continue
		}

		var href string
		for _, attr := range tok.Attr {
			switch attr.Key {
			case "id":
				_, dup := ids[attr.Val]
				assert.False(w.t, dup, "duplicate id %q on page %v", attr.Val, dest)
				ids[attr.Val] = struct{}{}
			case "href":
				if tok.Data == "a" {
					href = attr.Val
				}
			}
		}

		if len(href) == 0 {
			continue
		}
		w.push(dest, href)
	}
}

func (w *urlWalker) push(from *url.URL, href string) {
	u, err := url.Parse(href)
	if !assert.NoError(w.t, err, "bad href %q on page %v", href, from) {
		return
	}

	if len(u.Host) > 0 {
		if u.Host == w.host {
			w.queue = append(w.queue, u)
		}
		return
	}

	target := from.ResolveReference(u)
	if len(target.Fragment) > 0 {
		w.fragments = append(w.fragments, target)
		target = &url.URL{Scheme: target.Scheme, Host: target.Host, Path: target.Path}
	}
	w.queue = append(w.queue, target)
}
