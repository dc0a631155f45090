package render

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/attrdoc"
	"go.abhg.dev/attrdoc/internal/highlight"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	// Functions are bound to a nil htmlRender at parse time
	// so that the template is validated at init.
	// Render clones it and binds the real functions.
	_pageTmpl = template.Must(
		template.New("page.html").
			Funcs((*htmlRender)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/page.html"),
	)
)

type htmlPage struct {
	Title   string
	CSS     template.CSS
	Options []*htmlOption
}

type htmlOption struct {
	Name       string
	ID         string // unique anchor on the page
	Paragraphs []string
	Wrapped    bool
	Default    string // shown text, if any
}

func (r *Renderer) writeHTML(w io.Writer, records []*attrdoc.Record) error {
	hl := r.Highlighter
	if hl == nil {
		hl = &highlight.Highlighter{UseClasses: true}
	}

	var css strings.Builder
	if err := hl.WriteCSS(&css); err != nil {
		return errtrace.Wrap(err)
	}

	page := htmlPage{
		Title: r.Title,
		CSS:   template.CSS(css.String()),
	}
	if page.Title == "" {
		page.Title = "Options"
	}
	ids := newAnchorSet()
	for _, rec := range records {
		opt := htmlOption{
			Name:       rec.Name,
			ID:         ids.Add(rec.Name),
			Paragraphs: paragraphs(rec.Doc),
		}
		switch c := rec.Class.(type) {
		case attrdoc.PlainDefault:
			opt.Default = c.Shown
		case attrdoc.WrappedDefault:
			opt.Default = c.Shown
			opt.Wrapped = true
		}
		page.Options = append(page.Options, &opt)
	}

	render := htmlRender{Highlighter: hl}
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, "page.html", page))
}

type htmlRender struct {
	Highlighter Highlighter
}

func (r *htmlRender) FuncMap() template.FuncMap {
	return template.FuncMap{
		"code":        r.code,
		"wrappedNote": func() string { return _wrappedNote },
	}
}

func (r *htmlRender) code(src string) template.HTML {
	return template.HTML(r.Highlighter.Source(src))
}

// anchorSet hands out unique anchors for option names.
// Keys like "a.b" and "a.c" both produce options named "a";
// later ones get a numeric suffix: "a", "a-2", "a-3".
type anchorSet map[string]struct{}

func newAnchorSet() anchorSet { return make(anchorSet) }

func (s anchorSet) Add(name string) string {
	id := name
	for i := 2; ; i++ {
		if _, taken := s[id]; !taken {
			break
		}
		id = name + "-" + strconv.Itoa(i)
	}
	s[id] = struct{}{}
	return id
}

// paragraphs joins the lines of a comment into paragraphs
// separated by blank lines.
func paragraphs(doc attrdoc.DocComment) []string {
	var (
		paras []string
		cur   []string
	)
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, " "))
			cur = cur[:0]
		}
	}
	for _, line := range doc {
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}
