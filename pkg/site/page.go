// Package site turns dom trees into deliverable sites: complete pages
// with head metadata, a chi-based preview server with live reload and
// metrics, and a build pipeline that writes (optionally minified)
// documents to disk.
package site

import (
	"io"
	"strings"

	"github.com/draftml-dev/draftml/pkg/dom"
	"github.com/draftml-dev/draftml/pkg/html"
)

// Page describes one complete HTML document: route, head metadata, and
// a body subtree.
type Page struct {
	// Path is the route the page is served at ("/", "/about", ...).
	// It also determines the output filename when building.
	Path string

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the page head.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Styles contains inline CSS blocks.
	Styles []string

	// Body is the root of the page content.
	Body dom.Child
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	CrossOrigin string // crossorigin attribute
}

// Document assembles the page into a full dom.Document.
func (p Page) Document() *dom.Document {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := html.Head(
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
	)
	if p.Title != "" {
		head.Append(html.Title(nil, p.Title))
	}
	for _, m := range p.Meta {
		head.Append(m.element())
	}
	for _, l := range p.Links {
		head.Append(l.element())
	}
	for _, css := range p.Styles {
		head.Append(html.Style(nil, dom.Safe(css)))
	}

	body := html.Body()
	if p.Body != nil {
		body.Append(p.Body)
	}

	return html.Doc(html.Lang(lang), head, body)
}

func (m MetaTag) element() *dom.Element {
	e := html.Meta()
	if m.Charset != "" {
		e.SetAttr("charset", m.Charset)
	}
	if m.Name != "" {
		e.SetAttr("name", m.Name)
	}
	if m.Property != "" {
		e.SetAttr("property", m.Property)
	}
	if m.HTTPEquiv != "" {
		e.SetAttr("http-equiv", m.HTTPEquiv)
	}
	if m.Content != "" {
		e.SetAttr("content", m.Content)
	}
	return e
}

func (l LinkTag) element() *dom.Element {
	e := html.Link()
	if l.Rel != "" {
		e.SetAttr("rel", l.Rel)
	}
	if l.Href != "" {
		e.SetAttr("href", l.Href)
	}
	if l.Type != "" {
		e.SetAttr("type", l.Type)
	}
	if l.CrossOrigin != "" {
		e.SetAttr("crossorigin", l.CrossOrigin)
	}
	return e
}

// Render writes the complete document to w.
func (p Page) Render(w io.Writer) error {
	return p.Document().Render(w)
}

// OutName maps the page path to its output filename: "/" becomes
// index.html, "/about" becomes about.html, "/guide/start" becomes
// guide/start.html.
func (p Page) OutName() string {
	path := strings.Trim(p.Path, "/")
	if path == "" {
		return "index.html"
	}
	return path + ".html"
}
