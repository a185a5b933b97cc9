package main

import (
	"github.com/draftml-dev/draftml/internal/config"
	"github.com/draftml-dev/draftml/pkg/dom"
	"github.com/draftml-dev/draftml/pkg/html"
	"github.com/draftml-dev/draftml/pkg/site"
)

// starterPages returns the pages served and built by the CLI. They
// double as a working example of the tree API.
func starterPages(cfg *config.Config) []site.Page {
	title := cfg.Title
	if title == "" {
		title = "draftml"
	}

	features := []string{
		"Escaped by default, with explicit Safe and Raw escape hatches",
		"Void elements that refuse children at the violating call",
		"Short-circuiting conditionals with lazy branch evaluation",
		"Collections that re-render from their source on every pass",
	}

	index := site.Page{
		Path:  "/",
		Title: title,
		Meta: []site.MetaTag{
			{Name: "description", Content: "Server-side HTML trees for Go"},
		},
		Styles: []string{
			"body{font-family:sans-serif;max-width:40rem;margin:2rem auto}",
		},
		Body: html.Main(
			html.H1(nil, title),
			html.P(nil, "A document tree, rendered to a string in one pass."),
			html.Ul(nil).Map(dom.Map(features, func(f string, _ int) dom.Child {
				return html.Li(nil, f)
			})),
			html.Footer(
				dom.If(cfg.Name != "",
					html.Small(nil, "project: "+cfg.Name),
				).Else(
					html.Small(nil, "no project name configured"),
				),
			),
		),
	}

	about := site.Page{
		Path:  "/about",
		Title: title + " - about",
		Body: html.Main(
			html.H1(nil, "About"),
			html.P(nil, "Generated by the draftml starter site."),
			html.A(html.Href("/"), "back"),
		),
	}

	return []site.Page{index, about}
}
