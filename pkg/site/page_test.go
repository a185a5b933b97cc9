package site

import (
	"strings"
	"testing"

	"github.com/draftml-dev/draftml/pkg/dom"
	"github.com/draftml-dev/draftml/pkg/html"
)

func TestPageDocument(t *testing.T) {
	p := Page{
		Path:  "/",
		Title: "Home",
		Meta: []MetaTag{
			{Name: "description", Content: "a test page"},
			{Property: "og:title", Content: "Home"},
		},
		Links: []LinkTag{
			{Rel: "stylesheet", Href: "/main.css"},
		},
		Styles: []string{"body { margin: 0 }"},
		Body:   html.Main(html.H1(nil, "Hello")),
	}

	got := dom.MustString(p.Document())

	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport"`,
		"<title>Home</title>",
		`<meta name="description" content="a test page">`,
		`<meta property="og:title" content="Home">`,
		`<link rel="stylesheet" href="/main.css">`,
		"<style>body { margin: 0 }</style>",
		"<main><h1>Hello</h1></main>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q in:\n%s", want, got)
		}
	}
}

func TestPageLangDefault(t *testing.T) {
	got := dom.MustString(Page{Path: "/"}.Document())
	if !strings.Contains(got, `<html lang="en">`) {
		t.Errorf("default lang not applied: %q", got)
	}

	got = dom.MustString(Page{Path: "/", Lang: "de"}.Document())
	if !strings.Contains(got, `<html lang="de">`) {
		t.Errorf("explicit lang not applied: %q", got)
	}
}

func TestPageInlineStyleNotEscaped(t *testing.T) {
	p := Page{Path: "/", Styles: []string{"a > b { color: red }"}}
	got := dom.MustString(p.Document())
	if !strings.Contains(got, "<style>a > b { color: red }</style>") {
		t.Errorf("css was escaped: %q", got)
	}
}

func TestOutName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/about", "about.html"},
		{"/about/", "about.html"},
		{"/guide/start", "guide/start.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := Page{Path: tt.path}
			if got := p.OutName(); got != tt.want {
				t.Errorf("OutName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
