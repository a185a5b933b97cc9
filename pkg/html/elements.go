package html

import "github.com/draftml-dev/draftml/pkg/dom"

// el forwards to the dom element factory. Leading dom.Attr arguments
// are collected into the attribute slot, so call sites can mix helpers
// from this package with children in one argument list. Arguments that
// are neither attributes nor one of the factory's first-argument shapes
// are passed as children, so Div(a, b, c) nests all three.
func el(tag string, args []any) *dom.Element {
	var first any
	var rest []any
	if len(args) > 0 {
		switch args[0].(type) {
		case dom.Attr:
			var attrs []dom.Attr
			i := 0
			for ; i < len(args); i++ {
				a, ok := args[i].(dom.Attr)
				if !ok {
					break
				}
				attrs = append(attrs, a)
			}
			first = attrs
			rest = args[i:]
		case nil, string, map[string]any, []any, []dom.Child, []dom.Attr:
			first = args[0]
			rest = args[1:]
		default:
			rest = args
		}
	}
	return dom.NewTag(tag, first, rest, dom.IsVoidTag(tag))
}

// Document structure elements

func HTML(args ...any) *dom.Element  { return el("html", args) }
func Head(args ...any) *dom.Element  { return el("head", args) }
func Body(args ...any) *dom.Element  { return el("body", args) }
func Title(args ...any) *dom.Element { return el("title", args) }
func Meta(args ...any) *dom.Element  { return el("meta", args) }
func Link(args ...any) *dom.Element  { return el("link", args) }
func Base(args ...any) *dom.Element  { return el("base", args) }

// Content sectioning elements

func Header(args ...any) *dom.Element  { return el("header", args) }
func Footer(args ...any) *dom.Element  { return el("footer", args) }
func Main(args ...any) *dom.Element    { return el("main", args) }
func Nav(args ...any) *dom.Element     { return el("nav", args) }
func Section(args ...any) *dom.Element { return el("section", args) }
func Article(args ...any) *dom.Element { return el("article", args) }
func Aside(args ...any) *dom.Element   { return el("aside", args) }
func Address(args ...any) *dom.Element { return el("address", args) }
func H1(args ...any) *dom.Element      { return el("h1", args) }
func H2(args ...any) *dom.Element      { return el("h2", args) }
func H3(args ...any) *dom.Element      { return el("h3", args) }
func H4(args ...any) *dom.Element      { return el("h4", args) }
func H5(args ...any) *dom.Element      { return el("h5", args) }
func H6(args ...any) *dom.Element      { return el("h6", args) }
func Hgroup(args ...any) *dom.Element  { return el("hgroup", args) }

// Text content elements

func Div(args ...any) *dom.Element        { return el("div", args) }
func P(args ...any) *dom.Element          { return el("p", args) }
func Span(args ...any) *dom.Element       { return el("span", args) }
func Pre(args ...any) *dom.Element        { return el("pre", args) }
func Blockquote(args ...any) *dom.Element { return el("blockquote", args) }
func Ul(args ...any) *dom.Element         { return el("ul", args) }
func Ol(args ...any) *dom.Element         { return el("ol", args) }
func Li(args ...any) *dom.Element         { return el("li", args) }
func Dl(args ...any) *dom.Element         { return el("dl", args) }
func Dt(args ...any) *dom.Element         { return el("dt", args) }
func Dd(args ...any) *dom.Element         { return el("dd", args) }
func Hr(args ...any) *dom.Element         { return el("hr", args) }
func Figure(args ...any) *dom.Element     { return el("figure", args) }
func Figcaption(args ...any) *dom.Element { return el("figcaption", args) }

// Inline text semantics

func A(args ...any) *dom.Element      { return el("a", args) }
func Strong(args ...any) *dom.Element { return el("strong", args) }
func Em(args ...any) *dom.Element     { return el("em", args) }
func B(args ...any) *dom.Element      { return el("b", args) }
func I(args ...any) *dom.Element      { return el("i", args) }
func U(args ...any) *dom.Element      { return el("u", args) }
func S(args ...any) *dom.Element      { return el("s", args) }
func Small(args ...any) *dom.Element  { return el("small", args) }
func Mark(args ...any) *dom.Element   { return el("mark", args) }
func Sub(args ...any) *dom.Element    { return el("sub", args) }
func Sup(args ...any) *dom.Element    { return el("sup", args) }
func Code(args ...any) *dom.Element   { return el("code", args) }
func Kbd(args ...any) *dom.Element    { return el("kbd", args) }
func Samp(args ...any) *dom.Element   { return el("samp", args) }
func Var(args ...any) *dom.Element    { return el("var", args) }
func Abbr(args ...any) *dom.Element   { return el("abbr", args) }
func Time_(args ...any) *dom.Element  { return el("time", args) }
func Cite(args ...any) *dom.Element   { return el("cite", args) }
func Q(args ...any) *dom.Element      { return el("q", args) }
func Dfn(args ...any) *dom.Element    { return el("dfn", args) }
func Ruby(args ...any) *dom.Element   { return el("ruby", args) }
func Rt(args ...any) *dom.Element     { return el("rt", args) }
func Rp(args ...any) *dom.Element     { return el("rp", args) }
func Bdi(args ...any) *dom.Element    { return el("bdi", args) }
func Bdo(args ...any) *dom.Element    { return el("bdo", args) }

// DataElement creates a <data> HTML element.
// For data-* attributes, use Data(key, value) from attributes.go.
func DataElement(args ...any) *dom.Element { return el("data", args) }
func Br(args ...any) *dom.Element          { return el("br", args) }
func Wbr(args ...any) *dom.Element         { return el("wbr", args) }

// Form elements

func Form(args ...any) *dom.Element     { return el("form", args) }
func Input(args ...any) *dom.Element    { return el("input", args) }
func Textarea(args ...any) *dom.Element { return el("textarea", args) }
func Select(args ...any) *dom.Element   { return el("select", args) }
func Option(args ...any) *dom.Element   { return el("option", args) }
func Optgroup(args ...any) *dom.Element { return el("optgroup", args) }
func Button(args ...any) *dom.Element   { return el("button", args) }
func Label(args ...any) *dom.Element    { return el("label", args) }
func Fieldset(args ...any) *dom.Element { return el("fieldset", args) }
func Legend(args ...any) *dom.Element   { return el("legend", args) }
func Datalist(args ...any) *dom.Element { return el("datalist", args) }
func Output(args ...any) *dom.Element   { return el("output", args) }
func Progress(args ...any) *dom.Element { return el("progress", args) }
func Meter(args ...any) *dom.Element    { return el("meter", args) }

// Table elements

func Table(args ...any) *dom.Element    { return el("table", args) }
func Thead(args ...any) *dom.Element    { return el("thead", args) }
func Tbody(args ...any) *dom.Element    { return el("tbody", args) }
func Tfoot(args ...any) *dom.Element    { return el("tfoot", args) }
func Tr(args ...any) *dom.Element       { return el("tr", args) }
func Th(args ...any) *dom.Element       { return el("th", args) }
func Td(args ...any) *dom.Element       { return el("td", args) }
func Caption(args ...any) *dom.Element  { return el("caption", args) }
func Colgroup(args ...any) *dom.Element { return el("colgroup", args) }
func Col(args ...any) *dom.Element      { return el("col", args) }

// Media elements

func Img(args ...any) *dom.Element     { return el("img", args) }
func Picture(args ...any) *dom.Element { return el("picture", args) }
func Source(args ...any) *dom.Element  { return el("source", args) }
func Video(args ...any) *dom.Element   { return el("video", args) }
func Audio(args ...any) *dom.Element   { return el("audio", args) }
func Track(args ...any) *dom.Element   { return el("track", args) }
func Iframe(args ...any) *dom.Element  { return el("iframe", args) }
func Embed(args ...any) *dom.Element   { return el("embed", args) }
func Object(args ...any) *dom.Element  { return el("object", args) }
func Param(args ...any) *dom.Element   { return el("param", args) }
func Canvas(args ...any) *dom.Element  { return el("canvas", args) }
func Svg(args ...any) *dom.Element     { return el("svg", args) }
func Math(args ...any) *dom.Element    { return el("math", args) }
func Map_(args ...any) *dom.Element    { return el("map", args) }
func Area(args ...any) *dom.Element    { return el("area", args) }

// Interactive elements

func Details(args ...any) *dom.Element { return el("details", args) }
func Summary(args ...any) *dom.Element { return el("summary", args) }
func Dialog(args ...any) *dom.Element  { return el("dialog", args) }
func Menu(args ...any) *dom.Element    { return el("menu", args) }

// Scripting elements

func Script(args ...any) *dom.Element   { return el("script", args) }
func Noscript(args ...any) *dom.Element { return el("noscript", args) }
func Template(args ...any) *dom.Element { return el("template", args) }
func Slot(args ...any) *dom.Element     { return el("slot", args) }
func Style(args ...any) *dom.Element    { return el("style", args) }

// Tag creates an element with a custom tag name.
func Tag(tag string, args ...any) *dom.Element {
	return el(tag, args)
}

// Doc creates a full document whose root <html> element is resolved
// from the same argument rules as the tag factories.
func Doc(args ...any) *dom.Document {
	return dom.NewDocument(args...)
}
