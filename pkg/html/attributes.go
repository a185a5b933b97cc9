package html

import "github.com/draftml-dev/draftml/pkg/dom"

// attr creates a dom.Attr with the given key and value.
func attr(key string, value any) dom.Attr {
	return dom.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) dom.Attr { return attr("id", id) }

// Class sets the class attribute from the given names joined by spaces.
func Class(classes ...string) dom.Attr {
	return attr("class", dom.MergeClasses(toAny(classes)...))
}

// Classes merges class arguments (string, []string, dom.ClassIf,
// map[string]bool) into a class attribute.
func Classes(args ...any) dom.Attr {
	return attr("class", dom.MergeClasses(args...))
}

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) dom.Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(title string) dom.Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) dom.Attr { return attr("data-"+key, value) }

// RawAttr places a string in the element's raw-attribute slot: emitted
// verbatim in the opening tag, unquoted and unescaped.
func RawAttr(s string) dom.Attr { return dom.Attr{Key: "", Value: s} }

// Lazy defers an attribute value until render time; fn is invoked with
// the owning element.
func Lazy(key string, fn dom.AttrFunc) dom.Attr { return attr(key, fn) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) dom.Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) dom.Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) dom.Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) dom.Attr { return attr("aria-expanded", expanded) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) dom.Attr { return attr("aria-live", mode) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) dom.Attr { return attr("aria-current", value) }

// Keyboard and visibility attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) dom.Attr { return attr("tabindex", index) }

// Hidden sets the hidden attribute.
func Hidden() dom.Attr { return attr("hidden", true) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) dom.Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) dom.Attr { return attr("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) dom.Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) dom.Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) dom.Attr { return attr("rel", rel) }

// Download sets the download attribute, bare or with a filename.
func Download(filename ...string) dom.Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return attr("download", true)
}

// Form input attributes

// Name sets the name attribute.
func Name(name string) dom.Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) dom.Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) dom.Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) dom.Attr { return attr("placeholder", text) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) dom.Attr { return attr("autocomplete", value) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() dom.Attr { return attr("disabled", true) }

// Readonly sets the readonly attribute.
func Readonly() dom.Attr { return attr("readonly", true) }

// Required sets the required attribute.
func Required() dom.Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() dom.Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() dom.Attr { return attr("selected", true) }

// Multiple sets the multiple attribute.
func Multiple() dom.Attr { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() dom.Attr { return attr("autofocus", true) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) dom.Attr { return attr("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) dom.Attr { return attr("minlength", n) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) dom.Attr { return attr("maxlength", n) }

// Min sets the min attribute.
func Min(value string) dom.Attr { return attr("min", value) }

// Max sets the max attribute.
func Max(value string) dom.Attr { return attr("max", value) }

// Step sets the step attribute.
func Step(value string) dom.Attr { return attr("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) dom.Attr { return attr("rows", n) }

// Cols sets the cols attribute.
func Cols(n int) dom.Attr { return attr("cols", n) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) dom.Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) dom.Attr { return attr("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) dom.Attr { return attr("enctype", enctype) }

// Novalidate sets the novalidate attribute.
func Novalidate() dom.Attr { return attr("novalidate", true) }

// For sets the for attribute (for labels).
func For(id string) dom.Attr { return attr("for", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) dom.Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) dom.Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) dom.Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) dom.Attr { return attr("height", h) }

// Loading sets the loading attribute.
func Loading(mode string) dom.Attr { return attr("loading", mode) }

// Srcset sets the srcset attribute.
func Srcset(srcset string) dom.Attr { return attr("srcset", srcset) }

// Controls sets the controls attribute.
func Controls() dom.Attr { return attr("controls", true) }

// Autoplay sets the autoplay attribute.
func Autoplay() dom.Attr { return attr("autoplay", true) }

// Loop sets the loop attribute.
func Loop() dom.Attr { return attr("loop", true) }

// Poster sets the poster attribute.
func Poster(url string) dom.Attr { return attr("poster", url) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) dom.Attr { return attr("colspan", n) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) dom.Attr { return attr("rowspan", n) }

// Scope sets the scope attribute.
func Scope(scope string) dom.Attr { return attr("scope", scope) }

// Meta/Link attributes

// Charset sets the charset attribute.
func Charset(charset string) dom.Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) dom.Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) dom.Attr { return attr("http-equiv", value) }

// Script attributes

// Defer_ sets the defer attribute for script elements.
func Defer_() dom.Attr { return attr("defer", true) }

// Async sets the async attribute for script elements.
func Async() dom.Attr { return attr("async", true) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) dom.Attr { return attr("crossorigin", value) }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(value string) dom.Attr { return attr("integrity", value) }

// Conditional attributes

// Open sets the open attribute (for details, dialog).
func Open() dom.Attr { return attr("open", true) }

// AttrIf returns the attribute when the condition holds, or an empty
// attribute the factories ignore.
func AttrIf(condition bool, a dom.Attr) dom.Attr {
	if condition {
		return a
	}
	return dom.Attr{}
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
