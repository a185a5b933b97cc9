package dom

import "io"

// doctype is the fixed document prefix emitted before the root element.
const doctype = "<!DOCTYPE html>\n"

// Document is an <html> element that prefixes its output with the HTML5
// doctype line. It behaves like Element in every other way.
type Document struct {
	Element
}

// NewDocument creates a document whose root is an <html> element. The
// arguments are resolved exactly like NewElement's.
func NewDocument(args ...any) *Document {
	var first any
	var rest []any
	if len(args) > 0 {
		first = args[0]
		rest = args[1:]
	}
	d := &Document{}
	d.Element = *NewTag("html", first, rest, false)
	// The copy above leaves construction-time children pointing at the
	// factory's temporary; re-point them at the document's own node so
	// Parent() agrees with children appended later.
	for _, c := range d.Element.children {
		if cn, ok := c.(childNode); ok {
			cn.base().parent = &d.Element.Node
		}
	}
	return d
}

// Render writes the doctype line followed by the <html> element.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, doctype); err != nil {
		return err
	}
	return d.Element.Render(w)
}
