package dom

import "io"

// Raw is a Node that renders its children by plain string conversion:
// no escaping, no thunk invocation. A Thunk or Effect child is NOT
// called; it is formatted as an opaque value. This asymmetry with the
// standard dispatch is deliberate and dangerous: Raw exists to pass
// pre-built markup through untouched, and anything deferred inside it
// will leak as noise rather than run. Node children still render
// normally because their string conversion is their own Render.
type Raw struct {
	Node
}

// NewRaw creates a raw node holding the given children.
func NewRaw(children ...Child) *Raw {
	r := &Raw{}
	r.Node.AppendAll(children...)
	return r
}

// Append adds a child and returns the raw node for chaining.
func (r *Raw) Append(c Child) *Raw {
	r.Node.Append(c)
	return r
}

// Render concatenates the children's native string conversions.
func (r *Raw) Render(w io.Writer) error {
	for _, c := range r.children {
		s, err := rawString(c)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
