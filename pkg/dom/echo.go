package dom

import "io"

// Echo hosts effectful rendering code. Instead of an ambient output
// buffer, each Effect child receives the render writer as an explicit
// sink: whatever it writes is emitted in call order, followed by its
// return value. Thunk children are invoked and their results emitted by
// plain string conversion. All other children are emitted the same way.
// Nothing in an Echo node is ever escaped; keep untrusted input out.
type Echo struct {
	Node
}

// NewEcho creates an echo node holding the given children.
func NewEcho(children ...Child) *Echo {
	e := &Echo{}
	e.Node.AppendAll(children...)
	return e
}

// Append adds a child and returns the echo node for chaining.
func (e *Echo) Append(c Child) *Echo {
	e.Node.Append(c)
	return e
}

// Render emits each child in order: Effects run against w directly,
// thunks are invoked and stringified, everything else is emitted by
// native string conversion without escaping.
func (e *Echo) Render(w io.Writer) error {
	for _, c := range e.children {
		switch v := c.(type) {
		case Effect:
			if v == nil {
				continue
			}
			if _, err := io.WriteString(w, v(w)); err != nil {
				return err
			}

		case Thunk:
			if v == nil {
				continue
			}
			s, err := rawString(v(&e.Node))
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}

		default:
			s, err := rawString(c)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}
