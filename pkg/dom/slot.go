package dom

import "io"

// Slot defers content behind a supplier function. If a supplier is set,
// every render invokes it fresh - no memoization - and its result is
// emitted by plain string conversion, trusted without escaping. Without
// a supplier the slot renders its children through the standard
// dispatch, which makes them the fallback content.
type Slot struct {
	Node
	supplier func() Child
}

// NewSlot creates a slot with the given supplier. A nil supplier leaves
// the slot rendering its fallback children.
func NewSlot(supplier func() Child) *Slot {
	return &Slot{supplier: supplier}
}

// SetSupplier replaces the supplier and returns the slot for chaining.
func (s *Slot) SetSupplier(supplier func() Child) *Slot {
	s.supplier = supplier
	return s
}

// Append adds a fallback child and returns the slot for chaining.
func (s *Slot) Append(c Child) *Slot {
	s.Node.Append(c)
	return s
}

// Render emits the supplier's result if a supplier is present, else the
// fallback children.
func (s *Slot) Render(w io.Writer) error {
	if s.supplier == nil {
		return s.Node.Render(w)
	}
	out, err := rawString(s.supplier())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
