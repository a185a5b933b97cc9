package dom

import "strconv"

// Session owns the reference-id counter for one render session. Ids are
// handed out sequentially from an explicit counter, so output is
// deterministic under test: the same tree built against a fresh session
// always gets the same ids.
type Session struct {
	n uint64
}

// NewSession creates a session with the counter at zero.
func NewSession() *Session {
	return &Session{}
}

// NextID returns the next sequential reference id ("ref-1", "ref-2", ...).
func (s *Session) NextID() string {
	s.n++
	return "ref-" + strconv.FormatUint(s.n, 10)
}

// Ref assigns the element an auto-generated data-ref id from the
// session and returns the element for chaining.
func (e *Element) Ref(s *Session) *Element {
	e.SetAttr("data-ref", s.NextID())
	return e
}
