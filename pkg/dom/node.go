package dom

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Node is the base of the tree. It holds an ordered child list and a
// parent back-reference, and renders by concatenating its children's
// output with no separator. A bare Node groups children without
// emitting any markup of its own, the way a fragment does.
//
// The parent pointer is bookkeeping for lookups, not ownership: it is
// rewritten whenever the node is appended somewhere else, last write
// wins. Multi-parent sharing is not supported and cycles are a caller
// error that is not checked.
type Node struct {
	parent   *Node
	children []Child
}

// Group creates a bare Node holding the given children.
func Group(children ...Child) *Node {
	n := &Node{}
	return n.AppendAll(children...)
}

func (n *Node) isChild() {}

// base returns the embedded Node of any node kind. Specializations
// inherit it by embedding, which is what lets Append reach their parent
// pointer through the Child interface.
func (n *Node) base() *Node { return n }

// childNode is satisfied by every node kind via the embedded Node.
type childNode interface {
	Child
	base() *Node
}

// renderable is satisfied by every child that renders itself: node
// kinds and Collection. Dispatch goes through the interface so a
// specialization's own Render is used, not the embedded Node's.
type renderable interface {
	Child
	Render(w io.Writer) error
}

// Parent returns the node this node was last appended to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's child list. The slice is the node's own
// backing store; callers must not mutate it.
func (n *Node) Children() []Child { return n.children }

// Append adds a child to the end of the list and returns the node for
// chaining. A nil child is a no-op. If the child is itself a node, its
// parent pointer is repointed here, overwriting any prior parent.
func (n *Node) Append(c Child) *Node {
	if c == nil || c == Nothing {
		return n
	}
	if cn, ok := c.(childNode); ok {
		cn.base().parent = n
	}
	n.children = append(n.children, c)
	return n
}

// AppendAll appends each child in order via Append.
func (n *Node) AppendAll(children ...Child) *Node {
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// ClearChildren empties the child list.
func (n *Node) ClearChildren() *Node {
	n.children = nil
	return n
}

// Apply invokes fn with the node itself, for in-place configuration in
// the middle of a fluent chain. A nil fn is a no-op.
func (n *Node) Apply(fn func(*Node)) *Node {
	if fn != nil {
		fn(n)
	}
	return n
}

// ApplyToChildNodes applies fn to every child that is a node. Leaf
// children are skipped without error.
func (n *Node) ApplyToChildNodes(fn func(*Node)) *Node {
	if fn == nil {
		return n
	}
	for _, c := range n.children {
		if cn, ok := c.(childNode); ok {
			cn.base().Apply(fn)
		}
	}
	return n
}

// Map binds the collection to this node and appends it as a child, so
// nodes the collection generates get this node as their parent.
func (n *Node) Map(c *Collection) *Node {
	if c == nil {
		return n
	}
	c.Bind(n)
	n.children = append(n.children, c)
	return n
}

// Render writes the node's children to w with no separator.
func (n *Node) Render(w io.Writer) error {
	return renderChildren(w, n.children, n)
}

// Render dispatches any child through the standard rendering rules.
func Render(w io.Writer, c Child) error {
	return renderChild(w, c, nil)
}

// String renders a child to a string. If any deferred computation in
// the tree fails, the error is returned and no partial output is.
func String(c Child) (string, error) {
	var buf bytes.Buffer
	if err := renderChild(&buf, c, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is String for trees known not to fail, typically in tests
// and static content. It panics on error.
func MustString(c Child) string {
	s, err := String(c)
	if err != nil {
		panic(err)
	}
	return s
}

func renderChildren(w io.Writer, children []Child, owner *Node) error {
	for _, c := range children {
		if err := renderChild(w, c, owner); err != nil {
			return err
		}
	}
	return nil
}

// renderChild is the standard dispatch table. Every child kind is
// matched here; there is no fallback stringification.
func renderChild(w io.Writer, c Child, owner *Node) error {
	switch v := c.(type) {
	case nil, nothing:
		return nil

	case Text:
		_, err := io.WriteString(w, escapeHTML(string(v)))
		return err

	case Safe:
		_, err := io.WriteString(w, string(v))
		return err

	case Int:
		_, err := io.WriteString(w, strconv.FormatInt(int64(v), 10))
		return err

	case Float:
		_, err := io.WriteString(w, strconv.FormatFloat(float64(v), 'g', -1, 64))
		return err

	case stringerChild:
		_, err := io.WriteString(w, escapeHTML(v.v.String()))
		return err

	case Thunk:
		if v == nil {
			return nil
		}
		res := v(owner)
		// One level of re-dispatch only: a thunk returning a thunk
		// renders nothing instead of recursing.
		if _, nested := res.(Thunk); nested {
			return nil
		}
		return renderChild(w, res, owner)

	case Effect:
		if v == nil {
			return nil
		}
		_, err := io.WriteString(w, v(w))
		return err

	case renderable:
		return v.Render(w)

	default:
		// Unreachable while the Child set stays closed.
		return fmt.Errorf("dom: unknown child kind %T", c)
	}
}

// rawString converts a child to a string without escaping and without
// invoking deferred computations. It backs Raw and Echo, whose contract
// is native string conversion: thunks and effects are formatted as
// opaque values, while nodes still render through their own Render.
func rawString(c Child) (string, error) {
	switch v := c.(type) {
	case nil, nothing:
		return "", nil
	case Text:
		return string(v), nil
	case Safe:
		return string(v), nil
	case Int:
		return strconv.FormatInt(int64(v), 10), nil
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
	case stringerChild:
		return v.v.String(), nil
	case renderable:
		return String(v)
	default:
		return fmt.Sprintf("%v", c), nil
	}
}
