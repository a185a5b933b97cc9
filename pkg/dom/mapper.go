package dom

import (
	"io"
	"iter"
)

// Collection binds an external sequence - a slice or an iter.Seq2 - and
// an optional transform into rendered child content. It is standalone
// and reusable: every render walks the source again from the start.
//
// That re-iteration is the one sharp edge: a single-pass iter.Seq2
// (anything backed by a consumed reader, channel, or one-shot
// generator) yields nothing on the second render. Slices are always
// safe to render repeatedly.
type Collection struct {
	parent *Node
	each   func(yield func(Child) bool)
}

func (c *Collection) isChild() {}

// Map builds a collection over a slice. The transform receives each
// value with its index; a nil transform renders the raw values through
// Value. Large sources are walked to completion synchronously; there is
// no early exit.
func Map[S ~[]E, E any](items S, fn func(value E, index int) Child) *Collection {
	return &Collection{each: func(yield func(Child) bool) {
		for i, v := range items {
			if !yield(applyTransform(v, i, fn)) {
				return
			}
		}
	}}
}

// MapSeq builds a collection over an iter.Seq2. The transform receives
// each value with its key; a nil transform renders the raw values.
func MapSeq[K, V any](seq iter.Seq2[K, V], fn func(value V, key K) Child) *Collection {
	return &Collection{each: func(yield func(Child) bool) {
		for k, v := range seq {
			if !yield(applyTransform(v, k, fn)) {
				return
			}
		}
	}}
}

func applyTransform[V, K any](v V, k K, fn func(V, K) Child) Child {
	if fn == nil {
		return Value(v)
	}
	return fn(v, k)
}

// Bind sets the parent given to nodes the collection generates and
// returns the collection for chaining. Node.Map calls this implicitly.
func (c *Collection) Bind(parent *Node) *Collection {
	c.parent = parent
	return c
}

// Render walks the source, transforming each entry and dispatching the
// result through the standard child rules. Generated nodes get the
// bound parent. An error from any child aborts the walk.
func (c *Collection) Render(w io.Writer) error {
	var err error
	c.each(func(ch Child) bool {
		if cn, ok := ch.(childNode); ok && c.parent != nil {
			cn.base().parent = c.parent
		}
		err = renderChild(w, ch, c.parent)
		return err == nil
	})
	return err
}

// MapperNode is the tree-resident, one-shot variant of Collection. It
// sits in a parent's child list like any node, but its own children are
// synthesized from the source on every render and discarded right
// after, so repeated renders of a long-lived tree regenerate instead of
// accumulate. Direct child insertion is forbidden and panics.
type MapperNode struct {
	Node
	each func(yield func(Child) bool)
}

// MapNode builds a one-shot mapper node over a slice.
func MapNode[S ~[]E, E any](items S, fn func(value E, index int) Child) *MapperNode {
	return &MapperNode{each: func(yield func(Child) bool) {
		for i, v := range items {
			if !yield(applyTransform(v, i, fn)) {
				return
			}
		}
	}}
}

// MapNodeSeq builds a one-shot mapper node over an iter.Seq2.
func MapNodeSeq[K, V any](seq iter.Seq2[K, V], fn func(value V, key K) Child) *MapperNode {
	return &MapperNode{each: func(yield func(Child) bool) {
		for k, v := range seq {
			if !yield(applyTransform(v, k, fn)) {
				return
			}
		}
	}}
}

// Append always panics: a mapper node's children come from its source.
func (m *MapperNode) Append(Child) *MapperNode {
	panic(structural(CodeMapperChild, "MapperNode.Append",
		"mapper nodes synthesize their children from the source",
		"append to the mapper's parent, or change the source/transform"))
}

// AppendAll always panics, same as Append.
func (m *MapperNode) AppendAll(...Child) *MapperNode {
	panic(structural(CodeMapperChild, "MapperNode.AppendAll",
		"mapper nodes synthesize their children from the source",
		"append to the mapper's parent, or change the source/transform"))
}

// Render synthesizes children from the source, renders them, and
// discards them again even if the render fails partway.
func (m *MapperNode) Render(w io.Writer) error {
	defer m.Node.ClearChildren()
	m.each(func(ch Child) bool {
		if cn, ok := ch.(childNode); ok {
			cn.base().parent = &m.Node
		}
		m.Node.children = append(m.Node.children, ch)
		return true
	})
	return m.Node.Render(w)
}
