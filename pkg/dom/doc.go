// Package dom implements the draftml node tree: a fluent, server-side
// builder for HTML documents that renders to a string in one pass.
//
// A tree is assembled from nodes (Element, Document, Raw, Slot, IfElse,
// Echo, MapperNode) and leaf children (Text, Safe, Int, Float, Thunk,
// Effect). Every child kind carries its own escaping and evaluation
// policy; rendering walks the tree depth-first and concatenates child
// output with no separator.
//
// Escaping is the default. Text and Stringify children are HTML-escaped,
// as are attribute keys and values. The only sanctioned bypasses are the
// Safe wrapper, the Raw node, and the Echo node.
//
// Trees are not safe for concurrent rendering: MapperNode discards its
// synthesized children after each render and parent pointers are
// rewritten on every append. Build and render from a single goroutine,
// or guard the tree externally.
package dom
