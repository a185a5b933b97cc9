// Package draftml re-exports the tree-building core so small programs
// can depend on a single import path. The full API lives in pkg/dom
// (the node kinds and rendering), pkg/html (per-tag factories and
// attribute helpers), and pkg/site (pages, preview server, build).
package draftml

import (
	"io"

	"github.com/draftml-dev/draftml/pkg/dom"
)

// Version is the library version, also reported by the CLI.
const Version = "0.3.0"

// Core tree types.
type (
	Child    = dom.Child
	Node     = dom.Node
	Element  = dom.Element
	Document = dom.Document
	Attr     = dom.Attr
	Session  = dom.Session

	Text   = dom.Text
	Safe   = dom.Safe
	Thunk  = dom.Thunk
	Effect = dom.Effect
)

// Render writes any child to w through the standard dispatch rules.
func Render(w io.Writer, c Child) error { return dom.Render(w, c) }

// String renders a child to a string.
func String(c Child) (string, error) { return dom.String(c) }

// MustString renders a child to a string, panicking on error.
func MustString(c Child) string { return dom.MustString(c) }
