package dom

import (
	"fmt"
	"io"
)

// Child is one entry in a node's ordered content list. The set of
// implementations is closed: leaf kinds below, the node kinds in this
// package, and Collection. The concrete kind decides how the entry is
// escaped and evaluated during render.
type Child interface {
	isChild()
}

// Text is a plain string child. It is HTML-escaped on render.
type Text string

// Safe marks a string as pre-sanitized. It is rendered verbatim, never
// escaped. Wrapping untrusted input in Safe is an XSS hole; that is the
// caller's responsibility, not this package's.
type Safe string

// Int is an integer child, stringified without escaping.
type Int int64

// Float is a floating-point child, stringified without escaping.
type Float float64

// Thunk is a deferred child. It is invoked at render time with the
// owning node and its result is dispatched through the normal child
// rules exactly once: a Thunk returning another Thunk renders nothing.
type Thunk func(owner *Node) Child

// Effect is a deferred child with an explicit output sink. At render
// time it is invoked with the current writer; whatever it writes is
// emitted first, then its return value, both unescaped. Effects exist
// for hosting legacy effectful rendering code, primarily inside Echo.
type Effect func(w io.Writer) string

// nothing is the explicit empty child. It contributes no output.
type nothing struct{}

// Nothing renders as the empty string. Value returns it for dynamic
// values that have no defined rendering (bools, bare slices, maps).
var Nothing Child = nothing{}

// stringerChild wraps a fmt.Stringer whose output is escaped on render.
type stringerChild struct {
	v fmt.Stringer
}

// Stringify wraps any fmt.Stringer as a child. The String() result is
// HTML-escaped, same as Text.
func Stringify(v fmt.Stringer) Child {
	if v == nil {
		return Nothing
	}
	return stringerChild{v: v}
}

// Textf is a convenience for formatted text children.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

func (Text) isChild()          {}
func (Safe) isChild()          {}
func (Int) isChild()           {}
func (Float) isChild()         {}
func (Thunk) isChild()         {}
func (Effect) isChild()        {}
func (nothing) isChild()       {}
func (stringerChild) isChild() {}

// Value converts a dynamic value to a Child. It is the single entry
// point for untyped data reaching the tree (factory arguments,
// collection elements without a transform).
//
// Strings become escaped Text, integers and floats become numeric
// leaves, fmt.Stringer values are wrapped with Stringify, functions of
// the supported shapes become Thunks or Effects, and nil becomes
// Nothing. Everything else - bools included - also maps to Nothing:
// unsupported values are dropped deliberately rather than stringified
// by accident.
func Value(v any) Child {
	switch t := v.(type) {
	case nil:
		return Nothing
	case Child:
		if t == nil {
			return Nothing
		}
		return t
	case string:
		return Text(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return Int(int64(t))
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case func(owner *Node) Child:
		return Thunk(t)
	case func() Child:
		return Thunk(func(*Node) Child { return t() })
	case func(w io.Writer) string:
		return Effect(t)
	case fmt.Stringer:
		return Stringify(t)
	default:
		return Nothing
	}
}
