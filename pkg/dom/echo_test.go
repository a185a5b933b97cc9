package dom

import (
	"io"
	"testing"
)

func TestEchoEffectWritesThenReturns(t *testing.T) {
	e := NewEcho(Effect(func(w io.Writer) string {
		io.WriteString(w, "written ")
		return "returned"
	}))

	if got := MustString(e); got != "written returned" {
		t.Errorf("rendered %q", got)
	}
}

func TestEchoEffectsRunInOrder(t *testing.T) {
	e := NewEcho(
		Effect(func(w io.Writer) string { return "a" }),
		Text("b"),
		Effect(func(w io.Writer) string { return "c" }),
	)

	if got := MustString(e); got != "abc" {
		t.Errorf("rendered %q", got)
	}
}

func TestEchoNeverEscapes(t *testing.T) {
	e := NewEcho(Text("<script>"), Effect(func(io.Writer) string { return "<&>" }))
	if got := MustString(e); got != "<script><&>" {
		t.Errorf("rendered %q", got)
	}
}

func TestEchoInvokesThunks(t *testing.T) {
	e := NewEcho(Thunk(func(*Node) Child { return Text("<deferred>") }))
	if got := MustString(e); got != "<deferred>" {
		t.Errorf("rendered %q", got)
	}
}

func TestEchoRerunsEffectsEachRender(t *testing.T) {
	n := 0
	e := NewEcho(Effect(func(io.Writer) string {
		n++
		return ""
	}))

	MustString(e)
	MustString(e)
	if n != 2 {
		t.Errorf("effect ran %d times, want 2", n)
	}
}
