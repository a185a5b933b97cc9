package dom

import (
	"strings"
	"testing"
)

func TestNodeAppend(t *testing.T) {
	t.Run("nil is a no-op", func(t *testing.T) {
		n := Group()
		n.Append(nil)
		if len(n.Children()) != 0 {
			t.Errorf("children = %d, want 0", len(n.Children()))
		}
	})

	t.Run("nothing is a no-op", func(t *testing.T) {
		n := Group()
		n.Append(Nothing)
		if len(n.Children()) != 0 {
			t.Errorf("children = %d, want 0", len(n.Children()))
		}
	})

	t.Run("returns the node for chaining", func(t *testing.T) {
		n := Group()
		if got := n.Append(Text("a")).Append(Text("b")); got != n {
			t.Error("Append did not return the receiver")
		}
		if len(n.Children()) != 2 {
			t.Errorf("children = %d, want 2", len(n.Children()))
		}
	})

	t.Run("sets parent on node children", func(t *testing.T) {
		parent := Group()
		child := Group(Text("x"))
		parent.Append(child)
		if child.Parent() != parent {
			t.Error("child parent not set")
		}
	})

	t.Run("reappend repoints parent last write wins", func(t *testing.T) {
		first := Group()
		second := Group()
		child := Group()

		first.Append(child)
		second.Append(child)

		if child.Parent() != second {
			t.Error("parent should point at the last appender")
		}
	})
}

func TestNodeRenderJoinsWithoutSeparator(t *testing.T) {
	n := Group(Text("a"), Text("b"), Int(3))
	if got := MustString(n); got != "ab3" {
		t.Errorf("rendered %q, want %q", got, "ab3")
	}
}

func TestNodeRenderIsRepeatable(t *testing.T) {
	n := Group(Text("x"), Safe("<br>"))
	first := MustString(n)
	second := MustString(n)
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
	if first != "x<br>" {
		t.Errorf("rendered %q", first)
	}
}

func TestNodeClearChildren(t *testing.T) {
	n := Group(Text("a"), Text("b"))
	n.ClearChildren()
	if got := MustString(n); got != "" {
		t.Errorf("rendered %q after clear, want empty", got)
	}
}

func TestNodeApply(t *testing.T) {
	n := Group()
	n.Apply(func(n *Node) { n.Append(Text("via apply")) }).Apply(nil)
	if got := MustString(n); got != "via apply" {
		t.Errorf("rendered %q", got)
	}
}

func TestApplyToChildNodes(t *testing.T) {
	n := Group(
		Group(Text("a")),
		Text("leaf"),
		Group(Text("b")),
	)

	var visited int
	n.ApplyToChildNodes(func(*Node) { visited++ })

	if visited != 2 {
		t.Errorf("visited %d child nodes, want 2", visited)
	}
}

func TestRenderToWriter(t *testing.T) {
	var b strings.Builder
	if err := Render(&b, Group(Text("a&b"))); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b.String() != "a&amp;b" {
		t.Errorf("wrote %q", b.String())
	}
}

func TestStringReturnsNoPartialOutputOnError(t *testing.T) {
	bad := Group(Text("good"), brokenChild{}, Text("after"))

	s, err := String(bad)
	if err == nil {
		t.Fatal("expected error for unknown child kind")
	}
	if s != "" {
		t.Errorf("partial output %q, want empty", s)
	}
}

// brokenChild is a Child that the dispatch table does not know, used to
// exercise the error path. Outside the package the Child set is closed.
type brokenChild struct{}

func (brokenChild) isChild() {}
