package dom

import (
	"errors"
	"testing"
)

func TestNewTagFirstArgResolution(t *testing.T) {
	tests := []struct {
		name     string
		first    any
		children []any
		want     string
	}{
		{
			name: "nil first uses children",
			children: []any{
				"hello",
			},
			want: "<div>hello</div>",
		},
		{
			name:  "string first is the raw attribute",
			first: `data-x="1" hidden`,
			children: []any{
				"body",
			},
			want: `<div data-x="1" hidden>body</div>`,
		},
		{
			name:  "any slice first is the children list",
			first: []any{"a", 1, Safe("<hr>")},
			children: []any{
				"ignored",
			},
			want: "<div>a1<hr></div>",
		},
		{
			name:  "child slice first is the children list",
			first: []Child{Text("x"), Int(2)},
			want:  "<div>x2</div>",
		},
		{
			name:  "single attr first",
			first: Attr{Key: "id", Value: "main"},
			children: []any{
				"c",
			},
			want: `<div id="main">c</div>`,
		},
		{
			name: "attr slice first",
			first: []Attr{
				{Key: "id", Value: "a"},
				{Key: "class", Value: "b"},
			},
			want: `<div id="a" class="b"></div>`,
		},
		{
			name:  "map first applied in sorted key order",
			first: map[string]any{"title": "t", "id": "x", "class": "c"},
			want:  `<div class="c" id="x" title="t"></div>`,
		},
		{
			name:  "map empty key is the raw slot",
			first: map[string]any{"": "contenteditable", "id": "y"},
			want:  `<div contenteditable id="y"></div>`,
		},
		{
			name:  "anything else is the sole child",
			first: 42,
			children: []any{
				"ignored on this path",
			},
			want: "<div>42</div>",
		},
		{
			name:  "attr with empty key is the raw slot",
			first: Attr{Key: "", Value: "autofocus"},
			want:  "<div autofocus></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewTag("div", tt.first, tt.children, false)
			if got := MustString(e); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTagEmptyNamePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for empty tag name")
		}
		se, ok := r.(*StructuralError)
		if !ok {
			t.Fatalf("panic value %T, want *StructuralError", r)
		}
		if se.Code != CodeEmptyTag {
			t.Errorf("code = %q, want %q", se.Code, CodeEmptyTag)
		}
	}()
	NewTag("", nil, nil, false)
}

func TestVoidElements(t *testing.T) {
	t.Run("render without closing tag", func(t *testing.T) {
		e := NewElement("br")
		if got := MustString(e); got != "<br>" {
			t.Errorf("rendered %q", got)
		}
	})

	t.Run("with attributes", func(t *testing.T) {
		e := NewElement("img", Attr{Key: "src", Value: "/a.png"})
		if got := MustString(e); got != `<img src="/a.png">` {
			t.Errorf("rendered %q", got)
		}
	})

	t.Run("append panics", func(t *testing.T) {
		defer func() {
			r := recover()
			se, ok := r.(*StructuralError)
			if !ok {
				t.Fatalf("panic value %T, want *StructuralError", r)
			}
			if se.Code != CodeVoidChild {
				t.Errorf("code = %q, want %q", se.Code, CodeVoidChild)
			}
		}()
		NewElement("input").Append(Text("nope"))
	})

	t.Run("map panics", func(t *testing.T) {
		defer func() {
			if _, ok := recover().(*StructuralError); !ok {
				t.Fatal("expected *StructuralError panic")
			}
		}()
		NewElement("hr").Map(Map([]int{1}, nil))
	})
}

func TestIsVoidTag(t *testing.T) {
	for _, tag := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"} {
		if !IsVoidTag(tag) {
			t.Errorf("IsVoidTag(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "span", "p", ""} {
		if IsVoidTag(tag) {
			t.Errorf("IsVoidTag(%q) = true, want false", tag)
		}
	}
}

func TestAttrRendering(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{"string value", "id", "main", `<p id="main"></p>`},
		{"value escaped", "title", `a"b<c>`, `<p title="a&quot;b&lt;c&gt;"></p>`},
		{"int value", "tabindex", 3, `<p tabindex="3"></p>`},
		{"float value", "data-ratio", 1.5, `<p data-ratio="1.5"></p>`},
		{"nil omitted", "id", nil, `<p></p>`},
		{"true renders bare", "data-on", true, `<p data-on></p>`},
		{"boolean attr true", "hidden", true, `<p hidden></p>`},
		{"boolean attr false omitted", "hidden", false, `<p></p>`},
		{"boolean attr truthy string", "hidden", "yes", `<p hidden></p>`},
		{"boolean attr empty string falls through to valued form", "hidden", "", `<p hidden=""></p>`},
		{"non-boolean false keeps value", "data-flag", false, `<p data-flag="false"></p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewElement("p").SetAttr(tt.key, tt.value)
			if got := MustString(e); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrOrderStableAcrossOverwrite(t *testing.T) {
	e := NewElement("div").
		SetAttr("id", "a").
		SetAttr("class", "x").
		SetAttr("id", "b")

	want := `<div id="b" class="x"></div>`
	if got := MustString(e); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestAttrRead(t *testing.T) {
	e := NewElement("div").SetAttr("id", "a")

	if got := e.Attr("id"); got != "a" {
		t.Errorf("Attr(id) = %v", got)
	}
	if got := e.Attr("missing"); got != nil {
		t.Errorf("Attr(missing) = %v, want nil", got)
	}
	if got := e.Attr("missing", "fallback"); got != "fallback" {
		t.Errorf("Attr(missing, fallback) = %v", got)
	}
}

func TestDeferredAttr(t *testing.T) {
	e := NewElement("div").SetAttr("id", "host")
	e.SetAttr("data-echo", AttrFunc(func(e *Element) any {
		return e.Attr("id")
	}))

	want := `<div id="host" data-echo="host"></div>`
	if got := MustString(e); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestSetClasses(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{
			name: "mixed shapes dedupe and filter",
			args: []any{"a", map[string]bool{"b": true, "c": false}, "d"},
			want: "a b d",
		},
		{
			name: "last condition wins",
			args: []any{ClassIf{Name: "x", On: true}, ClassIf{Name: "x", On: false}},
			want: "",
		},
		{
			name: "first insertion order kept",
			args: []any{"z", "a", "z"},
			want: "z a",
		},
		{
			name: "string slice",
			args: []any{[]string{"one", "two"}},
			want: "one two",
		},
		{
			name: "classif slice",
			args: []any{[]ClassIf{{Name: "on", On: true}, {Name: "off", On: false}}},
			want: "on",
		},
		{
			name: "map keys sorted",
			args: []any{map[string]bool{"b": true, "a": true}},
			want: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeClasses(tt.args...); got != tt.want {
				t.Errorf("MergeClasses = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("overwrites previous class attr", func(t *testing.T) {
		e := NewElement("div").SetAttr("class", "old")
		e.SetClasses("new")
		if got := MustString(e); got != `<div class="new"></div>` {
			t.Errorf("rendered %q", got)
		}
	})
}

func TestElementMapKeepsTag(t *testing.T) {
	e := NewElement("ul").Map(Map([]string{"a", "b"}, func(s string, _ int) Child {
		return NewElement("li", s)
	}))

	want := "<ul><li>a</li><li>b</li></ul>"
	if got := MustString(e); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	inner := NewElement("span", "text")
	e := NewElement("div", Attr{Key: "id", Value: "s"}).
		Append(inner).
		Append(Text("leaf"))
	e.SetAttr("data-late", AttrFunc(func(*Element) any { return "evaluated" }))

	s := e.Snapshot()

	if s.Tag != "div" || s.Void {
		t.Fatalf("snapshot header = %q void=%v", s.Tag, s.Void)
	}
	if len(s.Attrs) != 2 || s.Attrs[1].Value != "evaluated" {
		t.Errorf("attr thunk not evaluated: %+v", s.Attrs)
	}
	if len(s.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(s.Children))
	}
	child, ok := s.Children[0].(*Snapshot)
	if !ok || child.Tag != "span" {
		t.Errorf("nested element not snapshotted: %T", s.Children[0])
	}
	if _, ok := s.Children[1].(Text); !ok {
		t.Errorf("leaf child changed type: %T", s.Children[1])
	}
}

func TestStructuralErrorUnwrapsAsError(t *testing.T) {
	err := structural(CodeEmptyTag, "op", "msg", "hint")
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatal("errors.As failed")
	}
	if se.Op != "op" {
		t.Errorf("op = %q", se.Op)
	}
}
