package html

import (
	"testing"

	"github.com/draftml-dev/draftml/pkg/dom"
)

func TestAttrHelpers(t *testing.T) {
	tests := []struct {
		name string
		a    dom.Attr
		want dom.Attr
	}{
		{"ID", ID("x"), dom.Attr{Key: "id", Value: "x"}},
		{"Data", Data("count", "3"), dom.Attr{Key: "data-count", Value: "3"}},
		{"Href", Href("/a"), dom.Attr{Key: "href", Value: "/a"}},
		{"TabIndex", TabIndex(2), dom.Attr{Key: "tabindex", Value: 2}},
		{"Hidden", Hidden(), dom.Attr{Key: "hidden", Value: true}},
		{"Disabled", Disabled(), dom.Attr{Key: "disabled", Value: true}},
		{"AriaHidden", AriaHidden(false), dom.Attr{Key: "aria-hidden", Value: false}},
		{"HttpEquiv", HttpEquiv("refresh"), dom.Attr{Key: "http-equiv", Value: "refresh"}},
		{"Download bare", Download(), dom.Attr{Key: "download", Value: true}},
		{"Download named", Download("f.txt"), dom.Attr{Key: "download", Value: "f.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a != tt.want {
				t.Errorf("got %+v, want %+v", tt.a, tt.want)
			}
		})
	}
}

func TestClassHelpers(t *testing.T) {
	t.Run("Class joins names", func(t *testing.T) {
		e := Div(Class("a", "b"))
		if got := render(t, e); got != `<div class="a b"></div>` {
			t.Errorf("rendered %q", got)
		}
	})

	t.Run("Classes filters conditions", func(t *testing.T) {
		e := Div(Classes("base", map[string]bool{"active": true, "stale": false}))
		if got := render(t, e); got != `<div class="base active"></div>` {
			t.Errorf("rendered %q", got)
		}
	})
}

func TestRawAttrHelper(t *testing.T) {
	e := Div(RawAttr("contenteditable spellcheck"), "x")
	if got := render(t, e); got != "<div contenteditable spellcheck>x</div>" {
		t.Errorf("rendered %q", got)
	}
}

func TestLazyAttr(t *testing.T) {
	e := Div(ID("host"), Lazy("data-tag", func(e *dom.Element) any {
		return e.Tag()
	}))
	if got := render(t, e); got != `<div id="host" data-tag="div"></div>` {
		t.Errorf("rendered %q", got)
	}
}

func TestAttrIf(t *testing.T) {
	t.Run("condition true", func(t *testing.T) {
		e := Button(AttrIf(true, Disabled()), "go")
		if got := render(t, e); got != "<button disabled>go</button>" {
			t.Errorf("rendered %q", got)
		}
	})

	t.Run("condition false is ignored", func(t *testing.T) {
		e := Button(AttrIf(false, Disabled()), "go")
		if got := render(t, e); got != "<button>go</button>" {
			t.Errorf("rendered %q", got)
		}
	})
}
