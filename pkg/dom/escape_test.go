package dom

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<div>", "&lt;div&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"all five", `<>&"'`, "&lt;&gt;&amp;&quot;&#39;"},
		{"script tag", "<script>alert('x')</script>", "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"},
		{"unicode untouched", "héllo ✓", "héllo ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.in); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	const hostile = `<b>"bold" & 'brash'</b>`

	escaped := MustString(Text(hostile))
	if escaped != "&lt;b&gt;&quot;bold&quot; &amp; &#39;brash&#39;&lt;/b&gt;" {
		t.Errorf("Text rendered %q", escaped)
	}

	verbatim := MustString(Safe(hostile))
	if verbatim != hostile {
		t.Errorf("Safe rendered %q, want %q", verbatim, hostile)
	}
}
