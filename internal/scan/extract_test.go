package scan

import (
	"reflect"
	"testing"
)

func TestSanitizeMasksTranslationCalls(t *testing.T) {
	t.Parallel()

	e := NewExtractor([]string{"t!"})

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "simple call",
			line: `let s = t!("price.label");`,
			want: `let s = t!(I18N_KEY);`,
		},
		{
			name: "call with extra arguments",
			line: `t!("price.label", value, count)`,
			want: `t!(I18N_KEY)`,
		},
		{
			name: "two calls on one line",
			line: `f(t!("a.b"), t!("c.d", x))`,
			want: `f(t!(I18N_KEY), t!(I18N_KEY))`,
		},
		{
			name: "unrelated literals untouched",
			line: `Paragraph::new("Loading")`,
			want: `Paragraph::new("Loading")`,
		},
		{
			name: "no marker no change",
			line: `let x = "plain";`,
			want: `let x = "plain";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.Sanitize(tt.line); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestExtractLiterals(t *testing.T) {
	t.Parallel()

	e := NewExtractor([]string{"t!"})

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "single literal",
			line: `Paragraph::new("Loading")`,
			want: []string{"Loading"},
		},
		{
			name: "multiple literals in appearance order",
			line: `f("first", "second")`,
			want: []string{"first", "second"},
		},
		{
			name: "escaped quote does not terminate the span",
			line: `g("say \"hi\" now")`,
			want: []string{`say \"hi\" now`},
		},
		{
			name: "escaped backslash before closing quote",
			line: `g("path\\", "next")`,
			want: []string{`path\\`, "next"},
		},
		{
			name: "masked translation call yields nothing",
			line: `t!("price.label", value)`,
			want: nil,
		},
		{
			name: "masked call beside a raw literal",
			line: `f(t!("a.key"), "raw")`,
			want: []string{"raw"},
		},
		{
			name: "unterminated quote under-extracts without error",
			line: `g("complete", "oops`,
			want: []string{"complete"},
		},
		{
			name: "empty literal",
			line: `h("")`,
			want: []string{""},
		},
		{
			name: "no literals",
			line: `let x = 1;`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.Extract(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestExtractorMultipleMarkers(t *testing.T) {
	t.Parallel()

	e := NewExtractor([]string{"t!", "tr"})
	got := e.Extract(`f(tr("a.key"), t!("b.key"), "loose")`)
	want := []string{"loose"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}
