package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCaseConversions(t *testing.T) {
	cases := []struct {
		in     string
		snake  string
		camel  string
		pascal string
		kebab  string
	}{
		{"HelloWorld", "hello_world", "helloWorld", "HelloWorld", "hello-world"},
		{"hello_world", "hello_world", "helloWorld", "HelloWorld", "hello-world"},
		{"hello-world", "hello_world", "helloWorld", "HelloWorld", "hello-world"},
		{"HTTPServer", "http_server", "httpServer", "HttpServer", "http-server"},
		{"", "", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := toSnakeCase(tc.in); got != tc.snake {
				t.Errorf("snake(%q) = %q, want %q", tc.in, got, tc.snake)
			}
			if got := toCamelCase(tc.in); got != tc.camel {
				t.Errorf("camel(%q) = %q, want %q", tc.in, got, tc.camel)
			}
			if got := toPascalCase(tc.in); got != tc.pascal {
				t.Errorf("pascal(%q) = %q, want %q", tc.in, got, tc.pascal)
			}
			if got := toKebabCase(tc.in); got != tc.kebab {
				t.Errorf("kebab(%q) = %q, want %q", tc.in, got, tc.kebab)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want int
	}{
		{42, 42},
		{int64(7), 7},
		{3.9, 3},
		{" 12 ", 12},
		{true, 1},
	} {
		got, err := toInt(tc.in)
		if err != nil {
			t.Fatalf("toInt(%v) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("toInt(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := toInt([]any{}); err == nil {
		t.Error("expected error converting slice to int")
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	in := map[string]any{"a": 1, "b": []any{"x", "y"}}

	text, err := toYAML(in)
	if err != nil {
		t.Fatalf("toYAML failed: %v", err)
	}
	back, err := fromYAML(text)
	if err != nil {
		t.Fatalf("fromYAML failed: %v", err)
	}

	want := map[string]any{"a": 1, "b": []any{"x", "y"}}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIndent(t *testing.T) {
	got := indent(2, "a\n\nb")
	want := "  a\n\n  b"
	if got != want {
		t.Errorf("indent = %q, want %q", got, want)
	}
}

func TestDict(t *testing.T) {
	d, err := makeDict("a", 1, "b", 2)
	if err != nil {
		t.Fatalf("dict failed: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1, "b": 2}, d); diff != "" {
		t.Errorf("dict mismatch (-want +got):\n%s", diff)
	}

	if _, err := makeDict("a"); err == nil {
		t.Error("expected error for odd argument count")
	}
	if _, err := makeDict(1, "a"); err == nil {
		t.Error("expected error for non-string key")
	}
}

func TestDefaultValue(t *testing.T) {
	if got := defaultValue("fallback", ""); got != "fallback" {
		t.Errorf("default on empty string = %v", got)
	}
	if got := defaultValue("fallback", "set"); got != "set" {
		t.Errorf("default on set string = %v", got)
	}
	if got := defaultValue("fallback", nil); got != "fallback" {
		t.Errorf("default on nil = %v", got)
	}
	if got := defaultValue("fallback", 0); got != 0 {
		t.Errorf("default must not replace numeric zero, got %v", got)
	}
}

func TestUntil(t *testing.T) {
	if diff := cmp.Diff([]int{0, 1, 2}, until(3)); diff != "" {
		t.Errorf("until(3) mismatch (-want +got):\n%s", diff)
	}
	if got := until(0); got != nil {
		t.Errorf("until(0) = %v, want nil", got)
	}
	if got := until(-2); got != nil {
		t.Errorf("until(-2) = %v, want nil", got)
	}
}
