package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpcf/timkit/generator"
	"github.com/cpcf/timkit/seed"
	timtest "github.com/cpcf/timkit/testing"
)

func newEnv(t *testing.T, opts Options, mother int64) *Environment {
	t.Helper()
	env, err := NewEnvironment(opts, generator.Builtins(), seed.NewStore(mother))
	if err != nil {
		t.Fatalf("NewEnvironment failed: %v", err)
	}
	return env
}

func TestEnvironmentGeneratorGlobals(t *testing.T) {
	env := newEnv(t, Options{}, 1)

	out, err := env.RenderString("t", `{{ .random.Int 4 4 }}`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "4" {
		t.Errorf("got %q, want %q", out, "4")
	}
}

func TestEnvironmentGeneratorLookupFunc(t *testing.T) {
	env := newEnv(t, Options{}, 1)

	_, err := env.RenderString("t", `{{ generator "doesnotexist" }}`, nil)
	var unknownErr *generator.UnknownGeneratorError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownGeneratorError, got %v", err)
	}
	if unknownErr.Name != "doesnotexist" {
		t.Errorf("error names %q, want %q", unknownErr.Name, "doesnotexist")
	}
}

func TestEnvironmentDataShadowsGlobals(t *testing.T) {
	env := newEnv(t, Options{ExtraGlobals: map[string]any{"region": "eu"}}, 1)

	out, err := env.RenderString("t", `{{ .region }}`, map[string]any{"region": "us"})
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "us" {
		t.Errorf("got %q, want %q", out, "us")
	}
}

func TestEnvironmentExtraFilterAlias(t *testing.T) {
	env := newEnv(t, Options{ExtraFilters: map[string]string{"shout": "upper"}}, 1)

	out, err := env.RenderString("t", `{{ "hi" | shout }}`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "HI" {
		t.Errorf("got %q, want %q", out, "HI")
	}
}

func TestEnvironmentConfigCollisions(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"filter collides with builtin", Options{ExtraFilters: map[string]string{"upper": "lower"}}},
		{"filter targets unknown", Options{ExtraFilters: map[string]string{"x": "nope"}}},
		{"global collides with generator", Options{ExtraGlobals: map[string]any{"random": 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEnvironment(tc.opts, generator.Builtins(), seed.NewStore(1))
			var cfgErr *TemplateConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected TemplateConfigError, got %v", err)
			}
		})
	}
}

func TestEnvironmentTrimBlocks(t *testing.T) {
	src := "{{ if true }}\na\n{{ end }}\n"

	env := newEnv(t, Options{TrimBlocks: true}, 1)
	out, err := env.RenderString("t", src, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "a\n" {
		t.Errorf("trim_blocks output %q, want %q", out, "a\n")
	}

	plain := newEnv(t, Options{}, 1)
	out, err = plain.RenderString("t", src, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "\na\n\n" {
		t.Errorf("default output %q, want %q", out, "\na\n\n")
	}
}

func TestEnvironmentLstripBlocks(t *testing.T) {
	src := "  {{ if true }}\na\n  {{ end }}\n"

	env := newEnv(t, Options{TrimBlocks: true, LstripBlocks: true}, 1)
	out, err := env.RenderString("t", src, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if out != "a\n" {
		t.Errorf("lstrip_blocks output %q, want %q", out, "a\n")
	}
}

func TestEnvironmentMissingKeyFails(t *testing.T) {
	env := newEnv(t, Options{}, 1)

	_, err := env.RenderString("t", `{{ .nope }}`, nil)
	if err == nil {
		t.Fatal("expected error for undefined variable")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error does not name the missing key: %v", err)
	}
}

func TestEnvironmentUUIDDeterministic(t *testing.T) {
	a := newEnv(t, Options{}, 1337)
	b := newEnv(t, Options{}, 1337)

	ua, err := a.RenderString("t", `{{ uuid }}`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	ub, err := b.RenderString("t", `{{ uuid }}`, nil)
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if ua != ub {
		t.Errorf("uuid not reproducible for the same seed: %q != %q", ua, ub)
	}
	if len(ua) != 36 {
		t.Errorf("uuid %q is not canonically formatted", ua)
	}
}

func TestEnvironmentRenderFile(t *testing.T) {
	fsys := timtest.NewMemoryFS()
	fsys.WriteFile("greeting.tmpl", []byte("hello {{ .who }}"))

	env := newEnv(t, Options{}, 1)
	out, err := env.RenderFile(fsys, "greeting.tmpl", map[string]any{"who": "world"})
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	if out != "hello world" {
		t.Errorf("got %q, want %q", out, "hello world")
	}

	// second render comes from the parse cache
	out, err = env.RenderFile(fsys, "greeting.tmpl", map[string]any{"who": "again"})
	if err != nil {
		t.Fatalf("cached RenderFile failed: %v", err)
	}
	if out != "hello again" {
		t.Errorf("got %q, want %q", out, "hello again")
	}
}
