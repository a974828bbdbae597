package generator

import (
	"errors"
	"testing"

	"github.com/cpcf/timkit/seed"
)

func newFake(t *testing.T, mother int64) *FakeSource {
	t.Helper()
	instance, err := Fake{}.Create(seed.NewStore(mother))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return instance.(*FakeSource)
}

func TestFakeProducesValues(t *testing.T) {
	f := newFake(t, 3)
	for name, fn := range map[string]func() string{
		"Name":    f.Name,
		"Email":   f.Email,
		"Address": f.Address,
		"Company": f.Company,
	} {
		if fn() == "" {
			t.Errorf("%s returned an empty value", name)
		}
	}
}

func TestFakeDeterminism(t *testing.T) {
	a := newFake(t, 1337)
	b := newFake(t, 1337)
	for i := 0; i < 10; i++ {
		if a.Name() != b.Name() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestFakeLocale(t *testing.T) {
	f := newFake(t, 3)

	localized, err := f.Locale("de_AT")
	if err != nil {
		t.Fatalf("Locale failed: %v", err)
	}
	if localized.LocaleTag() != "de_AT" {
		t.Errorf("LocaleTag() = %q, want %q", localized.LocaleTag(), "de_AT")
	}
	if localized.Name() == "" {
		t.Error("localized source returned an empty name")
	}

	// same mother seed and tag must give the same localized stream
	again, err := newFake(t, 3).Locale("de_AT")
	if err != nil {
		t.Fatalf("Locale failed: %v", err)
	}
	if got, want := again.Name(), newFake(t, 3).mustLocale(t, "de_AT").Name(); got != want {
		t.Errorf("localized stream not reproducible: %q != %q", got, want)
	}
}

func (f *FakeSource) mustLocale(t *testing.T, tag string) *FakeSource {
	t.Helper()
	l, err := f.Locale(tag)
	if err != nil {
		t.Fatalf("Locale failed: %v", err)
	}
	return l
}

func TestFakeLocaleValidation(t *testing.T) {
	f := newFake(t, 3)

	_, err := f.Locale("not a locale")
	var argErr *InvalidGeneratorArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected InvalidGeneratorArgumentError, got %v", err)
	}
	if argErr.Param != "locale" {
		t.Errorf("error names parameter %q, want %q", argErr.Param, "locale")
	}
}

func TestFakeSentenceValidation(t *testing.T) {
	f := newFake(t, 3)
	if _, err := f.Sentence(0); err == nil {
		t.Fatal("expected error for zero word count")
	}
}
