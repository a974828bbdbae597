package seed

import "testing"

func TestStoreDeterministic(t *testing.T) {
	a := NewStore(1337)
	b := NewStore(1337)

	for i := 0; i < 32; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Fatalf("seed stream diverged at position %d: %d != %d", i, got, want)
		}
	}
}

func TestStoreDistinctMothers(t *testing.T) {
	a := NewStore(1)
	b := NewStore(2)

	same := true
	for i := 0; i < 8; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct mother seeds produced identical child seed streams")
	}
}

func TestStoreMother(t *testing.T) {
	s := NewStore(-42)
	if s.Mother() != -42 {
		t.Fatalf("Mother() = %d, want -42", s.Mother())
	}
}
