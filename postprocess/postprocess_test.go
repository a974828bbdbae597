package postprocess

import (
	"errors"
	"strings"
	"testing"
)

func TestChainOrder(t *testing.T) {
	c := NewChain()
	c.AddFunc(func(path string, content []byte) ([]byte, error) {
		return append(content, 'a'), nil
	})
	c.AddFunc(func(path string, content []byte) ([]byte, error) {
		return append(content, 'b'), nil
	})

	out, err := c.Process("f", []byte("x"))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if string(out) != "xab" {
		t.Errorf("got %q, want %q", out, "xab")
	}
}

func TestChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	ran := false

	c := NewChain()
	c.AddFunc(func(path string, content []byte) ([]byte, error) {
		return nil, boom
	})
	c.AddFunc(func(path string, content []byte) ([]byte, error) {
		ran = true
		return content, nil
	})

	_, err := c.Process("f", []byte("x"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if ran {
		t.Error("chain continued past a failing processor")
	}
	if !strings.Contains(err.Error(), "f") {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestChainEmpty(t *testing.T) {
	c := NewChain()
	if c.HasProcessors() {
		t.Error("new chain reports processors")
	}
	out, err := c.Process("f", []byte("x"))
	if err != nil || string(out) != "x" {
		t.Errorf("empty chain changed content: %q, %v", out, err)
	}
}
