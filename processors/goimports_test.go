package processors

import (
	"strings"
	"testing"
)

func TestGoImportsFormatsGoFiles(t *testing.T) {
	g := NewGoImports()

	in := []byte("package main\n\nfunc main(){x:=fmt.Sprintf(\"hi\")\n_=x}\n")
	out, err := g.ProcessContent("cmd/main.go", in)
	if err != nil {
		t.Fatalf("ProcessContent failed: %v", err)
	}
	if !strings.Contains(string(out), "import") || !strings.Contains(string(out), "\"fmt\"") {
		t.Errorf("missing import was not added:\n%s", out)
	}
}

func TestGoImportsIgnoresOtherFiles(t *testing.T) {
	g := NewGoImports()

	in := []byte("not: go\n")
	out, err := g.ProcessContent("config.yml", in)
	if err != nil {
		t.Fatalf("ProcessContent failed: %v", err)
	}
	if string(out) != string(in) {
		t.Error("non-Go content was modified")
	}
}

func TestGoImportsRejectsBrokenGo(t *testing.T) {
	g := NewGoImports()

	if _, err := g.ProcessContent("broken.go", []byte("func {")); err == nil {
		t.Fatal("expected error for unparseable Go source")
	}
}
