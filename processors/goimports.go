// Package processors ships built-in post-processors.
package processors

import (
	"fmt"
	"go/format"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// GoImports formats rendered Go source files and fixes their imports; other
// file types pass through untouched. Useful for models that generate Go
// code.
type GoImports struct {
	TabWidth  int
	TabIndent bool
	Comments  bool
}

func NewGoImports() *GoImports {
	return &GoImports{
		TabWidth:  8,
		TabIndent: true,
		Comments:  true,
	}
}

func (g *GoImports) ProcessContent(path string, content []byte) ([]byte, error) {
	if filepath.Ext(path) != ".go" {
		return content, nil
	}

	formatted, err := imports.Process(path, content, &imports.Options{
		Comments:  g.Comments,
		TabIndent: g.TabIndent,
		TabWidth:  g.TabWidth,
	})
	if err != nil {
		// goimports needs parseable input; fall back to gofmt
		fallback, fmtErr := format.Source(content)
		if fmtErr != nil {
			return nil, fmt.Errorf("failed to format %s: %w", path, err)
		}
		return fallback, nil
	}
	return formatted, nil
}
