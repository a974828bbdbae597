// Package write provides the file writer the renderer outputs through.
package write

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type Options struct {
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
	// Overwrite allows replacing an existing file.
	Overwrite bool
	// Mode is the file mode for new files; zero means 0644.
	Mode fs.FileMode
}

type Writer interface {
	Write(path string, content []byte, opts Options) error
}

// FileWriter writes to the local filesystem.
type FileWriter struct{}

func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

func (w *FileWriter) Write(path string, content []byte, opts Options) error {
	if opts.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %q: %w", path, err)
		}
	}
	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %q", path)
		}
	}
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// MemoryWriter records writes in memory; test support.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	order []string
}

func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

func (w *MemoryWriter) Write(path string, content []byte, opts Options) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, seen := w.files[path]; !seen {
		w.order = append(w.order, path)
	}
	w.files[path] = append([]byte(nil), content...)
	return nil
}

// Content returns what was last written to path.
func (w *MemoryWriter) Content(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	content, ok := w.files[path]
	return content, ok
}

// Paths returns all written paths in first-write order.
func (w *MemoryWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// SortedPaths returns all written paths sorted lexically.
func (w *MemoryWriter) SortedPaths() []string {
	out := w.Paths()
	sort.Strings(out)
	return out
}
