// Package testing provides in-memory filesystem support for template tests.
package testing

import (
	"io/fs"
	"path"
	"testing/fstest"
)

// MemoryFS is a writable in-memory fs.FS for building template fixtures
// without touching disk.
type MemoryFS struct {
	files fstest.MapFS
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{files: fstest.MapFS{}}
}

// WriteFile stores data under name, creating implied parent directories.
func (m *MemoryFS) WriteFile(name string, data []byte) {
	m.files[path.Clean(name)] = &fstest.MapFile{Data: data, Mode: 0o644}
}

func (m *MemoryFS) Open(name string) (fs.File, error) {
	return m.files.Open(name)
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	return m.files.ReadFile(name)
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return m.files.ReadDir(name)
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	return m.files.Stat(name)
}

func (m *MemoryFS) Glob(pattern string) ([]string, error) {
	return m.files.Glob(pattern)
}
