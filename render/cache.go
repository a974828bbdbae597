package render

import (
	"sync"
	"text/template"
)

// Cache memoizes parsed templates by path for the lifetime of one
// environment. Rendering is single-threaded, but the cache keeps the usual
// double-checked locking so an environment can be probed from tests freely.
type Cache struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

func NewCache() *Cache {
	return &Cache{templates: make(map[string]*template.Template)}
}

// Get returns the cached template for path, building and storing it via
// build on first use.
func (c *Cache) Get(path string, build func() (*template.Template, error)) (*template.Template, error) {
	c.mu.RLock()
	if tmpl, ok := c.templates[path]; ok {
		c.mu.RUnlock()
		return tmpl, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if tmpl, ok := c.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := build()
	if err != nil {
		return nil, err
	}
	c.templates[path] = tmpl
	return tmpl, nil
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates = make(map[string]*template.Template)
}
