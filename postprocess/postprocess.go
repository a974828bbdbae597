// Package postprocess applies host-supplied transformations to rendered
// content after template expansion and before it is written to disk.
package postprocess

import "fmt"

// Processor transforms rendered file content. A processor that does not
// apply to the file type should return the content unchanged.
type Processor interface {
	ProcessContent(path string, content []byte) ([]byte, error)
}

// Func adapts an ordinary function to the Processor interface.
type Func func(path string, content []byte) ([]byte, error)

func (f Func) ProcessContent(path string, content []byte) ([]byte, error) {
	return f(path, content)
}

// Chain runs processors in the order they were added. A processor failure
// aborts the chain; the renderer treats it as a task failure.
type Chain struct {
	processors []Processor
}

func NewChain() *Chain {
	return &Chain{}
}

func (c *Chain) Add(p Processor) {
	c.processors = append(c.processors, p)
}

func (c *Chain) AddFunc(fn func(path string, content []byte) ([]byte, error)) {
	c.processors = append(c.processors, Func(fn))
}

func (c *Chain) HasProcessors() bool {
	return len(c.processors) > 0
}

func (c *Chain) Process(path string, content []byte) ([]byte, error) {
	out := content
	for i, p := range c.processors {
		next, err := p.ProcessContent(path, out)
		if err != nil {
			return nil, fmt.Errorf("post-processor %d failed for %s: %w", i, path, err)
		}
		out = next
	}
	return out, nil
}
