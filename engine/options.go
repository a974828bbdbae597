package engine

import (
	"log/slog"

	"github.com/cpcf/timkit/generator"
	"github.com/cpcf/timkit/postprocess"
	"github.com/cpcf/timkit/write"
)

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSeed pins the mother seed, taking precedence over a seed in the model
// config. Without either, a fresh seed is drawn per session.
func WithSeed(s int64) Option {
	return func(e *Engine) {
		e.seed = &s
	}
}

// WithInputs supplies host variables, visible to the context template and
// every file template as .inputs.
func WithInputs(inputs map[string]any) Option {
	return func(e *Engine) {
		e.inputs = inputs
	}
}

// WithGenerators merges extra generator plugins into the registry before
// context resolution begins.
func WithGenerators(gens ...generator.Generator) Option {
	return func(e *Engine) {
		e.extras = append(e.extras, gens...)
	}
}

// WithRegistry replaces the built-in registry entirely. The engine owns the
// given registry for the session.
func WithRegistry(reg *generator.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithPostProcessor appends a processor applied to every rendered file
// before it is written.
func WithPostProcessor(p postprocess.Processor) Option {
	return func(e *Engine) {
		e.post.Add(p)
	}
}

// WithWriter swaps the output writer; test support.
func WithWriter(w write.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}
