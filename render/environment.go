// Package render wraps the template engine used for model rendering: it
// builds configured environments with generator globals, the built-in
// filter set and model-level engine options.
package render

import (
	"fmt"
	"io/fs"
	"math/rand"
	"regexp"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/cpcf/timkit/generator"
	"github.com/cpcf/timkit/seed"
)

// Options carries the engine options recognized in the model-level config
// document. TrimBlocks and LstripBlocks emulate the block-tag whitespace
// control many template dialects offer: TrimBlocks removes the newline
// directly after a control action, LstripBlocks removes indentation in
// front of a control action that starts a line.
type Options struct {
	TrimBlocks   bool              `yaml:"trim_blocks"`
	LstripBlocks bool              `yaml:"lstrip_blocks"`
	ExtraFilters map[string]string `yaml:"extra_filters"`
	ExtraGlobals map[string]any    `yaml:"extra_globals"`
}

// Environment is a configured template engine for one render session. It
// holds the merged filter set, the generator instances injected as template
// globals and a parse cache. Environments are not safe for concurrent use;
// the generator instances they hold share one seeded random stream.
type Environment struct {
	funcs   template.FuncMap
	globals map[string]any
	opts    Options
	cache   *Cache
}

var (
	blockTagTrimRE   = regexp.MustCompile(`(\{\{-?\s*(?:if|else|end|range|with|block|define|template)\b[^{}]*\}\})[ \t]*\n`)
	blockTagLstripRE = regexp.MustCompile(`(?m)^[ \t]+(\{\{-?\s*(?:if|else|end|range|with|block|define|template)\b)`)
)

// NewEnvironment builds an environment. When reg is non-nil, one instance
// per registered generator is created from the seed store and exposed as a
// template global under the generator's name. Name collisions between extra
// filters/globals and built-ins are rejected here, not at render time.
func NewEnvironment(opts Options, reg *generator.Registry, seeds *seed.Store) (*Environment, error) {
	funcs := DefaultFuncMap()

	globals := make(map[string]any)
	if reg != nil {
		if seeds == nil {
			return nil, fmt.Errorf("render: generator registry requires a seed store")
		}
		instances, err := reg.Instantiate(seeds)
		if err != nil {
			return nil, err
		}
		for name, instance := range instances {
			globals[name] = instance
		}
	}

	// dynamic lookup for names not known until render time
	funcs["generator"] = func(name string) (any, error) {
		instance, ok := globals[name]
		if !ok {
			return nil, &generator.UnknownGeneratorError{Name: name}
		}
		return instance, nil
	}

	if seeds != nil {
		rng := rand.New(rand.NewSource(seeds.Next()))
		funcs["uuid"] = func() (string, error) {
			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		}
	}

	for alias, target := range opts.ExtraFilters {
		if _, taken := funcs[alias]; taken {
			return nil, &TemplateConfigError{Name: alias, Reason: "extra filter collides with a built-in filter"}
		}
		fn, ok := funcs[target]
		if !ok {
			return nil, &TemplateConfigError{Name: alias, Reason: fmt.Sprintf("extra filter targets unknown filter %q", target)}
		}
		funcs[alias] = fn
	}

	for name, value := range opts.ExtraGlobals {
		if _, taken := globals[name]; taken {
			return nil, &TemplateConfigError{Name: name, Reason: "extra global collides with a generator name"}
		}
		globals[name] = value
	}

	return &Environment{
		funcs:   funcs,
		globals: globals,
		opts:    opts,
		cache:   NewCache(),
	}, nil
}

// RenderString expands an in-memory template source against data. Keys in
// data shadow environment globals of the same name.
func (e *Environment) RenderString(name, src string, data map[string]any) (string, error) {
	tmpl, err := e.parse(name, src)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data)
}

// RenderFile expands the template file at path inside fsys. Parsed templates
// are cached for the lifetime of the environment.
func (e *Environment) RenderFile(fsys fs.FS, path string, data map[string]any) (string, error) {
	tmpl, err := e.cache.Get(path, func() (*template.Template, error) {
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		return e.parse(path, string(content))
	})
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data)
}

func (e *Environment) parse(name, src string) (*template.Template, error) {
	if e.opts.TrimBlocks {
		src = blockTagTrimRE.ReplaceAllString(src, "$1")
	}
	if e.opts.LstripBlocks {
		src = blockTagLstripRE.ReplaceAllString(src, "$1")
	}
	return template.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(src)
}

func (e *Environment) execute(tmpl *template.Template, data map[string]any) (string, error) {
	merged := make(map[string]any, len(e.globals)+len(data))
	for name, value := range e.globals {
		merged[name] = value
	}
	for name, value := range data {
		merged[name] = value
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, merged); err != nil {
		return "", err
	}
	return buf.String(), nil
}
