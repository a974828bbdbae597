package generator

import (
	"sort"

	"github.com/cpcf/timkit/seed"
)

// Registry maps generator names to their plugins. It is a plain value owned
// by one render session; construct a fresh one per session (or per test)
// rather than sharing a process-wide instance.
type Registry struct {
	generators map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Builtins returns a new registry preloaded with the generators shipped with
// the module: "random", "faker" and "numpy".
func Builtins() *Registry {
	r := NewRegistry()
	for _, g := range []Generator{Uniform{}, Fake{}, Array{}} {
		// built-in names cannot collide with each other
		_ = r.Register(g)
	}
	return r
}

func (r *Registry) Register(gen Generator) error {
	name := gen.Name()
	if _, taken := r.generators[name]; taken {
		return &DuplicateGeneratorError{Name: name}
	}
	r.generators[name] = gen
	return nil
}

func (r *Registry) Get(name string) (Generator, error) {
	gen, ok := r.generators[name]
	if !ok {
		return nil, &UnknownGeneratorError{Name: name}
	}
	return gen, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.generators[name]
	return ok
}

// Names returns the registered generator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instantiate creates one instance per registered generator, seeding them in
// sorted name order. The fixed order matters: it is what keeps the child
// seed assignment stable across runs with the same mother seed.
func (r *Registry) Instantiate(seeds *seed.Store) (map[string]any, error) {
	instances := make(map[string]any, len(r.generators))
	for _, name := range r.Names() {
		instance, err := r.generators[name].Create(seeds)
		if err != nil {
			return nil, err
		}
		instances[name] = instance
	}
	return instances, nil
}
