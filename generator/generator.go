// Package generator provides the pluggable data generators that supply
// randomized values to context templates, and the registry used to look them
// up by name during rendering.
package generator

import "github.com/cpcf/timkit/seed"

// Generator describes a named plugin. Create builds the instance that is
// exposed to templates under Name; its exported methods are the callable
// entry points reachable from template expressions. Implementations must
// draw all randomness from seeds handed out by the given store, never from
// an independent source, so that rendering stays reproducible.
type Generator interface {
	Name() string
	Create(seeds *seed.Store) (any, error)
}
