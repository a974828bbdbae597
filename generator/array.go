package generator

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cpcf/timkit/seed"
)

const arrayName = "numpy"

// Array is the built-in numeric-array generator, exposed to templates as
// "numpy". It produces sequences and matrices of numeric values with
// configurable shape and distribution, returned as plain nested slices so
// they serialize cleanly into the context document.
type Array struct{}

func (Array) Name() string { return arrayName }

func (Array) Create(seeds *seed.Store) (any, error) {
	src := xrand.NewSource(uint64(seeds.Next()))
	return &ArraySource{src: src, rng: xrand.New(src)}, nil
}

// ArraySource is the template-facing instance created by Array.
type ArraySource struct {
	src xrand.Source
	rng *xrand.Rand
}

// Uniform returns size draws from the uniform distribution over [min, max).
func (a *ArraySource) Uniform(min, max float64, size int) ([]float64, error) {
	if size < 0 {
		return nil, invalidArg(arrayName, "size", "size must not be negative, got %d", size)
	}
	if min > max {
		return nil, invalidArg(arrayName, "min", "min (%v) must not exceed max (%v)", min, max)
	}
	dist := distuv.Uniform{Min: min, Max: max, Src: a.src}
	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// Normal returns size draws from the normal distribution N(mu, sigma).
func (a *ArraySource) Normal(mu, sigma float64, size int) ([]float64, error) {
	if size < 0 {
		return nil, invalidArg(arrayName, "size", "size must not be negative, got %d", size)
	}
	if sigma < 0 {
		return nil, invalidArg(arrayName, "sigma", "sigma must not be negative, got %v", sigma)
	}
	out := make([]float64, size)
	if sigma == 0 {
		for i := range out {
			out[i] = mu
		}
		return out, nil
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: a.src}
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// Matrix returns a rows x cols matrix of uniform draws over [min, max).
func (a *ArraySource) Matrix(rows, cols int, min, max float64) ([][]float64, error) {
	if rows < 0 {
		return nil, invalidArg(arrayName, "rows", "rows must not be negative, got %d", rows)
	}
	if cols < 0 {
		return nil, invalidArg(arrayName, "cols", "cols must not be negative, got %d", cols)
	}
	out := make([][]float64, rows)
	for i := range out {
		row, err := a.Uniform(min, max, cols)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}

// Ints returns size uniformly distributed integers in [min, max], both
// bounds inclusive.
func (a *ArraySource) Ints(min, max, size int) ([]int, error) {
	if size < 0 {
		return nil, invalidArg(arrayName, "size", "size must not be negative, got %d", size)
	}
	if min > max {
		return nil, invalidArg(arrayName, "min", "min (%d) must not exceed max (%d)", min, max)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = min + a.rng.Intn(max-min+1)
	}
	return out, nil
}

// Choices returns size elements picked from the sequence with replacement.
func (a *ArraySource) Choices(seq []any, size int) ([]any, error) {
	if size < 0 {
		return nil, invalidArg(arrayName, "size", "size must not be negative, got %d", size)
	}
	if len(seq) == 0 {
		return nil, invalidArg(arrayName, "seq", "sequence must not be empty")
	}
	out := make([]any, size)
	for i := range out {
		out[i] = seq[a.rng.Intn(len(seq))]
	}
	return out, nil
}
