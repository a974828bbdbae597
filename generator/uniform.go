package generator

import (
	"math/rand"

	"github.com/cpcf/timkit/seed"
)

const uniformName = "random"

// Uniform is the built-in uniform-random generator, exposed to templates as
// "random". It produces scalars, choices from explicit sets and random
// strings over a caller-supplied alphabet.
type Uniform struct{}

func (Uniform) Name() string { return uniformName }

func (Uniform) Create(seeds *seed.Store) (any, error) {
	return &UniformSource{rng: rand.New(rand.NewSource(seeds.Next()))}, nil
}

// UniformSource is the template-facing instance created by Uniform.
type UniformSource struct {
	rng *rand.Rand
}

// Int returns a uniformly distributed integer in [min, max] (both bounds
// inclusive, matching the behavior TIM authors expect from randint-style
// helpers).
func (u *UniformSource) Int(min, max int) (int, error) {
	if min > max {
		return 0, invalidArg(uniformName, "min", "min (%d) must not exceed max (%d)", min, max)
	}
	return min + u.rng.Intn(max-min+1), nil
}

// Float returns a uniformly distributed float in [min, max).
func (u *UniformSource) Float(min, max float64) (float64, error) {
	if min > max {
		return 0, invalidArg(uniformName, "min", "min (%v) must not exceed max (%v)", min, max)
	}
	return min + u.rng.Float64()*(max-min), nil
}

func (u *UniformSource) Bool() bool {
	return u.rng.Intn(2) == 1
}

// Choice picks one element from the given sequence.
func (u *UniformSource) Choice(seq []any) (any, error) {
	if len(seq) == 0 {
		return nil, invalidArg(uniformName, "seq", "sequence must not be empty")
	}
	return seq[u.rng.Intn(len(seq))], nil
}

// Sample picks n distinct elements from the sequence, preserving draw order.
func (u *UniformSource) Sample(seq []any, n int) ([]any, error) {
	if n < 0 {
		return nil, invalidArg(uniformName, "n", "sample size must not be negative, got %d", n)
	}
	if n > len(seq) {
		return nil, invalidArg(uniformName, "n", "sample size %d exceeds sequence length %d", n, len(seq))
	}
	picked := u.rng.Perm(len(seq))[:n]
	out := make([]any, n)
	for i, idx := range picked {
		out[i] = seq[idx]
	}
	return out, nil
}

// Shuffle returns a shuffled copy of the sequence; the input is not touched.
func (u *UniformSource) Shuffle(seq []any) []any {
	out := make([]any, len(seq))
	copy(out, seq)
	u.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// String returns a random string of the given length drawn from alphabet.
func (u *UniformSource) String(alphabet string, length int) (string, error) {
	if length < 0 {
		return "", invalidArg(uniformName, "length", "length must not be negative, got %d", length)
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		return "", invalidArg(uniformName, "alphabet", "alphabet must not be empty")
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = runes[u.rng.Intn(len(runes))]
	}
	return string(out), nil
}
