// Package seed provides the deterministic seed source shared by every
// randomized component of a render session.
package seed

import (
	"math/rand"
	"time"
)

// Store derives a stream of child seeds from a single mother seed. All
// generators and randomness-dependent template helpers of one render session
// are seeded from the same store in a fixed order, so identical mother seeds
// reproduce identical output trees.
//
// A Store is not safe for concurrent use; each render session owns its own.
type Store struct {
	mother int64
	rng    *rand.Rand
}

func NewStore(mother int64) *Store {
	return &Store{
		mother: mother,
		rng:    rand.New(rand.NewSource(mother)),
	}
}

// Mother returns the root seed the store was created with.
func (s *Store) Mother() int64 {
	return s.mother
}

// Next returns the next child seed.
func (s *Store) Next() int64 {
	return s.rng.Int63()
}

// New produces a fresh mother seed for hosts that were not handed one.
func New() int64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
}
