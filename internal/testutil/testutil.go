package testutil

import (
	"math/rand"
	"sync"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	_, _ = r.rand.Read(out)
	return out
}

// Fill fills dst with pseudo-random integers.
// Locks only once per call (preferred over calling Uint64 in a loop).
func Fill[T Integer](r *RNG, dst []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = T(r.rand.Uint64())
	}
}

// Integers returns n pseudo-random integers.
func Integers[T Integer](r *RNG, n int) []T {
	out := make([]T, n)
	Fill(r, out)
	return out
}

// Clone returns a copy of s with its own backing array.
func Clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

// Corrupt flips the lowest bit of s[i], making it differ from its old value.
func Corrupt[T Integer](s []T, i int) {
	s[i] ^= 1
}
