package secret

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source yields integers in [0, n)
type Source interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator (13, 17, 5)
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator from an explicit seed, zero is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewSeeded creates a generator seeded from the OS entropy pool
// An error means no randomness is available and the caller must not continue
func NewSeeded() (*FastRand, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("secret: read entropy: %w", err)
	}
	return NewFastRand(binary.LittleEndian.Uint64(buf[:])), nil
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n)
// Rejection sampling drops the modulo bias of the last partial block
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := r.Next()
		if v < limit {
			return int(v % bound)
		}
	}
}

// Fixed always returns the same offset, clamped into [0, n)
type Fixed int

func (f Fixed) Intn(n int) int {
	if n <= 0 || f < 0 {
		return 0
	}
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
