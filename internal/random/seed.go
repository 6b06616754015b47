// Package random seeds the engine's pseudo-random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG-backed generator seeded from crypto/rand.
func New() (*rand.Rand, error) {
	s1, err := NewSeed()
	if err != nil {
		return nil, err
	}
	s2, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(s1, s2)), nil
}

// Fixed returns a deterministic generator, for tests and replays.
func Fixed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
