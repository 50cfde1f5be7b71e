// Package rng provides the seedable random source used by graph generation.
//
// Generation never draws from a package-global generator: callers construct a
// [Source] and pass it explicitly, so a fixed seed reproduces the same graphs
// bit for bit, and parallel workers can each own an independent stream.
//
//	src := rng.New(42)
//	g, err := builder.WattsStrogatz(20, 4, 0.2, src)
//
// # Concurrency
//
// A [PCG] is not safe for concurrent use. Use [Derive] to give each worker its
// own stream instead of sharing one source across goroutines.
package rng

import (
	"math/rand/v2"
)

// Source supplies uniform random draws.
type Source interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// IntN returns a uniform integer in [0,n). It panics if n <= 0.
	IntN(n int) int
}

// PCG is a [Source] backed by the PCG generator from math/rand/v2.
type PCG struct {
	seed uint64
	r    *rand.Rand
}

// New returns a deterministic source for seed.
func New(seed uint64) *PCG {
	return &PCG{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

// Derive returns an independent deterministic stream for the given seed and
// stream index. The same (seed, stream) pair always yields the same sequence,
// and neighbouring stream indices are decorrelated.
func Derive(seed, stream uint64) *PCG {
	return New(mix(seed, stream))
}

// RandomSeed returns a non-deterministic seed for runs that did not request
// one. Callers should record it so the run can be replayed.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// Seed returns the seed the source was created with.
func (p *PCG) Seed() uint64 { return p.seed }

// Float64 returns a uniform draw in [0,1).
func (p *PCG) Float64() float64 { return p.r.Float64() }

// IntN returns a uniform integer in [0,n).
func (p *PCG) IntN(n int) int { return p.r.IntN(n) }

// mix is the SplitMix64 finalizer applied to seed and stream.
func mix(seed, stream uint64) uint64 {
	x := seed ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

var _ Source = (*PCG)(nil)
