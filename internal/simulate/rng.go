// Package simulate implements the variant simulation model: per-locus
// stochastic mutation trials over a reference region and fixed-count
// locus synthesis.
package simulate

import "math/rand"

// Bases is the nucleotide alphabet used for allele generation.
const Bases = "ACGT"

// MissingValue is the VCF placeholder for fields with no applicable value.
const MissingValue = "."

// RNG wraps an explicitly seeded random source. All stochastic decisions in
// this package draw from an RNG so runs are reproducible from a seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Toss returns true with probability p. p is clamped to [0, 1], so Toss(0)
// is always false and Toss(1) is always true.
func (g *RNG) Toss(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// Base returns a base drawn uniformly from the alphabet.
func (g *RNG) Base() byte {
	return Bases[g.r.Intn(len(Bases))]
}

// BaseExcluding returns a base drawn uniformly from the alphabet minus the
// excluded base. The exclusion must be one of the four bases.
func (g *RNG) BaseExcluding(exclude byte) byte {
	for {
		b := Bases[g.r.Intn(len(Bases))]
		if b != exclude {
			return b
		}
	}
}

// Perm returns a random permutation of [0, n).
func (g *RNG) Perm(n int) []int {
	return g.r.Perm(n)
}

// Float64 returns a uniform draw from [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}
