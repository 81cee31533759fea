package simulate

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Synthesize draws exactly p.Num distinct loci from [Low, High) without
// replacement, sorted ascending, and emits one substitution record per
// locus. There is no indel support in this mode. weights, when non-nil, is
// a probability mass over the positions of the range (index 0 maps to Low)
// and biases the draw; it does not have to be normalized. A nil weights
// slice means a uniform draw.
//
// Loci whose reference base is outside the alphabet are logged and skipped,
// so a degenerate region can yield fewer than p.Num records.
func (s *Simulator) Synthesize(seq string, p Params, weights []float64) ([]*Record, error) {
	p, err := p.normalize(len(seq))
	if err != nil {
		return nil, err
	}
	size := p.High - p.Low
	if p.Num < 1 {
		return nil, fmt.Errorf("num must be positive, got %d", p.Num)
	}
	if p.Num > size {
		return nil, fmt.Errorf("cannot draw %d distinct loci from a range of size %d", p.Num, size)
	}
	if weights != nil && len(weights) != size {
		return nil, fmt.Errorf("weights length %d does not match range size %d", len(weights), size)
	}

	var loci []int
	if weights == nil {
		loci = s.rng.Perm(size)[:p.Num]
	} else {
		loci, err = s.drawWeighted(weights, p.Num)
		if err != nil {
			return nil, err
		}
	}
	sort.Ints(loci)

	records := make([]*Record, 0, p.Num)
	for _, off := range loci {
		locus := p.Low + off
		ref, alt, err := s.rng.Substitution(locus, seq)
		if err != nil {
			s.logger.Warn("skipping locus", zap.Int("locus", locus), zap.Error(err))
			continue
		}
		records = append(records, newRecord(locus, ref, alt))
	}
	return records, nil
}

// drawWeighted samples n distinct offsets by inverse transform over the
// remaining mass, removing each drawn offset from the distribution.
func (s *Simulator) drawWeighted(weights []float64, n int) ([]int, error) {
	w := make([]float64, len(weights))
	total := 0.0
	for i, v := range weights {
		if v < 0 {
			return nil, fmt.Errorf("negative weight %g at offset %d", v, i)
		}
		w[i] = v
		total += v
	}

	offsets := make([]int, 0, n)
	for len(offsets) < n {
		if total <= 0 {
			return nil, fmt.Errorf("only %d loci have positive weight, need %d", len(offsets), n)
		}
		t := s.rng.Float64() * total
		idx := -1
		for i, v := range w {
			t -= v
			if v > 0 && t < 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			// Rounding pushed t past the accumulated mass; take the
			// last offset that still has weight.
			for i := len(w) - 1; i >= 0; i-- {
				if w[i] > 0 {
					idx = i
					break
				}
			}
		}
		offsets = append(offsets, idx)
		total -= w[idx]
		w[idx] = 0
	}
	return offsets, nil
}
