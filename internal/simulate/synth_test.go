package simulate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_Count(t *testing.T) {
	seq := strings.Repeat("ACGT", 25) // 100 bases
	sim := NewSimulator(42)

	records, err := sim.Synthesize(seq, Params{Num: 3}, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	last := 0
	for _, rec := range records {
		assert.Greater(t, rec.Pos, last, "loci must be distinct and sorted")
		last = rec.Pos
		assert.LessOrEqual(t, rec.Pos, len(seq))
		assert.Equal(t, string(seq[rec.Pos-1]), rec.Ref)
		assert.Len(t, rec.Alt, 1)
		assert.NotEqual(t, rec.Ref, rec.Alt)
	}
}

func TestSynthesize_ExhaustsRange(t *testing.T) {
	seq := strings.Repeat("ACGT", 5)
	sim := NewSimulator(1)

	records, err := sim.Synthesize(seq, Params{Num: len(seq)}, nil)
	require.NoError(t, err)
	require.Len(t, records, len(seq))
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Pos)
	}
}

func TestSynthesize_TooManyLoci(t *testing.T) {
	sim := NewSimulator(1)
	_, err := sim.Synthesize("ACGT", Params{Num: 5}, nil)
	assert.Error(t, err)
}

func TestSynthesize_NonPositiveNum(t *testing.T) {
	sim := NewSimulator(1)
	_, err := sim.Synthesize("ACGT", Params{Num: 0}, nil)
	assert.Error(t, err)
}

func TestSynthesize_Weighted(t *testing.T) {
	seq := strings.Repeat("ACGT", 25)
	sim := NewSimulator(23)

	// Only three offsets carry mass, so they must be exactly the drawn loci.
	weights := make([]float64, len(seq))
	weights[0] = 0.2
	weights[10] = 0.3
	weights[20] = 0.5

	records, err := sim.Synthesize(seq, Params{Num: 3}, weights)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Pos)
	assert.Equal(t, 11, records[1].Pos)
	assert.Equal(t, 21, records[2].Pos)
}

func TestSynthesize_WeightedRespectsRange(t *testing.T) {
	seq := strings.Repeat("ACGT", 25)
	sim := NewSimulator(23)

	p := Params{Num: 5, Low: 41, High: 61}
	weights := make([]float64, 20)
	for i := range weights {
		weights[i] = 1
	}

	records, err := sim.Synthesize(seq, p, weights)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.Pos, 41)
		assert.Less(t, rec.Pos, 61)
	}
}

func TestSynthesize_WeightLengthMismatch(t *testing.T) {
	sim := NewSimulator(1)
	_, err := sim.Synthesize("ACGTACGT", Params{Num: 1}, []float64{1, 2})
	assert.Error(t, err)
}

func TestSynthesize_InsufficientMass(t *testing.T) {
	sim := NewSimulator(1)
	weights := make([]float64, 8)
	weights[3] = 1
	_, err := sim.Synthesize("ACGTACGT", Params{Num: 2}, weights)
	assert.Error(t, err)
}

func TestSynthesize_NegativeWeight(t *testing.T) {
	sim := NewSimulator(1)
	weights := make([]float64, 4)
	weights[1] = -1
	_, err := sim.Synthesize("ACGT", Params{Num: 1}, weights)
	assert.Error(t, err)
}
