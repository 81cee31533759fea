package ksnp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndicator(t *testing.T) {
	ind, err := BuildIndicator([]int{5}, 10)
	require.NoError(t, err)
	require.Len(t, ind, 10)
	for i, set := range ind {
		assert.Equal(t, i == 4, set, "bit %d", i)
	}
}

func TestBuildIndicator_Idempotent(t *testing.T) {
	positions := []int{2, 7, 7, 2, 9}
	a, err := BuildIndicator(positions, 10)
	require.NoError(t, err)
	b, err := BuildIndicator(positions, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildIndicator_Empty(t *testing.T) {
	ind, err := BuildIndicator(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false}, ind)
}

func TestBuildIndicator_OutOfRange(t *testing.T) {
	_, err := BuildIndicator([]int{3, 11}, 10)
	require.Error(t, err)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 11, oor.Pos)
	assert.Equal(t, 10, oor.Length)
}

func TestBuildIndicator_NonPositivePosition(t *testing.T) {
	_, err := BuildIndicator([]int{0}, 10)
	var iae *InvalidArgumentError
	require.True(t, errors.As(err, &iae))
}

func TestBuildIndicator_NonPositiveLength(t *testing.T) {
	_, err := BuildIndicator(nil, 0)
	assert.Error(t, err)
}
