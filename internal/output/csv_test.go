package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartoonist/vcfy/internal/ksnp"
)

func TestCountWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCountWriter(&buf, 3)

	require.NoError(t, w.WriteHeader())
	for _, count := range []int{0, 0, 1, 2} {
		require.NoError(t, w.Write(count))
	}
	require.NoError(t, w.Flush())

	assert.Equal(t, "k,count\n3,0\n3,0\n3,1\n3,2\n", buf.String())
}

func TestFreqWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewFreqWriter(&buf, 3)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(ksnp.Bin{Count: 0, Freq: 5}))
	require.NoError(t, w.Write(ksnp.Bin{Count: 1, Freq: 3}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "k,count,freq\n3,0,5\n3,1,3\n", buf.String())
}
