package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanPool(t *testing.T) {
	tests := []struct {
		name     string
		vectors  [][]float32
		expected []float32
	}{
		{"Single", [][]float32{{1, 2, 3}}, []float32{1, 2, 3}},
		{"Pair", [][]float32{{1, 0}, {0, 1}}, []float32{0.5, 0.5}},
		{"Negative", [][]float32{{-2, 4}, {2, -4}}, []float32{0, 0}},
		{"Three", [][]float32{{3, 0, 3}, {0, 3, 3}, {3, 3, 0}}, []float32{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MeanPool(tt.vectors)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMeanPoolIdenticalVectors(t *testing.T) {
	// The mean of N copies of v is v, bit for bit.
	v := []float32{0.25, -1.5, 3}
	got, err := MeanPool([][]float32{v, v, v, v})
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestMeanPoolEmpty(t *testing.T) {
	got, err := MeanPool(nil)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoTokenVectors)

	got, err = MeanPool([][]float32{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoTokenVectors)
}

func TestMeanPoolRaggedVectors(t *testing.T) {
	_, err := MeanPool([][]float32{{1, 2}, {1, 2, 3}})
	assert.Error(t, err)
}
