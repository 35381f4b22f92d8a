package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semtint/refstore"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"ZeroLeft", []float32{0, 0, 0}, []float32{1, 2, 3}, 0},
		{"ZeroRight", []float32{1, 2, 3}, []float32{0, 0, 0}, 0},
		{"BothZero", []float32{0, 0}, []float32{0, 0}, 0},
		{"Skewed", []float32{0.9, 0.1}, []float32{1, 0}, 0.99388373},
		{"MagnitudeInvariant", []float32{2, 0}, []float32{5, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestCosineSymmetry(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{-4, 0.5, 2},
		{0, 0, 0},
		{0.1, 0.9, -0.3},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-7)
		}
	}
}

func TestCosineSelfSimilarity(t *testing.T) {
	vectors := [][]float32{
		{1},
		{0.001, -0.002},
		{3, 4, 5, 6, 7},
	}

	for _, v := range vectors {
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-6)
	}
}

func twoEntryStore(t *testing.T) *refstore.Store {
	t.Helper()
	store, err := refstore.New([]refstore.Entry{
		{Embedding: []float32{1, 0}, Color: refstore.Color{R: 255}},
		{Embedding: []float32{0, 1}, Color: refstore.Color{B: 255}},
	})
	require.NoError(t, err)
	return store
}

func TestBestMatch(t *testing.T) {
	store := twoEntryStore(t)

	tests := []struct {
		name     string
		query    []float32
		expected refstore.Color
	}{
		{"NearestFirst", []float32{0.9, 0.1}, refstore.Color{R: 255}},
		{"NearestSecond", []float32{0.1, 0.9}, refstore.Color{B: 255}},
		// Equidistant queries resolve to the earlier entry.
		{"TieBreaksToFirst", []float32{0.5, 0.5}, refstore.Color{R: 255}},
		// A zero query scores 0 against everything, which still ties to the
		// first entry.
		{"ZeroQuery", []float32{0, 0}, refstore.Color{R: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BestMatch(tt.query, store))
		})
	}
}

func TestBestMatchDuplicateScores(t *testing.T) {
	// Duplicate embeddings with different colors: the earlier entry wins.
	store, err := refstore.New([]refstore.Entry{
		{Embedding: []float32{1, 1}, Color: refstore.Color{R: 10, G: 20, B: 30}},
		{Embedding: []float32{1, 1}, Color: refstore.Color{R: 200}},
	})
	require.NoError(t, err)

	assert.Equal(t, refstore.Color{R: 10, G: 20, B: 30}, BestMatch([]float32{1, 1}, store))
}
