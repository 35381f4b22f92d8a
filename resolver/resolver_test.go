package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semtint/embedding"
	"semtint/refstore"
)

// fakeProvider returns canned token vectors per input text.
type fakeProvider struct {
	vectors map[string][][]float32
	err     error
	calls   atomic.Int64
}

func (f *fakeProvider) Embed(_ context.Context, text string) ([][]float32, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	vectors, ok := f.vectors[text]
	if !ok {
		return nil, embedding.ErrNoTokens
	}
	return vectors, nil
}

func (f *fakeProvider) Dimension() int { return 2 }

func twoEntryStore(t *testing.T) *refstore.Store {
	t.Helper()
	store, err := refstore.New([]refstore.Entry{
		{Embedding: []float32{1, 0}, Color: refstore.Color{R: 255}},
		{Embedding: []float32{0, 1}, Color: refstore.Color{B: 255}},
	})
	require.NoError(t, err)
	return store
}

func TestResolve(t *testing.T) {
	provider := &fakeProvider{vectors: map[string][][]float32{
		// Pools to [0.9, 0.1]: similarity ~0.994 vs the first entry,
		// ~0.110 vs the second.
		"warm sunset": {{1, 0.2}, {0.8, 0}},
		// Pools to [0.5, 0.5]: an exact tie, resolved to the first entry.
		"even split": {{0.5, 0.5}},
		"deep water": {{0.1, 0.9}},
	}}
	r := New(provider, twoEntryStore(t))

	tests := []struct {
		name     string
		text     string
		expected refstore.Color
	}{
		{"NearestFirst", "warm sunset", refstore.Color{R: 255}},
		{"TieBreaksToFirst", "even split", refstore.Color{R: 255}},
		{"NearestSecond", "deep water", refstore.Color{B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, err := r.Resolve(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, color)
		})
	}
}

func TestResolveProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model runtime unavailable")}
	r := New(provider, twoEntryStore(t))

	_, err := r.Resolve(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotErrorIs(t, err, ErrPooling)
}

func TestResolvePoolingFailure(t *testing.T) {
	// A provider that hands back zero token vectors must fail the request,
	// not silently resolve a default.
	provider := &fakeProvider{vectors: map[string][][]float32{
		"hollow": {},
	}}
	r := New(provider, twoEntryStore(t))

	_, err := r.Resolve(context.Background(), "hollow")
	assert.ErrorIs(t, err, ErrPooling)
	assert.ErrorIs(t, err, embedding.ErrNoTokenVectors)
}

func TestResolveSerializedEmbedding(t *testing.T) {
	provider := &fakeProvider{vectors: map[string][][]float32{
		"calm": {{0, 1}},
	}}
	r := New(provider, twoEntryStore(t), WithSerializedEmbedding())

	color, err := r.Resolve(context.Background(), "calm")
	require.NoError(t, err)
	assert.Equal(t, refstore.Color{B: 255}, color)
	assert.Equal(t, int64(1), provider.calls.Load())
}

func TestResolveConcurrent(t *testing.T) {
	provider := &fakeProvider{vectors: map[string][][]float32{
		"warm": {{1, 0}},
	}}
	r := New(provider, twoEntryStore(t))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			color, err := r.Resolve(context.Background(), "warm")
			assert.NoError(t, err)
			assert.Equal(t, refstore.Color{R: 255}, color)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
