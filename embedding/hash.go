package embedding

import (
	"context"
	"hash/fnv"
	"strings"
)

const defaultHashDimensions = 64

// HashProvider is a deterministic, offline token embedder. It is not a real
// semantic embedding, but it produces fixed-size vectors without a model
// backend, which is enough for development and for tests.
type HashProvider struct {
	dimensions int
}

func NewHashProvider(dimensions int) *HashProvider {
	if dimensions <= 0 {
		dimensions = defaultHashDimensions
	}
	return &HashProvider{dimensions: dimensions}
}

func (p *HashProvider) Dimension() int { return p.dimensions }

func (p *HashProvider) Embed(_ context.Context, text string) ([][]float32, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	vectors := make([][]float32, len(tokens))
	for i, token := range tokens {
		vectors[i] = p.embedToken(token)
	}

	return vectors, nil
}

func (p *HashProvider) embedToken(token string) []float32 {
	vector := make([]float32, p.dimensions)
	hasher := fnv.New64a()
	for i, r := range token {
		hasher.Reset()
		_, _ = hasher.Write([]byte(string(r)))
		_, _ = hasher.Write([]byte{byte(i)})
		sum := hasher.Sum64()
		vector[int(sum%uint64(p.dimensions))] += float32(sum%1000)/1000.0 - 0.5
	}
	return vector
}
