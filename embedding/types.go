package embedding

import (
	"context"
	"errors"
)

// ErrNoTokens is returned when the input text produces no tokens at all.
var ErrNoTokens = errors.New("input text produced no tokens")

// Provider turns text into per-token embedding vectors. Every vector a
// provider produces has the same fixed length, reported by Dimension. The
// reference builder and the resolver must share one provider configuration,
// otherwise their vectors are not comparable.
type Provider interface {
	// Embed returns one vector per token of text, in token order.
	Embed(ctx context.Context, text string) ([][]float32, error)

	// Dimension returns the length of every vector Embed produces.
	Dimension() int
}
