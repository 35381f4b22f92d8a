// Package resolver orchestrates the request-time pipeline: embed the input
// text, pool the token vectors, and match against the reference store.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"semtint/embedding"
	"semtint/match"
	"semtint/refstore"
)

var (
	// ErrProvider indicates the embedding provider could not process the
	// input text.
	ErrProvider = errors.New("embedding provider failure")

	// ErrPooling indicates pooling received no token vectors.
	ErrPooling = errors.New("pooling failure")
)

// Resolver maps free-form text to the color of the nearest reference
// embedding. It never mutates the store or the provider, so one Resolver is
// shared across all concurrent requests.
type Resolver struct {
	provider  embedding.Provider
	store     *refstore.Store
	serialize bool
	mu        sync.Mutex
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSerializedEmbedding routes embedding calls through a mutex, for
// provider runtimes that are not safe for concurrent invocation.
func WithSerializedEmbedding() Option {
	return func(r *Resolver) { r.serialize = true }
}

func New(provider embedding.Provider, store *refstore.Store, opts ...Option) *Resolver {
	r := &Resolver{provider: provider, store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve embeds text, mean-pools the token vectors, and returns the color
// of the best-matching reference entry. Failures are request-level only:
// they wrap ErrProvider or ErrPooling and never affect shared state.
func (r *Resolver) Resolve(ctx context.Context, text string) (refstore.Color, error) {
	vectors, err := r.embed(ctx, text)
	if err != nil {
		return refstore.Color{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	pooled, err := embedding.MeanPool(vectors)
	if err != nil {
		return refstore.Color{}, fmt.Errorf("%w: %w", ErrPooling, err)
	}

	return match.BestMatch(pooled, r.store), nil
}

func (r *Resolver) embed(ctx context.Context, text string) ([][]float32, error) {
	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return r.provider.Embed(ctx, text)
}
