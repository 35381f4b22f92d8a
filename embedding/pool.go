package embedding

import (
	"errors"
	"fmt"
)

// ErrNoTokenVectors is returned when pooling receives an empty sequence of
// token vectors.
var ErrNoTokenVectors = errors.New("no token vectors to pool")

// MeanPool reduces per-token vectors into one sentence vector by taking the
// element-wise arithmetic mean. The builder and the resolver both pool
// through this function; the two paths must never diverge or the stored
// vectors silently stop being comparable to query vectors.
func MeanPool(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, ErrNoTokenVectors
	}

	dimension := len(vectors[0])
	pooled := make([]float32, dimension)
	for i, vector := range vectors {
		if len(vector) != dimension {
			return nil, fmt.Errorf("token vector %d has dimension %d, expected %d", i, len(vector), dimension)
		}
		for j := range vector {
			pooled[j] += vector[j]
		}
	}

	count := float32(len(vectors))
	for j := range pooled {
		pooled[j] /= count
	}

	return pooled, nil
}
