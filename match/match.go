// Package match computes cosine similarity and selects the best-matching
// reference entry for a query vector.
package match

import (
	"math"

	"semtint/refstore"
)

// Cosine returns the cosine similarity of a and b, in [-1, 1]. A zero-
// magnitude operand yields 0 rather than an error: a degenerate embedding
// must not crash the resolver. Assumes vectors are the same length, which
// the store enforces at load time.
func Cosine(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// BestMatch scans every reference entry and returns the color of the
// highest-scoring one. The comparison is strictly greater and the scan runs
// in store order, so ties resolve to the earliest entry. There is no early
// exit: a perfect score is effectively never hit, so every entry is
// examined. The store stays small enough that the linear scan is the right
// trade; an index would only pay off orders of magnitude beyond it.
func BestMatch(query []float32, store *refstore.Store) refstore.Color {
	bestScore := float32(math.Inf(-1))
	var bestColor refstore.Color

	for _, entry := range store.Entries() {
		if score := Cosine(query, entry.Embedding); score > bestScore {
			bestScore = score
			bestColor = entry.Color
		}
	}

	return bestColor
}
