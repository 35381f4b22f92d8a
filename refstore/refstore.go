package refstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Color is an RGB triple. It serializes as a 3-element JSON array, which is
// the layout of the persisted reference store file.
type Color struct {
	R, G, B uint8
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var channels [3]uint8
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("color must be a [r, g, b] array: %w", err)
	}
	c.R, c.G, c.B = channels[0], channels[1], channels[2]
	return nil
}

// Entry pairs one sentence embedding with its assigned color. Entries are
// created by the builder and never mutated afterwards.
type Entry struct {
	Embedding []float32 `json:"embedding"`
	Color     Color     `json:"color"`
}

// Store is the ordered reference set. Order is significant: the matcher
// resolves ties to the earliest entry, so file order must survive every
// load and save unchanged. A Store is read-only once constructed and safe
// to share across concurrent readers without locking.
type Store struct {
	entries   []Entry
	dimension int
}

// ErrEmptyStore is returned when a store would contain no entries.
var ErrEmptyStore = errors.New("reference store has no entries")

// ErrDimensionMismatch indicates entries (or the configured provider) do not
// agree on vector dimensionality. Serving with mismatched dimensions would
// silently produce wrong matches, so callers treat this as fatal.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// New builds a store from entries, validating that every embedding shares
// one dimensionality.
func New(entries []Entry) (*Store, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyStore
	}

	dimension := len(entries[0].Embedding)
	if dimension == 0 {
		return nil, errors.New("reference entry 0 has an empty embedding")
	}
	for i, entry := range entries {
		if len(entry.Embedding) != dimension {
			return nil, fmt.Errorf("reference entry %d: %w", i, &ErrDimensionMismatch{Expected: dimension, Actual: len(entry.Embedding)})
		}
	}

	return &Store{entries: entries, dimension: dimension}, nil
}

// Entries returns the reference entries in stored order.
func (s *Store) Entries() []Entry { return s.entries }

func (s *Store) Len() int { return len(s.entries) }

// Dimension returns the shared vector length of all entries.
func (s *Store) Dimension() int { return s.dimension }

// Load reads the persisted store from path. When expectDimension is
// positive, the stored vectors must match it; the service refuses to start
// on a mismatch rather than serve incorrect matches.
func Load(path string, expectDimension int) (*Store, error) {
	storeBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference store: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(storeBytes, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse reference store %s: %w", path, err)
	}

	store, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid reference store %s: %w", path, err)
	}
	if expectDimension > 0 && store.dimension != expectDimension {
		return nil, fmt.Errorf("reference store %s: %w", path, &ErrDimensionMismatch{Expected: expectDimension, Actual: store.dimension})
	}

	return store, nil
}

// Write persists the store to path, creating parent directories as needed.
func Write(path string, store *Store) error {
	entryBytes, err := json.MarshalIndent(store.entries, "", " ")
	if err != nil {
		return fmt.Errorf("failed to marshal reference store: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create reference store directory: %w", err)
		}
	}
	if err := os.WriteFile(path, entryBytes, 0644); err != nil {
		return fmt.Errorf("failed to write reference store: %w", err)
	}

	return nil
}
