package build

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"semtint/config"
	"semtint/embedding"
	"semtint/refstore"
	"semtint/vocab"
)

// Build embeds every vocabulary word through the same provider and pooling
// path the resolver uses, and writes the ordered reference store. Any
// failure aborts the whole build: a partially built reference set is unsafe
// to serve.
func Build(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := embedding.New(ctx.Context, &cfg.Embedder)
	if err != nil {
		return fmt.Errorf("failed to construct embedding provider: %w", err)
	}

	entries := make([]refstore.Entry, 0, len(vocab.Words))
	for _, word := range vocab.Words {
		vectors, err := provider.Embed(ctx.Context, word.Text)
		if err != nil {
			return fmt.Errorf("failed to embed vocabulary word %q: %w", word.Text, err)
		}

		pooled, err := embedding.MeanPool(vectors)
		if err != nil {
			return fmt.Errorf("failed to pool vectors for vocabulary word %q: %w", word.Text, err)
		}

		entries = append(entries, refstore.Entry{Embedding: pooled, Color: word.Color})
		fmt.Printf("embedded word: %s\n", word.Text)
	}

	store, err := refstore.New(entries)
	if err != nil {
		return fmt.Errorf("built reference set is invalid: %w", err)
	}

	if err := refstore.Write(cfg.StorePath, store); err != nil {
		return fmt.Errorf("failed to write reference store: %w", err)
	}
	fmt.Printf("wrote %d reference entries to %s\n", store.Len(), cfg.StorePath)

	return nil
}
