package embedding

import (
	"context"
	"fmt"

	"semtint/config"
)

// New constructs the embedding provider selected by cfg.
func New(ctx context.Context, cfg *config.EmbedderConfig) (Provider, error) {
	switch cfg.Type {
	case "openai", "":
		apiKey, err := cfg.OpenAI.ResolveKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve OpenAI API key: %w", err)
		}
		return NewOpenAIProvider(apiKey, cfg.OpenAI.Model, cfg.OpenAI.Dimensions), nil
	case "hash":
		return NewHashProvider(cfg.Hash.Dimensions), nil
	default:
		return nil, fmt.Errorf("unknown embedder type %q", cfg.Type)
	}
}
