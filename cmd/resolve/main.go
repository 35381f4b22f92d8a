package resolve

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"semtint/config"
	"semtint/embedding"
	"semtint/refstore"
	"semtint/resolver"
)

// Resolve runs a single text through the resolution pipeline and prints the
// matched color.
func Resolve(ctx *cli.Context) error {
	text := strings.Join(ctx.Args().Slice(), " ")
	if text == "" {
		return fmt.Errorf("no text given to resolve")
	}

	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := embedding.New(ctx.Context, &cfg.Embedder)
	if err != nil {
		return fmt.Errorf("failed to construct embedding provider: %w", err)
	}

	store, err := refstore.Load(cfg.StorePath, provider.Dimension())
	if err != nil {
		return fmt.Errorf("failed to load reference store: %w", err)
	}

	color, err := resolver.New(provider, store).Resolve(ctx.Context, text)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", text, err)
	}

	fmt.Printf("rgb(%d, %d, %d)\n", color.R, color.G, color.B)

	return nil
}
