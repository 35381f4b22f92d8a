package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider embeds each whitespace token of the input through the
// OpenAI embeddings API in a single batched request.
type OpenAIProvider struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
}

// NewOpenAIProvider builds a provider for the given model. dimensions is the
// vector length the model is expected to return; responses of any other
// length are rejected rather than let mismatched vectors reach the matcher.
func NewOpenAIProvider(apiKey string, model string, dimensions int) *OpenAIProvider {
	embeddingModel := openai.EmbeddingModel(model)
	if model == "" {
		embeddingModel = openai.AdaEmbeddingV2
	}

	return &OpenAIProvider{
		client:     openai.NewClient(apiKey),
		model:      embeddingModel,
		dimensions: dimensions,
	}
}

func (p *OpenAIProvider) Dimension() int { return p.dimensions }

// Embed tokenizes text on whitespace and requests one embedding per token.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([][]float32, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	embeddingResponse, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: tokens,
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings for %d tokens: %w", len(tokens), err)
	}
	if len(embeddingResponse.Data) != len(tokens) {
		return nil, fmt.Errorf("expected %d token vectors in response, got %d", len(tokens), len(embeddingResponse.Data))
	}

	vectors := make([][]float32, len(embeddingResponse.Data))
	for i := range embeddingResponse.Data {
		vector := embeddingResponse.Data[i].Embedding
		if p.dimensions > 0 && len(vector) != p.dimensions {
			return nil, fmt.Errorf("model returned a vector of dimension %d, expected %d", len(vector), p.dimensions)
		}
		vectors[i] = vector
	}

	return vectors, nil
}
