package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashProviderDeterministic(t *testing.T) {
	provider := NewHashProvider(32)

	first, err := provider.Embed(context.Background(), "calm ocean morning")
	require.NoError(t, err)
	second, err := provider.Embed(context.Background(), "calm ocean morning")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHashProviderShape(t *testing.T) {
	provider := NewHashProvider(16)
	assert.Equal(t, 16, provider.Dimension())

	vectors, err := provider.Embed(context.Background(), "one two three")
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	for _, v := range vectors {
		assert.Len(t, v, 16)
	}
}

func TestHashProviderDistinguishesTokens(t *testing.T) {
	provider := NewHashProvider(64)

	vectors, err := provider.Embed(context.Background(), "love hate")
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.NotEqual(t, vectors[0], vectors[1])
}

func TestHashProviderEmptyInput(t *testing.T) {
	provider := NewHashProvider(0)
	assert.Equal(t, defaultHashDimensions, provider.Dimension())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := provider.Embed(context.Background(), text)
		assert.ErrorIs(t, err, ErrNoTokens)
	}
}
