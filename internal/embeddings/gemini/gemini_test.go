package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNew_DefaultModel(t *testing.T) {
	p, err := New(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "text-embedding-004", p.model)
	assert.Equal(t, "gemini", p.Name())
	assert.Equal(t, 768, p.Dimension())
	assert.Equal(t, 100, p.MaxBatchSize())
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	p, err := New(context.Background(), Config{APIKey: "test-key"})
	require.NoError(t, err)
	defer p.Close()

	vectors, err := p.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}
