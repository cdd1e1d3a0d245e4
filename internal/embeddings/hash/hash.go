// Package hash provides a deterministic embedding provider that needs no
// network. Identical strings map to identical vectors, so exact-match
// similarity is 1.0; useful for offline runs and tests.
package hash

import (
	"context"
	"hash/fnv"

	"github.com/mattbriggs/faqbench/internal/embeddings"
)

// Provider hashes text into a pseudo-random vector.
type Provider struct {
	dim int
}

var _ embeddings.Provider = (*Provider)(nil)

// New constructs the provider. Non-positive dimensions fall back to 32.
func New(dim int) *Provider {
	if dim <= 0 {
		dim = 32
	}
	return &Provider{dim: dim}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "hash"
}

// Dimension returns the configured vector length.
func (p *Provider) Dimension() int {
	return p.dim
}

// MaxBatchSize returns the maximum number of texts per batch.
func (p *Provider) MaxBatchSize() int {
	return 1024
}

// Embed converts text into a pseudo-random vector seeded by its FNV-64a hash.
func (p *Provider) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, p.dim)
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(text))
	seed := hasher.Sum64()
	for i := 0; i < p.dim; i++ {
		seed = seed*1099511628211 + 1469598103934665603
		vector[i] = float32(seed%997) / 997.0
	}
	return vector, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (p *Provider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := p.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}
