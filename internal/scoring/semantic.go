package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattbriggs/faqbench/internal/embeddings"
)

// SemanticScorer scores answer pairs by embedding cosine similarity. This is
// the metric historically reported as an "F1 score" by earlier incarnations
// of the benchmark; the computation is unchanged, the name is not.
type SemanticScorer struct {
	provider embeddings.Provider
}

// NewSemanticScorer builds a scorer on top of an embedding provider.
func NewSemanticScorer(provider embeddings.Provider) *SemanticScorer {
	return &SemanticScorer{provider: provider}
}

// Name identifies the metric in reports.
func (s *SemanticScorer) Name() string {
	return "semantic_similarity"
}

// Score embeds both strings and returns their cosine similarity clamped to
// [0,1]. An empty retrieved answer scores 0 without an embedding call.
func (s *SemanticScorer) Score(ctx context.Context, expected, retrieved string) (float64, error) {
	if strings.TrimSpace(retrieved) == "" {
		return 0, nil
	}

	vectors, err := s.provider.EmbedBatch(ctx, []string{expected, retrieved})
	if err != nil {
		return 0, fmt.Errorf("failed to embed answer pair: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(vectors))
	}

	score := CosineSimilarity(vectors[0], vectors[1])
	if score < 0 {
		return 0, nil
	}
	if score > 1 {
		return 1, nil
	}
	return score, nil
}
