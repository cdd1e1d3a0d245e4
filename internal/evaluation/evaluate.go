package evaluation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mattbriggs/faqbench/internal/faq"
)

// DefaultConcurrency bounds the parallel query fan-out.
const DefaultConcurrency = 4

// Retriever answers a question with up to a few candidate answers, best
// first. Both backend stores satisfy this.
type Retriever interface {
	Query(ctx context.Context, question string) ([]string, error)
}

// Scorer rates a retrieved answer against the expected one on [0,1].
type Scorer interface {
	Score(ctx context.Context, expected, retrieved string) (float64, error)
	Name() string
}

// Options tunes an evaluation run.
type Options struct {
	// Concurrency bounds parallel queries; non-positive means
	// DefaultConcurrency. Queries are independent and the mean is
	// order-independent, so parallelism changes latency only.
	Concurrency int
}

// Evaluate runs every golden question through the retriever, scores the
// first candidate answer (or "" when nothing matched) against the expected
// answer, and aggregates the arithmetic mean. Result order follows golden
// order regardless of concurrency.
func Evaluate(ctx context.Context, golden []faq.GoldenQuestion, retriever Retriever, scorer Scorer, opts Options) (*Report, error) {
	if len(golden) == 0 {
		return nil, &EmptyGoldenSetError{}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]QuestionResult, len(golden))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, q := range golden {
		g.Go(func() error {
			candidates, err := retriever.Query(gCtx, q.Question)
			if err != nil {
				return &QueryError{Question: q.Question, Cause: err}
			}

			retrieved := ""
			if len(candidates) > 0 {
				retrieved = candidates[0]
			}

			score, err := scorer.Score(gCtx, q.ExpectedAnswer, retrieved)
			if err != nil {
				return fmt.Errorf("scoring %q failed: %w", q.Question, err)
			}

			results[i] = QuestionResult{
				Question:        q.Question,
				ExpectedAnswer:  q.ExpectedAnswer,
				RetrievedAnswer: retrieved,
				Score:           score,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total float64
	for _, r := range results {
		total += r.Score
	}

	return &Report{
		Metric:       scorer.Name(),
		AverageScore: total / float64(len(results)),
		Results:      results,
	}, nil
}
