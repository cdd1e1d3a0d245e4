// Package pipeline provides the high-level orchestration for the FAQ
// retrieval benchmark: extract, merge, load a backend, evaluate, report.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/mattbriggs/faqbench/internal/config"
	"github.com/mattbriggs/faqbench/internal/evaluation"
	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/observability"
	"github.com/mattbriggs/faqbench/internal/results"
	"github.com/mattbriggs/faqbench/internal/schemas"
	"github.com/mattbriggs/faqbench/internal/scoring"
	"github.com/mattbriggs/faqbench/internal/store/graph"
	"github.com/mattbriggs/faqbench/internal/store/vector"
	"github.com/mattbriggs/faqbench/internal/terms"
)

// Supported retrieval backends.
const (
	BackendGraph  = "graph"
	BackendVector = "vector"
)

// Vector backend collections a query can run against. The FAQ collection
// holds extracted pairs; the document collection holds whole saved pages, so
// the two retrieval granularities can be compared on the same golden set.
const (
	CollectionFAQ      = "faq"
	CollectionDocument = "document"
)

// RunOptions holds configuration for running the benchmark pipeline
type RunOptions struct {
	JSONLDDir    string
	HTMLDir      string
	GoldenFile   string
	Selector     string
	TermStrategy string
	Backend      string
	Collection   string
	ResultsJSON  string
	ResultsCSV   string
	Concurrency  int
	Verbose      bool
	DatabaseURL  string

	Graph      graph.Config
	Vector     vector.Config
	Embeddings config.EmbeddingsConfig
}

// RunPipeline orchestrates the full benchmark: extract FAQ pairs from both
// source formats, merge them into a golden set, load the chosen backend,
// query every golden question, and write the scored report.
func RunPipeline(ctx context.Context, opts RunOptions) (*evaluation.Report, error) {
	if opts.Backend != BackendGraph && opts.Backend != BackendVector {
		return nil, fmt.Errorf("unknown backend %q (supported: %s, %s)", opts.Backend, BackendGraph, BackendVector)
	}
	if opts.Selector == "" {
		opts.Selector = extraction.DefaultContainerSelector
	}

	printer := observability.NewPrinter(os.Stdout)

	// Initialize run history store if configured
	var history *results.Store
	if opts.DatabaseURL != "" {
		var err error
		history, err = results.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without run history...\n")
		} else {
			defer history.Close()
			if err := history.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to ensure run history schema: %v\n", err)
				history.Close()
				history = nil
			}
		}
	}

	fmt.Printf("Step 1/6: Extracting FAQ pairs from JSON-LD files in %s...\n", opts.JSONLDDir)
	jsonldResult, err := extraction.ExtractJSONLDDir(opts.JSONLDDir)
	if err != nil {
		return nil, fmt.Errorf("JSON-LD extraction failed: %w", err)
	}
	printWarnings(jsonldResult.Warnings)
	if opts.Verbose {
		printer.PrintExtraction(opts.JSONLDDir, jsonldResult)
	}

	fmt.Printf("Step 2/6: Extracting FAQ pairs from HTML files in %s...\n", opts.HTMLDir)
	htmlResult, err := extraction.ExtractHTMLDir(opts.HTMLDir, opts.Selector)
	if err != nil {
		return nil, fmt.Errorf("HTML extraction failed: %w", err)
	}
	printWarnings(htmlResult.Warnings)
	if opts.Verbose {
		printer.PrintExtraction(opts.HTMLDir, htmlResult)
	}

	fmt.Printf("Step 3/6: Merging pairs and writing golden set to %s...\n", opts.GoldenFile)
	merged := faq.Merge(jsonldResult.Pairs, htmlResult.Pairs)
	golden := faq.GoldenSet(merged)
	if err := faq.SaveGoldenSet(opts.GoldenFile, golden); err != nil {
		return nil, fmt.Errorf("writing golden set failed: %w", err)
	}
	if err := schemas.ValidateGoldenFile(opts.GoldenFile); err != nil {
		return nil, fmt.Errorf("golden set failed schema validation: %w", err)
	}
	fmt.Printf("Merged %d unique questions (%d from JSON-LD, %d from HTML)\n",
		len(merged), len(jsonldResult.Pairs), len(htmlResult.Pairs))
	if opts.Verbose {
		printer.PrintMergedPairs(merged)
	}

	fmt.Printf("Step 4/6: Loading %s backend...\n", opts.Backend)
	retriever, closeBackend, err := ConnectAndLoad(ctx, opts, merged)
	if err != nil {
		return nil, err
	}
	defer closeBackend()

	fmt.Printf("Step 5/6: Evaluating %d golden questions...\n", len(golden))
	provider, err := NewEmbeddingProvider(ctx, opts.Embeddings)
	if err != nil {
		return nil, fmt.Errorf("building embedding provider failed: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	scorer := scoring.NewSemanticScorer(provider)

	var runID uuid.UUID
	if history != nil {
		runID, err = history.CreateRun(ctx, opts.Backend, scorer.Name())
		if err != nil {
			fmt.Printf("Warning: Failed to create run record: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created run record: %s\n", runID)
		}
	}

	report, err := evaluation.Evaluate(ctx, golden, retriever, scorer, evaluation.Options{
		Concurrency: opts.Concurrency,
	})
	if err != nil {
		if history != nil && runID != uuid.Nil {
			_ = history.FailRun(ctx, runID)
		}
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintEvaluation(report)
	}

	fmt.Printf("Step 6/6: Writing results...\n")
	if opts.ResultsJSON != "" {
		if err := report.WriteJSON(opts.ResultsJSON); err != nil {
			return nil, fmt.Errorf("writing results JSON failed: %w", err)
		}
		fmt.Printf("Wrote %s\n", opts.ResultsJSON)
	}
	if opts.ResultsCSV != "" {
		if err := report.WriteCSV(opts.ResultsCSV); err != nil {
			return nil, fmt.Errorf("writing results CSV failed: %w", err)
		}
		fmt.Printf("Wrote %s\n", opts.ResultsCSV)
	}

	if history != nil && runID != uuid.Nil {
		if err := history.SaveReport(ctx, runID, report); err != nil {
			fmt.Printf("Warning: Failed to save run results: %v\n", err)
		} else if err := history.CompleteRun(ctx, runID, report.AverageScore); err != nil {
			fmt.Printf("Warning: Failed to complete run record: %v\n", err)
		}
	}

	fmt.Printf("Done! Average %s: %.3f over %d questions.\n", report.Metric, report.AverageScore, len(report.Results))
	return report, nil
}

// documentRetriever answers from the HTMLDocument collection instead of FAQ.
type documentRetriever struct {
	store *vector.Store
}

func (r documentRetriever) Query(ctx context.Context, question string) ([]string, error) {
	return r.store.QueryDocuments(ctx, question)
}

// validateCollection checks the backend/collection combination before any
// connection is dialed. Only the vector backend stores whole documents.
func validateCollection(backend, collection string) error {
	switch collection {
	case "", CollectionFAQ:
		return nil
	case CollectionDocument:
		if backend != BackendVector {
			return fmt.Errorf("collection %q requires the vector backend", CollectionDocument)
		}
		return nil
	}
	return fmt.Errorf("unknown collection %q (supported: %s, %s)", collection, CollectionFAQ, CollectionDocument)
}

func vectorRetriever(store *vector.Store, collection string) evaluation.Retriever {
	if collection == CollectionDocument {
		return documentRetriever{store: store}
	}
	return store
}

// ConnectRetriever connects the configured backend without loading anything
// into it, for querying data loaded by an earlier run.
func ConnectRetriever(ctx context.Context, opts RunOptions) (evaluation.Retriever, func(), error) {
	if err := validateCollection(opts.Backend, opts.Collection); err != nil {
		return nil, nil, err
	}

	switch opts.Backend {
	case BackendGraph:
		store, err := graph.Connect(ctx, opts.Graph)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting graph backend failed: %w", err)
		}
		cleanup := func() {
			if err := store.Close(ctx); err != nil {
				fmt.Printf("Warning: Failed to close graph backend: %v\n", err)
			}
		}
		return store, cleanup, nil
	case BackendVector:
		store, err := vector.Connect(ctx, opts.Vector)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting vector backend failed: %w", err)
		}
		return vectorRetriever(store, opts.Collection), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q (supported: %s, %s)", opts.Backend, BackendGraph, BackendVector)
}

// ConnectAndLoad connects the configured backend, loads the merged pairs
// into it, and returns it as a retriever along with a cleanup function.
func ConnectAndLoad(ctx context.Context, opts RunOptions, pairs []faq.Pair) (evaluation.Retriever, func(), error) {
	if err := validateCollection(opts.Backend, opts.Collection); err != nil {
		return nil, nil, err
	}

	switch opts.Backend {
	case BackendGraph:
		store, err := graph.Connect(ctx, opts.Graph)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting graph backend failed: %w", err)
		}
		cleanup := func() {
			if err := store.Close(ctx); err != nil {
				fmt.Printf("Warning: Failed to close graph backend: %v\n", err)
			}
		}

		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("ensuring graph schema failed: %w", err)
		}
		if err := store.LoadPairs(ctx, pairs); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("loading pairs into graph failed: %w", err)
		}
		tokenizer, err := terms.ForStrategy(opts.TermStrategy)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if err := store.LinkTerms(ctx, pairs, tokenizer); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("linking terms failed: %w", err)
		}
		return store, cleanup, nil

	case BackendVector:
		store, err := vector.Connect(ctx, opts.Vector)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting vector backend failed: %w", err)
		}
		cleanup := func() {}

		if err := store.EnsureClass(ctx, vector.FAQSchema()); err != nil {
			return nil, nil, fmt.Errorf("ensuring FAQ class failed: %w", err)
		}
		if err := store.EnsureClass(ctx, vector.HTMLDocumentSchema()); err != nil {
			return nil, nil, fmt.Errorf("ensuring HTMLDocument class failed: %w", err)
		}
		if err := store.LoadPairs(ctx, pairs); err != nil {
			return nil, nil, fmt.Errorf("loading pairs into vector store failed: %w", err)
		}

		// Whole-page documents feed the HTMLDocument collection; extraction
		// problems here do not block the FAQ benchmark itself.
		extracted, warnings, err := extraction.ExtractDocumentDir(opts.HTMLDir)
		if err != nil {
			fmt.Printf("Warning: Failed to extract page documents: %v\n", err)
		} else {
			printWarnings(warnings)
			docs := make([]vector.Document, 0, len(extracted))
			for _, d := range extracted {
				docs = append(docs, vector.Document{Title: d.Title, Text: d.Text, Source: d.Source})
			}
			if err := store.LoadDocuments(ctx, docs); err != nil {
				fmt.Printf("Warning: Failed to load page documents: %v\n", err)
			}
		}
		return vectorRetriever(store, opts.Collection), cleanup, nil
	}

	return nil, nil, fmt.Errorf("unknown backend %q", opts.Backend)
}

func printWarnings(warnings []extraction.Warning) {
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}
