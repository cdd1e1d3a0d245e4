package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/evaluation"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/observability"
	"github.com/mattbriggs/faqbench/internal/pipeline"
	"github.com/mattbriggs/faqbench/internal/results"
	"github.com/mattbriggs/faqbench/internal/schemas"
	"github.com/mattbriggs/faqbench/internal/scoring"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a loaded backend against the golden question set",
	Long:  "Query the chosen backend with every golden question, score each retrieved answer against the expected answer by embedding similarity, and write the scored report.",
	RunE:  runEval,
}

var (
	evalConfigPath  string
	evalBackend     string
	evalCollection  string
	evalGoldenFile  string
	evalResultsJSON string
	evalResultsCSV  string
	evalConcurrency int
	evalDatabaseURL string
	evalVerbose     bool
)

func init() {
	evalCmd.Flags().StringVar(&evalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evalCmd.Flags().StringVarP(&evalBackend, "backend", "b", "", "Retrieval backend: graph or vector (required via flag or config)")
	evalCmd.Flags().StringVar(&evalCollection, "collection", pipeline.CollectionFAQ, "Vector collection to evaluate: faq or document (vector backend only)")
	evalCmd.Flags().StringVarP(&evalGoldenFile, "golden", "g", "", "Path to the golden question set JSON")
	evalCmd.Flags().StringVar(&evalResultsJSON, "results", "results.json", "Output path for the JSON report")
	evalCmd.Flags().StringVar(&evalResultsCSV, "csv", "", "Output path for a CSV report (optional)")
	evalCmd.Flags().IntVar(&evalConcurrency, "concurrency", evaluation.DefaultConcurrency, "Number of questions evaluated in parallel")
	evalCmd.Flags().StringVar(&evalDatabaseURL, "db-url", "", "PostgreSQL connection URL for run history (optional, defaults to DATABASE_URL env var)")
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print per-question scores")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(evalConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = evalBackend
	}
	if cmd.Flags().Changed("golden") {
		cfg.GoldenFile = evalGoldenFile
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = evalDatabaseURL
	}

	if cfg.Backend == "" {
		return fmt.Errorf("--backend is required (graph or vector)")
	}
	if cfg.GoldenFile == "" {
		return fmt.Errorf("--golden is required (via flag or config)")
	}

	if err := schemas.ValidateGoldenFile(cfg.GoldenFile); err != nil {
		return fmt.Errorf("golden set failed schema validation: %w", err)
	}
	golden, err := faq.LoadGoldenSet(cfg.GoldenFile)
	if err != nil {
		return err
	}

	retriever, cleanup, err := pipeline.ConnectRetriever(ctx, pipeline.RunOptions{
		Backend:    cfg.Backend,
		Collection: evalCollection,
		Graph:      graphConfigFrom(cfg),
		Vector:     vectorConfigFrom(cfg),
	})
	if err != nil {
		return err
	}
	defer cleanup()

	provider, err := pipeline.NewEmbeddingProvider(ctx, cfg.Embeddings)
	if err != nil {
		return fmt.Errorf("building embedding provider failed: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	scorer := scoring.NewSemanticScorer(provider)

	// Run history is best-effort; the report still goes to disk without it.
	var history *results.Store
	if cfg.DatabaseURL != "" {
		history, err = results.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			history = nil
		} else {
			defer history.Close()
			if err := history.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to ensure run history schema: %v\n", err)
				history = nil
			}
		}
	}

	fmt.Printf("Evaluating %d golden questions against %s backend...\n", len(golden), cfg.Backend)
	report, err := evaluation.Evaluate(ctx, golden, retriever, scorer, evaluation.Options{
		Concurrency: evalConcurrency,
	})
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalVerbose {
		observability.NewPrinter(os.Stdout).PrintEvaluation(report)
	}

	if err := report.WriteJSON(evalResultsJSON); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", evalResultsJSON)
	if evalResultsCSV != "" {
		if err := report.WriteCSV(evalResultsCSV); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", evalResultsCSV)
	}

	if history != nil {
		runID, err := history.CreateRun(ctx, cfg.Backend, report.Metric)
		if err != nil {
			fmt.Printf("Warning: Failed to create run record: %v\n", err)
		} else if err := history.SaveReport(ctx, runID, report); err != nil {
			fmt.Printf("Warning: Failed to save run results: %v\n", err)
		} else if err := history.CompleteRun(ctx, runID, report.AverageScore); err != nil {
			fmt.Printf("Warning: Failed to complete run record: %v\n", err)
		}
	}

	fmt.Printf("Average %s: %.3f over %d questions.\n", report.Metric, report.AverageScore, len(report.Results))
	return nil
}
