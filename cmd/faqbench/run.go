package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/config"
	"github.com/mattbriggs/faqbench/internal/evaluation"
	"github.com/mattbriggs/faqbench/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark pipeline end-to-end",
	Long: `Orchestrates the entire benchmark: extraction -> merge -> golden set -> backend load -> evaluation -> report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBenchmark,
}

var (
	runConfigPath   string
	runBackend      string
	runJSONLDDir    string
	runHTMLDir      string
	runGoldenFile   string
	runSelector     string
	runTermStrategy string
	runResultsJSON  string
	runResultsCSV   string
	runConcurrency  int
	runDatabaseURL  string
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runBackend, "backend", "b", "", "Retrieval backend: graph or vector (required via flag or config)")
	runCommand.Flags().StringVar(&runJSONLDDir, "jsonld", "", "Directory of saved JSON-LD files")
	runCommand.Flags().StringVar(&runHTMLDir, "html", "", "Directory of saved HTML files")
	runCommand.Flags().StringVarP(&runGoldenFile, "golden", "g", "", "Output path for the golden question set")
	runCommand.Flags().StringVar(&runSelector, "selector", "", "CSS selector for the FAQ container in HTML files")
	runCommand.Flags().StringVar(&runTermStrategy, "term-strategy", "", "Term extraction strategy for graph links: whitespace or stopword")
	runCommand.Flags().StringVar(&runResultsJSON, "results", "", "Output path for the JSON report")
	runCommand.Flags().StringVar(&runResultsCSV, "csv", "", "Output path for a CSV report (optional)")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", evaluation.DefaultConcurrency, "Number of questions evaluated in parallel")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run history persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(runConfigPath)
	if err != nil {
		return err
	}

	// Apply CLI overrides (command-line args take priority). Only override
	// if the flag was explicitly set.
	if cmd.Flags().Changed("backend") {
		cfg.Backend = runBackend
	}
	if cmd.Flags().Changed("jsonld") {
		cfg.JSONLDDir = runJSONLDDir
	}
	if cmd.Flags().Changed("html") {
		cfg.HTMLDir = runHTMLDir
	}
	if cmd.Flags().Changed("golden") {
		cfg.GoldenFile = runGoldenFile
	}
	if cmd.Flags().Changed("selector") {
		cfg.Selector = runSelector
	}
	if cmd.Flags().Changed("term-strategy") {
		cfg.TermStrategy = runTermStrategy
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		JSONLDDir:  "data/JSONLD",
		HTMLDir:    "data/HTML",
		GoldenFile: "golden_questions.json",
		Backend:    pipeline.BackendGraph,
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	resultsJSON := runResultsJSON
	if resultsJSON == "" {
		resultsJSON = "results.json"
	}

	_, err = pipeline.RunPipeline(ctx, pipeline.RunOptions{
		JSONLDDir:    cfg.JSONLDDir,
		HTMLDir:      cfg.HTMLDir,
		GoldenFile:   cfg.GoldenFile,
		Selector:     cfg.Selector,
		TermStrategy: cfg.TermStrategy,
		Backend:      cfg.Backend,
		ResultsJSON:  resultsJSON,
		ResultsCSV:   runResultsCSV,
		Concurrency:  runConcurrency,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
		Graph:        graphConfigFrom(cfg),
		Vector:       vectorConfigFrom(cfg),
		Embeddings:   cfg.Embeddings,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Benchmark complete.\n")
	return nil
}
