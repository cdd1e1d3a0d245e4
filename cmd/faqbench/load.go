package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/pipeline"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load extracted FAQ content into a retrieval backend",
	Long:  "Extract question/answer pairs from saved JSON-LD and HTML files, merge them, and load the result into the chosen backend: the knowledge graph (Neo4j) or the vector store (Weaviate).",
	RunE:  runLoad,
}

var (
	loadConfigPath   string
	loadBackend      string
	loadJSONLDDir    string
	loadHTMLDir      string
	loadSelector     string
	loadTermStrategy string
	loadVerbose      bool
)

func init() {
	loadCmd.Flags().StringVar(&loadConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	loadCmd.Flags().StringVarP(&loadBackend, "backend", "b", "", "Retrieval backend: graph or vector (required via flag or config)")
	loadCmd.Flags().StringVar(&loadJSONLDDir, "jsonld", "", "Directory of saved JSON-LD files")
	loadCmd.Flags().StringVar(&loadHTMLDir, "html", "", "Directory of saved HTML files")
	loadCmd.Flags().StringVar(&loadSelector, "selector", "", "CSS selector for the FAQ container in HTML files")
	loadCmd.Flags().StringVar(&loadTermStrategy, "term-strategy", "", "Term extraction strategy for graph links: whitespace or stopword")
	loadCmd.Flags().BoolVarP(&loadVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(loadConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = loadBackend
	}
	if cmd.Flags().Changed("jsonld") {
		cfg.JSONLDDir = loadJSONLDDir
	}
	if cmd.Flags().Changed("html") {
		cfg.HTMLDir = loadHTMLDir
	}
	if cmd.Flags().Changed("selector") {
		cfg.Selector = loadSelector
	}
	if cmd.Flags().Changed("term-strategy") {
		cfg.TermStrategy = loadTermStrategy
	}

	if cfg.Backend == "" {
		return fmt.Errorf("--backend is required (graph or vector)")
	}
	if cfg.JSONLDDir == "" || cfg.HTMLDir == "" {
		return fmt.Errorf("--jsonld and --html are required (via flag or config)")
	}

	jsonldResult, err := extraction.ExtractJSONLDDir(cfg.JSONLDDir)
	if err != nil {
		return fmt.Errorf("JSON-LD extraction failed: %w", err)
	}
	htmlResult, err := extraction.ExtractHTMLDir(cfg.HTMLDir, selectorOrDefault(cfg.Selector))
	if err != nil {
		return fmt.Errorf("HTML extraction failed: %w", err)
	}
	merged := faq.Merge(jsonldResult.Pairs, htmlResult.Pairs)
	if len(merged) == 0 {
		return fmt.Errorf("no FAQ pairs found in %s and %s", cfg.JSONLDDir, cfg.HTMLDir)
	}

	fmt.Printf("Loading %d pairs into %s backend...\n", len(merged), cfg.Backend)
	_, cleanup, err := pipeline.ConnectAndLoad(ctx, pipeline.RunOptions{
		Backend:      cfg.Backend,
		HTMLDir:      cfg.HTMLDir,
		TermStrategy: cfg.TermStrategy,
		Graph:        graphConfigFrom(cfg),
		Vector:       vectorConfigFrom(cfg),
	}, merged)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Done! Loaded %d pairs.\n", len(merged))
	return nil
}

func selectorOrDefault(selector string) string {
	if selector == "" {
		return extraction.DefaultContainerSelector
	}
	return selector
}
