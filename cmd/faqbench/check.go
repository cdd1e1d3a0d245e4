package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/config"
	"github.com/mattbriggs/faqbench/internal/pipeline"
	"github.com/mattbriggs/faqbench/internal/results"
	"github.com/mattbriggs/faqbench/internal/schemas"
	"github.com/mattbriggs/faqbench/internal/store/graph"
	"github.com/mattbriggs/faqbench/internal/store/vector"
)

const checkTimeout = 5 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity to the configured backends and services",
	Long:  "Probe each configured component: the graph backend, the vector backend, the embedding provider, the run history database, and the golden question file. Reports each as OK, SKIP, or FAIL.",
	RunE:  runCheck,
}

var (
	checkConfigPath string
	checkBackend    string
	checkGoldenFile string
)

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to config.json file")
	checkCmd.Flags().StringVarP(&checkBackend, "backend", "b", "", "Probe only this backend: graph or vector (it must then be configured)")
	checkCmd.Flags().StringVarP(&checkGoldenFile, "golden", "g", "", "Golden question set to validate (optional)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(checkConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("golden") {
		cfg.GoldenFile = checkGoldenFile
	}
	if checkBackend != "" && checkBackend != pipeline.BackendGraph && checkBackend != pipeline.BackendVector {
		return fmt.Errorf("unknown backend %q (supported: graph, vector)", checkBackend)
	}

	failed := 0

	report := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Printf("FAIL  %-20s %v\n", name, err)
			return
		}
		fmt.Printf("OK    %-20s\n", name)
	}
	skip := func(name, reason string) {
		fmt.Printf("SKIP  %-20s %s\n", name, reason)
	}

	// With --backend, that backend is required; without it, unconfigured
	// backends are skipped rather than failed.
	if checkBackend == "" || checkBackend == pipeline.BackendGraph {
		switch {
		case cfg.Neo4j.URI != "":
			report("graph backend", probeGraph(cfg))
		case checkBackend == pipeline.BackendGraph:
			report("graph backend", fmt.Errorf("NEO4J_URI not set"))
		default:
			skip("graph backend", "NEO4J_URI not set")
		}
	}

	if checkBackend == "" || checkBackend == pipeline.BackendVector {
		switch {
		case cfg.Weaviate.Host != "":
			report("vector backend", probeVector(cfg))
		case checkBackend == pipeline.BackendVector:
			report("vector backend", fmt.Errorf("WEAVIATE_HOST not set"))
		default:
			skip("vector backend", "WEAVIATE_HOST not set")
		}
	}

	report("embedding provider", probeProvider(cfg))

	if cfg.DatabaseURL != "" {
		report("run history db", probeDatabase(cfg))
	} else {
		skip("run history db", "DATABASE_URL not set")
	}

	if cfg.GoldenFile != "" {
		report("golden set", schemas.ValidateGoldenFile(cfg.GoldenFile))
	} else {
		skip("golden set", "no golden file configured")
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println("All checks passed.")
	return nil
}

func probeGraph(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	store, err := graph.Connect(ctx, graphConfigFrom(cfg))
	if err != nil {
		return err
	}
	return store.Close(ctx)
}

func probeVector(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	_, err := vector.Connect(ctx, vectorConfigFrom(cfg))
	return err
}

func probeProvider(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	provider, err := pipeline.NewEmbeddingProvider(ctx, cfg.Embeddings)
	if err != nil {
		return err
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	// Offline providers embed locally; remote providers surface auth or
	// connectivity problems here.
	_, err = provider.Embed(ctx, "connectivity check")
	return err
}

func probeDatabase(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	store, err := results.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.EnsureSchema(ctx)
}
