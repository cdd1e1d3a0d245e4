package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/pipeline"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a single question against a loaded backend",
	Long:  "Query the chosen backend with one question and print the candidate answers it retrieves, best match first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

var (
	queryConfigPath string
	queryBackend    string
	queryCollection string
)

func init() {
	queryCmd.Flags().StringVar(&queryConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	queryCmd.Flags().StringVarP(&queryBackend, "backend", "b", "", "Retrieval backend: graph or vector (required via flag or config)")
	queryCmd.Flags().StringVar(&queryCollection, "collection", pipeline.CollectionFAQ, "Vector collection to query: faq or document (vector backend only)")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := args[0]

	cfg, err := resolveConfig(queryConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = queryBackend
	}
	if cfg.Backend == "" {
		return fmt.Errorf("--backend is required (graph or vector)")
	}

	retriever, cleanup, err := pipeline.ConnectRetriever(ctx, pipeline.RunOptions{
		Backend:    cfg.Backend,
		Collection: queryCollection,
		Graph:      graphConfigFrom(cfg),
		Vector:     vectorConfigFrom(cfg),
	})
	if err != nil {
		return err
	}
	defer cleanup()

	answers, err := retriever.Query(ctx, question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(answers) == 0 {
		fmt.Println("No answers found.")
		return nil
	}
	for i, answer := range answers {
		fmt.Printf("%d. %s\n", i+1, answer)
	}
	return nil
}
