package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/results"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent evaluation runs from the run history database",
	Long:  "List recent evaluation runs stored in PostgreSQL, newest first, with their backend, status, and average score.",
	RunE:  runRuns,
}

var (
	runsConfigPath  string
	runsDatabaseURL string
	runsLimit       int
)

func init() {
	runsCmd.Flags().StringVar(&runsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(runsConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runsDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url is required (via flag, config, or DATABASE_URL)")
	}

	history, err := results.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to run history database failed: %w", err)
	}
	defer history.Close()

	runs, err := history.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-7s  %-20s  %-9s  %9s  %s\n", "ID", "BACKEND", "METRIC", "STATUS", "AVG SCORE", "CREATED")
	for _, run := range runs {
		score := "-"
		if run.AverageScore != nil {
			score = fmt.Sprintf("%.3f", *run.AverageScore)
		}
		fmt.Printf("%-36s  %-7s  %-20s  %-9s  %9s  %s\n",
			run.ID, run.Backend, run.Metric, run.Status, score, run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
