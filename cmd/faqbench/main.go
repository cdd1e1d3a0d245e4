// Package main provides the entry point for the faqbench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "faqbench",
	Short: "FAQ retrieval benchmark",
	Long:  "faqbench scrapes FAQ content from the web, builds a golden question set, loads it into a knowledge graph or vector search backend, and scores how well each backend answers the golden questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
