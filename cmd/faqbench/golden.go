package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/observability"
	"github.com/mattbriggs/faqbench/internal/schemas"
)

var goldenCmd = &cobra.Command{
	Use:   "golden",
	Short: "Build the golden question set from scraped FAQ content",
	Long:  "Extract question/answer pairs from saved JSON-LD and HTML files, merge them with later sources winning on duplicate questions, and write the golden question set JSON.",
	RunE:  runGolden,
}

var (
	goldenJSONLDDir string
	goldenHTMLDir   string
	goldenOutFile   string
	goldenSelector  string
	goldenVerbose   bool
)

func init() {
	goldenCmd.Flags().StringVar(&goldenJSONLDDir, "jsonld", "", "Directory of saved JSON-LD files (required)")
	goldenCmd.Flags().StringVar(&goldenHTMLDir, "html", "", "Directory of saved HTML files (required)")
	goldenCmd.Flags().StringVarP(&goldenOutFile, "out", "o", "golden_questions.json", "Output path for the golden question set")
	goldenCmd.Flags().StringVar(&goldenSelector, "selector", extraction.DefaultContainerSelector, "CSS selector for the FAQ container in HTML files")
	goldenCmd.Flags().BoolVarP(&goldenVerbose, "verbose", "v", false, "Print extracted pairs")

	_ = goldenCmd.MarkFlagRequired("jsonld")
	_ = goldenCmd.MarkFlagRequired("html")

	rootCmd.AddCommand(goldenCmd)
}

func runGolden(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)

	jsonldResult, err := extraction.ExtractJSONLDDir(goldenJSONLDDir)
	if err != nil {
		return fmt.Errorf("JSON-LD extraction failed: %w", err)
	}
	for _, w := range jsonldResult.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	htmlResult, err := extraction.ExtractHTMLDir(goldenHTMLDir, goldenSelector)
	if err != nil {
		return fmt.Errorf("HTML extraction failed: %w", err)
	}
	for _, w := range htmlResult.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	merged := faq.Merge(jsonldResult.Pairs, htmlResult.Pairs)
	if goldenVerbose {
		printer.PrintExtraction(goldenJSONLDDir, jsonldResult)
		printer.PrintExtraction(goldenHTMLDir, htmlResult)
		printer.PrintMergedPairs(merged)
	}

	golden := faq.GoldenSet(merged)
	if err := faq.SaveGoldenSet(goldenOutFile, golden); err != nil {
		return err
	}
	if err := schemas.ValidateGoldenFile(goldenOutFile); err != nil {
		return fmt.Errorf("golden set failed schema validation: %w", err)
	}

	fmt.Printf("Wrote %d golden questions to %s (%d from JSON-LD, %d from HTML)\n",
		len(golden), goldenOutFile, len(jsonldResult.Pairs), len(htmlResult.Pairs))
	return nil
}
