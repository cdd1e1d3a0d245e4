package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattbriggs/faqbench/internal/fetch"
	"github.com/mattbriggs/faqbench/internal/observability"
	"github.com/mattbriggs/faqbench/internal/scraping"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape URLs for FAQ content and save raw HTML and JSON-LD",
	Long:  "Fetch each URL from a list, detect FAQPage structured data, save the FAQ fragment and JSON-LD payloads for detected pages, and write a CSV report of the crawl.",
	RunE:  runScrape,
}

var (
	scrapeURLFile     string
	scrapeOutDir      string
	scrapeSelector    string
	scrapeConcurrency int
	scrapeCacheDir    string
	scrapeSkipCache   bool
	scrapeUseBrowser  bool
	scrapeVerbose     bool
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeURLFile, "urls", "u", "", "Path to file with one URL per line (required)")
	scrapeCmd.Flags().StringVarP(&scrapeOutDir, "out", "o", "data", "Output directory for HTML, JSON-LD, and the report")
	scrapeCmd.Flags().StringVar(&scrapeSelector, "selector", "", "CSS selector for the FAQ fragment to save (defaults to the extraction default)")
	scrapeCmd.Flags().IntVar(&scrapeConcurrency, "concurrency", scraping.DefaultConcurrency, "Number of URLs fetched in parallel")
	scrapeCmd.Flags().StringVar(&scrapeCacheDir, "cache-dir", "", "Directory for cached pages (optional, re-runs reuse fresh entries)")
	scrapeCmd.Flags().BoolVar(&scrapeSkipCache, "skip-cache", false, "Ignore cached pages and fetch fresh copies")
	scrapeCmd.Flags().BoolVar(&scrapeUseBrowser, "use-browser", false, "Render script-heavy pages with a headless browser (requires Chrome)")
	scrapeCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = scrapeCmd.MarkFlagRequired("urls")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	urls, err := scraping.LoadURLs(scrapeURLFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("URL file %s contains no URLs", scrapeURLFile)
	}

	var fetcher fetch.Fetcher
	if scrapeCacheDir != "" {
		fetcher, err = fetch.NewCachedFetcher(scrapeCacheDir, &fetch.CachedFetcherConfig{
			SkipCache: scrapeSkipCache,
			Verbose:   scrapeVerbose,
		})
		if err != nil {
			return err
		}
	} else {
		fetcher = fetch.Direct(fetch.DefaultOptions())
	}

	fmt.Printf("Scraping %d URLs into %s...\n", len(urls), scrapeOutDir)
	results, err := scraping.Run(ctx, urls, scrapeOutDir, fetcher, scraping.Options{
		Concurrency: scrapeConcurrency,
		Selector:    scrapeSelector,
		UseBrowser:  scrapeUseBrowser,
		Verbose:     scrapeVerbose,
	})
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	reportPath, err := scraping.WriteReport(scrapeOutDir, results)
	if err != nil {
		return fmt.Errorf("writing report failed: %w", err)
	}

	if scrapeVerbose {
		observability.NewPrinter(os.Stdout).PrintScrape(results)
	}

	detected := 0
	for _, r := range results {
		if r.FAQ {
			detected++
		}
	}
	fmt.Printf("Done! FAQ content detected on %d of %d pages. Report: %s\n", detected, len(results), reportPath)
	return nil
}
