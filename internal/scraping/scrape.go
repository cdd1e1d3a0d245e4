// Package scraping fetches a list of URLs in parallel, detects embedded
// FAQPage JSON-LD, and saves the FAQ-bearing pages' HTML fragments and
// JSON-LD payloads for later extraction.
package scraping

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/fetch"
)

// DefaultConcurrency is the number of pages fetched in parallel.
const DefaultConcurrency = 10

const (
	htmlSubdir   = "HTML"
	jsonldSubdir = "JSONLD"
)

// Options tunes a scrape run.
type Options struct {
	// Concurrency bounds parallel fetches; non-positive means
	// DefaultConcurrency.
	Concurrency int
	// Selector matches the FAQ fragment to save from detected pages.
	// Empty means the extraction default.
	Selector string
	// UseBrowser renders pages whose visible text is too short through a
	// headless browser before giving up on them.
	UseBrowser bool
	Verbose    bool
}

// PageResult is the outcome for one URL, in input order. StatusCode is the
// literal report column value: an HTTP status, or "Error" when the request
// itself failed.
type PageResult struct {
	Date       string
	URL        string
	StatusCode string
	FAQ        bool
}

// LoadURLs reads a URL list file, one URL per line, skipping blanks.
func LoadURLs(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read URL file %s: %w", path, err)
	}

	urls := make([]string, 0)
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls, nil
}

// Run scrapes every URL, saving FAQ data under outDir and returning one
// result per URL in input order. A single failed request records an Error
// row; it never aborts the batch.
func Run(ctx context.Context, urls []string, outDir string, fetcher fetch.Fetcher, opts Options) ([]PageResult, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs to scrape")
	}

	for _, sub := range []string{outDir, filepath.Join(outDir, htmlSubdir), filepath.Join(outDir, jsonldSubdir)} {
		if err := os.MkdirAll(sub, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", sub, err)
		}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]PageResult, len(urls))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		g.Go(func() error {
			results[i] = scrapePage(gCtx, pageURL, outDir, fetcher, opts)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func scrapePage(ctx context.Context, pageURL, outDir string, fetcher fetch.Fetcher, opts Options) PageResult {
	row := PageResult{Date: time.Now().Format("1/2/2006"), URL: pageURL}

	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if result != nil && result.StatusCode != 0 {
			row.StatusCode = fmt.Sprintf("%d", result.StatusCode)
		} else {
			row.StatusCode = "Error"
		}
		log.Printf("[SCRAPE] Request failed for %s: %v", pageURL, err)
		return row
	}
	row.StatusCode = fmt.Sprintf("%d", result.StatusCode)

	html := result.HTML
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[SCRAPE] Failed to parse %s: %v", pageURL, err)
		return row
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(doc.Text()) {
		rendered, err := fetch.WithBrowser(ctx, pageURL, fetch.DefaultBrowserTimeout, opts.Verbose)
		if err != nil {
			log.Printf("[SCRAPE] Browser fallback failed for %s: %v", pageURL, err)
		} else if renderedDoc, parseErr := goquery.NewDocumentFromReader(strings.NewReader(rendered)); parseErr == nil {
			html = rendered
			doc = renderedDoc
		}
	}

	payloads := extractJSONLD(doc)
	if !detectFAQPage(payloads) {
		return row
	}
	row.FAQ = true

	if err := saveFAQData(pageURL, doc, payloads, outDir, opts.Selector); err != nil {
		log.Printf("[SCRAPE] Failed to save FAQ data for %s: %v", pageURL, err)
	}
	return row
}

// extractJSONLD collects every parseable ld+json payload on the page.
// Unparseable scripts are skipped.
func extractJSONLD(doc *goquery.Document) []any {
	payloads := make([]any, 0)
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
			return
		}
		payloads = append(payloads, payload)
	})
	return payloads
}

// detectFAQPage reports whether any payload declares @type FAQPage, looking
// one level into list-wrapped payloads.
func detectFAQPage(payloads []any) bool {
	isFAQ := func(payload any) bool {
		object, ok := payload.(map[string]any)
		return ok && object["@type"] == "FAQPage"
	}

	for _, payload := range payloads {
		if isFAQ(payload) {
			return true
		}
		if list, ok := payload.([]any); ok {
			for _, element := range list {
				if isFAQ(element) {
					return true
				}
			}
		}
	}
	return false
}

// saveFAQData writes the page's FAQ fragment and JSON-LD payloads under the
// HTML/ and JSONLD/ subdirectories, both named after the URL.
func saveFAQData(pageURL string, doc *goquery.Document, payloads []any, outDir, selector string) error {
	name, err := FileName(pageURL)
	if err != nil {
		return err
	}

	if selector == "" {
		selector = extraction.DefaultContainerSelector
	}
	if fragment := doc.Find(selector).First(); fragment.Length() > 0 {
		fragmentHTML, err := goquery.OuterHtml(fragment)
		if err != nil {
			return fmt.Errorf("failed to serialize FAQ fragment: %w", err)
		}
		htmlPath := filepath.Join(outDir, htmlSubdir, name+".html")
		if err := os.WriteFile(htmlPath, []byte(fragmentHTML), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", htmlPath, err)
		}
	}

	jsonBytes, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON-LD payloads: %w", err)
	}
	jsonPath := filepath.Join(outDir, jsonldSubdir, name+".json")
	if err := os.WriteFile(jsonPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	return nil
}

// FileName derives a filesystem name from a URL: host dots and path slashes
// become underscores, so https://example.com/faq/shipping maps to
// example_com_faq_shipping.
func FileName(pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("cannot derive file name from URL %q", pageURL)
	}

	host := strings.ReplaceAll(parsed.Host, ".", "_")
	path := strings.Trim(strings.ReplaceAll(parsed.Path, "/", "_"), "_")
	if path == "" {
		return host, nil
	}
	return host + "_" + path, nil
}
