package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mattbriggs/faqbench/internal/faq"
)

// DefaultContainerSelector matches the FAQ section produced by the site
// export this tool was built around. Override it via configuration when the
// markup differs.
const DefaultContainerSelector = "section#faq-content-container"

// ExtractHTMLDir extracts pairs from every .html/.htm file in a directory
// (non-recursive), in sorted name order. An unreadable file becomes a warning
// for that file only.
func ExtractHTMLDir(dir, containerSelector string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &Result{Pairs: make([]faq.Pair, 0)}
	for _, entry := range entries {
		if entry.IsDir() || !isHTMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				File:   entry.Name(),
				Detail: fmt.Sprintf("failed to read file: %v", err),
			})
			continue
		}

		pairs, warnings, err := ExtractHTML(string(content), containerSelector, entry.Name())
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				File:   entry.Name(),
				Detail: err.Error(),
			})
			continue
		}
		result.Pairs = append(result.Pairs, pairs...)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

// ExtractHTML extracts pairs from one HTML document. Within each container
// matched by containerSelector, every h3 heading pairs with its immediately
// following div.content sibling; the answer is the joined text of that
// block's p children. A heading without a following answer block yields
// nothing. Malformed markup that still parses never raises.
func ExtractHTML(htmlContent, containerSelector, source string) ([]faq.Pair, []Warning, error) {
	if containerSelector == "" {
		containerSelector = DefaultContainerSelector
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, nil, &ParseError{File: source, Cause: err}
	}

	pairs := make([]faq.Pair, 0)
	warnings := make([]Warning, 0)
	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		container.Find("h3").Each(func(_ int, heading *goquery.Selection) {
			answerBlock := heading.NextFiltered("div.content")
			if answerBlock.Length() == 0 {
				return
			}

			paragraphs := make([]string, 0)
			answerBlock.Find("p").Each(func(_ int, p *goquery.Selection) {
				if text := collapseWhitespace(p.Text()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			})

			pair := faq.Pair{
				Question: collapseWhitespace(heading.Text()),
				Answer:   strings.Join(paragraphs, " "),
			}
			if err := pair.Validate(); err != nil {
				warnings = append(warnings, Warning{File: source, Detail: err.Error()})
				return
			}
			pairs = append(pairs, pair)
		})
	})

	return pairs, warnings, nil
}

func isHTMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
