// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattbriggs/faqbench/internal/evaluation"
	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/scraping"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a summary of one extraction pass: how many pairs
// survived validation and which files or entries were skipped.
func (p *Printer) PrintExtraction(source string, result *extraction.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pairs:    %d\n", len(result.Pairs)))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", len(result.Warnings)))

	if len(result.Warnings) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Warnings[i]))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("EXTRACTED: %s", source), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMergedPairs outputs the head of the canonical merged pair set.
func (p *Printer) PrintMergedPairs(pairs []faq.Pair) {
	if len(pairs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Distinct questions: %d\n\n", len(pairs)))

	count := min(len(pairs), maxItemsToShow)
	for i := 0; i < count; i++ {
		question := pairs[i].Question
		if len(question) > 50 {
			question = question[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", question))
	}
	if len(pairs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(pairs)-maxItemsToShow))
	}

	p.printBox("MERGED PAIRS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the per-question scores and the headline mean.
func (p *Printer) PrintEvaluation(report *evaluation.Report) {
	if report == nil || len(report.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Metric:    %s\n", report.Metric))
	sb.WriteString(fmt.Sprintf("Questions: %d\n\n", len(report.Results)))

	count := min(len(report.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := report.Results[i]
		question := row.Question
		if len(question) > 40 {
			question = question[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %.3f  %s\n", row.Score, question))
	}
	if len(report.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Results)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nAverage: %.3f", report.AverageScore))

	p.printBox("EVALUATION", sb.String())
}

// PrintScrape outputs the scrape run summary: pages fetched, FAQ pages
// detected, request failures.
func (p *Printer) PrintScrape(results []scraping.PageResult) {
	if len(results) == 0 {
		return
	}

	detected, failed := 0, 0
	for _, r := range results {
		if r.FAQ {
			detected++
		}
		if r.StatusCode == "Error" {
			failed++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages fetched:     %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("FAQ pages found:   %d\n", detected))
	sb.WriteString(fmt.Sprintf("Request failures:  %d", failed))

	p.printBox("SCRAPE SUMMARY", sb.String())
}
