package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattbriggs/faqbench/internal/evaluation"
	"github.com/mattbriggs/faqbench/internal/extraction"
	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/scraping"
)

func TestPrintExtraction_ShowsCountsAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExtraction("JSONLD", &extraction.Result{
		Pairs: []faq.Pair{{Question: "Q1", Answer: "A1"}},
		Warnings: []extraction.Warning{
			{File: "broken.json", Detail: "invalid JSON"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "EXTRACTED: JSONLD")
	assert.Contains(t, output, "Pairs:    1")
	assert.Contains(t, output, "Warnings: 1")
	assert.Contains(t, output, "broken.json")
}

func TestPrintExtraction_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtraction("JSONLD", nil)
	assert.Empty(t, buf.String())
}

func TestPrintMergedPairs_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	pairs := make([]faq.Pair, 8)
	for i := range pairs {
		pairs[i] = faq.Pair{Question: "Question", Answer: "Answer"}
	}
	printer.PrintMergedPairs(pairs)

	output := buf.String()
	assert.Contains(t, output, "Distinct questions: 8")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintEvaluation_ShowsAverage(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintEvaluation(&evaluation.Report{
		Metric:       "semantic_similarity",
		AverageScore: 0.875,
		Results: []evaluation.QuestionResult{
			{Question: "What is AI?", Score: 1.0},
			{Question: "What is ML?", Score: 0.75},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "EVALUATION")
	assert.Contains(t, output, "semantic_similarity")
	assert.Contains(t, output, "Average: 0.875")
	assert.Contains(t, output, "1.000")
}

func TestPrintScrape_CountsDetectionsAndFailures(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScrape([]scraping.PageResult{
		{URL: "https://a.example", StatusCode: "200", FAQ: true},
		{URL: "https://b.example", StatusCode: "404", FAQ: false},
		{URL: "https://c.example", StatusCode: "Error", FAQ: false},
	})

	output := buf.String()
	assert.Contains(t, output, "Pages fetched:     3")
	assert.Contains(t, output, "FAQ pages found:   1")
	assert.Contains(t, output, "Request failures:  1")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
