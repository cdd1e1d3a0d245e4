package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattbriggs/faqbench/internal/faq"
)

// Result is the outcome of extracting a directory: the pairs that passed
// validation plus the warnings accumulated along the way.
type Result struct {
	Pairs    []faq.Pair
	Warnings []Warning
}

// ExtractJSONLDDir extracts pairs from every .json/.jsonld file in a directory
// (non-recursive). Files are processed in sorted name order so output is
// deterministic. A file that fails to read or parse becomes a warning, never
// an abort.
func ExtractJSONLDDir(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &Result{Pairs: make([]faq.Pair, 0)}
	for _, entry := range entries {
		if entry.IsDir() || !isJSONLDFile(entry.Name()) {
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

		pairs, warnings, err := ExtractJSONLD(content, entry.Name())
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

// ExtractJSONLD extracts pairs from a single JSON-LD document. The document
// may be a bare object or an array wrapping one (scraped pages save every
// ld+json payload as one array; the FAQPage payload is the first element).
// Only documents whose @type is "FAQPage" contribute; anything else yields no
// pairs and no error. Invalid JSON is a ParseError.
func ExtractJSONLD(content []byte, source string) ([]faq.Pair, []Warning, error) {
	var document any
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, nil, &ParseError{File: source, Cause: err}
	}

	if list, ok := document.([]any); ok {
		if len(list) == 0 {
			return nil, nil, nil
		}
		document = list[0]
	}

	page, ok := document.(map[string]any)
	if !ok || page["@type"] != "FAQPage" {
		return nil, nil, nil
	}

	entities, ok := page["mainEntity"].([]any)
	if !ok {
		return nil, []Warning{{File: source, Detail: "FAQPage has no mainEntity sequence"}}, nil
	}

	pairs := make([]faq.Pair, 0, len(entities))
	warnings := make([]Warning, 0)
	for _, raw := range entities {
		entity, ok := raw.(map[string]any)
		if !ok || entity["@type"] != "Question" {
			continue
		}

		question, _ := entity["name"].(string)
		var answerHTML string
		if accepted, ok := entity["acceptedAnswer"].(map[string]any); ok {
			answerHTML, _ = accepted["text"].(string)
		}

		// Accepted answers frequently carry embedded markup; store plain text.
		pair := faq.Pair{Question: question, Answer: flattenHTML(answerHTML)}.Normalize()
		if err := pair.Validate(); err != nil {
			warnings = append(warnings, Warning{File: source, Detail: err.Error()})
			continue
		}
		pairs = append(pairs, pair)
	}

	return pairs, warnings, nil
}

func isJSONLDFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".json" || ext == ".jsonld"
}
