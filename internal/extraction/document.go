package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a whole HTML page reduced to title, body text, and source
// file name, the shape the vector backend stores for page-level retrieval.
type Document struct {
	Title  string
	Text   string
	Source string
}

// ExtractDocumentDir reads every .html/.htm file in a directory and returns
// one Document per file, in sorted name order. An unreadable or unparseable
// file becomes a warning for that file only.
func ExtractDocumentDir(dir string) ([]Document, []Warning, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	docs := make([]Document, 0)
	warnings := make([]Warning, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isHTMLFile(entry.Name()) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, Warning{
				File:   entry.Name(),
				Detail: fmt.Sprintf("failed to read file: %v", err),
			})
			continue
		}

		doc, err := ExtractDocument(string(content), entry.Name())
		if err != nil {
			warnings = append(warnings, Warning{File: entry.Name(), Detail: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}

	return docs, warnings, nil
}

// ExtractDocument reduces one HTML page to a Document. The title falls back
// to "Untitled" when the page has none; the text is the joined content of
// all p elements.
func ExtractDocument(htmlContent, source string) (Document, error) {
	tree, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return Document{}, &ParseError{File: source, Cause: err}
	}

	title := collapseWhitespace(tree.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	paragraphs := make([]string, 0)
	tree.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := collapseWhitespace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return Document{
		Title:  title,
		Text:   strings.Join(paragraphs, " "),
		Source: source,
	}, nil
}
