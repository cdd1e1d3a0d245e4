package scraping

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReportFileName is the dated CSV report name for a scrape run.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("report-%s.csv", now.Format("01-02-2006"))
}

// WriteReport writes the per-URL scrape results as a CSV under outDir and
// returns the report path. Columns are Date, URL, Response-Code, FAQ.
func WriteReport(outDir string, results []PageResult) (string, error) {
	path := filepath.Join(outDir, ReportFileName(time.Now()))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Date", "URL", "Response-Code", "FAQ"}); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range results {
		faq := "No"
		if row.FAQ {
			faq = "Yes"
		}
		if err := writer.Write([]string{row.Date, row.URL, row.StatusCode, faq}); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}
