package evaluation

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// QuestionResult is one golden question's outcome. Field names match the
// results JSON the benchmark has always produced, minus the misleading
// "f1_score" label.
type QuestionResult struct {
	Question        string  `json:"question"`
	ExpectedAnswer  string  `json:"expected_answer"`
	RetrievedAnswer string  `json:"retrieved_answer"`
	Score           float64 `json:"score"`
}

// Report is a full evaluation run: the headline mean plus one row per golden
// question, in golden order.
type Report struct {
	Metric       string           `json:"metric"`
	AverageScore float64          `json:"average_score"`
	Results      []QuestionResult `json:"results"`
}

// WriteJSON saves the report as an indented JSON document.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// WriteCSV saves the per-question rows as a CSV with a header row.
func (r *Report) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"question", "expected_answer", "retrieved_answer", "score"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range r.Results {
		record := []string{
			row.Question,
			row.ExpectedAnswer,
			row.RetrievedAnswer,
			strconv.FormatFloat(row.Score, 'f', 3, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
