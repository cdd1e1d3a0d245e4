package faq

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadGoldenSet loads a golden dataset from a JSON file
func LoadGoldenSet(path string) ([]GoldenQuestion, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var golden []GoldenQuestion
	if err := json.Unmarshal(content, &golden); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return golden, nil
}

// SaveGoldenSet writes a golden dataset as an ordered JSON array
func SaveGoldenSet(path string, golden []GoldenQuestion) error {
	jsonBytes, err := json.MarshalIndent(golden, "", "  ")
	if err != nil {
		return &SaveError{
			Message: "failed to marshal golden set",
			Cause:   err,
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to write file %s", path),
			Cause:   err,
		}
	}

	return nil
}
