// Package faq defines the question/answer data model shared by the
// extraction, loading, and evaluation stages.
package faq

import "strings"

// Pair is a single FAQ entry. Question text doubles as the merge identity:
// two pairs with the same trimmed question are the same entry.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Normalize returns a copy with leading/trailing whitespace removed from both
// fields.
func (p Pair) Normalize() Pair {
	return Pair{
		Question: strings.TrimSpace(p.Question),
		Answer:   strings.TrimSpace(p.Answer),
	}
}

// Validate reports whether the pair carries usable content. A pair whose
// question or answer is empty after trimming is excluded from every store.
func (p Pair) Validate() error {
	if strings.TrimSpace(p.Question) == "" {
		return &InvalidPairError{Field: "question"}
	}
	if strings.TrimSpace(p.Answer) == "" {
		return &InvalidPairError{Field: "answer", Question: strings.TrimSpace(p.Question)}
	}
	return nil
}

// GoldenQuestion is one row of the golden dataset used for evaluation.
// Field names are fixed by the golden_questions.json interchange format.
type GoldenQuestion struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// GoldenSet converts merged pairs into golden rows, preserving order.
func GoldenSet(pairs []Pair) []GoldenQuestion {
	golden := make([]GoldenQuestion, 0, len(pairs))
	for _, p := range pairs {
		golden = append(golden, GoldenQuestion{
			Question:       p.Question,
			ExpectedAnswer: p.Answer,
		})
	}
	return golden
}
