// Package evaluation runs a golden question set against a retrieval backend
// and reports the mean semantic similarity of the retrieved answers.
package evaluation

import "fmt"

// EmptyGoldenSetError is returned when evaluation is requested with no golden
// questions. Raised explicitly before any mean is computed; an empty set is
// an operator mistake, not a zero score.
type EmptyGoldenSetError struct {
	Source string
}

func (e *EmptyGoldenSetError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("golden question set is empty (loaded from %s)", e.Source)
	}
	return "golden question set is empty"
}

// QueryError wraps a backend failure for one golden question.
type QueryError struct {
	Question string
	Cause    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed for %q: %v", e.Question, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
