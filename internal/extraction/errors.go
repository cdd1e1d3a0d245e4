// Package extraction turns raw FAQ exports (JSON-LD documents and HTML pages)
// into normalized question/answer pairs.
package extraction

import "fmt"

// ParseError represents a source file that is not valid in its expected format
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error in %s: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("parse error in %s", e.File)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Warning records a file or entry that was skipped without failing the batch.
// Per-file and per-entry problems are contained here; only directory-level
// failures escalate.
type Warning struct {
	File   string
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.File, w.Detail)
}
