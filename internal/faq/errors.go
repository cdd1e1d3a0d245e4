package faq

import "fmt"

// InvalidPairError marks a pair that failed non-empty validation
type InvalidPairError struct {
	Field    string
	Question string
}

func (e *InvalidPairError) Error() string {
	if e.Question != "" {
		return fmt.Sprintf("invalid pair: empty %s (question %q)", e.Field, e.Question)
	}
	return fmt.Sprintf("invalid pair: empty %s", e.Field)
}

// LoadError represents a failure reading or decoding a golden dataset file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("golden set load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("golden set load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure encoding or writing a golden dataset file
type SaveError struct {
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("golden set save error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("golden set save error: %s", e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
