// Package terms provides keyword extraction strategies for the graph
// backend's keyword index. The active strategy is selected by name through
// configuration; Whitespace is the default.
package terms

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenizer extracts index terms from question text.
type Tokenizer interface {
	Tokens(text string) []string
	Name() string
}

// Whitespace splits on whitespace runs and keeps tokens as written,
// punctuation and case included.
type Whitespace struct{}

func (Whitespace) Tokens(text string) []string {
	return strings.Fields(text)
}

func (Whitespace) Name() string {
	return "whitespace"
}

// Stopword lowercases, splits on non-alphanumeric runes, and drops common
// English stopwords.
type Stopword struct {
	stopwords map[string]struct{}
}

// NewStopword returns a Stopword tokenizer with the built-in English list.
func NewStopword() *Stopword {
	set := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return &Stopword{stopwords: set}
}

func (t *Stopword) Tokens(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := t.stopwords[w]; skip {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func (t *Stopword) Name() string {
	return "stopword"
}

// ForStrategy maps a configured strategy name to its tokenizer.
func ForStrategy(name string) (Tokenizer, error) {
	switch name {
	case "", "whitespace":
		return Whitespace{}, nil
	case "stopword":
		return NewStopword(), nil
	default:
		return nil, fmt.Errorf("unknown term strategy %q (supported: whitespace, stopword)", name)
	}
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "me", "more", "most", "my", "no", "nor", "not", "now",
	"of", "off", "on", "once", "only", "or", "other", "our", "ours", "out",
	"over", "own", "s", "same", "she", "should", "so", "some", "such", "t",
	"than", "that", "the", "their", "theirs", "them", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "you", "your",
	"yours",
}
