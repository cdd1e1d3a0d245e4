package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespace_SplitsOnWhitespaceRuns(t *testing.T) {
	tokens := Whitespace{}.Tokens("What  is\tthe return   policy?")
	assert.Equal(t, []string{"What", "is", "the", "return", "policy?"}, tokens)
}

func TestWhitespace_KeepsCaseAndPunctuation(t *testing.T) {
	tokens := Whitespace{}.Tokens("Do you ship to the U.S.?")
	assert.Equal(t, []string{"Do", "you", "ship", "to", "the", "U.S.?"}, tokens)
}

func TestWhitespace_EmptyInput(t *testing.T) {
	assert.Empty(t, Whitespace{}.Tokens(""))
	assert.Empty(t, Whitespace{}.Tokens("   "))
}

func TestStopword_DropsStopwordsAndPunctuation(t *testing.T) {
	tokens := NewStopword().Tokens("What is the return policy?")
	assert.Equal(t, []string{"return", "policy"}, tokens)
}

func TestStopword_Lowercases(t *testing.T) {
	tokens := NewStopword().Tokens("International Shipping Options")
	assert.Equal(t, []string{"international", "shipping", "options"}, tokens)
}

func TestStopword_KeepsNumbers(t *testing.T) {
	tokens := NewStopword().Tokens("Is delivery free over 50 dollars?")
	assert.Contains(t, tokens, "50")
	assert.Contains(t, tokens, "delivery")
	assert.NotContains(t, tokens, "is")
}

func TestForStrategy_DefaultsToWhitespace(t *testing.T) {
	tokenizer, err := ForStrategy("")
	require.NoError(t, err)
	assert.Equal(t, "whitespace", tokenizer.Name())
}

func TestForStrategy_Stopword(t *testing.T) {
	tokenizer, err := ForStrategy("stopword")
	require.NoError(t, err)
	assert.Equal(t, "stopword", tokenizer.Name())
}

func TestForStrategy_Unknown(t *testing.T) {
	_, err := ForStrategy("porter-stemmer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown term strategy")
}
