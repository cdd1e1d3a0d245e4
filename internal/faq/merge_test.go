package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_LaterSourceWins(t *testing.T) {
	jsonldPairs := []Pair{
		{Question: "What is the return policy?", Answer: "30 days."},
		{Question: "Do you ship internationally?", Answer: "Yes."},
	}
	htmlPairs := []Pair{
		{Question: "What is the return policy?", Answer: "Returns are accepted within 30 days of purchase."},
	}

	merged := Merge(jsonldPairs, htmlPairs)
	require.Len(t, merged, 2)
	assert.Equal(t, "Returns are accepted within 30 days of purchase.", merged[0].Answer)
	assert.Equal(t, "Yes.", merged[1].Answer)
}

func TestMerge_PreservesFirstInsertionOrder(t *testing.T) {
	first := []Pair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
	second := []Pair{
		{Question: "Q3", Answer: "A3"},
		{Question: "Q1", Answer: "A1-updated"},
	}

	merged := Merge(first, second)
	require.Len(t, merged, 3)
	assert.Equal(t, "Q1", merged[0].Question)
	assert.Equal(t, "A1-updated", merged[0].Answer)
	assert.Equal(t, "Q2", merged[1].Question)
	assert.Equal(t, "Q3", merged[2].Question)
}

func TestMerge_DeduplicatesWithinOneSource(t *testing.T) {
	pairs := []Pair{
		{Question: "Q1", Answer: "first"},
		{Question: "Q1", Answer: "second"},
	}

	merged := Merge(pairs)
	require.Len(t, merged, 1)
	assert.Equal(t, "second", merged[0].Answer)
}

func TestMerge_TrimmedQuestionIsIdentity(t *testing.T) {
	first := []Pair{{Question: "What is X?", Answer: "old"}}
	second := []Pair{{Question: "  What is X?  ", Answer: "new"}}

	merged := Merge(first, second)
	require.Len(t, merged, 1)
	assert.Equal(t, "What is X?", merged[0].Question)
	assert.Equal(t, "new", merged[0].Answer)
}

func TestMerge_CaseSensitive(t *testing.T) {
	merged := Merge([]Pair{
		{Question: "What is X?", Answer: "a"},
		{Question: "WHAT IS X?", Answer: "b"},
	})
	assert.Len(t, merged, 2)
}

func TestMerge_Idempotent(t *testing.T) {
	pairs := []Pair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}

	once := Merge(pairs)
	twice := Merge(once)
	assert.Equal(t, once, twice)
}

func TestMerge_NoSources(t *testing.T) {
	merged := Merge()
	assert.NotNil(t, merged)
	assert.Len(t, merged, 0)
}
