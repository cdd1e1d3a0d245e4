package faq

import "strings"

// Merge combines pair collections into one deduplicated list. Sources are
// ordered lowest priority first: when the same trimmed question appears again,
// the later answer replaces the earlier one. Output order is first-insertion
// order, so merging is deterministic for deterministic inputs and running the
// result through Merge again returns it unchanged.
func Merge(sources ...[]Pair) []Pair {
	index := make(map[string]int)
	merged := make([]Pair, 0)

	for _, source := range sources {
		for _, p := range source {
			question := strings.TrimSpace(p.Question)
			if at, seen := index[question]; seen {
				merged[at].Answer = p.Answer
				continue
			}
			index[question] = len(merged)
			merged = append(merged, Pair{Question: question, Answer: p.Answer})
		}
	}

	return merged
}
