// Package scoring computes the semantic similarity between an expected and a
// retrieved answer by embedding both and comparing the vectors.
package scoring

import "math"

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length inputs score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
