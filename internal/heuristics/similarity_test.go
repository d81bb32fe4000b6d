// internal/heuristics/similarity_test.go
package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"Classic night/nacht", "night", "nacht", 0.25},
		{"Identical", "submit-button", "submit-button", 1},
		{"Identical after case fold", "Header", "hEADER", 1},
		{"Both empty", "", "", 0},
		{"One empty", "button", "", 0},
		{"Single char no match", "a", "b", 0},
		{"Single char exact", "a", "a", 1},
		{"Disjoint", "abcd", "wxyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityBigramMultiplicity(t *testing.T) {
	// "aaaa" has bigrams {aa,aa,aa}; "aa" has {aa}. The single shared
	// bigram must only count once: 2*1/(4+2-2) = 0.5.
	assert.InDelta(t, 0.5, Similarity("aaaa", "aa"), 1e-9)
}

func TestSimilarityIsSymmetric(t *testing.T) {
	a, b := "submit-btn", "submit-button"
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-9)
	assert.Greater(t, Similarity(a, b), 0.6)
}
