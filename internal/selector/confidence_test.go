// internal/selector/confidence_test.go
package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		expected int
	}{
		{"Base", "div", 50},
		{"Test hook", `[data-testid="x"]`, 80},
		{"Cypress hook", `[data-cy="submit"]`, 80},
		{"Other data attribute", `[data-role="intro"]`, 70},
		{"Aria attribute", `[aria-label="Close"]`, 65},
		{"Plain id", "#main-content", 70},
		{"Id plus test hook", `#form [data-testid="x"]`, 100},
		{"Child combinator penalty", "div > p", 45},
		{"Positional penalty", "li:nth-of-type(3)", 40},
		{"Deep positional path", "div:nth-child(3) > span:nth-child(2)", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConfidenceScore(tt.selector))
		})
	}
}

func TestConfidenceScoreOrdering(t *testing.T) {
	stable := ConfidenceScore(`[data-testid="x"]`)
	brittle := ConfidenceScore("div:nth-child(3) > span:nth-child(2)")
	assert.Greater(t, stable, brittle)
}

func TestConfidenceScoreClamped(t *testing.T) {
	deep := strings.Repeat("div:nth-of-type(2) > ", 12) + "span"
	assert.Equal(t, 0, ConfidenceScore(deep))

	assert.GreaterOrEqual(t, ConfidenceScore(`#a [data-testid="b"]`), 0)
	assert.LessOrEqual(t, ConfidenceScore(`#a [data-testid="b"]`), 100)
}
