// internal/selector/confidence.go
package selector

import (
	"regexp"
	"strings"
)

// Confidence scoring is pure string analysis: it estimates how likely a
// selector is to survive a re-render without ever touching the tree.
var (
	confTestIDRe = regexp.MustCompile(`\[\s*data-(?:testid|test-id|test|cy|qa)\b`)
	confDataRe   = regexp.MustCompile(`\[\s*data-[A-Za-z0-9_-]+`)
	confAriaRe   = regexp.MustCompile(`\[\s*aria-[A-Za-z0-9_-]+`)
	confIDRe     = regexp.MustCompile(`#[A-Za-z0-9_\\-]+`)
)

// ConfidenceScore rates selector text 0-100. Test hooks and ids raise the
// score; structural combinators and positional pseudo-classes lower it.
func ConfidenceScore(selectorText string) int {
	score := 50

	switch {
	case confTestIDRe.MatchString(selectorText):
		score += 30
	case confDataRe.MatchString(selectorText):
		score += 20
	case confAriaRe.MatchString(selectorText):
		score += 15
	}

	if confIDRe.MatchString(selectorText) {
		score += 20
	}

	score -= 5 * strings.Count(selectorText, ">")
	score -= 10 * strings.Count(selectorText, ":nth-")

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
