// internal/heuristics/similarity.go
package heuristics

import "strings"

// Similarity computes the Sorensen-Dice coefficient over character bigrams,
// case-insensitively. Identical strings score 1. Strings shorter than two
// characters (that are not an exact match) score 0, as does any empty input.
//
// Repeated bigrams are matched at most their available multiplicity: the
// intersection counter decrements the remaining count per bigram so that
// "aaaa" vs "aa" is not over-counted.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[string(ra[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if counts[bg] > 0 {
			intersection++
			counts[bg]--
		}
	}

	return 2 * float64(intersection) / float64(len(ra)+len(rb)-2)
}
