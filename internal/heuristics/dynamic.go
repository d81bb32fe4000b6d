// internal/heuristics/dynamic.go
package heuristics

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Rules defines the configurable pattern set for identifying unstable
// (framework- or build-tool-generated) identifier values.
type Rules struct {
	// IdentifierPatterns flag id/class values that are runtime-generated.
	// Patterns are evaluated in order; the first hit wins.
	IdentifierPatterns []*regexp.Regexp
	// CheckUUID enables detection of UUID-shaped values.
	CheckUUID bool
}

// DefaultRules covers the common UI frameworks and bundlers seen in the wild.
func DefaultRules() Rules {
	patterns := []*regexp.Regexp{
		// Ember runtime ids ("ember482").
		regexp.MustCompile(`(?i)^ember\d`),
		// Framework-prefixed ids/classes ("react-3fa", "ng-1ab2", "vue-x").
		regexp.MustCompile(`(?i)^(react|vue|ng|ngb|svelte|ext|yui)-`),
		// CSS-in-JS generators ("sc-gHjk", "css-1q2w3e", "jss204").
		regexp.MustCompile(`(?i)^(css|sc|emotion|mui|chakra|radix)-[a-z0-9]+$`),
		regexp.MustCompile(`(?i)^jss\d+$`),
		// Bundler artifacts ("webpack-dev", "chunk_42").
		regexp.MustCompile(`(?i)^(webpack|chunk|module|bundle)[-_]`),
		// Leading underscore is almost always a hashed module class ("_foo").
		regexp.MustCompile(`^_`),
		// Pure numeric values carry no semantic identity ("12345").
		regexp.MustCompile(`^\d+$`),
	}
	return Rules{
		IdentifierPatterns: patterns,
		CheckUUID:          true,
	}
}

// Classifier judges whether an id or class value is stable enough to anchor
// a selector on. It holds only immutable configuration and is safe for
// concurrent use.
type Classifier struct {
	rules Rules
}

// NewClassifier builds a classifier from the given rules. Nil or empty rules
// fall back to DefaultRules.
func NewClassifier(rules Rules) *Classifier {
	if len(rules.IdentifierPatterns) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// IsDynamicID reports whether the value looks runtime-generated and therefore
// unsafe to rely on across page loads. Empty values are always dynamic.
func (c *Classifier) IsDynamicID(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	for _, re := range c.rules.IdentifierPatterns {
		if re.MatchString(value) {
			return true
		}
	}
	if c.rules.CheckUUID {
		// uuid.Parse accepts the canonical hyphenated form as well as raw
		// 32-char hex; both shapes are generated, never authored.
		if _, err := uuid.Parse(value); err == nil {
			return true
		}
	}
	return false
}

// CompilePatterns turns user-supplied pattern strings into rules appended to
// the defaults. Invalid patterns are skipped rather than rejected; the
// classifier must never fail construction over a bad config entry.
func CompilePatterns(extra []string) Rules {
	rules := DefaultRules()
	for _, p := range extra {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		rules.IdentifierPatterns = append(rules.IdentifierPatterns, re)
	}
	return rules
}
