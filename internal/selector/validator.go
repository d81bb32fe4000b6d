// internal/selector/validator.go
package selector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
)

// MaxSelectorLength caps accepted selector text. Anything longer is either
// corrupt or hostile.
const MaxSelectorLength = 1000

// Validation is the typed verdict of the sanitization boundary. It is a
// result value, never an error: validation failure is an expected outcome.
type Validation struct {
	Valid  bool
	Reason string
}

// blockedPatterns reject selector text that smuggles markup, script, or CSS
// payloads. This boundary sits in front of every selector that arrives from
// outside the current session (for example, one authored by another
// principal and delivered through sharing).
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)behavior\s*:`),
	regexp.MustCompile(`(?i)@import`),
	regexp.MustCompile(`(?i)url\s*\(`),
	regexp.MustCompile(`(?i)\\x[0-9a-f]{2}`),
	regexp.MustCompile(`(?i)\\u[0-9a-f]{4}`),
}

// ValidateSelector checks selector text against length, content, and syntax
// rules. It never panics; a selector the CSS engine cannot parse is simply
// invalid.
func ValidateSelector(text string) Validation {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Validation{Reason: "selector is empty"}
	}
	if len(trimmed) > MaxSelectorLength {
		return Validation{Reason: fmt.Sprintf("selector exceeds maximum length of %d", MaxSelectorLength)}
	}
	for _, re := range blockedPatterns {
		if re.MatchString(trimmed) {
			return Validation{Reason: "selector contains a disallowed pattern"}
		}
	}
	// Final syntactic gate: ask the real selector engine. Compile errors
	// are the verdict, not an exception.
	if _, err := cascadia.Parse(trimmed); err != nil {
		return Validation{Reason: "selector syntax is invalid"}
	}
	return Validation{Valid: true}
}

// SanitizeSelector returns the trimmed selector text when valid. The second
// return is false for anything ValidateSelector rejects.
func SanitizeSelector(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if v := ValidateSelector(trimmed); !v.Valid {
		return "", false
	}
	return trimmed, true
}
