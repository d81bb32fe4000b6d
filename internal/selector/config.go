// internal/selector/config.go
package selector

// The truncation limits below are behavioral contract, not tuning
// opportunities: callers persist selectors generated under these exact
// bounds, so changing them silently changes which stored selectors keep
// resolving.
const (
	// DefaultMaxCandidates caps how many elements one matching pass will
	// ever score, so a pathological page cannot cause unbounded work.
	DefaultMaxCandidates = 100

	// DefaultMaxPathDepth caps ancestor traversal during path building.
	DefaultMaxPathDepth = 10

	// DefaultMatchThreshold is the minimum candidate score (0-100) required
	// before the matcher reports a result instead of "orphaned".
	DefaultMatchThreshold = 50

	// maxCombinedClasses limits the combined class selector to the first
	// three stable classes.
	maxCombinedClasses = 3

	// maxPreferredPathAttrs limits which priority attributes path building
	// will consider per ancestor.
	maxPreferredPathAttrs = 3

	// maxDescriptorAttrs caps how many attribute selectors a parsed
	// descriptor retains.
	maxDescriptorAttrs = 5

	// idSimilarityCutoff and attrSimilarityCutoff gate partial credit
	// during candidate scoring; textSimilarityCutoff gates the text bonus.
	idSimilarityCutoff   = 0.7
	attrSimilarityCutoff = 0.7
	textSimilarityCutoff = 0.8

	// textHintLength is how much of the text content participates in the
	// similarity comparison.
	textHintLength = 100
)

// testIDAttributes are checked before everything else: explicit test hooks
// are the most stable identity a page can offer.
var testIDAttributes = []string{"data-testid", "data-test-id", "data-test", "data-cy", "data-qa"}

// semanticAttributes follow the test hooks in the generation priority order.
var semanticAttributes = []string{"name", "aria-label", "aria-labelledby", "role", "type", "placeholder", "title", "alt"}

// Config carries the engine's immutable tunables. The zero value is not
// usable; construct via DefaultConfig and override fields as needed.
type Config struct {
	MaxCandidates  int
	MaxPathDepth   int
	MatchThreshold int
	// AttributePriority is the full ordered attribute list used by the
	// attribute strategy and path building.
	AttributePriority []string
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	priority := make([]string, 0, len(testIDAttributes)+len(semanticAttributes))
	priority = append(priority, testIDAttributes...)
	priority = append(priority, semanticAttributes...)
	return Config{
		MaxCandidates:     DefaultMaxCandidates,
		MaxPathDepth:      DefaultMaxPathDepth,
		MatchThreshold:    DefaultMatchThreshold,
		AttributePriority: priority,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = d.MaxCandidates
	}
	if c.MaxPathDepth <= 0 {
		c.MaxPathDepth = d.MaxPathDepth
	}
	if c.MatchThreshold <= 0 {
		c.MatchThreshold = d.MatchThreshold
	}
	if len(c.AttributePriority) == 0 {
		c.AttributePriority = d.AttributePriority
	}
	return c
}
