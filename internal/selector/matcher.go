// internal/selector/matcher.go
package selector

import (
	"math"
	"strings"

	"github.com/andybalholm/cascadia"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
	"github.com/xkilldash9x/anchor-cli/internal/heuristics"
)

// Metadata carries optional hints stored alongside a selector. TextContent
// is the anchor's visible text at generation time.
type Metadata struct {
	TextContent string
}

// Scoring weights per descriptor field. The final score is normalized over
// only the fields the descriptor actually carries, so partial descriptors
// are scored fairly rather than penalized.
const (
	tagWeight       = 20.0
	idWeight        = 25.0
	idPartialCredit = 15.0
	classWeight     = 25.0
	attrWeight      = 30.0
	attrPartialPool = 20.0
	textWeight      = 10.0
)

// Matcher recovers the most plausible element for a selector that no longer
// resolves, by scoring a bounded candidate set against the parsed
// descriptor.
type Matcher struct {
	doc        *dom.Document
	classifier *heuristics.Classifier
	cfg        Config
	log        *zap.Logger
}

// NewMatcher wires a matcher from its collaborators.
func NewMatcher(doc *dom.Document, classifier *heuristics.Classifier, cfg Config, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{
		doc:        doc,
		classifier: classifier,
		cfg:        cfg.withDefaults(),
		log:        log.Named("matcher"),
	}
}

// FindBestMatch returns the highest-scoring candidate for the selector, or
// nil when no candidate reaches the acceptance threshold — the caller
// should treat nil as "orphaned". Ties resolve to the earliest candidate in
// document order.
func (m *Matcher) FindBestMatch(selectorText string, meta Metadata) *html.Node {
	desc := ParseDescriptor(selectorText)
	if desc.IsEmpty() {
		return nil
	}

	candidates := m.gatherCandidates(desc)
	if len(candidates) == 0 {
		return nil
	}

	var best *html.Node
	bestScore := -1
	for _, node := range candidates {
		score := m.scoreCandidate(desc, node, meta)
		if score > bestScore {
			best = node
			bestScore = score
		}
	}

	if bestScore < m.cfg.MatchThreshold {
		m.log.Debug("No confident match",
			zap.String("selector", selectorText),
			zap.Int("best_score", bestScore),
			zap.Int("threshold", m.cfg.MatchThreshold))
		return nil
	}
	return best
}

// gatherCandidates collects elements worth scoring, narrowing oversized
// sets by class combination and then attribute presence before truncating
// to the hard cap.
func (m *Matcher) gatherCandidates(desc Descriptor) []*html.Node {
	var nodes []*html.Node
	if desc.TagName != "" {
		nodes = m.doc.ElementsByTag(desc.TagName)
	} else {
		nodes = m.doc.AllElements()
	}

	limit := m.cfg.MaxCandidates
	if len(nodes) > limit && len(desc.Classes) > 0 {
		if narrowed := m.narrowByClasses(desc); len(narrowed) > 0 && len(narrowed) < limit {
			nodes = narrowed
		}
	}
	if len(nodes) > limit && len(desc.Attributes) > 0 {
		nodes = filterByAttributePresence(nodes, desc)
	}
	if len(nodes) > limit {
		nodes = nodes[:limit]
	}
	return nodes
}

func (m *Matcher) narrowByClasses(desc Descriptor) []*html.Node {
	var b strings.Builder
	b.WriteString(desc.TagName)
	for _, c := range desc.Classes {
		b.WriteString("." + escapeIdentifier(c))
	}
	sel, err := cascadia.Compile(b.String())
	if err != nil {
		return nil
	}
	return m.doc.FindMatcher(sel)
}

func filterByAttributePresence(nodes []*html.Node, desc Descriptor) []*html.Node {
	filtered := nodes[:0:0]
	for _, n := range nodes {
		for name := range desc.Attributes {
			if _, ok := dom.Attr(n, name); ok {
				filtered = append(filtered, n)
				break
			}
		}
	}
	return filtered
}

// scoreCandidate rates one element 0-100 against the descriptor plus the
// optional text hint.
func (m *Matcher) scoreCandidate(desc Descriptor, node *html.Node, meta Metadata) int {
	var earned, applicable float64

	if desc.TagName != "" {
		applicable += tagWeight
		if dom.TagName(node) == strings.ToLower(desc.TagName) {
			earned += tagWeight
		}
	}

	if desc.ID != "" {
		applicable += idWeight
		id := dom.ID(node)
		switch {
		case id == desc.ID:
			earned += idWeight
		case !m.classifier.IsDynamicID(desc.ID) && heuristics.Similarity(desc.ID, id) > idSimilarityCutoff:
			earned += idPartialCredit
		}
	}

	if len(desc.Classes) > 0 {
		applicable += classWeight
		matching := 0
		for _, c := range desc.Classes {
			if dom.HasClass(node, c) {
				matching++
			}
		}
		earned += classWeight * float64(matching) / float64(len(desc.Classes))
	}

	if len(desc.Attributes) > 0 {
		applicable += attrWeight
		share := attrWeight / float64(len(desc.Attributes))
		partial := attrPartialPool / float64(len(desc.Attributes))
		for name, want := range desc.Attributes {
			got, ok := dom.Attr(node, name)
			if !ok {
				continue
			}
			switch {
			case !want.Exact:
				earned += share
			case got == want.Value:
				earned += share
			case heuristics.Similarity(got, want.Value) > attrSimilarityCutoff:
				earned += partial
			}
		}
	}

	if meta.TextContent != "" {
		applicable += textWeight
		hint := truncateRunes(meta.TextContent, textHintLength)
		text := truncateRunes(dom.VisibleText(node), textHintLength)
		if heuristics.Similarity(hint, text) > textSimilarityCutoff {
			earned += textWeight
		}
	}

	if applicable == 0 {
		return 0
	}
	return int(math.Round(earned / applicable * 100))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
