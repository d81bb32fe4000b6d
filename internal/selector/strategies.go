// internal/selector/strategies.go
package selector

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
	"github.com/xkilldash9x/anchor-cli/internal/heuristics"
)

// Generator derives durable selectors for live elements. Strategies are
// tried in a fixed order and the first uniquely-resolving selector wins;
// path building is the last resort and may return a non-unique path when
// the depth cap is reached.
type Generator struct {
	classifier *heuristics.Classifier
	oracle     *Oracle
	cfg        Config
	log        *zap.Logger
}

// NewGenerator wires a generator from its collaborators.
func NewGenerator(classifier *heuristics.Classifier, oracle *Oracle, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		classifier: classifier,
		oracle:     oracle,
		cfg:        cfg.withDefaults(),
		log:        log.Named("generator"),
	}
}

// strategy produces a candidate selector for an element, or "" when the
// strategy does not apply. Uniqueness is checked by the caller.
type strategy func(el *html.Node) string

// Generate returns the most stable uniquely-resolving selector for the
// element, falling back to a structural path when no single strategy
// succeeds. Returns "" only for a nil element.
func (g *Generator) Generate(el *html.Node) string {
	if el == nil || el.Type != html.ElementNode {
		return ""
	}

	for _, s := range g.strategies() {
		if sel := s(el); sel != "" && g.oracle.IsUnique(sel) {
			g.log.Debug("Strategy produced unique selector", zap.String("selector", sel))
			return sel
		}
	}

	path := g.buildPath(el)
	g.log.Debug("Falling back to path selector", zap.String("selector", path))
	return path
}

// GenerateFallbackSelectors returns the deduplicated candidates of every
// strategy plus the structural path, in preference order. Callers wanting
// several anchors to persist use this instead of Generate.
func (g *Generator) GenerateFallbackSelectors(el *html.Node) []string {
	if el == nil || el.Type != html.ElementNode {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(sel string) {
		if sel != "" && !seen[sel] {
			seen[sel] = true
			out = append(out, sel)
		}
	}

	for _, s := range g.strategies() {
		add(s(el))
	}
	add(g.combinedClassSelector(el))
	add(g.buildPath(el))
	return out
}

func (g *Generator) strategies() []strategy {
	return []strategy{
		g.idSelector,
		g.attributeSelector,
		g.classSelector,
		g.nthOfTypeSelector,
	}
}

// -- Id strategy --

func (g *Generator) idSelector(el *html.Node) string {
	id := dom.ID(el)
	if id == "" || g.classifier.IsDynamicID(id) {
		return ""
	}
	return "#" + escapeIdentifier(id)
}

// -- Attribute strategy --

func (g *Generator) attributeSelector(el *html.Node) string {
	tag := dom.TagName(el)
	for _, attr := range g.cfg.AttributePriority {
		v, ok := dom.Attr(el, attr)
		if !ok || v == "" {
			continue
		}
		sel := fmt.Sprintf(`%s[%s="%s"]`, tag, attr, escapeAttributeValue(v))
		if g.oracle.IsUnique(sel) {
			return sel
		}
	}
	return ""
}

// -- Class strategy --

// stableClasses drops dynamic-looking classes and single-character noise.
func (g *Generator) stableClasses(el *html.Node) []string {
	var stable []string
	for _, c := range dom.Classes(el) {
		if len(c) <= 1 || g.classifier.IsDynamicID(c) {
			continue
		}
		stable = append(stable, c)
	}
	return stable
}

func (g *Generator) classSelector(el *html.Node) string {
	tag := dom.TagName(el)
	stable := g.stableClasses(el)
	for _, c := range stable {
		sel := tag + "." + escapeIdentifier(c)
		if g.oracle.IsUnique(sel) {
			return sel
		}
	}
	if len(stable) >= 2 {
		if sel := g.combinedClassSelector(el); sel != "" && g.oracle.IsUnique(sel) {
			return sel
		}
	}
	return ""
}

func (g *Generator) combinedClassSelector(el *html.Node) string {
	stable := g.stableClasses(el)
	if len(stable) < 2 {
		return ""
	}
	if len(stable) > maxCombinedClasses {
		stable = stable[:maxCombinedClasses]
	}
	var b strings.Builder
	b.WriteString(dom.TagName(el))
	for _, c := range stable {
		b.WriteString("." + escapeIdentifier(c))
	}
	return b.String()
}

// -- Nth-of-type strategy --

func (g *Generator) nthOfTypeSelector(el *html.Node) string {
	parent := dom.ParentElement(el)
	if parent == nil {
		return ""
	}
	index := dom.NthOfTypeIndex(el)
	if index == 0 {
		return ""
	}
	parentShort := g.shortSelector(parent)
	if parentShort == "" {
		return ""
	}
	return fmt.Sprintf("%s > %s:nth-of-type(%d)", parentShort, dom.TagName(el), index)
}

// shortSelector derives a conservative one-level descriptor for an
// ancestor: id, then a preferred attribute, then a stable class, then the
// bare tag. It never recurses.
func (g *Generator) shortSelector(el *html.Node) string {
	tag := dom.TagName(el)
	if tag == "" {
		return ""
	}
	if id := dom.ID(el); id != "" && !g.classifier.IsDynamicID(id) {
		return "#" + escapeIdentifier(id)
	}
	for i, attr := range g.cfg.AttributePriority {
		if i >= maxPreferredPathAttrs {
			break
		}
		if v, ok := dom.Attr(el, attr); ok && v != "" {
			return fmt.Sprintf(`%s[%s="%s"]`, tag, attr, escapeAttributeValue(v))
		}
	}
	if stable := g.stableClasses(el); len(stable) > 0 {
		return tag + "." + escapeIdentifier(stable[0])
	}
	return tag
}

// -- Path building (last resort) --

// buildPath walks from the element toward <body> (exclusive), prepending an
// element part per level and probing uniqueness after every prepend. The
// walk is capped at MaxPathDepth; on exhaustion the joined path is returned
// even if it is not unique.
func (g *Generator) buildPath(el *html.Node) string {
	var parts []string
	depth := 0
	for n := el; n != nil && depth < g.cfg.MaxPathDepth; n = dom.ParentElement(n) {
		tag := dom.TagName(n)
		if tag == "" || tag == "body" || tag == "html" {
			break
		}
		parts = append([]string{g.pathPart(n)}, parts...)
		joined := strings.Join(parts, " > ")
		if g.oracle.IsUnique(joined) {
			return joined
		}
		depth++
	}
	return strings.Join(parts, " > ")
}

// pathPart picks the per-level descriptor: id, preferred attribute, stable
// class, then positional fallback.
func (g *Generator) pathPart(n *html.Node) string {
	if id := dom.ID(n); id != "" && !g.classifier.IsDynamicID(id) {
		return "#" + escapeIdentifier(id)
	}
	tag := dom.TagName(n)
	for i, attr := range g.cfg.AttributePriority {
		if i >= maxPreferredPathAttrs {
			break
		}
		if v, ok := dom.Attr(n, attr); ok && v != "" {
			return fmt.Sprintf(`%s[%s="%s"]`, tag, attr, escapeAttributeValue(v))
		}
	}
	if stable := g.stableClasses(n); len(stable) > 0 {
		return tag + "." + escapeIdentifier(stable[0])
	}
	return fmt.Sprintf("%s:nth-of-type(%d)", tag, dom.NthOfTypeIndex(n))
}
