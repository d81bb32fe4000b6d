// internal/selector/engine.go

// Package selector derives durable CSS selectors for elements in untrusted,
// mutable HTML trees, and recovers the most plausible element when a stored
// selector stops resolving. The engine is a stateless function library over
// the live tree: it holds only immutable configuration, never mutates the
// document, and never lets a selector-syntax error escape to callers.
package selector

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
	"github.com/xkilldash9x/anchor-cli/internal/heuristics"
)

// Engine is the facade over the generation and resolution pipeline for one
// document. Construction is cheap; callers create a fresh engine per parsed
// tree and discard it afterwards.
type Engine struct {
	doc        *dom.Document
	classifier *heuristics.Classifier
	oracle     *Oracle
	generator  *Generator
	matcher    *Matcher
}

// NewEngine binds an engine to a document with the given configuration.
func NewEngine(doc *dom.Document, cfg Config, rules heuristics.Rules, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	classifier := heuristics.NewClassifier(rules)
	oracle := NewOracle(doc)
	return &Engine{
		doc:        doc,
		classifier: classifier,
		oracle:     oracle,
		generator:  NewGenerator(classifier, oracle, cfg, log),
		matcher:    NewMatcher(doc, classifier, cfg, log),
	}
}

// Generate derives the most stable uniquely-resolving selector for the
// element. See Generator.Generate.
func (e *Engine) Generate(el *html.Node) string {
	return e.generator.Generate(el)
}

// GenerateFallbackSelectors returns every strategy's candidate plus the
// structural path, deduplicated, in preference order.
func (e *Engine) GenerateFallbackSelectors(el *html.Node) []string {
	return e.generator.GenerateFallbackSelectors(el)
}

// IsUnique reports whether the selector matches exactly one element.
func (e *Engine) IsUnique(selectorText string) bool {
	return e.oracle.IsUnique(selectorText)
}

// Validate reports whether the selector's first match is the given element.
func (e *Engine) Validate(selectorText string, el *html.Node) bool {
	return e.oracle.Validate(selectorText, el)
}

// Query executes the selector, returning matches in document order.
func (e *Engine) Query(selectorText string) []*html.Node {
	return e.oracle.Query(selectorText)
}

// FindBestMatch fuzzily resolves a stored selector that no longer matches.
// Nil means "no confident match - treat as orphaned".
func (e *Engine) FindBestMatch(selectorText string, meta Metadata) *html.Node {
	return e.matcher.FindBestMatch(selectorText, meta)
}

// IsDynamicID exposes the classifier verdict for callers that want to judge
// raw identifier stability.
func (e *Engine) IsDynamicID(value string) bool {
	return e.classifier.IsDynamicID(value)
}
