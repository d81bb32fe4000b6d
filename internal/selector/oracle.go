// internal/selector/oracle.go
package selector

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
)

// Oracle answers uniqueness questions by executing selectors against the
// live document. Selector syntax errors are swallowed and reported as "no
// match"; they must never propagate to callers.
type Oracle struct {
	doc *dom.Document
}

// NewOracle binds an oracle to a document.
func NewOracle(doc *dom.Document) *Oracle {
	return &Oracle{doc: doc}
}

// IsUnique reports whether the selector matches exactly one element.
func (o *Oracle) IsUnique(selectorText string) bool {
	return len(o.Query(selectorText)) == 1
}

// Validate reports whether the selector's first match is the given element.
// This is how a stored selector is confirmed to still point at its anchor.
func (o *Oracle) Validate(selectorText string, el *html.Node) bool {
	if el == nil {
		return false
	}
	matches := o.Query(selectorText)
	return len(matches) > 0 && matches[0] == el
}

// Query executes the selector and returns matches in document order. An
// uncompilable selector yields nil.
func (o *Oracle) Query(selectorText string) []*html.Node {
	sel, err := cascadia.Compile(selectorText)
	if err != nil {
		return nil
	}
	return o.doc.FindMatcher(sel)
}
