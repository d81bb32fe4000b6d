// internal/dom/document.go
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a read-only handle over a parsed HTML tree. The underlying
// tree is owned by the caller; nothing in this package mutates it.
type Document struct {
	doc  *goquery.Document
	root *html.Node
}

// Parse builds a Document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if len(doc.Selection.Nodes) == 0 {
		return nil, fmt.Errorf("parsed document has no root node")
	}
	return &Document{doc: doc, root: doc.Selection.Nodes[0]}, nil
}

// ParseString builds a Document from raw HTML text.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the <body> element, or nil if the tree somehow lacks one.
func (d *Document) Body() *html.Node {
	sel := d.doc.Find("body")
	if len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// FindMatcher runs a pre-compiled matcher against the document and returns
// the matching nodes in document order.
func (d *Document) FindMatcher(m goquery.Matcher) []*html.Node {
	return d.doc.FindMatcher(m).Nodes
}

// AllElements returns every element node in document order.
func (d *Document) AllElements() []*html.Node {
	return d.collect(func(n *html.Node) bool { return true })
}

// ElementsByTag returns all elements with the given tag name, in document
// order. The comparison is case-insensitive.
func (d *Document) ElementsByTag(tag string) []*html.Node {
	tag = strings.ToLower(tag)
	return d.collect(func(n *html.Node) bool { return TagName(n) == tag })
}

func (d *Document) collect(keep func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && keep(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}
