// internal/dom/element.go
package dom

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// TagName returns the lowercase tag name of an element node, or "" for nil
// and non-element nodes.
func TagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute. Attribute names are
// compared case-insensitively, per HTML.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the element's id attribute, or "".
func ID(n *html.Node) string {
	v, _ := Attr(n, "id")
	return v
}

// Classes returns the element's class list in source order.
func Classes(n *html.Node) []string {
	v, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// HasClass reports whether the element carries the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// VisibleText returns the element's text content with whitespace collapsed.
func VisibleText(n *html.Node) string {
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(htmlquery.InnerText(n)), " ")
}

// ParentElement returns the nearest element ancestor, skipping non-element
// parents, or nil at the top of the tree.
func ParentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// NthOfTypeIndex returns the element's 1-based position among siblings with
// the same tag name, matching CSS :nth-of-type semantics. Returns 0 for nil
// or non-element nodes.
func NthOfTypeIndex(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	tag := TagName(n)
	index := 1
	for prev := n.PrevSibling; prev != nil; prev = prev.PrevSibling {
		if prev.Type == html.ElementNode && TagName(prev) == tag {
			index++
		}
	}
	return index
}
