// internal/selector/strategies_test.go
package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
	"github.com/xkilldash9x/anchor-cli/internal/heuristics"
)

const strategiesPage = `<!DOCTYPE html>
<html><body>
  <nav id="main-nav">
    <a href="/home" class="nav-link">Home</a>
  </nav>
  <form id="ember123" name="signup">
    <input type="email" name="email">
    <button id="login-button" class="btn btn-primary">Log in</button>
  </form>
  <ul class="menu">
    <li>alpha</li>
    <li>beta</li>
    <li>gamma</li>
  </ul>
</body></html>`

func newGeneratorFixture(t *testing.T, page string, cfg Config) (*dom.Document, *Generator) {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	classifier := heuristics.NewClassifier(heuristics.DefaultRules())
	oracle := NewOracle(doc)
	return doc, NewGenerator(classifier, oracle, cfg, nil)
}

func firstByID(t *testing.T, doc *dom.Document, id string) *html.Node {
	t.Helper()
	for _, n := range doc.AllElements() {
		if dom.ID(n) == id {
			return n
		}
	}
	t.Fatalf("no element with id %q", id)
	return nil
}

func TestGenerateStrategyOrder(t *testing.T) {
	doc, g := newGeneratorFixture(t, strategiesPage, DefaultConfig())
	oracle := NewOracle(doc)

	tests := []struct {
		name     string
		pick     func() *html.Node
		expected string
	}{
		{
			name:     "Stable id wins",
			pick:     func() *html.Node { return firstByID(t, doc, "login-button") },
			expected: "#login-button",
		},
		{
			name:     "Dynamic id falls through to attributes",
			pick:     func() *html.Node { return firstByID(t, doc, "ember123") },
			expected: `form[name="signup"]`,
		},
		{
			name:     "Named input prefers its name attribute",
			pick:     func() *html.Node { return doc.ElementsByTag("input")[0] },
			expected: `input[name="email"]`,
		},
		{
			name:     "Class strategy for plain links",
			pick:     func() *html.Node { return doc.ElementsByTag("a")[0] },
			expected: "a.nav-link",
		},
		{
			name:     "Nth-of-type under a short parent",
			pick:     func() *html.Node { return doc.ElementsByTag("li")[1] },
			expected: "ul.menu > li:nth-of-type(2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := tt.pick()
			sel := g.Generate(el)
			assert.Equal(t, tt.expected, sel)
			assert.True(t, oracle.Validate(sel, el), "generated selector must resolve back to the element")
		})
	}
}

func TestGenerateNilAndNonElement(t *testing.T) {
	_, g := newGeneratorFixture(t, strategiesPage, DefaultConfig())
	assert.Equal(t, "", g.Generate(nil))
	assert.Equal(t, "", g.Generate(&html.Node{Type: html.TextNode, Data: "text"}))
}

const pathPage = `<!DOCTYPE html>
<html><body>
  <div><span>a</span><span>b</span></div>
  <div><span>c</span><span>d</span></div>
</body></html>`

func TestGeneratePathFallback(t *testing.T) {
	doc, g := newGeneratorFixture(t, pathPage, DefaultConfig())
	oracle := NewOracle(doc)

	// Second span of the first div: no id, attrs, or classes anywhere, and
	// "div > span:nth-of-type(2)" hits both divs, so only the positional
	// path disambiguates.
	spans := doc.ElementsByTag("span")
	sel := g.Generate(spans[1])
	assert.Equal(t, "div:nth-of-type(1) > span:nth-of-type(2)", sel)
	assert.True(t, oracle.Validate(sel, spans[1]))
}

func TestGeneratePathDepthCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPathDepth = 1
	doc, g := newGeneratorFixture(t, pathPage, cfg)

	// With the walk capped at one level the path never reaches the
	// disambiguating ancestor; the best remaining path is returned even
	// though it is ambiguous.
	spans := doc.ElementsByTag("span")
	sel := g.Generate(spans[1])
	assert.Equal(t, "span:nth-of-type(2)", sel)
	assert.False(t, NewOracle(doc).IsUnique(sel))
}

func TestGenerateFallbackSelectors(t *testing.T) {
	doc, g := newGeneratorFixture(t, strategiesPage, DefaultConfig())

	button := firstByID(t, doc, "login-button")
	fallbacks := g.GenerateFallbackSelectors(button)

	require.NotEmpty(t, fallbacks)
	assert.Equal(t, "#login-button", fallbacks[0], "most stable strategy leads")
	assert.Contains(t, fallbacks, "button.btn")
	assert.Contains(t, fallbacks, "button.btn.btn-primary")
	assert.Contains(t, fallbacks, "form > button:nth-of-type(1)")

	seen := make(map[string]int)
	for _, sel := range fallbacks {
		seen[sel]++
	}
	for sel, n := range seen {
		assert.Equal(t, 1, n, "duplicate fallback %q", sel)
	}

	assert.Nil(t, g.GenerateFallbackSelectors(nil))
}

func TestGenerateEscapesHostileIdentifiers(t *testing.T) {
	page := `<html><body><div id="user.name:main">x</div><div>y</div></body></html>`
	doc, g := newGeneratorFixture(t, page, DefaultConfig())
	oracle := NewOracle(doc)

	target := firstByID(t, doc, "user.name:main")
	sel := g.Generate(target)
	assert.Equal(t, `#user\.name\:main`, sel)
	assert.True(t, oracle.Validate(sel, target))
}

func TestStableClassesDropDynamicNoise(t *testing.T) {
	page := `<html><body>
	  <p class="css-1q2w3e note x">first</p>
	  <p class="note">second</p>
	</body></html>`
	doc, g := newGeneratorFixture(t, page, DefaultConfig())

	stable := g.stableClasses(doc.ElementsByTag("p")[0])
	assert.Equal(t, []string{"note"}, stable, "generated and single-char classes are discarded")
}
