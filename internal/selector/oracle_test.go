// internal/selector/oracle_test.go
package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
)

const oraclePage = `<!DOCTYPE html>
<html><body>
  <div id="content">
    <p class="note">one</p>
    <p class="note">two</p>
    <button id="save" type="submit">Save</button>
  </div>
</body></html>`

func newOracleFixture(t *testing.T) (*dom.Document, *Oracle) {
	t.Helper()
	doc, err := dom.ParseString(oraclePage)
	require.NoError(t, err)
	return doc, NewOracle(doc)
}

func TestOracleIsUnique(t *testing.T) {
	_, o := newOracleFixture(t)

	tests := []struct {
		name     string
		selector string
		unique   bool
	}{
		{"Unique id", "#save", true},
		{"Unique attribute", `button[type="submit"]`, true},
		{"Multiple matches", "p.note", false},
		{"No matches", "#missing", false},
		{"Invalid syntax", "div[[[", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, o.IsUnique(tt.selector))
		})
	}
}

func TestOracleValidate(t *testing.T) {
	doc, o := newOracleFixture(t)

	save := doc.ElementsByTag("button")[0]
	notes := doc.ElementsByTag("p")

	assert.True(t, o.Validate("#save", save))
	assert.False(t, o.Validate("#save", notes[0]))

	// First match wins for non-unique selectors.
	assert.True(t, o.Validate("p.note", notes[0]))
	assert.False(t, o.Validate("p.note", notes[1]))

	assert.False(t, o.Validate("div[[[", save), "syntax errors degrade to false")
	assert.False(t, o.Validate("#save", nil))
}

func TestOracleQueryDocumentOrder(t *testing.T) {
	_, o := newOracleFixture(t)
	matches := o.Query("p.note")
	require.Len(t, matches, 2)
	assert.Equal(t, "one", dom.VisibleText(matches[0]))
	assert.Equal(t, "two", dom.VisibleText(matches[1]))
}
