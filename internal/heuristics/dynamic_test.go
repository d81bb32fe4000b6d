// internal/heuristics/dynamic_test.go
package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDynamicID(t *testing.T) {
	c := NewClassifier(DefaultRules())

	tests := []struct {
		name    string
		value   string
		dynamic bool
	}{
		{"Empty", "", true},
		{"Whitespace only", "   ", true},
		{"Ember runtime id", "ember482", true},
		{"React generated", "react-3fa", true},
		{"Angular generated", "ng-1ab2c", true},
		{"Vue generated", "vue-component-12", true},
		{"Styled components", "sc-bdVaJa", true},
		{"CSS-in-JS hash", "css-1q2w3e", true},
		{"Webpack artifact", "webpack-dev-server", true},
		{"UUID", "550e8400-e29b-41d4-a716-446655440000", true},
		{"Raw hex UUID", "550e8400e29b41d4a716446655440000", true},
		{"Pure numeric", "12345", true},
		{"Leading underscore", "_foo", true},
		{"Semantic id", "login-button", false},
		{"Semantic nav", "main-nav", false},
		{"Semantic with digits", "step2-form", false},
		{"Single word", "sidebar", false},
		{"Screen is not styled-components", "screen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dynamic, c.IsDynamicID(tt.value), "value: %q", tt.value)
		})
	}
}

func TestCompilePatternsSkipsInvalid(t *testing.T) {
	rules := CompilePatterns([]string{`^app-\d+$`, `([`})
	c := NewClassifier(rules)

	assert.True(t, c.IsDynamicID("app-42"))
	assert.False(t, c.IsDynamicID("app-header"))
}

func TestNewClassifierEmptyRulesFallsBack(t *testing.T) {
	c := NewClassifier(Rules{})
	assert.True(t, c.IsDynamicID("ember1"))
}
