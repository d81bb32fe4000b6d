// internal/reporting/reporter.go

// Package reporting renders engine results as JSON for the CLI surface.
package reporting

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/html"

	"github.com/xkilldash9x/anchor-cli/internal/dom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// summaryTextLimit truncates element text in reports.
const summaryTextLimit = 64

// Match outcomes reported by the match command.
const (
	OutcomeExact    = "exact"
	OutcomeFuzzy    = "fuzzy"
	OutcomeOrphaned = "orphaned"
)

// ElementSummary is the reportable identity of a matched or targeted
// element.
type ElementSummary struct {
	Tag     string   `json:"tag"`
	ID      string   `json:"id,omitempty"`
	Classes []string `json:"classes,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// GenerateReport is the output of the generate command.
type GenerateReport struct {
	Target     ElementSummary `json:"target"`
	Selector   string         `json:"selector"`
	Fallbacks  []string       `json:"fallbacks,omitempty"`
	Confidence int            `json:"confidence"`
}

// MatchReport is the output of the match command.
type MatchReport struct {
	Selector    string          `json:"selector"`
	Outcome     string          `json:"outcome"`
	Element     *ElementSummary `json:"element,omitempty"`
	Replacement string          `json:"replacement,omitempty"`
	Confidence  int             `json:"confidence,omitempty"`
}

// ScoreReport is the output of the score command.
type ScoreReport struct {
	Selector   string `json:"selector"`
	Confidence int    `json:"confidence"`
}

// SanitizeReport is the output of the sanitize command.
type SanitizeReport struct {
	Selector  string `json:"selector"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Sanitized string `json:"sanitized,omitempty"`
}

// Summarize extracts the reportable identity of an element. Text is
// truncated to keep reports skimmable.
func Summarize(n *html.Node) ElementSummary {
	text := dom.VisibleText(n)
	if r := []rune(text); len(r) > summaryTextLimit {
		text = string(r[:summaryTextLimit]) + "..."
	}
	return ElementSummary{
		Tag:     dom.TagName(n),
		ID:      dom.ID(n),
		Classes: dom.Classes(n),
		Text:    text,
	}
}

// Reporter writes indented JSON documents to its output.
type Reporter struct {
	w io.Writer
}

// New creates a reporter for the given output path; "" or "stdout" writes
// to standard output.
func New(outputPath string) (*Reporter, func() error, error) {
	if outputPath == "" || outputPath == "stdout" {
		return &Reporter{w: os.Stdout}, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return &Reporter{w: f}, f.Close, nil
}

// NewWriter creates a reporter over an arbitrary writer.
func NewWriter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Write renders one report document.
func (r *Reporter) Write(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
