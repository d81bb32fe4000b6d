// cmd/match.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/anchor-cli/internal/reporting"
	"github.com/xkilldash9x/anchor-cli/internal/selector"
)

var (
	matchInput    string
	matchURL      string
	matchSelector string
	matchText     string
	matchOutput   string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Re-anchor a stored selector against the current page",
	Long: `Match sanitizes a stored selector, then reports whether it still
resolves exactly, can be recovered by fuzzy matching, or is orphaned.
For fuzzy recoveries a freshly generated replacement selector is included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := reporting.MatchReport{Selector: matchSelector}

		reporter, closeFn, err := reporting.New(matchOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		// Stored selectors may come from another principal; they cross the
		// sanitization boundary before touching the document.
		sanitized, ok := selector.SanitizeSelector(matchSelector)
		if !ok {
			report.Outcome = reporting.OutcomeOrphaned
			return reporter.Write(report)
		}

		doc, err := loadDocument(cmd.Context(), matchInput, matchURL)
		if err != nil {
			return err
		}
		engine := newEngine(doc)

		if engine.IsUnique(sanitized) {
			el := engine.Query(sanitized)[0]
			summary := reporting.Summarize(el)
			report.Outcome = reporting.OutcomeExact
			report.Element = &summary
			report.Confidence = selector.ConfidenceScore(sanitized)
			return reporter.Write(report)
		}

		meta := selector.Metadata{TextContent: matchText}
		if el := engine.FindBestMatch(sanitized, meta); el != nil {
			summary := reporting.Summarize(el)
			replacement := engine.Generate(el)
			report.Outcome = reporting.OutcomeFuzzy
			report.Element = &summary
			report.Replacement = replacement
			report.Confidence = selector.ConfidenceScore(replacement)
			return reporter.Write(report)
		}

		report.Outcome = reporting.OutcomeOrphaned
		return reporter.Write(report)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchInput, "input", "", "path to a saved HTML file")
	matchCmd.Flags().StringVar(&matchURL, "url", "", "page URL to snapshot with headless Chrome")
	matchCmd.Flags().StringVar(&matchSelector, "selector", "", "stored selector to re-anchor (required)")
	matchCmd.Flags().StringVar(&matchText, "text", "", "anchor text hint recorded at generation time")
	matchCmd.Flags().StringVar(&matchOutput, "output", "", "report output path (default: stdout)")
	_ = matchCmd.MarkFlagRequired("selector")
	rootCmd.AddCommand(matchCmd)
}
