// cmd/generate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/anchor-cli/internal/reporting"
	"github.com/xkilldash9x/anchor-cli/internal/selector"
)

var (
	generateInput  string
	generateURL    string
	generateTarget string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive a durable selector for a target element",
	Long: `Generate resolves the --target probe selector against the page, then
derives the most stable uniquely-resolving selector for that element along
with fallback candidates and a confidence score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		probe, ok := selector.SanitizeSelector(generateTarget)
		if !ok {
			return fmt.Errorf("target selector failed validation: %s",
				selector.ValidateSelector(generateTarget).Reason)
		}

		doc, err := loadDocument(cmd.Context(), generateInput, generateURL)
		if err != nil {
			return err
		}
		engine := newEngine(doc)

		matches := engine.Query(probe)
		if len(matches) == 0 {
			return fmt.Errorf("target selector %q matched no elements", probe)
		}
		target := matches[0]

		sel := engine.Generate(target)
		report := reporting.GenerateReport{
			Target:     reporting.Summarize(target),
			Selector:   sel,
			Fallbacks:  engine.GenerateFallbackSelectors(target),
			Confidence: selector.ConfidenceScore(sel),
		}

		reporter, closeFn, err := reporting.New(generateOutput)
		if err != nil {
			return err
		}
		defer closeFn()
		return reporter.Write(report)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateInput, "input", "", "path to a saved HTML file")
	generateCmd.Flags().StringVar(&generateURL, "url", "", "page URL to snapshot with headless Chrome")
	generateCmd.Flags().StringVar(&generateTarget, "target", "", "probe selector identifying the element to anchor (required)")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "report output path (default: stdout)")
	_ = generateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(generateCmd)
}
