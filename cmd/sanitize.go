// cmd/sanitize.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/anchor-cli/internal/reporting"
	"github.com/xkilldash9x/anchor-cli/internal/selector"
)

var (
	sanitizeSelector string
	sanitizeOutput   string
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Validate selector text arriving from an untrusted source",
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter, closeFn, err := reporting.New(sanitizeOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		verdict := selector.ValidateSelector(sanitizeSelector)
		report := reporting.SanitizeReport{
			Selector: sanitizeSelector,
			Valid:    verdict.Valid,
			Reason:   verdict.Reason,
		}
		if sanitized, ok := selector.SanitizeSelector(sanitizeSelector); ok {
			report.Sanitized = sanitized
		}
		return reporter.Write(report)
	},
}

func init() {
	sanitizeCmd.Flags().StringVar(&sanitizeSelector, "selector", "", "selector text to validate (required)")
	sanitizeCmd.Flags().StringVar(&sanitizeOutput, "output", "", "report output path (default: stdout)")
	_ = sanitizeCmd.MarkFlagRequired("selector")
	rootCmd.AddCommand(sanitizeCmd)
}
