// cmd/score.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/anchor-cli/internal/reporting"
	"github.com/xkilldash9x/anchor-cli/internal/selector"
)

var (
	scoreSelector string
	scoreOutput   string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rate a selector's expected stability from its text alone",
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter, closeFn, err := reporting.New(scoreOutput)
		if err != nil {
			return err
		}
		defer closeFn()
		return reporter.Write(reporting.ScoreReport{
			Selector:   scoreSelector,
			Confidence: selector.ConfidenceScore(scoreSelector),
		})
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreSelector, "selector", "", "selector text to score (required)")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", "report output path (default: stdout)")
	_ = scoreCmd.MarkFlagRequired("selector")
	rootCmd.AddCommand(scoreCmd)
}
