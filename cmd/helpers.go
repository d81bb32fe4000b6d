// cmd/helpers.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/xkilldash9x/anchor-cli/internal/browser"
	"github.com/xkilldash9x/anchor-cli/internal/dom"
	"github.com/xkilldash9x/anchor-cli/internal/heuristics"
	"github.com/xkilldash9x/anchor-cli/internal/observability"
	"github.com/xkilldash9x/anchor-cli/internal/selector"
)

// loadDocument resolves the page source for a command: a saved HTML file via
// --input, or a live snapshot via --url.
func loadDocument(ctx context.Context, inputPath, url string) (*dom.Document, error) {
	switch {
	case inputPath != "" && url != "":
		return nil, fmt.Errorf("--input and --url are mutually exclusive")
	case inputPath != "":
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", inputPath, err)
		}
		defer f.Close()
		return dom.Parse(f)
	case url != "":
		fetcher := browser.NewFetcher(cfg.Browser, observability.GetLogger())
		page, err := fetcher.Snapshot(ctx, url)
		if err != nil {
			return nil, err
		}
		return dom.ParseString(page)
	default:
		return nil, fmt.Errorf("either --input or --url is required")
	}
}

// newEngine builds a selector engine for the document from the loaded
// configuration.
func newEngine(doc *dom.Document) *selector.Engine {
	engineCfg := selector.DefaultConfig()
	if cfg != nil {
		if cfg.Engine.MaxCandidates > 0 {
			engineCfg.MaxCandidates = cfg.Engine.MaxCandidates
		}
		if cfg.Engine.MaxPathDepth > 0 {
			engineCfg.MaxPathDepth = cfg.Engine.MaxPathDepth
		}
		if cfg.Engine.MatchThreshold > 0 {
			engineCfg.MatchThreshold = cfg.Engine.MatchThreshold
		}
		if len(cfg.Engine.AttributePriority) > 0 {
			engineCfg.AttributePriority = cfg.Engine.AttributePriority
		}
	}

	var extraPatterns []string
	if cfg != nil {
		extraPatterns = cfg.Engine.DynamicIDPatterns
	}
	rules := heuristics.CompilePatterns(extraPatterns)

	return selector.NewEngine(doc, engineCfg, rules, observability.GetLogger())
}
