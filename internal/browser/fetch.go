// internal/browser/fetch.go

// Package browser provides the headless page snapshot used when anchor-cli
// is pointed at a URL instead of a saved HTML file.
package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/anchor-cli/internal/config"
)

// Fetcher captures the rendered HTML of a live page with a short-lived
// headless Chrome instance.
type Fetcher struct {
	cfg config.BrowserConfig
	log *zap.Logger
}

// NewFetcher creates a fetcher. The browser process is launched per
// Snapshot call and torn down with it.
func NewFetcher(cfg config.BrowserConfig, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{cfg: cfg, log: log.Named("browser")}
}

// Snapshot navigates to the URL, waits for the page to settle, and returns
// the serialized document.
func (f *Fetcher) Snapshot(ctx context.Context, url string) (string, error) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.cfg.Headless),
	)
	for _, arg := range f.cfg.Args {
		opts = append(opts, chromedp.Flag(arg, true))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	if f.cfg.NavigationTimeout > 0 {
		var cancelTimeout context.CancelFunc
		taskCtx, cancelTimeout = context.WithTimeout(taskCtx, f.cfg.NavigationTimeout)
		defer cancelTimeout()
	}

	f.log.Debug("Fetching page snapshot", zap.String("url", url))

	var outerHTML string
	actions := []chromedp.Action{chromedp.Navigate(url)}
	if f.cfg.PostLoadWait > 0 {
		actions = append(actions, chromedp.Sleep(f.cfg.PostLoadWait))
	}
	actions = append(actions, chromedp.OuterHTML("html", &outerHTML))

	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return "", fmt.Errorf("failed to snapshot %s: %w", url, err)
	}
	return outerHTML, nil
}
