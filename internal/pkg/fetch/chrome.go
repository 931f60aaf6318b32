package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// ChromeBrowser runs a single headless Chrome process and hands out one
// tab per session.
type ChromeBrowser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc

	mu       sync.Mutex
	sessions int
}

// ChromeOptions configures the shared Chrome process.
type ChromeOptions struct {
	Headless  bool
	UserAgent string
}

// NewChromeBrowser starts the exec allocator. Sessions created from it
// share the process but not tabs or navigation state.
func NewChromeBrowser(ctx context.Context, opts ChromeOptions) *ChromeBrowser {
	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("window-size", "1920,1080"),
	)
	if opts.UserAgent != "" {
		execOpts = append(execOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOpts...)
	return &ChromeBrowser{allocCtx: allocCtx, allocCancel: cancel}
}

// NewSession opens a fresh tab.
func (b *ChromeBrowser) NewSession(ctx context.Context) (Session, error) {
	tabCtx, cancel := chromedp.NewContext(b.allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		if os.Getenv("ODDSWEEP_CHROME_DEBUG") == "1" {
			fmt.Printf("chromedp: "+format+"\n", v...)
		}
	}))

	// Force the tab to actually start so Close releases a real target.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("start chrome tab: %w", err)
	}

	b.mu.Lock()
	b.sessions++
	n := b.sessions
	b.mu.Unlock()
	slog.Debug("chrome session opened", "session", n)

	return &chromeSession{ctx: tabCtx, cancel: cancel}, nil
}

// Close shuts the Chrome process down.
func (b *ChromeBrowser) Close() error {
	b.allocCancel()
	return nil
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (s *chromeSession) WaitForAll(ctx context.Context, selector string, policy RetryPolicy) ([]string, error) {
	var out []string
	err := waitWithRetries(ctx, policy,
		func(attemptCtx context.Context) (bool, error) {
			// The wait runs on the tab context but is bounded by the
			// attempt deadline.
			waitCtx, cancel := mergeDeadline(s.ctx, attemptCtx)
			defer cancel()

			if err := chromedp.Run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
				return false, err
			}

			var nodes []*cdp.Node
			if err := chromedp.Run(waitCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll)); err != nil {
				return false, err
			}
			if len(nodes) == 0 {
				return false, nil
			}

			htmls := make([]string, 0, len(nodes))
			for _, n := range nodes {
				var h string
				if err := chromedp.Run(waitCtx, chromedp.OuterHTML([]cdp.NodeID{n.NodeID}, &h, chromedp.ByNodeID)); err != nil {
					return false, err
				}
				htmls = append(htmls, h)
			}
			out = htmls
			return true, nil
		},
		func(refreshCtx context.Context) error {
			slog.Debug("refreshing page before retry", "selector", selector)
			return chromedp.Run(s.ctx, chromedp.Reload())
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *chromeSession) WaitFor(ctx context.Context, selector string, policy RetryPolicy) (string, error) {
	all, err := s.WaitForAll(ctx, selector, policy)
	if err != nil {
		return "", err
	}
	return all[0], nil
}

func (s *chromeSession) Click(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := chromedp.Run(s.ctx, chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

func (s *chromeSession) Close() error {
	s.cancel()
	return nil
}

// mergeDeadline returns the tab context bounded by the attempt context's
// deadline, so one slow wait cannot outlive its retry budget.
func mergeDeadline(tab, attempt context.Context) (context.Context, context.CancelFunc) {
	if d, ok := attempt.Deadline(); ok {
		return context.WithDeadline(tab, d)
	}
	return context.WithCancel(tab)
}
