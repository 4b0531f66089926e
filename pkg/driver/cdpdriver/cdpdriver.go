// Package cdpdriver drives Chrome over the DevTools protocol with chromedp.
//
// Controls hold DOM node ids, so a control resolved before a navigation is
// stale afterwards; resolve names again after the page changes.
package cdpdriver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"visage.dev/pkg/visage/pkg/driver"
)

// Driver runs actions in one chromedp browser context (one tab).
type Driver struct {
	tab     context.Context
	timeout time.Duration
}

// New wraps a context created by chromedp.NewContext.
func New(tab context.Context) *Driver {
	return &Driver{tab: tab}
}

// Root implements driver.Driver.
func (d *Driver) Root(ctx context.Context) (driver.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &element{driver: d}, nil
}

// Navigate loads url in the tab and waits for the load event.
func (d *Driver) Navigate(ctx context.Context, url string) error {
	if err := d.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	return nil
}

// run executes actions in the tab, aborting them when ctx is done.
func (d *Driver) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)

	if d.timeout > 0 {
		runCtx, cancel = context.WithTimeout(d.tab, d.timeout)
	} else {
		runCtx, cancel = context.WithCancel(d.tab)
	}
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// LaunchOptions configures Launch.
type LaunchOptions struct {
	Headless bool
	Timeout  time.Duration
	ExecPath string
}

// Session owns the allocator and tab started by Launch.
type Session struct {
	*Driver

	cancelAlloc context.CancelFunc
	cancelTab   context.CancelFunc
}

// Launch starts a local Chrome and opens one tab.
func Launch(opts LaunchOptions) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	tab, cancelTab := chromedp.NewContext(allocCtx)

	// the first Run starts the browser
	if err := chromedp.Run(tab); err != nil {
		cancelTab()
		cancelAlloc()

		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	slog.Debug("chromedp session started", "headless", opts.Headless)

	d := New(tab)
	d.timeout = opts.Timeout

	return &Session{Driver: d, cancelAlloc: cancelAlloc, cancelTab: cancelTab}, nil
}

// Close shuts the tab and browser down.
func (s *Session) Close() error {
	s.cancelTab()
	s.cancelAlloc()

	return nil
}

// Supports implements driver.Operator.
func (d *Driver) Supports(op string) bool {
	return d.operations().Supports(op)
}

// Invoke implements driver.Operator.
func (d *Driver) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	return d.operations().Invoke(ctx, op, args...)
}

func (d *Driver) operations() driver.Operations {
	return driver.Operations{
		"screenshot": func(ctx context.Context, _ ...any) (any, error) {
			var buf []byte
			if err := d.run(ctx, chromedp.FullScreenshot(&buf, 90)); err != nil {
				return nil, err
			}

			return buf, nil
		},
	}
}
