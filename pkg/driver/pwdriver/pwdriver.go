// Package pwdriver drives a real browser page through playwright-go.
package pwdriver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"

	"visage.dev/pkg/visage/pkg/driver"
)

// Driver wraps one playwright page.
type Driver struct {
	page playwright.Page
}

// New wraps an existing page.
func New(page playwright.Page) *Driver {
	return &Driver{page: page}
}

// Page returns the wrapped page.
func (d *Driver) Page() playwright.Page {
	return d.page
}

// Root implements driver.Driver.
func (d *Driver) Root(ctx context.Context) (driver.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &element{container: pageContainer{page: d.page}, page: d.page}, nil
}

// Navigate loads url in the page and waits for the load event.
func (d *Driver) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := d.page.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}

	return nil
}

// LaunchOptions configures Launch.
type LaunchOptions struct {
	Browser  string // "chromium" (default), "firefox" or "webkit"
	Headless bool
	Timeout  time.Duration
	Install  bool // install browsers before starting
}

// Session owns the playwright process, browser and page started by Launch.
type Session struct {
	*Driver

	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts playwright, a browser and a single page.
func Launch(opts LaunchOptions) (*Session, error) {
	if opts.Install {
		if err := playwright.Install(); err != nil {
			return nil, fmt.Errorf("failed to install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType := pw.Chromium

	switch opts.Browser {
	case "", "chromium":
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		_ = pw.Stop()
		return nil, fmt.Errorf("unknown browser %q", opts.Browser)
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", browserType.Name(), err)
	}

	page, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()

		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if opts.Timeout > 0 {
		page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))
	}

	slog.Debug("playwright session started", "browser", browserType.Name(), "headless", opts.Headless)

	return &Session{Driver: New(page), pw: pw, browser: browser}, nil
}

// Close shuts the browser and the playwright process down.
func (s *Session) Close() error {
	var errs []error

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Supports implements driver.Operator.
func (d *Driver) Supports(op string) bool {
	return d.operations().Supports(op)
}

// Invoke implements driver.Operator.
func (d *Driver) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return d.operations().Invoke(ctx, op, args...)
}

func (d *Driver) operations() driver.Operations {
	return driver.Operations{
		"screenshot": func(_ context.Context, _ ...any) (any, error) {
			return d.page.Screenshot(playwright.PageScreenshotOptions{FullPage: playwright.Bool(true)})
		},
		"close": func(_ context.Context, _ ...any) (any, error) {
			return nil, d.page.Close()
		},
	}
}
