package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"visage.dev/pkg/visage/pkg/driver"
	"visage.dev/pkg/visage/pkg/driver/cdpdriver"
	"visage.dev/pkg/visage/pkg/driver/htmldriver"
	"visage.dev/pkg/visage/pkg/driver/pwdriver"
)

// Engines understood by LocalBrowserAdapter.
const (
	EnginePlaywright = "playwright"
	EngineChromedp   = "chromedp"
	EngineHTML       = "html"
)

// Engines lists the supported engine names.
func Engines() []string {
	return []string{EnginePlaywright, EngineChromedp, EngineHTML}
}

// Page is one loaded page and the driver that automates it.
type Page interface {
	Driver() driver.Driver
	Close() error
}

// BrowserAdapter opens pages. Every page owns its own browser session so
// pages can be used from different goroutines.
type BrowserAdapter interface {
	Open(ctx context.Context, url string) (Page, error)
}

// BrowserOptions configures LocalBrowserAdapter.
type BrowserOptions struct {
	Engine   string
	Browser  string // playwright browser type
	Headless bool
	Timeout  time.Duration
	ExecPath string // chrome binary for chromedp
}

// LocalBrowserAdapter starts local browsers, or parses documents for the
// html engine.
type LocalBrowserAdapter struct {
	opts   BrowserOptions
	client *http.Client
}

// NewLocalBrowserAdapter constructs a LocalBrowserAdapter.
func NewLocalBrowserAdapter(opts BrowserOptions) *LocalBrowserAdapter {
	return &LocalBrowserAdapter{opts: opts, client: &http.Client{Timeout: opts.Timeout}}
}

// Open implements BrowserAdapter.
func (a *LocalBrowserAdapter) Open(ctx context.Context, url string) (Page, error) {
	slog.Debug("opening page", "engine", a.opts.Engine, "url", url)

	switch a.opts.Engine {
	case EnginePlaywright:
		return a.openPlaywright(ctx, url)
	case EngineChromedp:
		return a.openChromedp(ctx, url)
	case EngineHTML, "":
		return a.openHTML(ctx, url)
	}

	return nil, fmt.Errorf("unknown engine %q (want one of %s)", a.opts.Engine, strings.Join(Engines(), ", "))
}

type page struct {
	driver driver.Driver
	close  func() error
}

func (p *page) Driver() driver.Driver { return p.driver }

func (p *page) Close() error {
	if p.close == nil {
		return nil
	}

	return p.close()
}

func (a *LocalBrowserAdapter) openPlaywright(ctx context.Context, url string) (Page, error) {
	session, err := pwdriver.Launch(pwdriver.LaunchOptions{
		Browser:  a.opts.Browser,
		Headless: a.opts.Headless,
		Timeout:  a.opts.Timeout,
	})
	if err != nil {
		return nil, err
	}

	if err := session.Navigate(ctx, url); err != nil {
		_ = session.Close()
		return nil, err
	}

	return &page{driver: session.Driver, close: session.Close}, nil
}

func (a *LocalBrowserAdapter) openChromedp(ctx context.Context, url string) (Page, error) {
	session, err := cdpdriver.Launch(cdpdriver.LaunchOptions{
		Headless: a.opts.Headless,
		Timeout:  a.opts.Timeout,
		ExecPath: a.opts.ExecPath,
	})
	if err != nil {
		return nil, err
	}

	if err := session.Navigate(ctx, url); err != nil {
		_ = session.Close()
		return nil, err
	}

	return &page{driver: session.Driver, close: session.Close}, nil
}

func (a *LocalBrowserAdapter) openHTML(ctx context.Context, url string) (Page, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		d, err := htmldriver.Open(strings.TrimPrefix(url, "file://"))
		if err != nil {
			return nil, err
		}

		return &page{driver: d}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	d, err := htmldriver.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	return &page{driver: d}, nil
}
