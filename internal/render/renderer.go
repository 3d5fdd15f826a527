package render

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"denizyil/pricewatch/helpers"
	"denizyil/pricewatch/logger"
	apperrors "denizyil/pricewatch/pkg/errors"
)

// Renderer turns a product URL into a DOM-queryable document. Pages are
// rendered in headless Chrome so client-side price widgets are present in
// the snapshot; when no browser can be launched the renderer degrades to a
// plain HTTP fetch with browser-like headers.
type Renderer struct {
	browser     *rod.Browser
	navTimeout  time.Duration
	settleDelay time.Duration
}

// Options configures the renderer.
type Options struct {
	// BrowserBin is an explicit Chromium binary; empty means auto-detect.
	BrowserBin string
	// NavTimeout bounds navigation plus load wait for one page.
	NavTimeout time.Duration
	// SettleDelay is the extra wait after load for client-side price
	// widgets to render.
	SettleDelay time.Duration
}

// NewRenderer launches a headless browser. A failed launch is not fatal:
// the renderer logs the problem and falls back to plain HTTP fetching.
func NewRenderer(opts Options) *Renderer {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = 15 * time.Second
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = time.Second
	}

	r := &Renderer{
		navTimeout:  opts.NavTimeout,
		settleDelay: opts.SettleDelay,
	}

	log := logger.ForRenderer()

	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false)
	if opts.BrowserBin != "" {
		l = l.Bin(opts.BrowserBin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		log.Warn().Err(err).Msg("Could not launch browser, falling back to plain HTTP fetch")
		return r
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		log.Warn().Err(err).Msg("Could not connect to browser, falling back to plain HTTP fetch")
		return r
	}

	log.Info().Str("control_url", controlURL).Msg("Browser launched")
	r.browser = browser
	return r
}

// Render navigates to the URL and snapshots the rendered HTML into a
// goquery document.
func (r *Renderer) Render(ctx context.Context, url string) (*goquery.Document, error) {
	if r.browser == nil {
		return r.renderHTTP(url)
	}

	page, err := stealth.Page(r.browser)
	if err != nil {
		return nil, apperrors.NewNetwork("", "failed to open page", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.navTimeout)

	if err := page.Navigate(url); err != nil {
		return nil, apperrors.NewNetwork("", "navigation failed: "+url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, apperrors.NewNetwork("", "page load timed out: "+url, err)
	}

	// Client-side price widgets usually render shortly after load.
	time.Sleep(r.settleDelay)

	html, err := page.HTML()
	if err != nil {
		return nil, apperrors.NewNetwork("", "could not capture page content: "+url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, apperrors.NewParsing("", "could not parse page content: "+url, err)
	}
	return doc, nil
}

func (r *Renderer) renderHTTP(url string) (*goquery.Document, error) {
	body, err := helpers.FetchWithRandomHeaders(url)
	if err != nil {
		return nil, apperrors.NewNetwork("", "fetch failed: "+url, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, apperrors.NewParsing("", "could not parse page content: "+url, err)
	}
	return doc, nil
}

// Close shuts the browser down.
func (r *Renderer) Close() {
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			logger.ForRenderer().Warn().Err(err).Msg("Browser close failed")
		}
	}
}
