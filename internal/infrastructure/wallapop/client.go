package wallapop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"wallapop-bridge/internal/domain/model"
)

// The upstream varies markup and anti-bot behavior on the user agent, so page
// fetches present themselves as a regular desktop browser.
const pageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client is the single gateway to the marketplace: the JSON API for search
// and lookups, the public item pages for hash resolution. It acts as an
// anti-corruption layer so the upstream's unstable shapes never leak past
// this package. Construct one per process and share it; it holds no mutable
// state beyond the HTTP clients.
type Client struct {
	api     *http.Client
	pages   *http.Client
	apiBase string
	apiHost string
	webBase string
	log     *zap.Logger
}

// Options configures a Client. ProxyURL, when set, routes every JSON API
// call through a forward proxy; page fetches always go direct.
type Options struct {
	APIBase  string
	WebBase  string
	ProxyURL string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// New builds the marketplace client.
func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	base, err := url.Parse(opts.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid api base %q: %w", opts.APIBase, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid api base %q: missing host", opts.APIBase)
	}

	apiTransport := http.DefaultTransport
	if opts.ProxyURL != "" {
		proxy, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		apiTransport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}

	return &Client{
		api:     &http.Client{Timeout: opts.Timeout, Transport: apiTransport},
		pages:   &http.Client{Timeout: opts.Timeout},
		apiBase: strings.TrimRight(opts.APIBase, "/"),
		apiHost: base.Host,
		webBase: strings.TrimRight(opts.WebBase, "/"),
		log:     opts.Logger,
	}, nil
}

// fetchJSON issues one GET against the JSON API. The Host override and the
// device-class marker are mandatory: without them the upstream rejects
// server-originated traffic. One attempt, no retry.
func (c *Client) fetchJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.apiBase + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Host = c.apiHost
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-DeviceOS", "0")

	return c.do(c.api, req)
}

// fetchPage fetches a public item page as rendered HTML.
func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", pageUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es,en-US;q=0.9,en;q=0.8")

	return c.do(c.pages, req)
}

func (c *Client) do(client *http.Client, req *http.Request) ([]byte, error) {
	res, err := client.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, &model.UpstreamError{Body: err.Error()}
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.log.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &model.UpstreamError{Status: res.StatusCode, Body: err.Error()}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.log.Warn("upstream rejected request",
			zap.String("url", req.URL.String()),
			zap.Int("status", res.StatusCode))
		return nil, &model.UpstreamError{Status: res.StatusCode, Body: string(body)}
	}

	c.log.Debug("upstream ok", zap.String("url", req.URL.String()), zap.Int("status", res.StatusCode))
	return body, nil
}

// canonicalItemURL derives the public page URL for a slug. Always derived,
// never taken from an upstream payload, so the value is deterministic.
func canonicalItemURL(webBase, slug string) string {
	return webBase + "/item/" + slug
}
