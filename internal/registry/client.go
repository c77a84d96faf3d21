package registry

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/logging"
	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
)

// Client fetches manifests from the HTTP registry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New creates a Client for the registry rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		userAgent:  branding.CLIName(),
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the registry base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ComponentURL returns the manifest URL for a component name.
func (c *Client) ComponentURL(name string) string {
	segs := strings.Split(name, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(segs, "/") + ".json"
}

// Fetch issues a single GET for <base>/<name>.json and decodes the manifest.
// There is no retry and no caching.
func (c *Client) Fetch(ctx context.Context, name string) (*manifest.Component, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.ComponentURL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Name: name, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching component", "name", name, "url", u)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Name: name, URL: u, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("registry responded", "name", name, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return nil, &FetchError{Name: name, URL: u, StatusCode: resp.StatusCode, NotFound: true}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Name: name, URL: u, StatusCode: resp.StatusCode}
	}

	comp, err := manifest.Decode(resp.Body)
	if err != nil {
		return nil, &FetchError{Name: name, URL: u, Err: err}
	}
	if comp.Name == "" {
		comp.Name = name
	}
	return comp, nil
}
