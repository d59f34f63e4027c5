// Package submit posts resolved form configs to their formResponse
// endpoint.
package submit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"formfill-cli/internal/form"
)

const defaultTimeout = 30 * time.Second

// Client submits form payloads over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option adjusts the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use it to
// point the submitter at a local server.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout caps how long a single submission may take.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with submissions.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// New creates a submission client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error describes a failed submission attempt. StatusCode is zero when
// the request never produced a response.
type Error struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submit to %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("submit to %s: %v", e.URL, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Submit posts the config's entry values as a form-encoded body. Any
// 2xx response counts as accepted; everything else is an *Error.
func (c *Client) Submit(ctx context.Context, cfg *form.Config) error {
	body := cfg.EntryValues().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, strings.NewReader(body))
	if err != nil {
		return &Error{URL: cfg.URL, Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: cfg.URL, Cause: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{URL: cfg.URL, StatusCode: resp.StatusCode}
	}
	return nil
}
