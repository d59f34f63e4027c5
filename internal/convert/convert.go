// Package convert turns a live Google Form into a config file skeleton.
// It fetches the public form page, recovers the entry keys and question
// types, and renders a config the fill command can consume.
package convert

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"formfill-cli/internal/form"
)

const defaultTimeout = 30 * time.Second

// Converter fetches form pages and renders config skeletons.
type Converter struct {
	httpClient *http.Client
	userAgent  string
	generator  *Generator
}

// Option adjusts the converter.
type Option func(*Converter)

// WithHTTPClient replaces the underlying HTTP client. Tests use it to
// point the converter at a local server.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Converter) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout caps how long fetching the form page may take.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with page fetches.
func WithUserAgent(agent string) Option {
	return func(c *Converter) {
		c.userAgent = agent
	}
}

// New creates a converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		httpClient: &http.Client{Timeout: defaultTimeout},
		generator:  NewGenerator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert resolves source into a form link, scrapes the form, and
// renders the config skeleton.
func (c *Converter) Convert(ctx context.Context, source string) (string, error) {
	link, err := ResolveSource(source)
	if err != nil {
		return "", err
	}
	scraped, err := c.Fetch(ctx, link)
	if err != nil {
		return "", err
	}
	return c.generator.Render(scraped)
}

// Fetch downloads the public form page behind link and parses it.
func (c *Converter) Fetch(ctx context.Context, link string) (*Form, error) {
	view, err := form.NormalizeViewURL(link)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, view, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", view, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", view, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch %s: unexpected status %d", view, resp.StatusCode)
	}

	return Parse(resp.Body)
}

// ResolveSource turns a convert argument into a form link. Shortcut
// files are read for the URL they point at; anything else is passed
// through as a link or bare form ID.
func ResolveSource(source string) (string, error) {
	if isShortcutPath(source) {
		return ReadShortcut(source)
	}
	return source, nil
}

func isShortcutPath(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".url", ".desktop":
		return true
	}
	return false
}
