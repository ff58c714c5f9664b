// Package fetch retrieves raw transcript documents for sitting dates.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hansard/internal/config"
	"hansard/internal/services"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxDocumentBytes   = 32 << 20
)

// ErrNoSitting reports that no sitting took place on the requested
// date. Callers skip the date and continue.
var ErrNoSitting = errors.New("no sitting on this date")

// Client fetches transcript documents from the report endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the fetch client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a transcript document client from configuration.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.Source.RequestTimeout > 0 {
		timeout = time.Duration(cfg.Source.RequestTimeout) * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.Source.BaseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Document retrieves the raw transcript document for a sitting date
// (ISO form). It returns the document body and the URL it came from.
// A date without a sitting reports ErrNoSitting.
func (c *Client) Document(ctx context.Context, date string) (string, string, error) {
	endpoint, err := c.documentURL(date)
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", "", services.Wrap(services.ErrConfiguration, "fetch", "document", "build request", err)
	}
	req.Header.Set("Accept", "text/html,application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", services.Wrap(services.ErrTransient, "fetch", "document", fmt.Sprintf("request %s", date), err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", "", fmt.Errorf("%w: %s", ErrNoSitting, date)
	case resp.StatusCode >= 500:
		return "", "", services.Wrap(services.ErrTransient, "fetch", "document",
			fmt.Sprintf("endpoint returned %d for %s", resp.StatusCode, date), nil)
	case resp.StatusCode != http.StatusOK:
		return "", "", services.Wrap(services.ErrSource, "fetch", "document",
			fmt.Sprintf("endpoint returned %d for %s", resp.StatusCode, date), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return "", "", services.Wrap(services.ErrTransient, "fetch", "document", "read body", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", "", fmt.Errorf("%w: %s", ErrNoSitting, date)
	}
	return string(body), endpoint, nil
}

// documentURL builds the report URL for a sitting date. The endpoint
// takes the date in dd-mm-yyyy form.
func (c *Client) documentURL(date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "fetch", "document", "invalid sitting date "+date, err)
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "fetch", "document", "invalid base url", err)
	}
	q := u.Query()
	q.Set("sittingDate", parsed.Format("02-01-2006"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
