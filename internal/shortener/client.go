package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingShortURL is returned when a successful response carries no short_url.
var ErrMissingShortURL = errors.New("response missing short_url")

// Client talks to the shortening service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	defaultAPIURL    = "http://127.0.0.1:8080"
	defaultUserAgent = "shorty/0.1"
	defaultTimeout   = 10 * time.Second
	shortenPath      = "/api"
	maxErrorBody     = 512
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a Client for the service at apiURL.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Shorten posts longURL and returns the short URL the service assigned.
// The request ID is taken from the context when present.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload ShortenResponse
	if err := c.post(ctx, shortenPath, ShortenRequest{URL: longURL}, &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.ShortURL) == "" {
		return "", ErrMissingShortURL
	}
	c.logger.Debug("shortened",
		zap.String("key", payload.Key),
		zap.String("short_url", payload.ShortURL),
		zap.String("long_url", payload.LongURL),
	)
	return payload.ShortURL, nil
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("request_id", requestID), zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError folds the plain-text body the service writes with http.Error
// into the message.
func statusError(path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(raw))
	if detail == "" {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	return fmt.Errorf("api %s returned status %d: %s", path, resp.StatusCode, detail)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
