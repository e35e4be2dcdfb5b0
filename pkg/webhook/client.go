package webhook

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

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single delivery when no client is supplied.
	DefaultTimeout = 30 * time.Second

	excerptLimit = 512
)

// ErrEndpointRequired is returned by New when no URL is configured.
var ErrEndpointRequired = errors.New("webhook: endpoint url is required")

// StatusError reports a non-2xx response. Body holds a short excerpt of the
// response for logging.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("webhook: unexpected status %d: %s", e.Code, e.Body)
}

// Observer is notified after every delivery attempt.
type Observer func(elapsed time.Duration, err error)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the transport. The client's own Timeout applies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets the per-delivery timeout on the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeader adds a static request header.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		c.headers.Set(key, value)
	}
}

// WithLogger attaches a logger for delivery outcomes.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithObserver registers a callback invoked after each attempt.
func WithObserver(fn Observer) Option {
	return func(c *Client) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Client posts JSON bodies to a fixed endpoint.
type Client struct {
	endpoint  string
	http      *http.Client
	timeout   time.Duration
	headers   http.Header
	logger    zerolog.Logger
	observers []Observer
}

// New validates endpoint and returns a Client.
func New(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("webhook: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("webhook: unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("webhook: endpoint %q has no host", endpoint)
	}

	c := &Client{
		endpoint: parsed.String(),
		timeout:  DefaultTimeout,
		headers:  make(http.Header),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Deliver encodes payload as JSON and posts it once.
func (c *Client) Deliver(ctx context.Context, payload any) (err error) {
	if c == nil || c.http == nil {
		return errors.New("webhook: client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	started := time.Now()
	defer func() {
		c.observe(time.Since(started), err)
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, excerptLimit))
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}
	return nil
}

func (c *Client) observe(elapsed time.Duration, err error) {
	event := c.logger.Debug()
	if err != nil {
		event = c.logger.Warn().Err(err)
	}
	event.Str("endpoint", c.endpoint).Dur("elapsed", elapsed).Msg("webhook delivery")

	for _, fn := range c.observers {
		fn(elapsed, err)
	}
}
