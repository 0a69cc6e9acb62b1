// Package http is a small JSON-over-HTTP client with optional retries and a
// metrics hook, used for the price index.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cyphera/eth-gas-gateway/internal/logger"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// ClientOption configures a Client
type ClientOption func(*Client)

// RequestOption modifies an outgoing request
type RequestOption func(*http.Request)

// HTTPError is returned when the remote answers with a 4xx or 5xx status
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// RetryConfig configures exponential backoff between attempts. MaxRetries of
// zero disables retrying.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// MetricsCollector receives one observation per logical request
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

// DefaultRetryConfig returns a config that never retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           0,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          2 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       10 * time.Second,
		RetryableStatusCodes: []int{http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
	}
}

// Client performs JSON GET requests against a base URL
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	retry      *RetryConfig
	metrics    MetricsCollector
}

// NewClient creates a Client with a 10s timeout and no retries
func NewClient(options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		headers: map[string]string{
			"Accept": "application/json",
		},
		retry:   DefaultRetryConfig(),
		metrics: NoopMetricsCollector{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithBaseURL sets the URL every request path is appended to
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithDefaultHeader sets a header on every request
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithTimeout bounds each attempt
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig replaces the retry policy
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retry = config
	}
}

// WithMaxRetries keeps the default backoff shape and sets the retry count
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		if c.retry == nil {
			c.retry = DefaultRetryConfig()
		}
		c.retry.MaxRetries = n
	}
}

// WithMetricsCollector sets the metrics hook
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *Client) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithTransport swaps the round tripper, mostly for tests
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithQueryParam adds a query parameter
func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// GetJSON issues a GET and decodes the body into target. Numbers decode as
// json.Number when target holds interface or json.Number values.
func (c *Client) GetJSON(ctx context.Context, path string, target interface{}, options ...RequestOption) error {
	start := time.Now()

	fullURL, err := c.resolve(path)
	if err != nil {
		return err
	}

	var (
		resp       *http.Response
		statusCode int
	)

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		for key, value := range c.headers {
			req.Header.Set(key, value)
		}
		for _, option := range options {
			option(req)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		statusCode = r.StatusCode

		if r.StatusCode >= http.StatusBadRequest {
			httpErr := readHTTPError(r)
			if c.isRetryable(r.StatusCode) {
				return httpErr
			}
			return backoff.Permanent(httpErr)
		}

		resp = r
		return nil
	}

	if c.retry != nil && c.retry.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retry.InitialInterval
		expBackoff.MaxInterval = c.retry.MaxInterval
		expBackoff.Multiplier = c.retry.Multiplier
		expBackoff.MaxElapsedTime = c.retry.MaxElapsedTime

		policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retry.MaxRetries)), ctx)
		err = backoff.RetryNotify(attempt, policy, func(err error, wait time.Duration) {
			logger.Warn("Retrying HTTP request",
				zap.String("url", fullURL),
				zap.Duration("wait", wait),
				zap.Error(err))
		})
	} else {
		err = attempt()
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
	}

	duration := time.Since(start)
	c.metrics.RecordRequestDuration(http.MethodGet, path, statusCode, duration)
	c.metrics.RecordRequestCount(http.MethodGet, path, statusCode)

	if err != nil {
		c.metrics.RecordRequestError(http.MethodGet, path)
		logger.Error("HTTP request failed",
			zap.String("method", http.MethodGet),
			zap.String("url", fullURL),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request successful",
		zap.String("url", fullURL),
		zap.Int("status", statusCode),
		zap.Duration("duration", duration))

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", fullURL, err)
	}
	return nil
}

func (c *Client) resolve(path string) (string, error) {
	if c.baseURL == "" {
		if _, err := url.ParseRequestURI(path); err != nil {
			return "", fmt.Errorf("invalid path used without base URL: %s: %w", path, err)
		}
		return path, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path, nil
}

func (c *Client) isRetryable(status int) bool {
	if c.retry == nil {
		return false
	}
	for _, code := range c.retry.RetryableStatusCodes {
		if code == status {
			return true
		}
	}
	return false
}

func readHTTPError(resp *http.Response) *HTTPError {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        resp.Request.URL.String(),
		Method:     resp.Request.Method,
		Body:       string(body),
	}
}

// NoopMetricsCollector discards observations
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}

func (NoopMetricsCollector) RecordRequestCount(method, path string, statusCode int) {
}

func (NoopMetricsCollector) RecordRequestError(method, path string) {
}
