package unifiaccess

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-unifi-access/internal/httpclient"
	"github.com/lexfrei/go-unifi-access/internal/middleware"
	"github.com/lexfrei/go-unifi-access/internal/ratelimit"
	"github.com/lexfrei/go-unifi-access/observability"
)

const (
	// DefaultPort is the port the Access controller serves the developer
	// API on. The API is HTTPS-only.
	DefaultPort = 12445

	// DefaultRateLimitPerMinute bounds request throughput against the
	// controller. The vendor does not document a limit for the local API;
	// this default keeps polling loops from saturating small controllers.
	DefaultRateLimitPerMinute = 600

	// DefaultMaxRetries is the default number of retries for failed requests.
	DefaultMaxRetries = 3
	// DefaultRetryWaitTime is the default wait time between retries.
	DefaultRetryWaitTime = 1 * time.Second
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	apiPrefix = "/api/v1/developer"
)

// Client is a UniFi Access developer API client. It is safe for concurrent
// use by multiple goroutines.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

// Compile-time check to ensure Client implements the AccessAPIClient interface.
var _ AccessAPIClient = (*Client)(nil)

// ClientConfig holds configuration for the Access API client.
type ClientConfig struct {
	// Host is the controller address on the LAN (IP or hostname).
	Host string

	// Token is the API token created in the Access UI under
	// Settings -> Security -> Advanced.
	Token string

	// Port is the developer API port (defaults to 12445).
	Port int

	// BaseURL overrides the https://Host:Port base entirely.
	// Useful for tests and reverse-proxied controllers.
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// RateLimitPerMinute sets the request rate limit (defaults to 600).
	// A negative value disables rate limiting.
	RateLimitPerMinute int

	// MaxRetries sets maximum number of retries for failed requests.
	MaxRetries int

	// RetryWaitTime sets the wait time between retries.
	RetryWaitTime time.Duration

	// Timeout sets the HTTP client timeout.
	Timeout time.Duration

	// TLSConfig overrides the TLS configuration. Controllers present a
	// self-signed certificate, so verification is skipped when nil.
	TLSConfig *tls.Config

	// Logger for observability (optional, uses noop logger if nil).
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil).
	Metrics observability.MetricsRecorder
}

// New creates a new Access API client with default settings.
// This is the recommended way to create a client for most use cases.
//
// Defaults:
//   - Port: 12445
//   - Rate limit: 600 requests/minute
//   - Max retries: 3
//   - Retry wait time: 1 second
//   - Timeout: 30 seconds
//   - TLS verification disabled (controllers are self-signed)
//
// For custom configuration, use NewWithConfig.
//
// Example:
//
//	client, err := unifiaccess.New("192.168.1.1", "your-api-token")
func New(host, token string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		Host:  host,
		Token: token,
	})
}

// NewWithConfig creates a new Access API client with custom configuration.
//
// Example:
//
//	client, err := unifiaccess.NewWithConfig(&unifiaccess.ClientConfig{
//	    Host:    "192.168.1.1",
//	    Token:   "your-api-token",
//	    Logger:  myLogger,
//	    Metrics: myMetrics,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Token == "" {
		return nil, errors.New("API token is required")
	}
	if cfg.Host == "" && cfg.BaseURL == "" {
		return nil, errors.New("controller host is required")
	}

	// Set defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = DefaultRetryWaitTime
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	tlsConfig := cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = middleware.InsecureSkipVerify()
	}

	// Negative RateLimitPerMinute yields a nil limiter, disabling limiting.
	limiter := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute)

	// Build middleware chain (first = outermost).
	// Order from outside to inside: Observability -> RateLimit -> Retry ->
	// BearerAuth -> TLS-configured transport. TLSConfig is terminal and
	// must stay innermost.
	httpClient := httpclient.New(
		httpclient.WithHTTPClient(cfg.HTTPClient),
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithMiddleware(
			middleware.Observability(cfg.Logger, cfg.Metrics),
			middleware.RateLimit(middleware.RateLimitConfig{
				Limiter: limiter,
				Logger:  cfg.Logger,
				Metrics: cfg.Metrics,
			}),
			middleware.Retry(middleware.RetryConfig{
				MaxRetries:  cfg.MaxRetries,
				InitialWait: cfg.RetryWaitTime,
				Logger:      cfg.Logger,
				Metrics:     cfg.Metrics,
			}),
			middleware.BearerAuth(cfg.Token),
			middleware.TLSConfig(tlsConfig),
		),
	)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s:%d", cfg.Host, cfg.Port)
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}, nil
}

// envelope is the standard response wrapper every developer API endpoint
// returns. code is "SUCCESS" on success; anything else is an API error
// described by msg.
type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// doRaw sends a request and returns the raw response body without
// interpreting the envelope.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode request body for %s", path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response from %s", path)
	}

	return raw, nil
}

// do sends a request, checks the envelope code, and returns the raw data
// field. Use for endpoints whose data payload is ignored.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response from %s", path)
	}

	if env.Code != codeSuccess {
		return nil, &APIError{Code: env.Code, Message: env.Msg, Endpoint: path}
	}

	return env.Data, nil
}

// request sends a request, checks the envelope code, and decodes the data
// field into T.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T

	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return out, err
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, errors.Wrapf(ErrNoData, "%s %s", method, path)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.Wrapf(err, "failed to decode data from %s", path)
	}

	return out, nil
}
