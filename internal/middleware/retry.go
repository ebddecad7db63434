// Package middleware provides the RoundTripper layers the Access client's
// transport is assembled from.
package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-unifi-access/internal/retry"
	"github.com/lexfrei/go-unifi-access/observability"
)

// RetryConfig configures the retry middleware.
type RetryConfig struct {
	MaxRetries  int
	InitialWait time.Duration
	Logger      observability.Logger
	Metrics     observability.MetricsRecorder
}

// Retry returns a middleware that re-sends requests that failed with a
// network error, a 5xx status, or a 429. Waits grow exponentially from
// InitialWait; a Retry-After header on a 429 overrides the backoff.
// Request bodies are buffered up front so every attempt sends the same
// payload.
func Retry(cfg RetryConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &retryTransport{next: next, cfg: cfg}
	}
}

type retryTransport struct {
	next http.RoundTripper
	cfg  RetryConfig
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	var lastResp *http.Response

	for attempt := 0; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := t.next.RoundTrip(req)
		if err == nil && !retry.ShouldRetry(resp.StatusCode) {
			return resp, nil
		}

		lastErr = err
		lastResp = resp

		if attempt == t.cfg.MaxRetries {
			break
		}

		t.cfg.Logger.Warn("retrying request",
			observability.Field{Key: "attempt", Value: attempt + 1},
			observability.Field{Key: "max_retries", Value: t.cfg.MaxRetries},
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: req.URL.String()},
		)
		t.cfg.Metrics.RecordRetry(attempt+1, req.URL.Path)

		// The failed response body must be drained before the next attempt
		// reuses the connection.
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(t.wait(attempt, resp)):
		case <-req.Context().Done():
			return nil, errors.Wrap(req.Context().Err(), "context canceled during retry wait")
		}
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, errors.Wrapf(lastErr, "request failed after %d retries", t.cfg.MaxRetries)
}

// wait picks the delay before the next attempt: the server's Retry-After
// on a 429 when present, exponential backoff otherwise.
func (t *retryTransport) wait(attempt int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if after := retry.ParseRetryAfter(resp.Header.Get("Retry-After")); after > 0 {
			t.cfg.Logger.Debug("using Retry-After header",
				observability.Field{Key: "wait", Value: after},
			)
			return after
		}
	}
	return t.cfg.InitialWait * time.Duration(1<<attempt)
}

// bufferBody reads and closes the request body so retries can replay it.
// Returns nil for bodyless requests.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	defer req.Body.Close()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to buffer request body")
	}
	return body, nil
}
