// Package httpclient provides the HTTP client the Access API client is
// built on: a plain *http.Client whose transport is assembled from a chain
// of RoundTripper middleware.
package httpclient

import (
	"net/http"
	"time"
)

// defaultTimeout bounds a single request against the controller. Access
// controllers answer the developer API locally, so anything slower than
// this indicates a dead controller, not a slow one.
const defaultTimeout = 30 * time.Second

// Middleware wraps an http.RoundTripper to add behavior around requests.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client executes requests through a middleware-assembled transport.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// New builds a client from the given options. Middleware is chained so the
// first one passed is the outermost layer: WithMiddleware(A, B, C) yields
// A(B(C(transport))).
func New(opts ...Option) *Client {
	c := &Client{
		base: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		c.base.Transport = chain(c.base.Transport, c.middleware)
	}

	return c
}

// chain wraps base in the middleware, innermost last.
func chain(base http.RoundTripper, middleware []Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		base = middleware[i](base)
	}
	return base
}

// Do executes an HTTP request through the middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.base.Do(req)
}

// HTTPClient exposes the underlying http.Client for code that needs one.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
