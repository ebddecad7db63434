package httpclient

import (
	"net/http"
	"time"
)

// Option configures a Client during New.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client entirely. A nil client
// keeps the default. Any configured middleware still wraps its transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.base = client
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithTransport sets the base transport the middleware chain wraps.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithMiddleware appends middleware to the chain. Outer concerns
// (observability) go first, inner concerns (auth, TLS) last.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}
