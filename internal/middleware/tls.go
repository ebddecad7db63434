package middleware

import (
	"crypto/tls"
	"net/http"
)

// TLSConfig returns a middleware that applies a TLS configuration to the
// transport. It is terminal: it produces the *http.Transport the rest of
// the chain wraps, so it must be the innermost middleware.
func TLSConfig(config *tls.Config) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		transport, ok := next.(*http.Transport)
		if !ok {
			base, ok := http.DefaultTransport.(*http.Transport)
			if !ok {
				return next
			}
			transport = base.Clone()
			transport.ForceAttemptHTTP2 = true
		} else {
			transport = transport.Clone()
		}

		transport.TLSClientConfig = config

		return transport
	}
}

// InsecureSkipVerify returns a TLS config that skips certificate
// verification. Access controllers serve the developer API over HTTPS with
// a self-signed certificate on their LAN address, so this is the working
// default unless the certificate has been added to the local trust store.
func InsecureSkipVerify() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Controller certs are self-signed on LAN deployments
	}
}
