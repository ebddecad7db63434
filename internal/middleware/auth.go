package middleware

import (
	"maps"
	"net/http"
)

// BearerAuth returns a middleware that adds the Access API token to all
// requests as an "Authorization: Bearer <token>" header.
// Tokens are created in the Access UI under Settings -> Security -> Advanced.
func BearerAuth(token string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authTransport{
			next:  next,
			token: token,
		}
	}
}

type authTransport struct {
	next  http.RoundTripper
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying original
	req = cloneRequest(req)

	req.Header.Set("Authorization", "Bearer "+t.token)

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
