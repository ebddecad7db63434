// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the standard response wrapper the Access developer API
// returns from every endpoint.
type Envelope struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// Success marshals data into a SUCCESS envelope body.
func Success(t *testing.T, data any) string {
	t.Helper()

	body, err := json.Marshal(Envelope{Code: "SUCCESS", Msg: "success", Data: data})
	require.NoError(t, err, "Failed to marshal envelope")
	return string(body)
}

// Failure marshals an error envelope body with the given code and message.
func Failure(t *testing.T, code, msg string) string {
	t.Helper()

	body, err := json.Marshal(Envelope{Code: code, Msg: msg})
	require.NoError(t, err, "Failed to marshal envelope")
	return string(body)
}

// NewMockController creates a test HTTP server standing in for an Access
// controller. It validates the request path and bearer token, then returns
// the specified response body.
func NewMockController(t *testing.T, expectedPath, token, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Validate request path
		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		// Validate bearer token if provided
		if token != "" {
			assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"), "Authorization header should carry the token")
		}

		// Write response
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockControllerMulti creates a test HTTP server with multiple handlers.
// The handlers map keys are "METHOD /path" strings, values are handler
// functions. Keying on the method matters here: several developer API
// paths serve both GET and PUT.
func NewMockControllerMulti(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
}

// NewMockControllerSequence creates a test server that returns responses in
// sequence. Each call to the server returns the next response in the slice.
// Useful for testing retry logic or enrollment polling.
func NewMockControllerSequence(t *testing.T, responses []struct {
	Body       string
	StatusCode int
}) *httptest.Server {
	t.Helper()

	callCount := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount >= len(responses) {
			t.Errorf("More requests than configured responses (got %d requests, have %d responses)",
				callCount+1, len(responses))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := responses[callCount]
		callCount++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write([]byte(resp.Body))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// DecodeBody decodes the JSON request body into dst and fails the test on error.
func DecodeBody(t *testing.T, r *http.Request, dst any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(r.Body).Decode(dst), "Failed to decode request body")
	require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"),
		"Requests with bodies should be application/json")
}
