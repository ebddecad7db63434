// Package retry holds the retry policy shared by the client's middleware.
package retry

import (
	"net/http"
	"strconv"
	"time"
)

// ShouldRetry reports whether a response status is worth retrying.
// 5xx covers transient controller-side failures (the controller restarts
// its API service during firmware updates); 429 is rate limiting.
// 4xx responses other than 429 are caller mistakes and never retried.
func ShouldRetry(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusTooManyRequests
}

// ParseRetryAfter interprets a Retry-After header value as a wait duration.
// Both forms from RFC 9110 are accepted: a number of seconds and an
// HTTP-date. Returns 0 for empty, unparseable, or already-elapsed values.
func ParseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(header); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}

	return 0
}
