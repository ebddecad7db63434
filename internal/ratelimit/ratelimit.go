// Package ratelimit builds the client-side limiter that paces requests to
// the Access controller.
package ratelimit

import "golang.org/x/time/rate"

// NewRateLimiter returns a token-bucket limiter sized for requestsPerMinute.
// Tokens refill continuously at requestsPerMinute/60 per second and the
// bucket holds a full minute's worth, so short polling bursts (enrollment
// sessions poll every 100ms) pass without waiting while sustained load is
// held to the configured rate.
//
// A non-positive requestsPerMinute returns nil, which the rate limit
// middleware treats as "no limiting".
func NewRateLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
}
