// Package httpx provides HTTP client plumbing shared by the storefront SDK.
package httpx

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// DefaultLimit is the self-imposed throttle for a storefront client
// talking to the shared backend. Generous enough that interactive use
// never blocks, tight enough that a retry loop cannot hammer the API.
var DefaultLimit = RateLimitConfig{
	RequestsPerWindow: 120,
	Window:            time.Minute,
	Burst:             30,
}

// rateLimitedTransport throttles outgoing requests before delegating to
// the base RoundTripper. Waiting respects the request context, so a
// cancelled caller is released immediately.
type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// RateLimited wraps base with client-side rate limiting. A nil base uses
// http.DefaultTransport.
func RateLimited(base http.RoundTripper, config RateLimitConfig) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	ratePerSecond := float64(config.RequestsPerWindow) / config.Window.Seconds()

	return &rateLimitedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), config.Burst),
	}
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
