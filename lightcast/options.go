package lightcast

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API host, e.g. for tests or a regional mirror.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithScope binds the client to an OAuth scope. An empty scope means the
// token manager's default.
func WithScope(scope string) Option {
	return func(c *Client) {
		c.scope = scope
	}
}

// WithDefaultVersion changes the API version substituted for {version}
// placeholders when a call does not override it.
func WithDefaultVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient replaces the pooled HTTP client. The caller then owns the
// transport's lifecycle.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger enables debug logging of requests and responses.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = &logger
	}
}

// WithRateLimit throttles outgoing requests to the given hourly budget,
// matching the quota Lightcast grants per credential. Zero or negative
// disables throttling. Errors from the upstream 429 path are unaffected.
func WithRateLimit(perHour int) Option {
	return func(c *Client) {
		if perHour <= 0 {
			c.limiter = nil
			return
		}
		burst := perHour / 10
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(float64(perHour)/3600.0), burst)
	}
}

type requestOptions struct {
	version string
}

// RequestOption adjusts a single request.
type RequestOption func(*requestOptions)

// WithVersion overrides the API version for one call.
func WithVersion(version string) RequestOption {
	return func(ro *requestOptions) {
		ro.version = version
	}
}
