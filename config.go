// config.go
// ----------
// This file defines the Config structure, which customizes a connection's
// behavior: credentials declared up front, rate-limit spacing, retry bounds,
// and backoff duration.
//
// Every field is optional; the zero value falls back to the dashboard's
// published limits and the module defaults via withDefaults().
package merakibridge

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the dashboard's public API endpoint.
	DefaultBaseURL = "https://api.meraki.com/api/v1"

	// DefaultRateLimitInterval matches the dashboard's published limit of
	// 5 calls per second per organization.
	DefaultRateLimitInterval = 200 * time.Millisecond

	// DefaultMaxRetries bounds both the 429 and the transient-failure retry
	// paths.
	DefaultMaxRetries = 3

	// DefaultBaseBackoff is the initial backoff duration; it doubles per
	// attempt and is capped at 30s.
	DefaultBaseBackoff = 500 * time.Millisecond

	// DefaultTimeout is the per-attempt HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// Config customizes a Conn. Credential fields declared here form the
// connection-context tier of resolution; see ResolveCredentials.
type Config struct {
	APIKey  string // Dashboard API key (connection-context tier)
	BaseURL string // Override the dashboard endpoint if set
	OrgID   string // Organization scoping most operations

	RateLimitInterval time.Duration // Min spacing between requests on this connection
	MaxRetries        int           // Max retries for 429 and transient failures
	BaseBackoff       time.Duration // Initial backoff, doubles per attempt
	Timeout           time.Duration // Per-attempt HTTP timeout

	// HTTPTransport overrides the underlying RoundTripper when set. Leave
	// nil for the default pooled transport.
	HTTPTransport http.RoundTripper

	Debug bool // If true, print debug info
}

func (c Config) withDefaults() Config {
	if c.RateLimitInterval <= 0 {
		c.RateLimitInterval = DefaultRateLimitInterval
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = DefaultBaseBackoff
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
