// errors.go
// ---------
// This file defines the typed failures the connection core can surface.
// Transient conditions (429, network failures) are retried internally by the
// RequestExecutor before any of these become visible; a caller only ever sees
// one of the types below once recovery has been exhausted.
package merakibridge

import "fmt"

// ConfigurationError indicates no usable API key could be resolved. It is
// fatal: surfaced at Open() in persistent mode or at call time in legacy mode,
// and never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// RateLimitError indicates the dashboard kept answering 429 until the retry
// budget ran out. Attempts counts every request that was actually sent.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d attempts", e.Attempts)
}

// TransportError indicates a network-level failure that persisted through the
// retry budget. Cause is the last underlying error.
type TransportError struct {
	Attempts int
	Cause    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError carries any non-2xx, non-429 dashboard response verbatim. These
// indicate a request problem rather than a transient condition and are never
// retried.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard returned %d: %s", e.StatusCode, e.Body)
}
