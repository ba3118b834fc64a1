// request_executor.go
// -------------------
// The RequestExecutor performs the actual HTTP exchange with the dashboard:
// it attaches the resolved credentials, retries 429 responses (honoring a
// server-supplied Retry-After when present) and transient network failures
// with capped exponential backoff, and maps everything else onto the typed
// failure taxonomy in errors.go.
//
// Retry policy: up to maxRetries retries for 429 and for transient network
// errors. Any other non-2xx status is returned as an *APIError on the first
// attempt; those indicate a request problem and retrying would not help.
package merakibridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/merakitools/meraki-bridge/internal/timeutil"
)

const apiKeyHeader = "X-Cisco-Meraki-API-Key"

type RequestExecutor struct {
	client      *http.Client
	maxRetries  int
	baseBackoff time.Duration
	debugf      func(format string, args ...interface{})
}

func newRequestExecutor(cfg Config, debugf func(format string, args ...interface{})) *RequestExecutor {
	return &RequestExecutor{
		client:      &http.Client{Timeout: cfg.Timeout, Transport: cfg.HTTPTransport},
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.BaseBackoff,
		debugf:      debugf,
	}
}

// Send executes req against creds.BaseURL and returns the dashboard's
// response unchanged, or one of the typed failures once internal recovery is
// exhausted. 2xx payloads are not interpreted here.
func (re *RequestExecutor) Send(ctx context.Context, req *Request, creds Credentials) (*Response, error) {
	attempts := 0
	for {
		httpReq, err := re.buildRequest(ctx, req, creds)
		if err != nil {
			return nil, err
		}

		re.debugf("Sending %s %s (attempt %d)\n", req.Method, req.Path, attempts+1)
		httpResp, err := re.client.Do(httpReq)
		if err != nil {
			if isTransient(err) && attempts < re.maxRetries {
				wait := re.calculateBackoff(attempts)
				re.debugf("Network error: %v. Retrying in %v (attempt %d/%d)...\n", err, wait, attempts+1, re.maxRetries)
				if serr := sleepCtx(ctx, wait); serr != nil {
					return nil, serr
				}
				attempts++
				continue
			}
			re.debugf("Network error, giving up: %v\n", err)
			return nil, &TransportError{Attempts: attempts + 1, Cause: err}
		}

		body, readErr := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		if readErr != nil {
			if attempts < re.maxRetries {
				wait := re.calculateBackoff(attempts)
				re.debugf("Error reading response: %v. Retrying in %v...\n", readErr, wait)
				if serr := sleepCtx(ctx, wait); serr != nil {
					return nil, serr
				}
				attempts++
				continue
			}
			return nil, &TransportError{Attempts: attempts + 1, Cause: readErr}
		}

		headers := make(map[string]string)
		for k, vals := range httpResp.Header {
			if len(vals) > 0 {
				headers[strings.ToLower(k)] = vals[0]
			}
		}

		if httpResp.StatusCode == http.StatusTooManyRequests {
			if attempts < re.maxRetries {
				wait := re.calculateBackoff(attempts)
				if d, ok := timeutil.ParseRetryAfter(headers["retry-after"], time.Now()); ok {
					wait = d
				}
				re.debugf("429 rate limit. Backing off for %v before retry (attempt %d/%d)...\n", wait, attempts+1, re.maxRetries)
				if serr := sleepCtx(ctx, wait); serr != nil {
					return nil, serr
				}
				attempts++
				continue
			}
			re.debugf("429 rate limit and max retries reached. Giving up.\n")
			return nil, &RateLimitError{Attempts: attempts + 1}
		}

		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			re.debugf("Status %d encountered. Not retrying.\n", httpResp.StatusCode)
			return nil, &APIError{StatusCode: httpResp.StatusCode, Body: body}
		}

		if attempts > 0 {
			re.debugf("Request succeeded after %d attempts.\n", attempts+1)
		}
		return &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    headers,
			Body:       body,
		}, nil
	}
}

func (re *RequestExecutor) buildRequest(ctx context.Context, req *Request, creds Credentials) (*http.Request, error) {
	fullURL := strings.TrimRight(creds.BaseURL, "/") + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if creds.TokenSource != nil {
		tok, err := creds.TokenSource.Token()
		if err != nil {
			return nil, &TransportError{Attempts: 1, Cause: fmt.Errorf("fetching oauth token: %w", err)}
		}
		tok.SetAuthHeader(httpReq)
	} else {
		httpReq.Header.Set(apiKeyHeader, creds.APIKey)
	}
	return httpReq, nil
}

// calculateBackoff returns base * 2^attempt, capped at 30s.
func (re *RequestExecutor) calculateBackoff(attempt int) time.Duration {
	backoff := re.baseBackoff * (1 << attempt)
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	return backoff
}

// closeIdle releases pooled transport connections.
func (re *RequestExecutor) closeIdle() {
	re.client.CloseIdleConnections()
}

// isTransient reports whether a client.Do failure is worth retrying.
// Timeouts, resets, and refused connections all surface as *url.Error;
// context cancellation is the caller's decision and is not retried.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
