package mock

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"
)

// Transport is a scripted http.RoundTripper for exercising the retry and
// rate-limit paths without a live dashboard. Wire it in through
// Config.HTTPTransport.
type Transport struct {
	RequestsUntilRateLimit int    // After this many requests, answer 429
	Always429              bool   // If true, always answer 429
	NetworkFailures        int    // Fail the first N round trips with a network error
	RetryAfter             string // Optional Retry-After header on 429s
	Body                   []byte // Success payload; defaults to {"success":true}

	mu       sync.Mutex
	requests int
	failures int
}

var errConnReset = errors.New("connection reset by peer")

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failures < t.NetworkFailures {
		t.failures++
		return nil, errConnReset
	}

	t.requests++
	if t.Always429 || (t.RequestsUntilRateLimit > 0 && t.requests > t.RequestsUntilRateLimit) {
		header := http.Header{}
		if t.RetryAfter != "" {
			header.Set("Retry-After", t.RetryAfter)
		}
		return response(req, 429, header, []byte(`{"errors":["Rate limited"]}`)), nil
	}

	body := t.Body
	if body == nil {
		body = []byte(`{"success":true}`)
	}
	return response(req, 200, http.Header{}, body), nil
}

// Requests reports how many round trips reached the scripted dashboard
// (network failures excluded).
func (t *Transport) Requests() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests
}

func response(req *http.Request, status int, header http.Header, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}
}
