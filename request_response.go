// request_response.go
// -------------------
// Pass-through request and response types. The core treats the dashboard's
// URL paths and payload schemas as opaque data; interpreting the body is the
// caller's job (see the meraki package for typed wrappers).
package merakibridge

import (
	"encoding/json"
	"fmt"
	"net/url"
)

type Request struct {
	Method string
	Path   string // Endpoint path below the base URL, e.g. "/organizations"
	Query  url.Values
	Body   []byte
}

type Response struct {
	StatusCode int
	Headers    map[string]string // keys lower-cased
	Body       []byte
}

// NewJSONRequest builds a Request whose body is the JSON encoding of v.
// A nil v produces a bodyless request.
func NewJSONRequest(method, path string, v interface{}) (*Request, error) {
	req := &Request{Method: method, Path: path}
	if v != nil {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		req.Body = body
	}
	return req, nil
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
