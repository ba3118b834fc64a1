// legacy.go
// ---------
// Compatibility path for callers that supply credentials on every call
// instead of holding a persistent connection. Each ExecuteOnce builds a
// transient Conn with its own fresh RateLimiter, so separate calls are not
// coordinated against each other: many rapid one-shot calls can still be
// rejected by the dashboard's real limit. That is the documented limitation
// of this calling convention; only a shared Conn amortizes rate-limit
// coordination across calls.
package merakibridge

import "context"

// ExecuteOnce performs a single self-contained request using explicit
// credentials (plus environment fallback; there is no connection-context
// tier on this path). Credential resolution happens on every call.
func ExecuteOnce(ctx context.Context, req *Request, creds Credentials) (*Response, error) {
	return ExecuteOnceWithConfig(ctx, req, creds, Config{})
}

// ExecuteOnceWithConfig is ExecuteOnce with retry/backoff knobs.
func ExecuteOnceWithConfig(ctx context.Context, req *Request, creds Credentials, cfg Config) (*Response, error) {
	conn := NewConn(cfg)
	if err := conn.open(creds, nil); err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.Execute(ctx, req)
}
