// sdk.go
// ------
// The sdk.go file contains the Conn type, the persistent dashboard
// connection and the main entry point of the module.
//
// A Conn is created once per automation run, resolves credentials exactly
// once at Open(), and arbitrates request timing across every caller issuing
// requests through it so the aggregate rate never exceeds the dashboard's
// limit. The Conn owns its RateLimiter and RequestExecutor for its lifetime;
// neither is ever shared with another Conn, so independent connections
// (tests, distinct organizations) never interfere.
package merakibridge

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

type Conn struct {
	mu     sync.Mutex
	opened bool
	closed bool
	creds  Credentials

	cfg      Config
	limiter  *RateLimiter
	executor *RequestExecutor

	createdAt    time.Time
	requestCount int64

	Debug bool // If true, print debug info
}

// NewConn builds a connection from cfg. No credential resolution or network
// activity happens until Open.
func NewConn(cfg Config) *Conn {
	cfg = cfg.withDefaults()
	c := &Conn{
		cfg:       cfg,
		createdAt: time.Now(),
		Debug:     cfg.Debug,
	}
	c.limiter = NewRateLimiter(cfg.RateLimitInterval)
	c.executor = newRequestExecutor(cfg, c.debugf)
	return c
}

// Open resolves credentials and readies the connection. vars supplies the
// connection-context tier (inventory-resolved variables) and may be nil.
// Open is idempotent: a second call returns the cached result without
// resolving again.
func (c *Conn) Open(vars VariableSource) error {
	return c.open(Credentials{
		APIKey:  c.cfg.APIKey,
		BaseURL: c.cfg.BaseURL,
		OrgID:   c.cfg.OrgID,
	}, vars)
}

func (c *Conn) open(explicit Credentials, vars VariableSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return &ConfigurationError{Reason: "connection is closed"}
	}
	if c.opened {
		return nil
	}
	creds, err := ResolveCredentials(explicit, vars)
	if err != nil {
		return err
	}
	c.creds = creds
	c.opened = true
	c.debugf("Connection opened against %s\n", creds.BaseURL)
	return nil
}

// Execute sends one request through the connection: admission through the
// rate limiter first, then the transport with the connection's resolved
// credentials. The result is returned unchanged. Safe for concurrent use;
// the limiter is the sole serialization point.
func (c *Conn) Execute(ctx context.Context, req *Request) (*Response, error) {
	c.mu.Lock()
	opened := c.opened
	creds := c.creds
	c.mu.Unlock()
	if !opened {
		return nil, &ConfigurationError{Reason: "connection not opened"}
	}

	if err := c.limiter.Admit(ctx); err != nil {
		return nil, err
	}
	atomic.AddInt64(&c.requestCount, 1)
	return c.executor.Send(ctx, req, creds)
}

// Close releases pooled transport resources. Safe to call multiple times;
// the connection cannot be reopened afterwards.
func (c *Conn) Close() {
	c.mu.Lock()
	alreadyClosed := c.closed
	c.closed = true
	c.opened = false
	c.mu.Unlock()
	if !alreadyClosed {
		c.executor.closeIdle()
		c.debugf("Connection closed after %d requests\n", c.RequestCount())
	}
}

// Credentials returns the resolved credentials. Zero value before Open.
func (c *Conn) Credentials() Credentials {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creds
}

// RequestCount reports how many requests have been admitted on this
// connection.
func (c *Conn) RequestCount() int64 {
	return atomic.LoadInt64(&c.requestCount)
}

// CreatedAt reports when the connection was constructed.
func (c *Conn) CreatedAt() time.Time {
	return c.createdAt
}

// debugf prints debug messages if Debug mode is enabled.
func (c *Conn) debugf(format string, args ...interface{}) {
	if c.Debug {
		fmt.Printf("[DEBUG] "+format, args...)
	}
}
