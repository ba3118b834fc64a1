// internal/timeutil/timeutil.go
// -----------------------------
// Helpers for parsing the time formats the dashboard sends back, chiefly the
// Retry-After header on 429 responses.
package timeutil

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ParseRetryAfter interprets a Retry-After header value, which may be either
// a delta in seconds ("2") or an HTTP-date. It returns the duration to wait
// from now and whether the value was usable. Dates in the past and negative
// deltas report ok=false.
func ParseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}

	if t, err := http.ParseTime(value); err == nil {
		d := t.Sub(now)
		if d <= 0 {
			return 0, false
		}
		return d, true
	}

	return 0, false
}
