package logparse

import (
	"math"
	"strconv"
	"strings"
)

// Valid HTTP status codes live in [100, 600). Anything outside is treated
// the same as a malformed record and skipped by the aggregator.
const (
	MinStatusCode = 100
	MaxStatusCode = 600
)

// ParseStatusCode converts a status-code-like value from a decoded JSON
// payload into an int. It accepts numbers and numeric strings; the bool
// result is false for anything non-numeric, non-finite, or out of range.
func ParseStatusCode(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return checkStatusRange(int(v))
	case int:
		return checkStatusRange(v)
	case int64:
		return checkStatusRange(int(v))
	case uint64:
		return checkStatusRange(int(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			// Tolerate "200.0" style values from lossy JSON round-trips.
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, false
			}
			n = int(f)
		}
		return checkStatusRange(n)
	default:
		return 0, false
	}
}

func checkStatusRange(code int) (int, bool) {
	if code < MinStatusCode || code >= MaxStatusCode {
		return 0, false
	}
	return code, true
}

// StatusClass returns the conventional class label for a status code
// ("2xx", "5xx", ...). Used for legend grouping in the dashboard.
func StatusClass(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// HTTP request event kinds accepted by the filter. Mixed-source log
// collections use a handful of spellings for the same event type.
var requestKinds = map[string]bool{
	"http_request":  true,
	"http-request":  true,
	"httprequest":   true,
	"http":          true,
	"request":       true,
	"req":           true,
	"access":        true,
	"http_response": true,
}

// NormalizeKind maps a raw discriminator value to the canonical
// "http_request" kind, or returns "" when the value does not mark an
// HTTP request/response event.
func NormalizeKind(kind string) string {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if requestKinds[normalized] {
		return "http_request"
	}
	return ""
}
