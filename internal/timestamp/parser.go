package timestamp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves timestamps from the value shapes that show up in mixed
// log collections: RFC3339 strings, space-separated datetimes, syslog
// prefixes, bare times, and unix epochs at second/milli/micro/nano
// magnitude.
type Parser struct {
	layouts []string
}

// Result is the outcome of scanning free text for a leading timestamp.
type Result struct {
	Found     bool
	Timestamp time.Time
	Remaining string
}

// leadingTimestampPattern matches a timestamp-looking prefix: ISO dates,
// syslog "Mon DD HH:MM:SS", or a bare time of day.
var leadingTimestampPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?(?:Z|[+-]\d{2}:?\d{2})?` +
		`|[A-Z][a-z]{2} +\d{1,2} \d{2}:\d{2}:\d{2}` +
		`|\d{2}:\d{2}:\d{2}(?:[.,]\d+)?)`,
)

// NewParser returns a Parser with the default layout set.
func NewParser() *Parser {
	return &Parser{
		layouts: []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05.999999999",
			"2006-01-02 15:04:05",
			"2006-01-02",
			time.Stamp,
			"15:04:05.999999999",
			"15:04:05",
		},
	}
}

// ParseTimestamp resolves a timestamp from an arbitrary decoded JSON value.
// Strings are tried against the layout set and then as a unix epoch;
// numbers are interpreted as a unix epoch with magnitude-based units.
func (p *Parser) ParseTimestamp(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		if ts, ok := p.parseString(s); ok {
			return ts, true
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return parseUnixTimestamp(n)
		}
		return time.Time{}, false
	case float64:
		return parseUnixTimestamp(v)
	case int:
		return parseUnixTimestamp(float64(v))
	case int64:
		return parseUnixTimestamp(float64(v))
	case uint64:
		return parseUnixTimestamp(float64(v))
	case time.Time:
		return v, !v.IsZero()
	default:
		return time.Time{}, false
	}
}

// ParseFromText scans the start of a log line for a timestamp and returns
// it together with the remaining text. Lines with no recognizable
// timestamp prefix come back unchanged with Found = false.
func (p *Parser) ParseFromText(text string) Result {
	match := leadingTimestampPattern.FindString(text)
	if match == "" {
		return Result{Remaining: text}
	}

	ts, ok := p.parseString(match)
	if !ok {
		return Result{Remaining: text}
	}

	remaining := strings.TrimLeft(text[len(match):], " \t")
	return Result{Found: true, Timestamp: ts, Remaining: remaining}
}

func (p *Parser) parseString(s string) (time.Time, bool) {
	// International formats use a comma decimal separator.
	normalized := strings.Replace(s, ",", ".", 1)
	for _, layout := range p.layouts {
		ts, err := time.Parse(layout, normalized)
		if err != nil {
			continue
		}
		// Layouts without a date component parse to year 0; pin them to
		// today so day truncation still works.
		if ts.Year() == 0 {
			now := time.Now()
			ts = time.Date(now.Year(), now.Month(), now.Day(),
				ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
		}
		return ts, true
	}
	return time.Time{}, false
}

// parseUnixTimestamp interprets a numeric epoch by magnitude: values
// below 1e11 are seconds (covers dates through year 5138), below 1e14
// milliseconds, below 1e17 microseconds, else nanoseconds.
func parseUnixTimestamp(v float64) (time.Time, bool) {
	if v <= 0 {
		return time.Time{}, false
	}
	switch {
	case v < 1e11:
		return time.Unix(int64(v), 0), true
	case v < 1e14:
		return time.UnixMilli(int64(v)), true
	case v < 1e17:
		return time.UnixMicro(int64(v)), true
	default:
		return time.Unix(0, int64(v)), true
	}
}
