package aggregate

import (
	"sort"
	"time"

	"github.com/tinytelemetry/pulse/internal/logparse"
	"github.com/tinytelemetry/pulse/internal/model"
	"github.com/tinytelemetry/pulse/internal/timestamp"
)

// Aggregate buckets qualifying HTTP request records into calendar-day
// totals broken down per status code. Days are truncated in loc (nil =
// local time). The result is freshly allocated on every call and never
// mutated afterwards; callers re-run the pass whenever the input changes.
func Aggregate(records []*model.LogRecord, loc *time.Location) *model.AggregateResult {
	if loc == nil {
		loc = time.Local
	}

	parser := timestamp.NewParser()
	byDay := make(map[time.Time]*model.Bucket)
	perCodeTotals := make(map[int]int)
	grandTotal := 0

	for _, record := range records {
		if !qualifies(record) {
			continue
		}
		ts, ok := resolveTimestamp(record, parser)
		if !ok {
			continue
		}

		day := truncateToDay(ts, loc)
		bucket := byDay[day]
		if bucket == nil {
			bucket = &model.Bucket{
				Date:    day,
				PerCode: make(map[int][]*model.LogRecord),
			}
			byDay[day] = bucket
		}

		bucket.Total++
		bucket.PerCode[record.StatusCode] = append(bucket.PerCode[record.StatusCode], record)
		perCodeTotals[record.StatusCode]++
		grandTotal++
	}

	buckets := densify(byDay, loc)

	codeSet := make([]int, 0, len(perCodeTotals))
	for code := range perCodeTotals {
		codeSet = append(codeSet, code)
	}
	sort.Ints(codeSet)

	globalMax := 0
	for _, bucket := range buckets {
		if bucket.Total > globalMax {
			globalMax = bucket.Total
		}
	}

	return &model.AggregateResult{
		Buckets:       buckets,
		CodeSet:       codeSet,
		PerCodeTotals: perCodeTotals,
		GrandTotal:    grandTotal,
		GlobalMax:     globalMax,
	}
}

// qualifies applies the filter: the record must carry the HTTP request
// discriminator and an in-range status code. Everything else is skipped
// silently, never treated as an error.
func qualifies(record *model.LogRecord) bool {
	if record == nil {
		return false
	}
	if logparse.NormalizeKind(record.Kind) == "" {
		return false
	}
	return record.StatusCode >= logparse.MinStatusCode &&
		record.StatusCode < logparse.MaxStatusCode
}

// resolveTimestamp tries the record's extracted timestamp first, then the
// raw fallback fields the extractor retained. Records with no parseable
// timestamp are skipped.
func resolveTimestamp(record *model.LogRecord, parser *timestamp.Parser) (time.Time, bool) {
	if !record.Timestamp.IsZero() {
		return record.Timestamp, true
	}
	for _, key := range []string{"time", "ts", "timestamp"} {
		raw, ok := record.Fields[key]
		if !ok {
			continue
		}
		if ts, parsed := parser.ParseTimestamp(raw); parsed {
			return ts, true
		}
	}
	return time.Time{}, false
}

func truncateToDay(ts time.Time, loc *time.Location) time.Time {
	local := ts.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// densify fills the gap days between the earliest and latest observed
// buckets with empty ones, so a chart connecting consecutive points never
// implies a slope across missing days. Returns buckets sorted ascending.
func densify(byDay map[time.Time]*model.Bucket, loc *time.Location) []*model.Bucket {
	if len(byDay) == 0 {
		return nil
	}

	var minDay, maxDay time.Time
	first := true
	for day := range byDay {
		if first {
			minDay, maxDay = day, day
			first = false
			continue
		}
		if day.Before(minDay) {
			minDay = day
		}
		if day.After(maxDay) {
			maxDay = day
		}
	}

	var buckets []*model.Bucket
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		if bucket, ok := byDay[day]; ok {
			buckets = append(buckets, bucket)
			continue
		}
		buckets = append(buckets, &model.Bucket{
			Date:    day,
			PerCode: make(map[int][]*model.LogRecord),
		})
	}
	return buckets
}
