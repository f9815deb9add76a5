package model

import "time"

// IngestEnvelope carries one raw log line with source metadata. It is the
// contract between log sources and the extractor.
type IngestEnvelope struct {
	Source string
	Line   string
}

// LogRecord represents a single log entry extracted from a raw input line.
// Only the fields the aggregation engine reads are typed; everything else
// from the original payload stays in Fields for tooltip display.
type LogRecord struct {
	ID         string
	Kind       string // normalized discriminator, e.g. "http_request"
	StatusCode int    // 0 = not resolved
	Timestamp  time.Time
	RawLine    string
	Fields     map[string]string
}

// Bucket holds aggregated counts for one calendar day.
type Bucket struct {
	Date    time.Time
	Total   int
	PerCode map[int][]*LogRecord
}

// SeriesPoint is one chartable point: the bucket's day (shifted by the
// code's jitter offset) and the count for that code on that day.
type SeriesPoint struct {
	Date  time.Time
	Count int
}

// Series is the ordered per-day point sequence for a single status code,
// one point per bucket in chronological bucket order.
type Series []SeriesPoint

// AggregateResult is the full output of one aggregation pass. It is
// rebuilt from scratch on every input change and never mutated after
// construction.
type AggregateResult struct {
	Buckets       []*Bucket
	CodeSet       []int
	PerCodeTotals map[int]int
	GrandTotal    int
	GlobalMax     int
}

// Empty reports whether the pass saw no qualifying records at all.
func (r *AggregateResult) Empty() bool {
	return r == nil || len(r.Buckets) == 0
}
