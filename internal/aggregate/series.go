package aggregate

import (
	"sort"
	"time"

	"github.com/tinytelemetry/pulse/internal/model"
)

// daySpread is the fraction of a day across which same-day points for
// different status codes are fanned out.
const daySpread = 0.6

// Offsets assigns each status code a fixed horizontal time shift derived
// from its rank in the sorted code set. The offsets are symmetric around
// the day boundary and strictly increasing in rank, so two codes never
// land on the same instant.
func Offsets(codeSet []int) map[int]time.Duration {
	offsets := make(map[int]time.Duration, len(codeSet))
	n := len(codeSet)
	if n <= 1 {
		for _, code := range codeSet {
			offsets[code] = 0
		}
		return offsets
	}

	center := float64(n-1) / 2
	span := daySpread * float64(24*time.Hour)
	for i, code := range codeSet {
		fraction := (float64(i) - center) / float64(n+1)
		offsets[code] = time.Duration(fraction * span)
	}
	return offsets
}

// BuildSeries converts densified buckets into one chartable series per
// status code. Every series has exactly one point per bucket in bucket
// order; days with no records for a code get explicit zero-count points.
// Point dates carry the code's jitter offset; counts are never shifted.
func BuildSeries(buckets []*model.Bucket, codeSet []int) map[int]model.Series {
	offsets := Offsets(codeSet)
	series := make(map[int]model.Series, len(codeSet))

	for _, code := range codeSet {
		points := make(model.Series, 0, len(buckets))
		offset := offsets[code]
		for _, bucket := range buckets {
			points = append(points, model.SeriesPoint{
				Date:  bucket.Date.Add(offset),
				Count: len(bucket.PerCode[code]),
			})
		}
		series[code] = points
	}
	return series
}

// Locate returns the bucket whose date is nearest to the query instant,
// preferring the earlier bucket on an exact distance tie. Buckets must be
// sorted ascending by date, which Aggregate guarantees. Runs in
// logarithmic time; it is called on every pointer-move event.
func Locate(buckets []*model.Bucket, query time.Time) *model.Bucket {
	if len(buckets) == 0 {
		return nil
	}

	i := sort.Search(len(buckets), func(j int) bool {
		return !buckets[j].Date.Before(query)
	})

	switch i {
	case 0:
		return buckets[0]
	case len(buckets):
		return buckets[len(buckets)-1]
	}

	left, right := buckets[i-1], buckets[i]
	if query.Sub(left.Date) <= right.Date.Sub(query) {
		return left
	}
	return right
}
