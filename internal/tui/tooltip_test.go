package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/pulse/internal/model"
)

func tooltipBucket(date time.Time, code int, ids []string) *model.Bucket {
	bucket := &model.Bucket{
		Date:    date,
		Total:   len(ids),
		PerCode: map[int][]*model.LogRecord{},
	}
	for _, id := range ids {
		bucket.PerCode[code] = append(bucket.PerCode[code], &model.LogRecord{
			ID:         id,
			Kind:       "http_request",
			StatusCode: code,
			Timestamp:  date,
		})
	}
	return bucket
}

func TestRenderTooltip_CapsIDPreview(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	bucket := tooltipBucket(date, 200, []string{"r1", "r2", "r3", "r4", "r5"})

	out := renderTooltip(bucket, []int{200}, 120)
	for _, id := range []string{"r1", "r2", "r3"} {
		if !strings.Contains(out, id) {
			t.Errorf("preview should list %q, got %q", id, out)
		}
	}
	for _, id := range []string{"r4", "r5"} {
		if strings.Contains(out, id) {
			t.Errorf("preview should not list %q beyond the cap, got %q", id, out)
		}
	}
	if !strings.Contains(out, "…") {
		t.Errorf("capped preview should end with an overflow marker, got %q", out)
	}
}

func TestRenderTooltip_NoMarkerAtExactCap(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	bucket := tooltipBucket(date, 404, []string{"a", "b", "c"})

	out := renderTooltip(bucket, []int{404}, 120)
	for _, id := range []string{"a", "b", "c"} {
		if !strings.Contains(out, id) {
			t.Errorf("preview should list %q, got %q", id, out)
		}
	}
	if strings.Contains(out, "…") {
		t.Errorf("preview of exactly %d IDs should carry no overflow marker, got %q",
			maxPreviewIDs, out)
	}
}

func TestPreviewIDs_SkipsEmptyIDs(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty ids interleaved", []string{"", "a", "", "b"}, "a, b"},
		{"empty ids do not count against the cap", []string{"", "a", "", "b", "c", "d"}, "a, b, c, …"},
		{"all ids empty", []string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tooltipBucket(date, 200, tt.ids).PerCode[200]
			if got := previewIDs(group); got != tt.want {
				t.Errorf("previewIDs(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}

func TestRenderTooltip_EmptyDayAndNoHover(t *testing.T) {
	date := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	empty := tooltipBucket(date, 200, nil)

	out := renderTooltip(empty, []int{200}, 120)
	if !strings.Contains(out, "no qualifying records") {
		t.Errorf("zero-total bucket should render the empty-day line, got %q", out)
	}
	if !strings.Contains(out, "2024-01-11") {
		t.Errorf("empty-day tooltip should still show the date, got %q", out)
	}

	if out := renderTooltip(nil, nil, 120); !strings.Contains(out, "Hover") {
		t.Errorf("nil bucket should render the hover hint, got %q", out)
	}
}
