package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/pulse/internal/aggregate"
	"github.com/tinytelemetry/pulse/internal/model"
)

// RecordsMsg delivers a batch of newly ingested records to the dashboard.
type RecordsMsg []*model.LogRecord

// feedClosedMsg signals that the record feed reached EOF.
type feedClosedMsg struct{}

// DashboardModel is the Bubble Tea model for the status chart dashboard.
// It owns the raw record collection and re-derives the entire
// aggregation from scratch whenever the collection changes; zoom and
// viewport changes only affect presentation.
type DashboardModel struct {
	keys KeyMap
	loc  *time.Location
	feed <-chan []*model.LogRecord

	records []*model.LogRecord
	result  *model.AggregateResult
	series  map[int]model.Series

	zoom    float64
	pan     float64
	hovered *model.Bucket

	width  int
	height int
}

// NewDashboardModel creates a dashboard over an initial record collection
// and an optional feed of further batches. loc controls day truncation
// (nil = local time).
func NewDashboardModel(records []*model.LogRecord, feed <-chan []*model.LogRecord, loc *time.Location) *DashboardModel {
	m := &DashboardModel{
		keys:    DefaultKeyMap(),
		loc:     loc,
		feed:    feed,
		records: records,
		zoom:    model.DefaultZoom,
		pan:     0.5,
	}
	m.recompute()
	return m
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.waitForRecords()
}

// recompute re-runs the full aggregate and build-series pipeline. The previous
// result is discarded wholesale; the hovered bucket is re-located in the
// fresh bucket list so the tooltip never points into a stale structure.
func (m *DashboardModel) recompute() {
	m.result = aggregate.Aggregate(m.records, m.loc)
	m.series = aggregate.BuildSeries(m.result.Buckets, m.result.CodeSet)

	if m.hovered != nil {
		m.hovered = aggregate.Locate(m.result.Buckets, m.hovered.Date)
	}
}

// waitForRecords blocks on the feed and converts batches into messages.
func (m *DashboardModel) waitForRecords() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	return func() tea.Msg {
		batch, ok := <-m.feed
		if !ok {
			return feedClosedMsg{}
		}
		return RecordsMsg(batch)
	}
}

// SetZoom applies a configured starting zoom, clamped to the allowed
// range.
func (m *DashboardModel) SetZoom(zoom float64) {
	m.zoom = clampZoom(zoom)
}

// Result exposes the current aggregation, for tests.
func (m *DashboardModel) Result() *model.AggregateResult { return m.result }

// Zoom exposes the current zoom multiplier, for tests.
func (m *DashboardModel) Zoom() float64 { return m.zoom }
