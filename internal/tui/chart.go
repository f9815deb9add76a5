package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/pulse/internal/model"
)

// axisGutter is the number of columns the y-axis labels and axis line
// occupy on the left edge of the chart.
const axisGutter = 7

// timeWindow is the visible horizontal extent of the chart.
type timeWindow struct {
	min time.Time
	max time.Time
}

func (w timeWindow) span() time.Duration { return w.max.Sub(w.min) }

// fullWindow returns the unzoomed window: the bucket range padded by half
// a day on each side, so single-day datasets still have horizontal extent.
func fullWindow(buckets []*model.Bucket) timeWindow {
	if len(buckets) == 0 {
		return timeWindow{}
	}
	return timeWindow{
		min: buckets[0].Date.Add(-12 * time.Hour),
		max: buckets[len(buckets)-1].Date.Add(12 * time.Hour),
	}
}

// viewWindow narrows the full window by the zoom multiplier. pan selects
// which part of the scrollable range is visible: 0 = left edge, 1 = right
// edge, 0.5 = centered. Zoom scales the horizontal axis only.
func viewWindow(full timeWindow, zoom, pan float64) timeWindow {
	zoom = clampZoom(zoom)
	pan = clampPan(pan)

	span := time.Duration(float64(full.span()) / zoom)
	scrollable := full.span() - span
	start := full.min.Add(time.Duration(float64(scrollable) * pan))
	return timeWindow{min: start, max: start.Add(span)}
}

func clampZoom(zoom float64) float64 {
	if zoom < model.MinZoom {
		return model.MinZoom
	}
	if zoom > model.MaxZoom {
		return model.MaxZoom
	}
	return zoom
}

func clampPan(pan float64) float64 {
	if pan < 0 {
		return 0
	}
	if pan > 1 {
		return 1
	}
	return pan
}

// xToTime maps a column inside the chart's content area to an instant in
// the visible window. ok is false for columns in the axis gutter or
// outside the graph.
func xToTime(window timeWindow, contentWidth, x int) (time.Time, bool) {
	graphWidth := contentWidth - axisGutter
	gx := x - axisGutter
	if graphWidth <= 0 || gx < 0 || gx >= graphWidth {
		return time.Time{}, false
	}
	fraction := float64(gx) / float64(graphWidth-1)
	if graphWidth == 1 {
		fraction = 0
	}
	return window.min.Add(time.Duration(fraction * float64(window.span()))), true
}

// renderChart draws one braille line per status code over the visible
// window. The y axis is fixed to [0, global max] so zooming never
// rescales counts.
func renderChart(result *model.AggregateResult, series map[int]model.Series, window timeWindow, width, height int) string {
	if result.Empty() || width <= axisGutter+2 || height < 3 {
		return helpStyle.Render("No data")
	}

	chart := timeserieslinechart.New(width, height)
	chart.AxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(currentSkin.Axis))
	chart.LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(currentSkin.Label))
	chart.XLabelFormatter = timeserieslinechart.DateTimeLabelFormatter()

	yMax := float64(result.GlobalMax)
	if yMax < 1 {
		yMax = 1
	}
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.SetTimeRange(window.min, window.max)
	chart.SetViewTimeRange(window.min, window.max)

	for _, code := range result.CodeSet {
		name := datasetName(code)
		chart.SetDataSetStyle(name, codeStyle(code))
		for _, point := range series[code] {
			chart.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  point.Date,
				Value: float64(point.Count),
			})
		}
	}

	chart.DrawBrailleAll()
	return chart.View()
}

func datasetName(code int) string {
	return fmt.Sprintf("%d", code)
}

// renderLegend lists each status code with its per-code total, one entry
// per line, colored like its series.
func renderLegend(result *model.AggregateResult, rows int) string {
	lines := make([]string, 0, rows)
	for _, code := range result.CodeSet {
		if len(lines) >= rows {
			break
		}
		label := fmt.Sprintf("%-4d", code)
		value := fmt.Sprintf("%6d", result.PerCodeTotals[code])
		lines = append(lines, codeStyle(code).Render(label+value))
	}
	if len(lines) < rows && !result.Empty() {
		lines = append(lines, tooltipDimStyle.Render("──────────"))
		lines = append(lines, tooltipDimStyle.Render(fmt.Sprintf("all %6d", result.GrandTotal)))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:rows], "\n")
}
