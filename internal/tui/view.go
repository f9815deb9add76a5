package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/pulse/internal/aggregate"
	"github.com/tinytelemetry/pulse/internal/model"
)

const (
	legendWidth = 12

	// panelChrome is the horizontal space a bordered panel adds around
	// its content: border + padding on each side.
	panelChrome = 4

	tooltipContentLines = model.DefaultTooltipRows
)

func (m *DashboardModel) View() string {
	if m.width < 30 || m.height < 12 {
		return "Terminal too small"
	}

	statusLine := m.renderStatusLine()
	tooltipPanel := m.renderTooltipPanel()
	chartPanel := m.renderChartPanel(m.height - lipgloss.Height(tooltipPanel) - 1)

	return lipgloss.JoinVertical(lipgloss.Left, chartPanel, tooltipPanel, statusLine)
}

// window is the currently visible time extent, derived from the bucket
// range, zoom, and pan on every use.
func (m *DashboardModel) window() timeWindow {
	return viewWindow(fullWindow(m.result.Buckets), m.zoom, m.pan)
}

// chartContentWidth is the width of the chart column inside the panel,
// shared by rendering and pointer mapping so both use the same scale.
func (m *DashboardModel) chartContentWidth() int {
	chartWidth := m.width - panelChrome - legendWidth - 2
	if chartWidth < 20 {
		chartWidth = 20
	}
	return chartWidth
}

// locateAt maps a terminal column to the nearest day bucket through the
// visible window's linear time scale.
func (m *DashboardModel) locateAt(x int) *model.Bucket {
	if m.result.Empty() {
		return nil
	}
	instant, ok := xToTime(m.window(), m.chartContentWidth(), x-panelChrome/2)
	if !ok {
		return nil
	}
	return aggregate.Locate(m.result.Buckets, instant)
}

func (m *DashboardModel) renderChartPanel(panelHeight int) string {
	style := activeSectionStyle.Width(m.width - 2).Height(panelHeight - 2)

	contentWidth := m.width - panelChrome
	chartHeight := panelHeight - 3 // border rows + title line
	if chartHeight < 3 {
		chartHeight = 3
	}

	var headerText string
	leftTitle := "HTTP Status by Day"
	if !m.result.Empty() {
		rightStats := fmt.Sprintf("Total: %d | Max/day: %d | Zoom: %.2gx",
			m.result.GrandTotal, m.result.GlobalMax, m.zoom)
		spacerWidth := contentWidth - len(leftTitle) - len(rightStats)
		if spacerWidth > 0 {
			headerText = leftTitle + strings.Repeat(" ", spacerWidth) + rightStats
		} else {
			headerText = leftTitle
		}
	} else {
		headerText = leftTitle
	}
	title := chartTitleStyle.Render(headerText)

	var content string
	if m.result.Empty() {
		content = helpStyle.Render("No data: no qualifying HTTP records ingested yet")
	} else {
		chartWidth := m.chartContentWidth()
		chart := renderChart(m.result, m.series, m.window(), chartWidth, chartHeight)
		legend := renderLegend(m.result, chartHeight)
		content = joinColumns(chart, legend, chartWidth, chartHeight)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m *DashboardModel) renderTooltipPanel() string {
	style := sectionStyle.Width(m.width - 2).Height(tooltipContentLines)
	return style.Render(renderTooltip(m.hovered, m.result.CodeSet, m.width-panelChrome))
}

func (m *DashboardModel) renderStatusLine() string {
	help := " +/- zoom · 0 reset · ←/→ pan · mouse hover inspects · q quit"
	line := help
	if padding := m.width - lipgloss.Width(help); padding > 0 {
		line += strings.Repeat(" ", padding)
	}
	return statusLineStyle.Render(line)
}

// joinColumns pads the chart and legend line-by-line into two columns.
func joinColumns(chart, legend string, chartWidth, height int) string {
	chartLines := strings.Split(chart, "\n")
	legendLines := strings.Split(legend, "\n")

	separator := strings.Repeat(" ", 2)
	var combined []string
	for i := 0; i < height; i++ {
		chartLine := ""
		legendLine := ""
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		if i < len(legendLines) {
			legendLine = legendLines[i]
		}
		if w := lipgloss.Width(chartLine); w < chartWidth {
			chartLine += strings.Repeat(" ", chartWidth-w)
		}
		combined = append(combined, chartLine+separator+legendLine)
	}
	return strings.Join(combined, "\n")
}
