package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/pulse/internal/model"
)

// maxPreviewIDs caps how many contributing record identifiers the tooltip
// lists per status code.
const maxPreviewIDs = 3

// renderTooltip shows the hovered day's total and per-code breakdown with
// a capped preview of contributing record IDs.
func renderTooltip(bucket *model.Bucket, codeSet []int, width int) string {
	if bucket == nil {
		return helpStyle.Render("Hover over the chart to inspect a day")
	}

	var b strings.Builder
	b.WriteString(tooltipDateStyle.Render(bucket.Date.Format("Mon 2006-01-02")))
	b.WriteString(tooltipDimStyle.Render(fmt.Sprintf("  %d request(s)", bucket.Total)))

	if bucket.Total == 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("no qualifying records on this day"))
		return b.String()
	}

	for _, code := range codeSet {
		group := bucket.PerCode[code]
		if len(group) == 0 {
			continue
		}
		line := fmt.Sprintf("%d × %-3d", len(group), code)
		if preview := previewIDs(group); preview != "" {
			line += "  " + preview
		}
		b.WriteString("\n")
		b.WriteString(codeStyle(code).MaxWidth(width).Render(line))
	}
	return b.String()
}

func previewIDs(group []*model.LogRecord) string {
	ids := make([]string, 0, maxPreviewIDs)
	for _, record := range group {
		if record.ID == "" {
			continue
		}
		if len(ids) == maxPreviewIDs {
			ids = append(ids, "…")
			break
		}
		ids = append(ids, record.ID)
	}
	return strings.Join(ids, ", ")
}
