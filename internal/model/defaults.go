package model

// Shared defaults used by the CLI binary and the dashboard.
const (
	DefaultLineBuffer  = 50_000
	DefaultSkin        = "default"
	DefaultZoom        = 1.0
	MinZoom            = 1.0
	MaxZoom            = 10.0
	DefaultTooltipRows = 5
)
