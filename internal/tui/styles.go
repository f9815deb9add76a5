package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorNavy  = lipgloss.Color("17")
	ColorWhite = lipgloss.Color("255")

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusLineStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	tooltipDateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	tooltipDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// codeStyle returns the line/legend style for a status code, resolved
// through the active skin by status class.
func codeStyle(code int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(currentSkin.colorFor(code)))
}
