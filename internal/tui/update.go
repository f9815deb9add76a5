package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// zoomStep is the multiplicative zoom adjustment per key press or wheel
// notch.
const zoomStep = 1.25

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case RecordsMsg:
		m.records = append(m.records, msg...)
		m.recompute()
		return m, m.waitForRecords()

	case feedClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom = clampZoom(m.zoom * zoomStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom = clampZoom(m.zoom / zoomStep)
	case key.Matches(msg, m.keys.ZoomReset):
		m.zoom = clampZoom(1)
		m.pan = 0.5
	case key.Matches(msg, m.keys.PanLeft):
		m.pan = clampPan(m.pan - 0.1)
	case key.Matches(msg, m.keys.PanRight):
		m.pan = clampPan(m.pan + 0.1)
	}
	return m, nil
}

// handleMouse resolves pointer position to the nearest day bucket and
// maps the wheel to zoom.
func (m *DashboardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom = clampZoom(m.zoom * zoomStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.zoom = clampZoom(m.zoom / zoomStep)
		return m, nil
	}

	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}

	m.hovered = m.locateAt(msg.X)
	return m, nil
}
