package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabTitles = []string{"Mocks", "Databases", "Request Log", "Server"}

// viewHeader renders the title bar with the tab strip and a compact
// daemon status indicator.
func (m Model) viewHeader() string {
	parts := make([]string, 0, len(tabTitles)+2)
	parts = append(parts, m.styles.AccentText.Bold(true).Render(" evopanel "))

	for i, title := range tabTitles {
		if tab(i) == m.activeTab {
			parts = append(parts, m.styles.TabActive.Render(title))
		} else {
			parts = append(parts, m.styles.TabIdle.Render(title))
		}
	}

	snap := m.stores.Server.Snapshot()
	var status string
	switch {
	case snap.IsOffline():
		status = m.styles.DangerText.Render("● offline")
	case snap.Running:
		status = m.styles.SuccessText.Render("● running")
	default:
		status = m.styles.WarningText.Render("● stopped")
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + status
}

// viewFooter renders the context-sensitive key hints.
func (m Model) viewFooter() string {
	var hints string
	switch m.activeTab {
	case tabMocks:
		hints = "n new · e edit · d delete · R refresh"
	case tabDatabases:
		hints = "n new · t test · d delete · R refresh"
	case tabLogs:
		hints = "/ filter · f status filter · c clear · enter details"
	case tabServer:
		hints = "s start/stop · r restart · e edit"
	}
	hints += " · tab switch · T theme · ? help · q quit"
	return m.styles.Footer.Width(m.width).Render(hints)
}
