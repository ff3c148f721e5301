package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirm enqueues a confirmation prompt and arranges for next to run
// only when the user accepts it.
func (m Model) confirm(title, message string, next tea.Cmd) (Model, tea.Cmd) {
	outcome, err := m.stores.Confirms.Ask(message, title)
	if err != nil {
		m.stores.Notifier.Error("Too many pending confirmations")
		return m, nil
	}
	return m, awaitConfirmCmd(outcome, next)
}

// updateModal consumes keys while a confirmation is on screen.
func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.stores.Confirms.Resolve(true)
	case key.Matches(msg, m.keys.Reject):
		m.stores.Confirms.Resolve(false)
	}
	return m, nil
}

// viewModal renders the head of the confirmation queue centered over
// the given backdrop.
func (m Model) viewModal(backdrop string) string {
	current := m.stores.Confirms.Current()
	if current == nil {
		return backdrop
	}

	var b strings.Builder
	b.WriteString(m.styles.WarningText.Render(current.Title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(current.Message))
	if pending := m.stores.Confirms.Pending(); pending > 1 {
		b.WriteString("\n")
		b.WriteString(m.styles.FaintText.Render(
			fmt.Sprintf("(+%d more waiting)", pending-1)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.SuccessText.Render("[y] confirm"))
	b.WriteString("   ")
	b.WriteString(m.styles.DangerText.Render("[n] cancel"))

	box := m.styles.ModalBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
