package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evohq/evopanel/internal/state"
)

// viewToasts renders the live toast stack, oldest first.
func (m Model) viewToasts() string {
	toasts := m.stores.Notifier.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		lines = append(lines, m.toastStyle(t.Kind).Render(toastSymbol(t.Kind)+" "+t.Message))
	}
	return strings.Join(lines, "\n")
}

func (m Model) toastStyle(kind state.Kind) lipgloss.Style {
	switch kind {
	case state.KindSuccess:
		return m.styles.SuccessText
	case state.KindError:
		return m.styles.DangerText
	case state.KindWarning:
		return m.styles.WarningText
	default:
		return m.styles.InfoText
	}
}

func toastSymbol(kind state.Kind) string {
	switch kind {
	case state.KindSuccess:
		return "✓"
	case state.KindError:
		return "✗"
	case state.KindWarning:
		return "!"
	default:
		return "·"
	}
}
