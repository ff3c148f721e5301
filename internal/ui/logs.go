package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
)

// statusFilter narrows the request log by response class.
type statusFilter int

const (
	statusFilterAll statusFilter = iota
	statusFilterSuccess
	statusFilterError
)

func (f statusFilter) String() string {
	switch f {
	case statusFilterSuccess:
		return "success"
	case statusFilterError:
		return "error"
	default:
		return "all"
	}
}

func (f statusFilter) next() statusFilter {
	switch f {
	case statusFilterAll:
		return statusFilterSuccess
	case statusFilterSuccess:
		return statusFilterError
	default:
		return statusFilterAll
	}
}

// matches reports whether a status code falls inside the filter class.
func (f statusFilter) matches(code int) bool {
	switch f {
	case statusFilterSuccess:
		return code >= 200 && code < 400
	case statusFilterError:
		return code >= 400
	default:
		return true
	}
}

// matchesSearch reports whether the entry's method, path or status code
// contains the query, case-insensitively. An empty query matches everything.
func matchesSearch(entry backend.LogEntry, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Method), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Path), query) {
		return true
	}
	return strings.Contains(strconv.Itoa(entry.StatusCode), query)
}

// filterEntries applies the search query and the status class filter.
func filterEntries(entries []backend.LogEntry, query string, f statusFilter) []backend.LogEntry {
	out := make([]backend.LogEntry, 0, len(entries))
	for _, e := range entries {
		if f.matches(e.StatusCode) && matchesSearch(e, query) {
			out = append(out, e)
		}
	}
	return out
}

type logsView struct {
	cursor    int
	search    textinput.Model
	searching bool
	filter    statusFilter
	expanded  bool
}

func newLogsView() logsView {
	search := textinput.New()
	search.Placeholder = "method, path or status"
	search.Prompt = "/ "
	search.CharLimit = 120
	return logsView{search: search}
}

func (m Model) updateLogs(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.logs.searching {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.logs.searching = false
			m.logs.search.SetValue("")
			m.logs.search.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.logs.searching = false
			m.logs.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.logs.search, cmd = m.logs.search.Update(msg)
		m.logs.cursor = 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.logs.cursor = clampCursor(m.logs.cursor-1, m.stores.Logs.Len())
	case key.Matches(msg, m.keys.Down):
		m.logs.cursor = clampCursor(m.logs.cursor+1, m.stores.Logs.Len())
	case key.Matches(msg, m.keys.Search):
		m.logs.searching = true
		return m, m.logs.search.Focus()
	case key.Matches(msg, m.keys.CycleFilter):
		m.logs.filter = m.logs.filter.next()
		m.logs.cursor = 0
	case key.Matches(msg, m.keys.Submit):
		m.logs.expanded = !m.logs.expanded
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchLogsCmd()
	case key.Matches(msg, m.keys.Clear):
		return m.confirm("Clear request log",
			"Delete all captured requests? This cannot be undone.",
			m.clearLogsCmd())
	}
	return m, nil
}

func (m Model) viewLogs() string {
	entries := filterEntries(m.stores.Logs.Entries(), m.logs.search.Value(), m.logs.filter)
	cursor := clampCursor(m.logs.cursor, len(entries))

	var b strings.Builder
	header := fmt.Sprintf("%d of %d requests, filter: %s",
		len(entries), m.stores.Logs.Len(), m.logs.filter)
	b.WriteString(m.styles.MutedText.Render(header))
	b.WriteString("\n")
	if m.logs.searching || m.logs.search.Value() != "" {
		b.WriteString(m.logs.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(m.styles.FaintText.Render("No requests captured."))
		return b.String()
	}

	for i, entry := range entries {
		line := fmt.Sprintf("%s  %s %s  %s  %s",
			formatClock(entry.Time()),
			m.styles.StatusClassStyle(entry.StatusCode).Render(strconv.Itoa(entry.StatusCode)),
			padRight(entry.Method, 7),
			padRight(truncate(entry.Path, 42), 42),
			formatDuration(entry.DurationMs),
		)
		if i == cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.logs.expanded && cursor < len(entries) {
		entry := entries[cursor]
		b.WriteString("\n")
		b.WriteString(m.styles.FormLabel.Render("Request"))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(truncate(entry.RequestBody, 400)))
		b.WriteString("\n")
		b.WriteString(m.styles.FormLabel.Render("Response"))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(truncate(entry.ResponseBody, 400)))
		b.WriteString("\n")
	}
	return b.String()
}
