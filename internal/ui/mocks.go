package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
)

type mocksView struct {
	list    []backend.MockRoute
	cursor  int
	loadErr error

	form      *form
	editingID string
}

func newMockForm(title string, mock backend.MockRoute) *form {
	status := ""
	if mock.StatusCode != 0 {
		status = strconv.Itoa(mock.StatusCode)
	}
	return newForm(title,
		formField{label: "Method", placeholder: "GET", value: mock.Method},
		formField{label: "Path", placeholder: "/users", value: mock.Path},
		formField{label: "Status code", placeholder: "200", value: status},
		formField{label: "Response type", placeholder: "json, html, raw, js or proxy", value: mock.ResponseType},
		formField{label: "Response body", placeholder: `{"ok": true}`, value: mock.ResponseBody},
	)
}

// mockFromForm validates the editor fields into a route, filling the
// daemon defaults for blank optional fields.
func mockFromForm(f *form) (backend.MockRoute, error) {
	mock := backend.MockRoute{
		Method:       strings.ToUpper(f.value(0)),
		Path:         f.value(1),
		ResponseType: strings.ToLower(f.value(3)),
		ResponseBody: f.inputs[4].Value(),
	}
	if mock.Method == "" {
		mock.Method = "GET"
	}
	if mock.Path == "" {
		return backend.MockRoute{}, fmt.Errorf("path is required")
	}
	if !strings.HasPrefix(mock.Path, "/") {
		mock.Path = "/" + mock.Path
	}
	status := f.value(2)
	if status == "" {
		mock.StatusCode = 200
	} else {
		code, err := strconv.Atoi(status)
		if err != nil || code < 100 || code > 599 {
			return backend.MockRoute{}, fmt.Errorf("invalid status code %q", status)
		}
		mock.StatusCode = code
	}
	switch mock.ResponseType {
	case "":
		mock.ResponseType = backend.ResponseJSON
	case backend.ResponseJSON, backend.ResponseHTML, backend.ResponseRaw, backend.ResponseJS, backend.ResponseProxy:
	default:
		return backend.MockRoute{}, fmt.Errorf("unknown response type %q", mock.ResponseType)
	}
	return mock, nil
}

func (m Model) updateMocks(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.mocks.form != nil {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.mocks.form = nil
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			mock, err := mockFromForm(m.mocks.form)
			if err != nil {
				m.stores.Notifier.Error(err.Error())
				return m, nil
			}
			oldID := m.mocks.editingID
			m.mocks.form = nil
			if oldID == "" {
				return m, m.addMockCmd(mock)
			}
			return m, m.updateMockCmd(oldID, mock)
		case key.Matches(msg, m.keys.Field):
			m.mocks.form.cycleFocus()
			return m, nil
		}
		return m, m.mocks.form.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.mocks.cursor = clampCursor(m.mocks.cursor-1, len(m.mocks.list))
	case key.Matches(msg, m.keys.Down):
		m.mocks.cursor = clampCursor(m.mocks.cursor+1, len(m.mocks.list))
	case key.Matches(msg, m.keys.New):
		m.mocks.editingID = ""
		m.mocks.form = newMockForm("New mock endpoint", backend.MockRoute{})
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if mock, ok := m.selectedMock(); ok {
			m.mocks.editingID = mock.ID
			m.mocks.form = newMockForm("Edit "+mock.ID, mock)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if mock, ok := m.selectedMock(); ok {
			return m.confirm("Delete mock",
				fmt.Sprintf("Delete %s? Requests to this route will 404.", mock.ID),
				m.removeMockCmd(mock.ID))
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchMocksCmd()
	}
	return m, nil
}

func (m Model) selectedMock() (backend.MockRoute, bool) {
	if len(m.mocks.list) == 0 {
		return backend.MockRoute{}, false
	}
	return m.mocks.list[clampCursor(m.mocks.cursor, len(m.mocks.list))], true
}

func (m Model) viewMocks() string {
	if m.mocks.form != nil {
		return m.mocks.form.view(m.styles)
	}

	var b strings.Builder
	if m.mocks.loadErr != nil {
		b.WriteString(m.styles.DangerText.Render("Failed to load mocks: " + m.mocks.loadErr.Error()))
		b.WriteString("\n\n")
	}
	if len(m.mocks.list) == 0 {
		b.WriteString(m.styles.FaintText.Render("No mock endpoints. Press n to add one."))
		return b.String()
	}

	cursor := clampCursor(m.mocks.cursor, len(m.mocks.list))
	for i, mock := range m.mocks.list {
		line := fmt.Sprintf("%s %s  %s  %s",
			padRight(mock.Method, 7),
			padRight(truncate(mock.Path, 36), 36),
			m.styles.StatusClassStyle(mock.StatusCode).Render(strconv.Itoa(mock.StatusCode)),
			m.styles.MutedText.Render(mock.ResponseType),
		)
		if i == cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if mock, ok := m.selectedMock(); ok && mock.ResponseBody != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.FormLabel.Render("Response body"))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(truncate(mock.ResponseBody, 400)))
		b.WriteString("\n")
	}
	return b.String()
}
