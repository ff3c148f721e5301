package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
)

type databasesView struct {
	list    []backend.DatabaseConfig
	cursor  int
	loadErr error

	form *form
}

func newDatabaseForm() *form {
	return newForm("New database connection",
		formField{label: "Name", placeholder: "users-db"},
		formField{label: "Connection URL", placeholder: "postgres://localhost:5432/users"},
	)
}

func databaseFromForm(f *form) (backend.DatabaseConfig, error) {
	db := backend.DatabaseConfig{Name: f.value(0), URL: f.value(1)}
	if db.Name == "" {
		return backend.DatabaseConfig{}, fmt.Errorf("name is required")
	}
	if db.URL == "" {
		return backend.DatabaseConfig{}, fmt.Errorf("connection URL is required")
	}
	return db, nil
}

func (m Model) updateDatabases(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.databases.form != nil {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.databases.form = nil
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			db, err := databaseFromForm(m.databases.form)
			if err != nil {
				m.stores.Notifier.Error(err.Error())
				return m, nil
			}
			m.databases.form = nil
			return m, m.addDatabaseCmd(db)
		case key.Matches(msg, m.keys.Field):
			m.databases.form.cycleFocus()
			return m, nil
		}
		return m, m.databases.form.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.databases.cursor = clampCursor(m.databases.cursor-1, len(m.databases.list))
	case key.Matches(msg, m.keys.Down):
		m.databases.cursor = clampCursor(m.databases.cursor+1, len(m.databases.list))
	case key.Matches(msg, m.keys.New):
		m.databases.form = newDatabaseForm()
		return m, nil
	case key.Matches(msg, m.keys.Test):
		if db, ok := m.selectedDatabase(); ok {
			m.stores.Notifier.Info("Testing " + db.Name + "...")
			return m, m.testDatabaseCmd(db.URL)
		}
	case key.Matches(msg, m.keys.Delete):
		if db, ok := m.selectedDatabase(); ok {
			return m.confirm("Remove database",
				fmt.Sprintf("Remove connection %q? Scripts using it will fail.", db.Name),
				m.removeDatabaseCmd(db.Name))
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchDatabasesCmd()
	}
	return m, nil
}

func (m Model) selectedDatabase() (backend.DatabaseConfig, bool) {
	if len(m.databases.list) == 0 {
		return backend.DatabaseConfig{}, false
	}
	return m.databases.list[clampCursor(m.databases.cursor, len(m.databases.list))], true
}

func (m Model) viewDatabases() string {
	if m.databases.form != nil {
		return m.databases.form.view(m.styles)
	}

	var b strings.Builder
	if m.databases.loadErr != nil {
		b.WriteString(m.styles.DangerText.Render("Failed to load databases: " + m.databases.loadErr.Error()))
		b.WriteString("\n\n")
	}
	if len(m.databases.list) == 0 {
		b.WriteString(m.styles.FaintText.Render("No database connections. Press n to add one."))
		return b.String()
	}

	cursor := clampCursor(m.databases.cursor, len(m.databases.list))
	for i, db := range m.databases.list {
		line := fmt.Sprintf("%s  %s",
			padRight(db.Name, 20),
			m.styles.MutedText.Render(truncate(db.URL, 52)),
		)
		if i == cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
