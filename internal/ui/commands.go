package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
)

// commandTimeout bounds every backend call issued from the UI loop.
const commandTimeout = 10 * time.Second

type tickMsg time.Time

// mocksMsg carries a fresh mock route listing.
type mocksMsg struct {
	mocks []backend.MockRoute
	err   error
}

// databasesMsg carries a fresh database connection listing.
type databasesMsg struct {
	databases []backend.DatabaseConfig
	err       error
}

// actionMsg reports the outcome of a mutating backend call. The action
// name is used verbatim in the resulting toast.
type actionMsg struct {
	action string
	err    error
	detail string
}

// confirmResultMsg carries the answer to a confirmation prompt together
// with the command to run when the user accepted.
type confirmResultMsg struct {
	accepted bool
	next     tea.Cmd
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchMocksCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		mocks, err := m.client.ListMocks(ctx)
		return mocksMsg{mocks: mocks, err: err}
	}
}

func (m Model) fetchDatabasesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		dbs, err := m.client.ListDatabases(ctx)
		return databasesMsg{databases: dbs, err: err}
	}
}

func (m Model) addMockCmd(mock backend.MockRoute) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "add mock", err: m.client.AddMock(ctx, mock)}
	}
}

func (m Model) updateMockCmd(oldID string, mock backend.MockRoute) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "update mock", err: m.client.UpdateMock(ctx, oldID, mock)}
	}
}

func (m Model) removeMockCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "remove mock", err: m.client.RemoveMock(ctx, id)}
	}
}

func (m Model) addDatabaseCmd(db backend.DatabaseConfig) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "add database", err: m.client.AddDatabase(ctx, db)}
	}
}

func (m Model) removeDatabaseCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "remove database", err: m.client.RemoveDatabase(ctx, name)}
	}
}

func (m Model) testDatabaseCmd(dbURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		message, err := m.client.TestDatabase(ctx, dbURL)
		return actionMsg{action: "test connection", err: err, detail: message}
	}
}

func (m Model) clearLogsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "clear logs", err: m.stores.Logs.Clear(ctx)}
	}
}

func (m Model) fetchLogsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "refresh logs", err: m.stores.Logs.Fetch(ctx)}
	}
}

func (m Model) toggleServerCmd() tea.Cmd {
	return func() tea.Msg {
		// The attempted direction is fixed before the command runs so
		// a failed toggle still names what the user asked for.
		action := "start server"
		if m.stores.Server.Snapshot().Running {
			action = "stop server"
		}
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		_, err := m.stores.Server.Toggle(ctx)
		return actionMsg{action: action, err: err}
	}
}

func (m Model) restartServerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "restart server", err: m.stores.Server.Restart(ctx)}
	}
}

func (m Model) saveServerConfigCmd(cfg backend.ServerConfig) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "save config", err: m.stores.Server.Save(ctx, cfg)}
	}
}

func (m Model) refreshServerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, commandTimeout)
		defer cancel()
		return actionMsg{action: "refresh status", err: m.stores.Server.Refresh(ctx)}
	}
}

// awaitConfirmCmd blocks on the broker outcome and forwards the follow-up
// command when the request was accepted.
func awaitConfirmCmd(outcome <-chan bool, next tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		accepted := <-outcome
		if !accepted {
			return confirmResultMsg{accepted: false}
		}
		return confirmResultMsg{accepted: true, next: next}
	}
}
