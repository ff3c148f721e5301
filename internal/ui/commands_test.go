package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
	"github.com/evohq/evopanel/internal/state"
)

type stubCommander struct {
	config   backend.ServerConfig
	startErr error
	stopErr  error
}

func (s *stubCommander) GetRequestLogs(ctx context.Context) ([]backend.LogEntry, error) {
	return nil, nil
}

func (s *stubCommander) ClearRequestLogs(ctx context.Context) error { return nil }

func (s *stubCommander) GetServerConfig(ctx context.Context) (backend.ServerConfig, error) {
	return s.config, nil
}

func (s *stubCommander) UpdateServerConfig(ctx context.Context, cfg backend.ServerConfig) error {
	s.config = cfg
	return nil
}

func (s *stubCommander) StartServer(ctx context.Context) error   { return s.startErr }
func (s *stubCommander) StopServer(ctx context.Context) error    { return s.stopErr }
func (s *stubCommander) RestartServer(ctx context.Context) error { return nil }

func modelWithCommander(cmdr backend.Commander) Model {
	return New(Options{
		Context: context.Background(),
		Stores: &state.Stores{
			Notifier: &state.Notifier{},
			Confirms: &state.Confirmer{},
			Server:   state.NewServerMirror(cmdr),
		},
	})
}

func TestToggleServerCmd_FailedStartNamesStart(t *testing.T) {
	cmdr := &stubCommander{startErr: errors.New("port 3000 already in use")}
	m := modelWithCommander(cmdr)

	// Fresh mirror reports stopped, so the attempted action is a start.
	msg, ok := m.toggleServerCmd()().(actionMsg)
	if !ok {
		t.Fatal("expected an actionMsg")
	}
	if msg.err == nil {
		t.Fatal("expected the start failure to surface")
	}
	if msg.action != "start server" {
		t.Errorf("action = %q, want %q", msg.action, "start server")
	}
}

func TestToggleServerCmd_FailedStopNamesStop(t *testing.T) {
	cmdr := &stubCommander{
		config:  backend.ServerConfig{Port: 3000, Host: "127.0.0.1", Running: true},
		stopErr: errors.New("daemon busy"),
	}
	m := modelWithCommander(cmdr)
	if err := m.stores.Server.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	msg, ok := m.toggleServerCmd()().(actionMsg)
	if !ok {
		t.Fatal("expected an actionMsg")
	}
	if msg.err == nil {
		t.Fatal("expected the stop failure to surface")
	}
	if msg.action != "stop server" {
		t.Errorf("action = %q, want %q", msg.action, "stop server")
	}
}

func TestToggleServerCmd_SuccessNamesAttemptedDirection(t *testing.T) {
	m := modelWithCommander(&stubCommander{})

	msg, ok := m.toggleServerCmd()().(actionMsg)
	if !ok {
		t.Fatal("expected an actionMsg")
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.action != "start server" {
		t.Errorf("action = %q, want %q", msg.action, "start server")
	}
	if !m.stores.Server.Snapshot().Running {
		t.Error("mirror should report running after a successful start")
	}
}

func TestServerFormSubmitsOnCtrlS(t *testing.T) {
	cmdr := &stubCommander{config: backend.ServerConfig{Port: 3000, Host: "127.0.0.1"}}
	m := modelWithCommander(cmdr)
	if err := m.stores.Server.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	m.server.form = newServerForm(backend.ServerConfig{Port: 8080, Host: "0.0.0.0"})

	next, cmd := m.updateServer(tea.KeyMsg{Type: tea.KeyCtrlS})
	if next.server.form != nil {
		t.Fatal("form should close on ctrl+s")
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg, ok := cmd().(actionMsg)
	if !ok {
		t.Fatal("expected an actionMsg")
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.action != "save config" {
		t.Errorf("action = %q, want %q", msg.action, "save config")
	}
	if cmdr.config.Port != 8080 || cmdr.config.Host != "0.0.0.0" {
		t.Errorf("config not persisted: %+v", cmdr.config)
	}
}
