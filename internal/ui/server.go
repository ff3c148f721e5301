package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evohq/evopanel/internal/backend"
)

type serverView struct {
	form *form
}

func newServerForm(cfg backend.ServerConfig) *form {
	return newForm("Server configuration",
		formField{label: "Host", placeholder: "127.0.0.1", value: cfg.Host},
		formField{label: "Port", placeholder: "3000", value: strconv.Itoa(cfg.Port)},
	)
}

func serverConfigFromForm(f *form, current backend.ServerConfig) (backend.ServerConfig, error) {
	cfg := current
	host := f.value(0)
	if host == "" {
		host = "127.0.0.1"
	}
	cfg.Host = host
	port, err := strconv.Atoi(f.value(1))
	if err != nil || port < 1 || port > 65535 {
		return backend.ServerConfig{}, fmt.Errorf("invalid port %q", f.value(1))
	}
	cfg.Port = port
	return cfg, nil
}

func (m Model) updateServer(msg tea.KeyMsg) (Model, tea.Cmd) {
	snap := m.stores.Server.Snapshot()

	if m.server.form != nil {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.server.form = nil
			return m, nil
		case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Save):
			cfg, err := serverConfigFromForm(m.server.form, snap.Config)
			if err != nil {
				m.stores.Notifier.Error(err.Error())
				return m, nil
			}
			m.server.form = nil
			return m, m.saveServerConfigCmd(cfg)
		case key.Matches(msg, m.keys.Field):
			m.server.form.cycleFocus()
			return m, nil
		}
		return m, m.server.form.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if snap.Running {
			return m.confirm("Stop server",
				"Stop the mock server? In-flight requests will be dropped.",
				m.toggleServerCmd())
		}
		return m, m.toggleServerCmd()
	case key.Matches(msg, m.keys.Restart):
		return m.confirm("Restart server",
			"Restart the mock server? In-flight requests will be dropped.",
			m.restartServerCmd())
	case key.Matches(msg, m.keys.Edit):
		m.server.form = newServerForm(snap.Config)
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshServerCmd()
	}
	return m, nil
}

func (m Model) viewServer() string {
	if m.server.form != nil {
		return m.server.form.view(m.styles)
	}

	snap := m.stores.Server.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.FormLabel.Render("Status"))
	b.WriteString("  ")
	switch {
	case snap.IsOffline():
		b.WriteString(m.styles.DangerText.Render("daemon unreachable"))
	case snap.Running:
		b.WriteString(m.styles.SuccessText.Render("running"))
	default:
		b.WriteString(m.styles.WarningText.Render("stopped"))
	}
	b.WriteString("\n\n")

	if snap.HasConfig {
		b.WriteString(fmt.Sprintf("%s  http://%s:%d\n",
			m.styles.FormLabel.Render("Address"), snap.Config.Host, snap.Config.Port))
		autostart := "off"
		if snap.Config.Running {
			autostart = "on"
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.styles.FormLabel.Render("Autostart"), autostart))
	} else {
		b.WriteString(m.styles.FaintText.Render("Configuration not loaded yet.\n"))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n",
		m.styles.FormLabel.Render("Updated"), formatClock(snap.LastUpdated)))

	if snap.LastError != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.DangerText.Render(snap.LastError.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("s start/stop · r restart · e edit config · R refresh"))
	return b.String()
}
