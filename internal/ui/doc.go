// Package ui implements the evopanel terminal interface.
//
// # Overview
//
// The UI is a Bubble Tea program with four tabs - Mocks, Databases,
// Request Log, and Server - over the shared stores in internal/state.
// Tabs come and go freely, but all of them read the same injected
// stores, so switching tabs never re-subscribes to anything or loses
// updates that happened on another tab.
//
// # Structure
//
//   - app.go: root model, Update dispatch, View composition
//   - commands.go: tea.Cmd wrappers around backend calls; every failed
//     mutating action becomes an error toast naming the action
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: lipgloss themes and styles
//   - mocks.go, databases.go, logs.go, server.go: per-tab rendering
//     and key handling
//   - forms.go: textinput-based editors for mocks, databases, and the
//     server config
//   - modal.go: the confirmation modal (head of the broker queue)
//   - toasts.go: toast stack rendering
//   - header.go, help.go, helpers.go: chrome
//
// # Data Flow
//
// A once-a-second tick re-reads the stores and re-renders. Mutating
// commands run as tea.Cmds; on completion they emit an actionMsg which
// raises a toast and triggers the reconciling fetch for whatever the
// command touched. Destructive actions route through the confirmation
// broker: the initiating key queues a prompt and a command blocks on
// the outcome channel, so the action proceeds only when the user
// answers the modal.
package ui
