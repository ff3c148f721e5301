package ui

import "strings"

// viewHelp renders the full-screen key reference.
func (m Model) viewHelp() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Global", [][2]string{
			{"tab / shift+tab", "switch tab"},
			{"1-4", "jump to tab"},
			{"T", "cycle theme"},
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
		{"Mocks", [][2]string{
			{"n", "new mock endpoint"},
			{"e", "edit selected mock"},
			{"d", "delete selected mock"},
			{"R", "reload from daemon"},
		}},
		{"Databases", [][2]string{
			{"n", "new connection"},
			{"t", "test selected connection"},
			{"d", "remove selected connection"},
		}},
		{"Request Log", [][2]string{
			{"/", "text filter"},
			{"f", "cycle all / success / error"},
			{"enter", "expand request and response bodies"},
			{"c", "clear the log"},
		}},
		{"Server", [][2]string{
			{"s", "start or stop"},
			{"r", "restart"},
			{"e", "edit host and port"},
		}},
	}

	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(m.styles.AccentText.Render(sec.title))
		b.WriteString("\n")
		for _, row := range sec.rows {
			b.WriteString("  ")
			b.WriteString(m.styles.FormLabel.Render(padRight(row[0], 16)))
			b.WriteString(m.styles.MutedText.Render(row[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.FaintText.Render("Press ? or esc to close."))
	return b.String()
}
