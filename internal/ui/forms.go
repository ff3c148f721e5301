package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical stack of labelled text inputs with one focused
// field at a time.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...formField) *form {
	f := &form{title: title}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.SetValue(field.value)
		in.CharLimit = 512
		in.Width = 48
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

type formField struct {
	label       string
	placeholder string
	value       string
}

// cycleFocus moves focus to the next field, wrapping around.
func (f *form) cycleFocus() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// value returns the trimmed content of field i.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render(f.title))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			b.WriteString(styles.FormLabel.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(styles.FaintText.Render("enter submit · tab next field · esc cancel"))
	return styles.Panel.Render(b.String())
}
