package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/pwa-builder/internal/tui"
)

type RadioOption struct {
	Value    string
	Label    string
	Disabled bool
}

// Radio is a single-choice option list. Nothing is selected until the user
// picks an option or SetValue is called.
type Radio struct {
	label    string
	helpText string
	options  []RadioOption
	cursor   int
	selected int
	focused  bool
	err      error
}

func NewRadio(label string, options []RadioOption, helpText string) *Radio {
	return &Radio{
		label:    label,
		options:  options,
		helpText: helpText,
		selected: -1,
	}
}

// Update moves the cursor with up/down (or k/j) and selects with space or x.
// Disabled options can be highlighted but not selected.
func (m *Radio) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ", "x":
		if m.cursor < len(m.options) && !m.options[m.cursor].Disabled {
			m.selected = m.cursor
		}
	}
	return nil
}

func (m *Radio) View() string {
	label := tui.StyleFormLabel.Render(m.label)

	opts := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		icon := tui.IconOption
		if i == m.selected {
			icon = tui.IconSelected
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(tui.ColorText)
		if m.focused && i == m.cursor {
			prefix = tui.IconCursor + " "
			style = tui.StyleHighlight
		}
		if opt.Disabled {
			style = tui.StyleMuted
		}
		opts = append(opts, style.Render(prefix+icon+" "+opt.Label))
	}

	box := tui.StyleFormInput
	switch {
	case m.err != nil:
		box = tui.StyleFormInputError
	case m.focused:
		box = tui.StyleFormInputFocused
	}

	var helpView string
	if m.err != nil {
		helpView = tui.StyleError.Render(m.err.Error())
	} else if m.helpText != "" {
		helpView = tui.StyleFormHelp.Render(m.helpText)
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(strings.Join(opts, "\n")), helpView)
}

// SetValue selects the option with the given value; an unknown value clears the selection.
func (m *Radio) SetValue(value string) {
	m.selected = -1
	for i, opt := range m.options {
		if opt.Value == value {
			m.selected = i
			m.cursor = i
			return
		}
	}
}

func (m *Radio) Value() string {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected].Value
	}
	return ""
}

func (m *Radio) SetError(err error) {
	m.err = err
}

func (m *Radio) Error() error {
	return m.err
}

func (m *Radio) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *Radio) Blur() {
	m.focused = false
}

func (m *Radio) Focused() bool {
	return m.focused
}
