package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/pwa-builder/internal/tui"
)

type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = iota
	ButtonStyleSecondary
)

// Button emits the message returned by onPress when activated with enter or space.
type Button struct {
	label   string
	focused bool
	style   ButtonStyle
	onPress func() tea.Msg
}

func NewButton(label string, style ButtonStyle, onPress func() tea.Msg) *Button {
	return &Button{
		label:   label,
		style:   style,
		onPress: onPress,
	}
}

func (m *Button) Update(msg tea.Msg) tea.Cmd {
	if !m.focused || m.onPress == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			return m.onPress
		}
	}
	return nil
}

func (m *Button) View() string {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)

	accent := tui.ColorPrimary
	if m.style == ButtonStyleSecondary {
		accent = tui.ColorSubtle
	}

	if m.focused {
		return base.
			Background(accent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Render(m.label)
	}
	return base.
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Foreground(tui.ColorTextDim).
		Render(m.label)
}

func (m *Button) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *Button) Blur() {
	m.focused = false
}

func (m *Button) Focused() bool {
	return m.focused
}
