package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/pwa-builder/internal/tui"
)

const defaultCharLimit = 256

// TextField is a labelled single line input. The line under the input
// shows the error when one is set and the help text otherwise.
type TextField struct {
	input    textinput.Model
	label    string
	helpText string
	required bool
	err      error
	dirty    bool
}

type TextFieldOption func(*TextField)

func WithPlaceholder(p string) TextFieldOption {
	return func(f *TextField) { f.input.Placeholder = p }
}

// WithRequired marks the label with an asterisk. Presence is checked by the
// field's validation rule, not here.
func WithRequired() TextFieldOption {
	return func(f *TextField) { f.required = true }
}

func WithHelp(h string) TextFieldOption {
	return func(f *TextField) { f.helpText = h }
}

func WithCharLimit(limit int) TextFieldOption {
	return func(f *TextField) { f.input.CharLimit = limit }
}

func NewTextField(label string, opts ...TextFieldOption) *TextField {
	f := &TextField{input: textinput.New(), label: label}
	f.input.CharLimit = defaultCharLimit
	f.input.Prompt = ""
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Update forwards key input to the text input while focused.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if !f.input.Focused() {
		return nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.dirty = f.dirty || f.input.Value() != before
	return cmd
}

func (f *TextField) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		f.labelView(),
		f.frame().Render(f.input.View()),
		f.footer(),
	)
}

func (f *TextField) labelView() string {
	label := tui.StyleFormLabel.Render(f.label)
	if f.required {
		label += tui.StyleError.Render(" *")
	}
	return label
}

func (f *TextField) frame() lipgloss.Style {
	switch {
	case f.err != nil:
		return tui.StyleFormInputError
	case f.input.Focused():
		return tui.StyleFormInputFocused
	}
	return tui.StyleFormInput
}

func (f *TextField) footer() string {
	if f.err != nil {
		return tui.StyleError.Render(tui.IconError + " " + f.err.Error())
	}
	if f.helpText != "" {
		return tui.StyleFormHelp.Render(f.helpText)
	}
	return ""
}

// SetValue replaces the text and moves the cursor to its end.
func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
	f.dirty = false
}

func (f *TextField) Value() string { return f.input.Value() }

// Dirty reports whether the user edited the value since the last SetValue.
func (f *TextField) Dirty() bool { return f.dirty }

func (f *TextField) SetError(err error) { f.err = err }
func (f *TextField) Error() error       { return f.err }

func (f *TextField) Focus() tea.Cmd { return f.input.Focus() }
func (f *TextField) Blur()          { f.input.Blur() }
func (f *TextField) Focused() bool  { return f.input.Focused() }
