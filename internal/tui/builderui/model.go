// Package builderui is the Bubble Tea front-end of the configuration wizard.
package builderui

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/pwa-builder/internal/builder"
	"github.com/user/pwa-builder/internal/tui/components"
)

// generateMsg runs a throttled submission on the event loop.
type generateMsg struct{}

type submitMsg struct{}

type resetMsg struct{}

// Model renders one wizard session. Fields hidden by the current state are
// unmounted, which also removes them from the wizard registry.
type Model struct {
	wizard *builder.Wizard
	ctx    context.Context

	fields  map[string]*fieldView
	unmount map[string]func()
	order   []string

	focus  *components.FocusRing
	submit *components.Button
	reset  *components.Button

	// viewport scrolls the form once the terminal size is known.
	viewport viewport.Model

	send     func(tea.Msg)
	pending  tea.Cmd
	lastErr  error
	width    int
	height   int
	quitting bool
}

// New creates the model and its wizard. opts configure the wizard; the
// settle barrier is owned by the model.
func New(ctx context.Context, opts ...builder.Option) *Model {
	m := &Model{
		ctx:      ctx,
		fields:   make(map[string]*fieldView),
		unmount:  make(map[string]func()),
		focus:    components.NewFocusRing(),
		viewport: viewport.New(defaultWidth, 0),
	}
	m.submit = components.NewButton("Generate", components.ButtonStylePrimary, func() tea.Msg { return submitMsg{} })
	m.reset = components.NewButton("Reset", components.ButtonStyleSecondary, func() tea.Msg { return resetMsg{} })

	m.wizard = builder.New(append(opts, builder.WithSettle(m.reconcile))...)
	m.wizard.SetDispatcher(m.dispatch)

	m.reconcile()
	m.pending = m.focus.First()
	m.layout()
	return m
}

// Attach routes throttled submissions through send, normally tea.Program.Send.
// Call it before the program starts.
func (m *Model) Attach(send func(tea.Msg)) {
	m.send = send
}

// Wizard returns the session driven by this model.
func (m *Model) Wizard() *builder.Wizard {
	return m.wizard
}

// Err returns the last generator failure, if any.
func (m *Model) Err() error {
	return m.lastErr
}

// dispatch is called by the throttle, possibly from a timer goroutine, and
// may run inside Update. Sending from a fresh goroutine avoids blocking the loop.
func (m *Model) dispatch() {
	if m.send == nil {
		return
	}
	go m.send(generateMsg{})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.takePending())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil

	case generateMsg:
		m.generate()
		return m.takePending()

	case submitMsg:
		m.wizard.Submit()
		return m.takePending()

	case resetMsg:
		m.lastErr = nil
		m.wizard.Reset()
		return m.takePending()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		m.wizard.Close()
		return tea.Quit
	case "ctrl+r":
		return func() tea.Msg { return resetMsg{} }
	}

	if m.wizard.Phase() == builder.PhaseResult {
		switch msg.String() {
		case "n":
			return func() tea.Msg { return resetMsg{} }
		case "q", "esc":
			m.quitting = true
			m.wizard.Close()
			return tea.Quit
		}
		return nil
	}

	switch msg.String() {
	case "ctrl+g":
		return func() tea.Msg { return submitMsg{} }
	case "tab":
		return m.focus.Next()
	case "shift+tab":
		return m.focus.Prev()
	case "enter":
		if _, ok := m.focus.Current().(*components.TextField); ok {
			return m.focus.Next()
		}
	}

	cmd := m.focus.UpdateCurrent(msg)
	m.syncCurrent()
	return tea.Batch(cmd, m.takePending())
}

// syncCurrent copies the focused widget value into the wizard and remounts
// fields whose visibility changed.
func (m *Model) syncCurrent() {
	current := m.focus.Current()
	for key, f := range m.fields {
		if f.input != current {
			continue
		}
		if value, _ := m.wizard.Value(key); value != f.input.Value() {
			_ = m.wizard.Set(key, f.input.Value())
			m.reconcile()
		}
		return
	}
}

func (m *Model) generate() {
	err := m.wizard.Generate(m.ctx)
	if err != nil && !stderrors.Is(err, builder.ErrValidation) {
		m.lastErr = err
		return
	}
	m.lastErr = nil
}

// reconcile is the wizard's settle barrier: it mounts the fields the state
// makes visible, unmounts the rest and pushes values and published errors
// into the widgets.
func (m *Model) reconcile() {
	visible := m.wizard.VisibleKeys()
	shown := make(map[string]bool, len(visible))
	for _, key := range visible {
		shown[key] = true
	}

	for key := range m.fields {
		if !shown[key] {
			m.unmount[key]()
			delete(m.unmount, key)
			delete(m.fields, key)
		}
	}

	items := make([]components.Widget, 0, len(visible)+2)
	for _, key := range visible {
		f, ok := m.fields[key]
		if !ok {
			f = m.newField(key)
			m.fields[key] = f
			m.unmount[key] = m.wizard.Registry().Register(f)
		}

		if value, _ := m.wizard.Value(key); f.input.Value() != value {
			f.input.SetValue(value)
		}
		if fe, ok := m.wizard.ErrorFor(key); ok {
			f.input.SetError(stderrors.New(fe.Message))
		} else {
			f.input.SetError(nil)
		}
		items = append(items, f.input)
	}
	items = append(items, m.submit, m.reset)

	m.order = visible
	m.pending = tea.Batch(m.pending, m.focus.Replace(items...))
}

// focusInput moves focus to input. The returned blink command is delivered
// with the next Update result, and the next layout scrolls input into view.
func (m *Model) focusInput(input components.Input) {
	m.pending = tea.Batch(m.pending, m.focus.FocusItem(input))
}

func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}
