package builderui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/pwa-builder/internal/builder"
	"github.com/user/pwa-builder/internal/tui"
	"github.com/user/pwa-builder/internal/tui/components"
)

const defaultWidth = 80

// span is the first and last body line a widget occupies.
type span struct {
	top, bottom int
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := tui.StyleTitle.Render("PWA Builder") + "\n" +
		tui.StyleSubtitle.Render("Configure the manifest and service worker of your application") + "\n"

	if m.wizard.Phase() == builder.PhaseResult {
		view := header + "\n" + m.resultView()
		if m.lastErr != nil {
			view += "\n" + m.errorLine()
		}
		return view
	}

	body := m.viewport.View()
	if m.height == 0 {
		body, _ = m.formBody()
	}
	return strings.Join([]string{header, body, m.footer()}, "\n")
}

// layout sizes the viewport to the terminal, refreshes its content and
// scrolls the focused widget into view.
func (m *Model) layout() {
	if m.height == 0 || m.wizard.Phase() == builder.PhaseResult {
		return
	}

	body, spans := m.formBody()
	m.viewport.Width = m.width
	if m.viewport.Width == 0 {
		m.viewport.Width = defaultWidth
	}
	m.viewport.Height = max(1, m.height-headerHeight-lipgloss.Height(m.footer()))
	m.viewport.SetContent(body)

	if s, ok := spans[m.focus.Current()]; ok {
		m.scrollTo(s)
	}
}

// headerHeight counts the title, subtitle and blank separator lines.
const headerHeight = 3

func (m *Model) scrollTo(s span) {
	vp := &m.viewport
	switch {
	case s.top < vp.YOffset:
		vp.SetYOffset(s.top)
	case s.bottom >= vp.YOffset+vp.Height:
		vp.SetYOffset(min(s.top, s.bottom-vp.Height+1))
	}
}

// formBody renders the scrollable part of the form and records where each
// widget sits in it.
func (m *Model) formBody() (string, map[components.Widget]span) {
	spans := make(map[components.Widget]span)
	var sections []string
	line := 0
	add := func(section string, owners ...components.Widget) {
		h := lipgloss.Height(section)
		for _, w := range owners {
			spans[w] = span{top: line, bottom: line + h - 1}
		}
		sections = append(sections, section)
		line += h + 1
	}

	for _, key := range m.order {
		if f, ok := m.fields[key]; ok {
			add(f.input.View(), f.input)
		}
	}

	if errs := m.wizard.Errors(); len(errs) > 0 {
		lines := []string{tui.StyleError.Render(fmt.Sprintf("%s %d field(s) need attention", tui.IconWarning, len(errs)))}
		for _, e := range errs {
			label := e.Key
			if f, ok := m.fields[e.Key]; ok {
				label = f.label
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s", tui.IconBullet, label, e.Message))
		}
		add(tui.StyleErrorBox.Render(strings.Join(lines, "\n")))
	}

	add(lipgloss.JoinHorizontal(lipgloss.Center, m.submit.View(), "  ", m.reset.View()), m.submit, m.reset)

	return strings.Join(sections, "\n\n"), spans
}

func (m *Model) footer() string {
	help := "tab/shift+tab move • space select • ctrl+g generate • ctrl+r reset • ctrl+c quit"
	if m.wizard.Generating() {
		help = "generating..."
	}
	footer := "\n" + tui.StyleMuted.Render(help)
	if m.lastErr != nil {
		footer += "\n" + m.errorLine()
	}
	return footer
}

func (m *Model) errorLine() string {
	return tui.StyleError.Render(tui.IconError + " " + m.lastErr.Error())
}

func (m *Model) resultView() string {
	state := m.wizard.State()
	result := builder.Result{State: state, GenerateTypeScript: state.GenerateTypeScript()}

	rows := [][2]string{
		{"Title", state.Title},
		{"Short name", state.ShortName},
		{"Description", state.Description},
		{"Theme color", state.ThemeColor},
		{"Strategy", builder.Strategies.Label(state.Strategy)},
		{"Behavior", builder.Behaviors.Label(state.Behavior)},
		{"Warn user", builder.WarnOptions.Label(state.WarnUser)},
	}
	if mode := result.InjectRegisterMode(); mode != "" {
		rows = append(rows, [2]string{"Registration", builder.InjectRegisters.Label(mode)})
	}
	if state.ShowFrameworks() {
		rows = append(rows, [2]string{"Framework", result.FrameworkLabel()})
	}
	rows = append(rows, [2]string{"TypeScript", yesNo(result.GenerateTypeScript)})

	var lines []string
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		lines = append(lines, tui.StyleFormLabel.Width(14).Render(r[0])+" "+r[1])
	}

	var b strings.Builder
	b.WriteString(tui.StyleSuccess.Render(tui.IconSuccess + " Configuration ready"))
	b.WriteString("\n\n")
	b.WriteString(tui.StyleBox.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	if out := m.wizard.Output(); out != "" {
		b.WriteString("\n")
		b.WriteString(tui.StyleHighlight.Render(tui.IconArrow+" Written to ") + out)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.StyleMuted.Render("n new configuration • q quit"))
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
