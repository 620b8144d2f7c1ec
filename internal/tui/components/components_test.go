package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextField_NewTextField_DefaultValues(t *testing.T) {
	tf := NewTextField("Title", WithPlaceholder("My App"), WithRequired(), WithCharLimit(45))

	if tf.Value() != "" {
		t.Errorf("Expected empty value, got '%s'", tf.Value())
	}
	if tf.input.Placeholder != "My App" {
		t.Errorf("Expected placeholder 'My App', got '%s'", tf.input.Placeholder)
	}
	if tf.input.CharLimit != 45 {
		t.Errorf("Expected char limit 45, got %d", tf.input.CharLimit)
	}
	if !tf.required {
		t.Error("Expected required to be true")
	}
}

func TestTextField_Update_OnlyWhenFocused(t *testing.T) {
	tf := NewTextField("Title")

	tf.Update(keyRunes("a"))
	if tf.Value() != "" {
		t.Errorf("Blurred field should ignore input, got '%s'", tf.Value())
	}

	tf.Focus()
	tf.Update(keyRunes("a"))
	tf.Update(keyRunes("b"))
	if tf.Value() != "ab" {
		t.Errorf("Expected 'ab', got '%s'", tf.Value())
	}
	if !tf.Dirty() {
		t.Error("Typing should mark the field dirty")
	}

	tf.SetValue("reset")
	if tf.Dirty() {
		t.Error("SetValue should clear dirty")
	}
}

func TestTextField_ViewShowsError(t *testing.T) {
	tf := NewTextField("Title", WithHelp("Name of the application"))

	if !strings.Contains(tf.View(), "Name of the application") {
		t.Error("View should show help text")
	}

	tf.SetError(errors.New("title is required"))
	view := tf.View()
	if !strings.Contains(view, "title is required") {
		t.Error("View should show the error")
	}
	if strings.Contains(view, "Name of the application") {
		t.Error("Error should replace the help text")
	}

	tf.SetError(nil)
	if tf.Error() != nil {
		t.Error("SetError(nil) should clear the error")
	}
}

func TestRadio_SelectSkipsDisabled(t *testing.T) {
	r := NewRadio("Framework", []RadioOption{
		{Value: "vue", Label: "Vue"},
		{Value: "astro", Label: "Astro", Disabled: true},
	}, "")

	if r.Value() != "" {
		t.Errorf("Expected no selection, got '%s'", r.Value())
	}

	r.Update(tea.KeyMsg{Type: tea.KeySpace})
	if r.Value() != "" {
		t.Error("Blurred radio should ignore input")
	}

	r.Focus()
	r.Update(tea.KeyMsg{Type: tea.KeySpace})
	if r.Value() != "vue" {
		t.Errorf("Expected 'vue', got '%s'", r.Value())
	}

	r.Update(tea.KeyMsg{Type: tea.KeyDown})
	r.Update(tea.KeyMsg{Type: tea.KeySpace})
	if r.Value() != "vue" {
		t.Errorf("Disabled option must not be selectable, got '%s'", r.Value())
	}

	r.Update(tea.KeyMsg{Type: tea.KeyDown})
	if r.cursor != 1 {
		t.Errorf("Cursor should stop at the last option, got %d", r.cursor)
	}
}

func TestRadio_SetValue(t *testing.T) {
	r := NewRadio("Behavior", []RadioOption{
		{Value: "prompt", Label: "Prompt"},
		{Value: "autoUpdate", Label: "Auto update"},
	}, "")

	r.SetValue("autoUpdate")
	if r.Value() != "autoUpdate" || r.cursor != 1 {
		t.Errorf("SetValue(autoUpdate) = %q cursor %d", r.Value(), r.cursor)
	}

	r.SetValue("")
	if r.Value() != "" {
		t.Errorf("SetValue(\"\") should clear selection, got '%s'", r.Value())
	}
}

func TestButton_EmitsOnEnter(t *testing.T) {
	type pressed struct{}
	b := NewButton("Generate", ButtonStylePrimary, func() tea.Msg { return pressed{} })

	if cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Blurred button should not emit")
	}

	b.Focus()
	cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Focused button should emit on enter")
	}
	if _, ok := cmd().(pressed); !ok {
		t.Errorf("Unexpected message %T", cmd())
	}
}

func TestFocusRing_Navigation(t *testing.T) {
	a, b, c := NewTextField("a"), NewTextField("b"), NewButton("c", ButtonStylePrimary, nil)
	fs := NewFocusRing(a, b, c)
	fs.First()

	if !a.Focused() || fs.Index() != 0 {
		t.Fatal("First should focus the first item")
	}

	fs.Next()
	if a.Focused() || !b.Focused() {
		t.Error("Next should move focus to b")
	}

	fs.Next()
	fs.Next()
	if !a.Focused() {
		t.Error("Next should wrap around")
	}

	fs.Prev()
	if !c.Focused() || fs.Index() != 2 {
		t.Error("Prev should wrap to the last item")
	}

	fs.FocusItem(b)
	if !b.Focused() || c.Focused() {
		t.Error("FocusItem should focus b only")
	}
}

func TestFocusRing_ReplaceKeepsFocusedItem(t *testing.T) {
	a, b, c := NewTextField("a"), NewTextField("b"), NewTextField("c")
	fs := NewFocusRing(a, b, c)
	fs.FocusAt(2)

	fs.Replace(a, c)
	if fs.Index() != 1 || fs.Current() != c {
		t.Errorf("Replace should follow the focused item, index %d", fs.Index())
	}

	fs.Replace(a)
	if fs.Current() != a {
		t.Error("Removed focused item should fall back to a clamped index")
	}
	if !a.Focused() {
		t.Error("Fallback item should receive focus")
	}

	empty := NewFocusRing()
	if empty.Current() != nil || empty.Next() != nil || empty.UpdateCurrent(keyRunes("x")) != nil {
		t.Error("Empty ring operations should be no-ops")
	}
}
