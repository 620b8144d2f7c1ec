// Package components contains the form widgets of the wizard front-end.
package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable is a rendered component that can hold the keyboard focus.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// Widget is a Focusable that handles messages in place.
type Widget interface {
	Focusable
	Update(msg tea.Msg) tea.Cmd
}

// Input is a Widget holding a string value and an error line.
type Input interface {
	Widget
	Value() string
	// SetValue replaces the value without marking the widget as edited.
	SetValue(string)
	// SetError shows err below the widget; nil hides it.
	SetError(err error)
}

// FocusRing tracks which widget of a form has the focus. Navigation wraps
// around at both ends.
type FocusRing struct {
	items []Widget
	index int
}

func NewFocusRing(items ...Widget) *FocusRing {
	return &FocusRing{items: items}
}

func (r *FocusRing) Len() int   { return len(r.items) }
func (r *FocusRing) Index() int { return r.index }

// Current returns the widget at the focus index, or nil for an empty ring.
func (r *FocusRing) Current() Widget {
	return r.Get(r.index)
}

// Get returns the widget at i, or nil when i is out of range.
func (r *FocusRing) Get(i int) Widget {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	return r.items[i]
}

// IndexOf returns the position of w, or -1.
func (r *FocusRing) IndexOf(w Widget) int {
	for i, it := range r.items {
		if it == w {
			return i
		}
	}
	return -1
}

// Replace installs a new widget list. The focused widget keeps the focus
// when it is still in the list; otherwise the index is clamped and, if
// something was focused before, the widget now at the index is focused.
func (r *FocusRing) Replace(items ...Widget) tea.Cmd {
	prev := r.Current()
	refocus := prev != nil && prev.Focused()

	r.items = items
	if i := r.IndexOf(prev); i >= 0 {
		r.index = i
		return nil
	}

	r.index = max(0, min(r.index, len(items)-1))
	if refocus && len(items) > 0 {
		return items[r.index].Focus()
	}
	return nil
}

func (r *FocusRing) Next() tea.Cmd {
	return r.step(1)
}

func (r *FocusRing) Prev() tea.Cmd {
	return r.step(-1)
}

func (r *FocusRing) step(delta int) tea.Cmd {
	n := len(r.items)
	if n == 0 {
		return nil
	}
	return r.FocusAt(((r.index+delta)%n + n) % n)
}

func (r *FocusRing) First() tea.Cmd {
	return r.FocusAt(0)
}

// FocusAt blurs every widget and focuses the one at i. Out of range
// indexes are ignored.
func (r *FocusRing) FocusAt(i int) tea.Cmd {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	r.BlurAll()
	r.index = i
	return r.items[i].Focus()
}

// FocusItem focuses w if it belongs to the ring.
func (r *FocusRing) FocusItem(w Widget) tea.Cmd {
	return r.FocusAt(r.IndexOf(w))
}

func (r *FocusRing) BlurAll() {
	for _, it := range r.items {
		it.Blur()
	}
}

// UpdateCurrent routes msg to the focused widget.
func (r *FocusRing) UpdateCurrent(msg tea.Msg) tea.Cmd {
	if w := r.Current(); w != nil {
		return w.Update(msg)
	}
	return nil
}
