// Package tui holds the shared lipgloss palette of the terminal front-end.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the form readable on light terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorSubtle  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Page styles
var (
	StyleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1).
			Bold(true)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleBox frames the result summary.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	// StyleErrorBox frames the list of invalid fields.
	StyleErrorBox = StyleBox.
			BorderForeground(ColorDanger)
)

// Field styles
var (
	StyleFormLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleFormInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)

	StyleFormInputFocused = StyleFormInput.
				BorderForeground(ColorPrimary)

	StyleFormInputError = StyleFormInput.
				BorderForeground(ColorDanger)

	StyleFormHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)
)

const (
	IconSuccess  = "✓"
	IconError    = "✗"
	IconWarning  = "!"
	IconArrow    = "→"
	IconBullet   = "•"
	IconSelected = "◉"
	IconOption   = "○"
	IconCursor   = "▸"
)
