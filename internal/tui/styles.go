package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Prompt       lipgloss.Style
	Status       lipgloss.Style
	SortActive   lipgloss.Style
	Header       lipgloss.Style
	Cell         lipgloss.Style
	Selected     lipgloss.Style
	Empty        lipgloss.Style
	Error        lipgloss.Style
	Suggestion   lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "^n", "esc")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "name A-Z")
	HintLabel    lipgloss.Style
	MessageInfo  lipgloss.Style
	MessageOK    lipgloss.Style
	MessageWarn  lipgloss.Style
	MessageError lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	danger := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		SortActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Foreground(primary).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),

		Suggestion: lipgloss.NewStyle().
			Foreground(accent).
			PaddingLeft(2),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(accent),

		MessageInfo: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		MessageOK: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true),

		MessageWarn: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true),

		MessageError: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),
	}
}

// TableStyles returns the bubbles table styles derived from s.
func (s Styles) TableStyles() table.Styles {
	return table.Styles{
		Header:   s.Header,
		Cell:     s.Cell,
		Selected: s.Selected,
	}
}
