package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/catalog/internal/catalog"
)

// KeyMap defines all key bindings for the application.
// The search input always has focus, so bindings avoid plain runes.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	SortNameAsc   key.Binding
	SortNameDesc  key.Binding
	SortPriceAsc  key.Binding
	SortPriceDesc key.Binding
	CopyTitle     key.Binding
	ClearSearch   key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		SortNameAsc: key.NewBinding(
			key.WithKeys("ctrl+n", "f1"),
			key.WithHelp("^n", "name A-Z"),
		),
		SortNameDesc: key.NewBinding(
			key.WithKeys("ctrl+e", "f2"),
			key.WithHelp("^e", "name Z-A"),
		),
		SortPriceAsc: key.NewBinding(
			key.WithKeys("ctrl+p", "f3"),
			key.WithHelp("^p", "price ↑"),
		),
		SortPriceDesc: key.NewBinding(
			key.WithKeys("ctrl+r", "f4"),
			key.WithHelp("^r", "price ↓"),
		),
		CopyTitle: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "copy title"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("^l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// SortKeyFor returns the sort key bound to msg, if any.
func (k KeyMap) SortKeyFor(msg tea.KeyMsg) (catalog.SortKey, bool) {
	switch {
	case key.Matches(msg, k.SortNameAsc):
		return catalog.SortNameAsc, true
	case key.Matches(msg, k.SortNameDesc):
		return catalog.SortNameDesc, true
	case key.Matches(msg, k.SortPriceAsc):
		return catalog.SortPriceAsc, true
	case key.Matches(msg, k.SortPriceDesc):
		return catalog.SortPriceDesc, true
	}
	return catalog.SortNone, false
}
