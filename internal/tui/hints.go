package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "^n", "esc")
	Desc string // Short description (e.g., "name A-Z")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "↑/↓:move ^n:name A-Z"
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints
	Sort   []Hint // Sort hints
	Action []Hint // Action hints
	System []Hint // System hints
}

// All returns all hints flattened in display order: Nav + Sort + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Sort)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Sort...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

func bindingHint(b key.Binding) Hint {
	h := b.Help()
	return Hint{Key: h.Key, Desc: h.Desc}
}

// getContextualHints returns the hints for the current load status.
func (a App) getContextualHints() HintSet {
	quit := bindingHint(a.keys.Quit)

	switch a.status {
	case StatusLoading, StatusFailed:
		return HintSet{System: []Hint{quit}}
	}

	hints := HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "type", Desc: "search"},
		},
		System: []Hint{quit},
	}
	for _, b := range a.sortBindings() {
		hints.Sort = append(hints.Sort, bindingHint(b))
	}
	if len(a.view.Products) > 0 {
		hints.Action = append(hints.Action, bindingHint(a.keys.CopyTitle))
	}
	if a.input.Value() != "" {
		hints.Action = append(hints.Action, bindingHint(a.keys.ClearSearch))
	}
	return hints
}
