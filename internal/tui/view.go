package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/render"
)

// View implements tea.Model.
func (a App) View() string {
	sections := []string{
		a.input.View(),
		a.renderStatusLine(),
		"",
		a.renderBody(),
		a.renderHelpBar(),
	}
	return a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderStatusLine renders the result count and the four sort controls.
// The active control is highlighted; none is while the view is unsorted.
func (a App) renderStatusLine() string {
	var b strings.Builder

	switch a.status {
	case StatusLoading:
		b.WriteString(a.styles.Status.Render("Loading products..."))
		return b.String()
	case StatusFailed:
		b.WriteString(a.styles.Status.Render("Results: 0"))
	default:
		b.WriteString(a.styles.Status.Render(fmt.Sprintf("Results: %d/%d", a.view.Count(), a.view.Total)))
	}

	b.WriteString("  ")
	for i, key := range catalog.SortKeys() {
		if i > 0 {
			b.WriteString(" ")
		}
		label := "[" + key.Label() + "]"
		if a.status == StatusReady && a.view.Sort == key {
			b.WriteString(a.styles.SortActive.Render(label))
		} else {
			b.WriteString(a.styles.Status.Render(label))
		}
	}
	return b.String()
}

// renderBody renders the table, or what replaces its rows.
func (a App) renderBody() string {
	switch a.status {
	case StatusLoading:
		return ""
	case StatusFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			a.table.View(),
			a.styles.Error.Render(render.LoadErrorMessage),
		)
	}

	if a.view.Empty() {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.table.View(),
			a.renderEmptyState(),
		)
	}
	return a.table.View()
}

// renderEmptyState renders the no-match message and any suggestions.
func (a App) renderEmptyState() string {
	lines := []string{a.styles.Empty.Render(render.EmptyMessage)}
	if len(a.suggestions) > 0 {
		lines = append(lines, a.styles.Empty.Render("Did you mean:"))
		for _, s := range a.suggestions {
			lines = append(lines, a.styles.Suggestion.Render(s))
		}
	}
	return strings.Join(lines, "\n")
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	hints := a.getContextualHints()
	keys := make([]Hint, 0, len(hints.Nav)+len(hints.Action)+len(hints.System))
	keys = append(keys, hints.Nav...)
	keys = append(keys, hints.Action...)
	keys = append(keys, hints.System...)
	if line := a.renderHints(keys); line != "" {
		lines = append(lines, a.styles.HintLabel.Render("Keys ")+line)
	}
	if line := a.renderHints(hints.Sort); line != "" {
		lines = append(lines, a.styles.HintLabel.Render("Sort ")+line)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.MessageError.Render("✗ " + a.messageText)
	case MessageWarning:
		return a.styles.MessageWarn.Render("⚠ " + a.messageText)
	case MessageSuccess:
		return a.styles.MessageOK.Render("✓ " + a.messageText)
	default:
		return a.styles.MessageInfo.Render(a.messageText)
	}
}
