// Package picker is a small TUI for choosing one product from a result list.
package picker

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/search"
	"github.com/nikbrunner/catalog/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Underline(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Result is one pickable product with the byte offsets of the title runes
// that matched the query.
type Result struct {
	Product        *model.Product
	MatchedIndexes []int
}

// FromView builds results from a filtered view, marking the substring match.
func FromView(v catalog.View) []Result {
	results := make([]Result, len(v.Products))
	for i := range v.Products {
		results[i] = Result{
			Product:        &v.Products[i],
			MatchedIndexes: substringIndexes(v.Products[i].Title, v.Term),
		}
	}
	return results
}

// FromSuggestions builds results from fuzzy suggestions.
func FromSuggestions(suggestions []search.Suggestion) []Result {
	results := make([]Result, len(suggestions))
	for i, s := range suggestions {
		results[i] = Result{Product: s.Product, MatchedIndexes: s.MatchedIndexes}
	}
	return results
}

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	layout    layout.LayoutConfig
	width     int
	height    int
}

// New creates a new Picker with the given results.
func New(results []Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		layout:  layout.DefaultConfig(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			p.moveDown()
			return p, nil

		case tea.KeyUp:
			p.moveUp()
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
				return p, nil
			case "k":
				p.moveUp()
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.results)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	visible := layout.CalculatePickerVisible(p.height, p.layout.Picker)
	start, end := layout.CalculateVisibleListItems(visible, p.cursor, len(p.results))
	titleWidth := p.width - 4

	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := layout.TruncateANSIAware(highlight(result.Product.Title, result.MatchedIndexes, style), titleWidth, p.layout.Text)
		detail := detailStyle.Render(fmt.Sprintf("#%s · %s · %s",
			result.Product.ID, result.Product.CategoryName(), render.FormatPrice(result.Product.Price)))

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
		b.WriteString(fmt.Sprintf("   %s\n", detail))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: copy title  q/Esc: cancel"))

	return b.String()
}

// highlight renders title with the runes at the given byte offsets emphasized.
func highlight(title string, indexes []int, base lipgloss.Style) string {
	if len(indexes) == 0 {
		return base.Render(title)
	}
	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range title {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// substringIndexes returns the byte offsets of the first case-insensitive
// occurrence of term in title.
func substringIndexes(title, term string) []int {
	if term == "" {
		return nil
	}
	type pos struct {
		offset int
		r      rune
	}
	var runes []pos
	for i, r := range title {
		runes = append(runes, pos{i, unicode.ToLower(r)})
	}
	want := []rune(term)

	for start := 0; start+len(want) <= len(runes); start++ {
		found := true
		for k, r := range want {
			if runes[start+k].r != r {
				found = false
				break
			}
		}
		if found {
			indexes := make([]int, len(want))
			for k := range want {
				indexes[k] = runes[start+k].offset
			}
			return indexes
		}
	}
	return nil
}

// SelectedProduct returns the selected product, or nil if cancelled.
func (p Picker) SelectedProduct() *model.Product {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Product
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
