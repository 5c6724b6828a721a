package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/nikbrunner/catalog/internal/catalog"
)

// DescriptionWidth caps the description column in terminal tables.
const DescriptionWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	priceStyle  = cellStyle.Align(lipgloss.Right)
)

// Table renders a view as a bordered terminal table without the image column.
func (r *Renderer) Table(v catalog.View) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Category", "Description", "Price").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4:
				return priceStyle
			default:
				return cellStyle
			}
		})

	for _, row := range r.Rows(v) {
		t.Row(row.ID, row.Title, row.Category, runewidth.Truncate(row.Description, DescriptionWidth, "..."), row.Price)
	}

	return t.String()
}
