package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/tui/layout"
)

func tableColumns(w layout.ColumnWidths) []table.Column {
	return []table.Column{
		{Title: "ID", Width: w.ID},
		{Title: "Title", Width: w.Title},
		{Title: "Category", Width: w.Category},
		{Title: "Description", Width: w.Description},
		{Title: "Price", Width: w.Price},
	}
}

// tableRows maps a view to table rows using the same fallbacks as the HTML
// page. The thumbnail column has no terminal form and is left out.
// Title and description are cut to the current column widths.
func (a App) tableRows(v catalog.View) []table.Row {
	rows := make([]table.Row, len(v.Products))
	for i, p := range v.Products {
		r := a.renderer.RowFor(p)
		title, _ := layout.TruncateText(r.Title, a.widths.Title, a.layout.Text)
		description, _ := layout.TruncateText(r.Description, a.widths.Description, a.layout.Text)
		rows[i] = table.Row{r.ID, title, r.Category, description, r.Price}
	}
	return rows
}
