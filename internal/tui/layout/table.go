package layout

// ColumnWidths holds calculated product table column widths.
type ColumnWidths struct {
	ID          int
	Title       int
	Category    int
	Description int
	Price       int
}

// Total returns the rendered width of all columns, padding included.
func (c ColumnWidths) Total(cfg TableConfig) int {
	return c.ID + c.Title + c.Category + c.Description + c.Price + 5*cfg.CellPadding
}

// CalculateTableHeight computes the table height for a terminal height.
// Returns at least MinHeight.
func CalculateTableHeight(terminalHeight int, cfg TableConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateColumnWidths splits the terminal width between the table columns.
// ID, category and price are fixed; title and description share the rest.
func CalculateColumnWidths(terminalWidth int, cfg TableConfig) ColumnWidths {
	fixed := cfg.IDWidth + cfg.CategoryWidth + cfg.PriceWidth + 5*cfg.CellPadding
	flexible := terminalWidth - cfg.WidthOffset - fixed

	title := flexible * cfg.TitlePercent / 100
	if title < cfg.MinTitleWidth {
		title = cfg.MinTitleWidth
	}
	description := flexible - title
	if description < cfg.MinDescriptionWidth {
		description = cfg.MinDescriptionWidth
	}

	return ColumnWidths{
		ID:          cfg.IDWidth,
		Title:       title,
		Category:    cfg.CategoryWidth,
		Description: description,
		Price:       cfg.PriceWidth,
	}
}

// CalculateVisibleListItems computes the start and end indices for a scrollable list.
// Returns (start, end) where items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if maxVisible < 1 {
		maxVisible = 1
	}
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// CalculatePickerVisible computes how many picker results fit on screen.
func CalculatePickerVisible(terminalHeight int, cfg PickerConfig) int {
	lines := terminalHeight - cfg.HeaderReduction
	perItem := cfg.LinesPerItem
	if perItem < 1 {
		perItem = 1
	}
	if lines < perItem {
		return 1
	}
	return lines / perItem
}
