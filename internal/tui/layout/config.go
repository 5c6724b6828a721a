package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Table  TableConfig
	Input  InputConfig
	Text   TextConfig
	Picker PickerConfig
}

// TableConfig holds product table dimension configuration.
type TableConfig struct {
	// HeightReduction is subtracted from terminal height for the table.
	// Accounts for: app padding (1) + search line (1) + status line (1) + gap (1) + help bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum table height, header included.
	MinHeight int

	// Fixed column widths.
	IDWidth       int
	PriceWidth    int
	CategoryWidth int

	// MinTitleWidth and MinDescriptionWidth bound the flexible columns.
	MinTitleWidth       int
	MinDescriptionWidth int

	// TitlePercent is the share of the flexible width given to the title column.
	// The description column takes the rest.
	TitlePercent int

	// CellPadding is the horizontal padding the table adds around each cell.
	CellPadding int

	// WidthOffset is subtracted from terminal width before sizing columns.
	// Accounts for app padding on both sides.
	WidthOffset int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// PickerConfig holds result picker configuration.
type PickerConfig struct {
	// HeaderReduction: lines for header, footer and padding.
	HeaderReduction int

	// LinesPerItem: each result shows title and detail lines.
	LinesPerItem int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Table: TableConfig{
			HeightReduction:     7, // app padding (1) + search (1) + status (1) + gap (1) + help bar (3)
			MinHeight:           5,
			IDWidth:             6,
			PriceWidth:          14,
			CategoryWidth:       16,
			MinTitleWidth:       16,
			MinDescriptionWidth: 16,
			TitlePercent:        45,
			CellPadding:         2,
			WidthOffset:         4,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Picker: PickerConfig{
			HeaderReduction: 5,
			LinesPerItem:    2,
		},
	}
}
