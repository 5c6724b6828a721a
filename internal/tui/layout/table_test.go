package layout

import "testing"

func TestCalculateTableHeight(t *testing.T) {
	cfg := DefaultConfig().Table

	tests := []struct {
		terminalHeight int
		want           int
	}{
		{24, 17},
		{40, 33},
		{8, 5},
		{0, 5},
	}

	for _, tt := range tests {
		if got := CalculateTableHeight(tt.terminalHeight, cfg); got != tt.want {
			t.Errorf("CalculateTableHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
		}
	}
}

func TestCalculateColumnWidths(t *testing.T) {
	cfg := DefaultConfig().Table

	got := CalculateColumnWidths(120, cfg)
	want := ColumnWidths{ID: 6, Title: 31, Category: 16, Description: 39, Price: 14}
	if got != want {
		t.Errorf("CalculateColumnWidths(120) = %+v, want %+v", got, want)
	}
	if total := got.Total(cfg); total != 116 {
		t.Errorf("expected total width 116, got %d", total)
	}
}

func TestCalculateColumnWidths_Narrow(t *testing.T) {
	cfg := DefaultConfig().Table

	got := CalculateColumnWidths(40, cfg)
	if got.Title != cfg.MinTitleWidth {
		t.Errorf("expected min title width %d, got %d", cfg.MinTitleWidth, got.Title)
	}
	if got.Description != cfg.MinDescriptionWidth {
		t.Errorf("expected min description width %d, got %d", cfg.MinDescriptionWidth, got.Description)
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name                        string
		maxVisible, selected, total int
		wantStart, wantEnd          int
	}{
		{"all fit", 5, 2, 3, 0, 3},
		{"selection in first page", 3, 1, 10, 0, 3},
		{"selection past first page", 3, 5, 10, 3, 6},
		{"selection at end", 3, 9, 10, 7, 10},
		{"zero visible", 0, 0, 4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selected, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCalculatePickerVisible(t *testing.T) {
	cfg := DefaultConfig().Picker

	if got := CalculatePickerVisible(24, cfg); got != 9 {
		t.Errorf("CalculatePickerVisible(24) = %d, want 9", got)
	}
	if got := CalculatePickerVisible(5, cfg); got != 1 {
		t.Errorf("CalculatePickerVisible(5) = %d, want 1", got)
	}
}
