package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ANSI", "Áo thun", "Áo thun"},
		{"bold", "\x1b[1mÁo thun\x1b[0m", "Áo thun"},
		{"color", "\x1b[31m15.000₫\x1b[0m", "15.000₫"},
		{"mixed", "Giá \x1b[1;4m15.000₫\x1b[0m VND", "Giá 15.000₫ VND"},
		{"empty", "", ""},
		{"only ANSI", "\x1b[1m\x1b[0m", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "jeans", 5},
		{"vietnamese", "Quần jean", 9},
		{"styled", "\x1b[1mQuần jean\x1b[0m", 9},
		{"currency", "15.000₫", 7},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleLength(tt.input)
			if got != tt.want {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "Áo thun", 10, "Áo thun", false},
		{"exact length", "Áo thun", 7, "Áo thun", false},
		{"vietnamese truncation", "Áo khoác mùa đông", 10, "Áo khoá...", true},
		{"only ellipsis", "Áo thun", 3, "...", true},
		{"partial ellipsis", "Áo thun", 2, "..", true},
		{"zero width", "Áo thun", 0, "", true},
		{"empty string", "", 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name     string
		input    string
		maxWidth int
	}{
		{"plain fits", "Mũ lưỡi trai", 20},
		{"styled fits", "\x1b[1mMũ\x1b[0m lưỡi trai", 20},
		{"plain truncated", "Mũ lưỡi trai", 8},
		{"styled truncated", "\x1b[1mMũ\x1b[0m lưỡi trai", 8},
		{"zero width", "Mũ lưỡi trai", 0},
		{"empty", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateANSIAware(tt.input, tt.maxWidth, cfg)

			if VisibleLength(got) > tt.maxWidth {
				t.Errorf("visible length %d exceeds %d (got %q)", VisibleLength(got), tt.maxWidth, got)
			}

			if tt.maxWidth > 0 && VisibleLength(tt.input) > tt.maxWidth {
				if len(got) < 4 || got[len(got)-4:] != "\x1b[0m" {
					t.Errorf("expected reset code after truncation, got %q", got)
				}
			}
		})
	}
}
