package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/search"
	"github.com/nikbrunner/catalog/internal/tui/layout"
)

func testResults() []Result {
	return []Result{
		{Product: &model.Product{ID: "1", Title: "Áo thun", Price: 15000}},
		{Product: &model.Product{ID: "3", Title: "Áo khoác", Price: 500000}},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testResults(), "áo")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_Navigate(t *testing.T) {
	p := New(testResults(), "áo")

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after j, got %d", p.cursor)
	}

	// bottom bound
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", p.cursor)
	}

	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after k, got %d", p.cursor)
	}

	// top bound
	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", p.cursor)
	}
}

func TestPicker_Select(t *testing.T) {
	results := testResults()
	p := New(results, "áo")
	p.cursor = 1

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.SelectedProduct(); got != results[1].Product {
		t.Errorf("expected second product, got %+v", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		p := New(testResults(), "áo")
		newModel, cmd := p.Update(msg)
		p = newModel.(Picker)

		if !p.Cancelled() {
			t.Errorf("expected cancel on %s", msg)
		}
		if cmd == nil {
			t.Errorf("expected quit command on %s", msg)
		}
		if p.SelectedProduct() != nil {
			t.Errorf("expected no selection on %s", msg)
		}
	}
}

func TestPicker_View(t *testing.T) {
	p := New(testResults(), "áo")
	view := layout.StripANSI(p.View())

	for _, want := range []string{"Search: áo (2 results)", "> Áo thun", "#1 · N/A · 15.000₫", "Áo khoác"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestPicker_ViewScrolls(t *testing.T) {
	var results []Result
	for i := 0; i < 20; i++ {
		title := "Sản phẩm " + string(rune('A'+i))
		results = append(results, Result{Product: &model.Product{ID: model.ID(title), Title: title}})
	}

	p := New(results, "sản")
	newModel, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 9})
	p = newModel.(Picker)
	p.cursor = 15

	view := layout.StripANSI(p.View())
	if strings.Contains(view, "Sản phẩm A\n") {
		t.Error("expected first result scrolled out of view")
	}
	if !strings.Contains(view, "> Sản phẩm P") {
		t.Errorf("expected selected result visible:\n%s", view)
	}
}

func TestFromView(t *testing.T) {
	s := catalog.NewSession([]model.Product{
		{ID: "1", Title: "Áo thun"},
		{ID: "2", Title: "Quần jean"},
	})
	results := FromView(s.OnChanged("THUN"))

	if len(results) != 1 || results[0].Product.ID != "1" {
		t.Fatalf("unexpected results %+v", results)
	}
	// "Áo " is 4 bytes: Á takes two
	want := []int{4, 5, 6, 7}
	got := results[0].MatchedIndexes
	if len(got) != len(want) {
		t.Fatalf("expected indexes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected indexes %v, got %v", want, got)
			break
		}
	}
}

func TestFromSuggestions(t *testing.T) {
	products := []model.Product{{ID: "1", Title: "Áo thun"}}
	results := FromSuggestions(search.Suggest(products, "thn", 3))

	if len(results) != 1 || results[0].Product.ID != "1" {
		t.Fatalf("unexpected results %+v", results)
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %v", results[0].MatchedIndexes)
	}
}

func TestSubstringIndexes(t *testing.T) {
	tests := []struct {
		title string
		term  string
		want  []int
	}{
		{"Áo thun", "áo", []int{0, 2}},
		{"Quần jean", "jean", []int{7, 8, 9, 10}},
		{"Quần jean", "xyz", nil},
		{"Quần jean", "", nil},
	}

	for _, tt := range tests {
		got := substringIndexes(tt.title, tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("substringIndexes(%q, %q) = %v, want %v", tt.title, tt.term, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("substringIndexes(%q, %q) = %v, want %v", tt.title, tt.term, got, tt.want)
				break
			}
		}
	}
}
