package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/catalog/internal/model"
)

func TestProduct_DecodeOptionalFields(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantID       model.ID
		wantPrice    float64
		wantCategory string
		wantDesc     string
		wantThumb    string
	}{
		{
			name:         "all fields",
			input:        `{"id": 4, "title": "Áo thun", "price": 15000, "category": {"id": 1, "name": "Clothes"}, "description": "Cotton", "images": ["https://img/1.png", "https://img/2.png"]}`,
			wantID:       "4",
			wantPrice:    15000,
			wantCategory: "Clothes",
			wantDesc:     "Cotton",
			wantThumb:    "https://img/1.png",
		},
		{
			name:         "only title",
			input:        `{"id": "sku-9", "title": "Mũ"}`,
			wantID:       "sku-9",
			wantPrice:    0,
			wantCategory: model.NoCategory,
			wantDesc:     model.NoDescription,
			wantThumb:    model.PlaceholderImage,
		},
		{
			name:         "null price and empty images",
			input:        `{"id": 7, "title": "Giày", "price": null, "images": []}`,
			wantID:       "7",
			wantPrice:    0,
			wantCategory: model.NoCategory,
			wantDesc:     model.NoDescription,
			wantThumb:    model.PlaceholderImage,
		},
		{
			name:         "blank first image and empty category name",
			input:        `{"id": 8, "title": "Tất", "category": {"name": ""}, "images": [" "]}`,
			wantID:       "8",
			wantCategory: model.NoCategory,
			wantDesc:     model.NoDescription,
			wantThumb:    model.PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p model.Product
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}

			if p.ID != tt.wantID {
				t.Errorf("ID mismatch: got %q, want %q", p.ID, tt.wantID)
			}
			if p.Price != tt.wantPrice {
				t.Errorf("Price mismatch: got %v, want %v", p.Price, tt.wantPrice)
			}
			if got := p.CategoryName(); got != tt.wantCategory {
				t.Errorf("CategoryName mismatch: got %q, want %q", got, tt.wantCategory)
			}
			if got := p.DescriptionText(); got != tt.wantDesc {
				t.Errorf("DescriptionText mismatch: got %q, want %q", got, tt.wantDesc)
			}
			if got := p.Thumbnail(model.PlaceholderImage); got != tt.wantThumb {
				t.Errorf("Thumbnail mismatch: got %q, want %q", got, tt.wantThumb)
			}
		})
	}
}

func TestID_RejectsObjects(t *testing.T) {
	var p model.Product
	if err := json.Unmarshal([]byte(`{"id": {"x": 1}, "title": "Bad"}`), &p); err == nil {
		t.Error("expected error for object id")
	}
}

func TestCatalog_GetProductByID(t *testing.T) {
	c := model.NewCatalog([]model.Product{
		{ID: "1", Title: "Áo thun"},
		{ID: "2", Title: "Quần jean"},
	})

	p := c.GetProductByID("2")
	if p == nil {
		t.Fatal("expected to find product 2")
	}
	if p.Title != "Quần jean" {
		t.Errorf("expected title 'Quần jean', got %q", p.Title)
	}

	if c.GetProductByID("missing") != nil {
		t.Error("expected nil for missing product")
	}
}

func TestCatalog_AssignMissingIDs(t *testing.T) {
	c := model.NewCatalog([]model.Product{
		{ID: "1", Title: "Has ID"},
		{Title: "No ID"},
		{Title: "Also no ID"},
	})

	if n := c.AssignMissingIDs(); n != 2 {
		t.Errorf("expected 2 IDs assigned, got %d", n)
	}
	if c.Products[0].ID != "1" {
		t.Errorf("existing ID should be kept, got %q", c.Products[0].ID)
	}
	if c.Products[1].ID == "" || c.Products[2].ID == "" {
		t.Error("expected generated IDs")
	}
	if c.Products[1].ID == c.Products[2].ID {
		t.Error("generated IDs should be unique")
	}
}

func TestNewCatalog_NilProducts(t *testing.T) {
	c := model.NewCatalog(nil)
	if c.Products == nil {
		t.Error("expected non-nil product slice")
	}
	if c.Len() != 0 {
		t.Errorf("expected 0 products, got %d", c.Len())
	}
}
