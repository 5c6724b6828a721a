package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	// PlaceholderImage is shown when a product has no usable thumbnail.
	PlaceholderImage = "https://via.placeholder.com/60"
	// NoCategory is shown when a product has no category name.
	NoCategory = "N/A"
	// NoDescription is shown when a product has no description.
	NoDescription = "Không có mô tả"
)

// ID is an opaque product identifier. Feeds use both numbers and strings,
// so either is accepted and kept in its textual form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Category groups products. Only the name is displayed.
type Category struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

// Product is a single catalog entry. Everything except Title is optional.
type Product struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Category    *Category `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// CategoryName returns the category name, or NoCategory if absent.
func (p Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return NoCategory
	}
	return p.Category.Name
}

// DescriptionText returns the description, or NoDescription if absent.
func (p Product) DescriptionText() string {
	if p.Description == "" {
		return NoDescription
	}
	return p.Description
}

// Thumbnail returns the first image URL, or placeholder if there is none.
func (p Product) Thumbnail(placeholder string) string {
	if len(p.Images) == 0 || strings.TrimSpace(p.Images[0]) == "" {
		return placeholder
	}
	return p.Images[0]
}
