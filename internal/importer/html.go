// Package importer reads products back out of exported catalog pages.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
)

// tableBodyID is the id of the tbody holding product rows.
const tableBodyID = "productTableBody"

var (
	// ErrNoProductTable is returned when the document has no product table.
	ErrNoProductTable = errors.New("no product table found")
	// ErrLoadErrorPage is returned for pages rendered after a failed load.
	ErrLoadErrorPage = errors.New("page holds the load error row instead of products")
)

// ParseHTMLProducts parses a page written by "catalog export" and returns
// its products in table order. Display fallbacks are reversed: "N/A"
// becomes no category, the description placeholder no description and the
// placeholder image no images.
func ParseHTMLProducts(r io.Reader, placeholder string) ([]model.Product, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	if placeholder == "" {
		placeholder = model.PlaceholderImage
	}

	body := findByID(doc, tableBodyID)
	if body == nil {
		return nil, ErrNoProductTable
	}

	products := []model.Product{}
	for tr := body.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || tr.Data != "tr" {
			continue
		}

		cells := childElements(tr, "td")
		if len(cells) == 1 && getAttr(cells[0], "colspan") != "" {
			return nil, ErrLoadErrorPage
		}
		if len(cells) != render.Columns {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", len(products)+1, render.Columns, len(cells))
		}

		p, err := productFromCells(cells, placeholder)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(products)+1, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func productFromCells(cells []*html.Node, placeholder string) (model.Product, error) {
	price, err := ParsePrice(getTextContent(cells[4]))
	if err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:    model.ID(strings.TrimPrefix(getTextContent(cells[0]), "#")),
		Title: getTextContent(cells[1]),
		Price: price,
	}

	if name := getTextContent(cells[2]); name != "" && name != model.NoCategory {
		p.Category = &model.Category{Name: name}
	}
	if desc := getTextContent(cells[3]); desc != model.NoDescription {
		p.Description = desc
	}
	if img := findElement(cells[5], "img"); img != nil {
		if src := getAttr(img, "src"); src != "" && src != placeholder {
			p.Images = []string{src}
		}
	}

	return p, nil
}

// ParsePrice reverses render.FormatPrice: "15.000₫" -> 15000, "1.234,5₫" -> 1234.5.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), render.Currency))
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Replace(s, ",", ".", 1)
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return price, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func childElements(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
