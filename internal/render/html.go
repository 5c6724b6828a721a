// Package render turns catalog views into HTML and terminal tables.
package render

import (
	"html/template"
	"io"
	"net/url"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/model"
)

const (
	// LoadErrorMessage replaces the table body when the feed cannot be loaded.
	LoadErrorMessage = "Không thể tải dữ liệu sản phẩm. Vui lòng kiểm tra db.json"
	// EmptyMessage is shown when no product matches the search.
	EmptyMessage = "Không tìm thấy sản phẩm nào phù hợp"
	// Columns is the number of table columns.
	Columns = 6
)

// Options configures a Renderer.
type Options struct {
	Placeholder  string            // thumbnail fallback, defaults to model.PlaceholderImage
	BrokenImages map[model.ID]bool // products whose thumbnail is known to fail
}

// Row is the display form of a single product.
type Row struct {
	ID          string
	Title       string
	Category    string
	Description string
	Price       string
	Image       string
	Fallback    string // swapped in by the browser if Image fails to load
}

// SortControl is one of the four sort triggers.
type SortControl struct {
	ElementID string
	Label     string
	Href      string
	Active    bool
}

// Page holds everything the full page template needs.
type Page struct {
	View        catalog.View
	Query       string // search text as typed; View.Term when empty
	LoadFailed  bool
	Suggestions []string
}

// Renderer renders catalog views as HTML.
type Renderer struct {
	opts Options
	tmpl *template.Template
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	if opts.Placeholder == "" {
		opts.Placeholder = model.PlaceholderImage
	}
	return &Renderer{
		opts: opts,
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Placeholder returns the thumbnail fallback URL.
func (r *Renderer) Placeholder() string {
	return r.opts.Placeholder
}

// RowFor maps a product to its display row, applying every fallback.
func (r *Renderer) RowFor(p model.Product) Row {
	image := p.Thumbnail(r.opts.Placeholder)
	if r.opts.BrokenImages[p.ID] {
		image = r.opts.Placeholder
	}
	return Row{
		ID:          string(p.ID),
		Title:       p.Title,
		Category:    p.CategoryName(),
		Description: p.DescriptionText(),
		Price:       FormatPrice(p.Price),
		Image:       image,
		Fallback:    r.opts.Placeholder,
	}
}

// Rows maps every product in the view to a display row.
func (r *Renderer) Rows(v catalog.View) []Row {
	rows := make([]Row, len(v.Products))
	for i, p := range v.Products {
		rows[i] = r.RowFor(p)
	}
	return rows
}

// TableBody writes the table body rows for a view. An empty view writes nothing.
func (r *Renderer) TableBody(w io.Writer, v catalog.View) error {
	return r.tmpl.ExecuteTemplate(w, "rows", r.bodyData(v))
}

// ErrorRow writes the single row that replaces the table body on load failure.
func (r *Renderer) ErrorRow(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "error", r.bodyData(catalog.View{}))
}

// Page writes a complete HTML document.
func (r *Renderer) Page(w io.Writer, p Page) error {
	data := r.bodyData(p.View)
	data.LoadFailed = p.LoadFailed
	data.Suggestions = p.Suggestions
	data.Controls = SortControls(p.View)
	data.Query = p.Query
	if data.Query == "" {
		data.Query = p.View.Term
	}
	if p.LoadFailed {
		data.Count = 0
	}
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

type bodyData struct {
	Rows         []Row
	Count        int
	Empty        bool
	Term         string
	Query        string
	LoadFailed   bool
	Suggestions  []string
	Controls     []SortControl
	Columns      int
	ErrorMessage string
	EmptyMessage string
}

func (r *Renderer) bodyData(v catalog.View) bodyData {
	return bodyData{
		Rows:         r.Rows(v),
		Count:        v.Count(),
		Empty:        v.Empty(),
		Term:         v.Term,
		Columns:      Columns,
		ErrorMessage: LoadErrorMessage,
		EmptyMessage: EmptyMessage,
	}
}

// SortControls returns the four sort triggers for a view. At most one is
// active; none is when the view is unsorted. Links keep the search term.
func SortControls(v catalog.View) []SortControl {
	keys := catalog.SortKeys()
	controls := make([]SortControl, len(keys))
	for i, key := range keys {
		controls[i] = SortControl{
			ElementID: "sort" + upperFirst(key.String()),
			Label:     key.Label(),
			Href:      SortHref(v.Term, key),
			Active:    v.Sort == key,
		}
	}
	return controls
}

// SortHref builds the relative link that applies key to term.
func SortHref(term string, key catalog.SortKey) string {
	q := url.Values{}
	if term != "" {
		q.Set("q", term)
	}
	if key != catalog.SortNone {
		q.Set("sort", key.String())
	}
	if len(q) == 0 {
		return "?"
	}
	return "?" + q.Encode()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
