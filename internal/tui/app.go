// Package tui is the interactive terminal front-end of the catalog.
//
// The search input always has focus: every keystroke that changes its value
// re-runs the filter, and the sort bindings reorder the filtered rows.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/logger"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/search"
	"github.com/nikbrunner/catalog/internal/storage"
	"github.com/nikbrunner/catalog/internal/tui/layout"
)

// productsLoadedMsg carries the result of a successful load.
type productsLoadedMsg struct {
	catalog *model.Catalog
}

// loadFailedMsg carries a load failure.
type loadFailedMsg struct {
	err error
}

// LoadProducts returns a command that loads the catalog from src once.
func LoadProducts(ctx context.Context, src storage.Source) tea.Cmd {
	return func() tea.Msg {
		cat, err := src.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return productsLoadedMsg{catalog: cat}
	}
}

// App is the main bubbletea model for the catalog viewer.
type App struct {
	ctx       context.Context
	source    storage.Source
	keys      KeyMap
	styles    Styles
	layout    layout.LayoutConfig
	renderer  *render.Renderer
	clipboard func(string) error

	status  Status
	loadErr error
	session *catalog.Session
	view    catalog.View

	input       textinput.Model
	table       table.Model
	widths      layout.ColumnWidths
	suggestions []string

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Context      context.Context
	Source       storage.Source
	Renderer     *render.Renderer        // optional, uses default if nil
	Keys         *KeyMap                 // optional, uses default if nil
	Styles       *Styles                 // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig    // optional, uses default if nil
	Clipboard    func(text string) error // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	renderer := params.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.Options{})
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Search by product name..."
	input.Prompt = "› "
	input.PromptStyle = styles.Prompt
	input.CharLimit = layoutCfg.Input.SearchCharLimit
	input.Width = layoutCfg.Input.SearchWidth
	input.Focus()

	t := table.New(
		table.WithFocused(true),
		table.WithStyles(styles.TableStyles()),
	)

	app := App{
		ctx:       ctx,
		source:    params.Source,
		keys:      keys,
		styles:    styles,
		layout:    layoutCfg,
		renderer:  renderer,
		clipboard: copyFn,
		status:    StatusLoading,
		input:     input,
		table:     t,
		width:     80,
		height:    24,
	}

	app.resize()
	return app
}

// WithDimensions returns a copy of the app sized for a terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.resize()
	return a
}

// Status returns the load status.
func (a App) Status() Status {
	return a.status
}

// LoadErr returns the load error, if the load failed.
func (a App) LoadErr() error {
	return a.loadErr
}

// CatalogView returns the current filtered, sorted view.
func (a App) CatalogView() catalog.View {
	return a.view
}

// Query returns the raw search input.
func (a App) Query() string {
	return a.input.Value()
}

// Suggestions returns the "did you mean" titles for an empty result.
func (a App) Suggestions() []string {
	return a.suggestions
}

// Message returns the status message text.
func (a App) Message() string {
	return a.messageText
}

// Cursor returns the selected row index.
func (a App) Cursor() int {
	return a.table.Cursor()
}

// SelectedProduct returns the product under the cursor, or nil.
func (a App) SelectedProduct() *model.Product {
	i := a.table.Cursor()
	if i < 0 || i >= len(a.view.Products) {
		return nil
	}
	return &a.view.Products[i]
}

func (a App) sortBindings() []key.Binding {
	return []key.Binding{a.keys.SortNameAsc, a.keys.SortNameDesc, a.keys.SortPriceAsc, a.keys.SortPriceDesc}
}

// Init implements tea.Model. It issues the single asynchronous load.
func (a App) Init() tea.Cmd {
	if a.source == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, LoadProducts(a.ctx, a.source))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case productsLoadedMsg:
		a.status = StatusReady
		a.loadErr = nil
		a.session = catalog.NewSession(msg.catalog.Products)
		logger.FromContext(a.ctx).V(1).Info("products loaded", "count", msg.catalog.Len())
		a.apply(a.session.OnChanged(a.input.Value()))
		return a, nil

	case loadFailedMsg:
		a.status = StatusFailed
		a.loadErr = msg.err
		a.session = nil
		logger.FromContext(a.ctx).Error(msg.err, "failed to load products")
		a.apply(catalog.View{})
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	if sortKey, ok := a.keys.SortKeyFor(msg); ok {
		if a.session != nil {
			a.clearMessage()
			a.apply(a.session.SortBy(sortKey))
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.table.MoveUp(1)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.table.MoveDown(1)
		return a, nil
	case key.Matches(msg, a.keys.PageUp):
		a.table.MoveUp(a.table.Height())
		return a, nil
	case key.Matches(msg, a.keys.PageDown):
		a.table.MoveDown(a.table.Height())
		return a, nil
	case key.Matches(msg, a.keys.CopyTitle):
		a.copySelectedTitle()
		return a, nil
	case key.Matches(msg, a.keys.ClearSearch):
		a.input.Reset()
		a.search()
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.search()
	}
	return a, cmd
}

// search feeds the current input value to the pipeline.
func (a *App) search() {
	if a.session == nil {
		return
	}
	a.clearMessage()
	a.apply(a.session.OnChanged(a.input.Value()))
}

// apply installs a new view into the table and refreshes suggestions.
func (a *App) apply(v catalog.View) {
	a.view = v
	a.table.SetRows(a.tableRows(v))
	a.table.SetCursor(0)

	a.suggestions = nil
	if a.session != nil && v.Empty() && v.Term != "" {
		a.suggestions = search.SuggestTitles(a.session.All(), v.Term, search.DefaultLimit)
	}
}

func (a *App) copySelectedTitle() {
	p := a.SelectedProduct()
	if p == nil {
		a.setMessage(MessageWarning, "Nothing selected")
		return
	}
	if err := a.clipboard(p.Title); err != nil {
		a.setMessage(MessageError, "Copy failed: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Copied: "+p.Title)
}

// resize recomputes table columns and height for the terminal size.
// Rows are rebuilt because cell text is truncated to the column widths.
func (a *App) resize() {
	a.widths = layout.CalculateColumnWidths(a.width, a.layout.Table)
	a.table.SetColumns(tableColumns(a.widths))
	a.table.SetHeight(layout.CalculateTableHeight(a.height, a.layout.Table))
	a.table.SetWidth(a.widths.Total(a.layout.Table))
	if len(a.view.Products) > 0 {
		a.table.SetRows(a.tableRows(a.view))
	}
}
