package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/picker"
	"github.com/nikbrunner/catalog/internal/search"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var findCmd = &cobra.Command{
	Use:   "find <query...>",
	Short: "Pick a matching product and copy its title",
	Long: `Search titles for the query. A single match is selected directly;
several matches open a picker. When nothing contains the query the
closest fuzzy matches are offered instead.

The chosen title is copied to the clipboard.`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{fullScreenAnnotation: "true"},
	RunE:        runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	cat, err := loadCatalog(rootCtx)
	if err != nil {
		return err
	}

	results := findResults(cat.Products, query)
	if len(results) == 0 {
		fmt.Fprintf(out, "No products found for '%s'\n", query)
		return nil
	}

	var selected *model.Product
	if len(results) == 1 {
		selected = results[0].Product
	} else {
		program := tea.NewProgram(picker.New(results, query), tea.WithContext(rootCtx))
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected = finalPicker.SelectedProduct()
	}

	if selected == nil {
		return nil
	}

	if err := writeClipboard(selected.Title); err != nil {
		return fmt.Errorf("copy title: %w", err)
	}
	fmt.Fprintf(out, "Copied: %s\n", selected.Title)
	return nil
}

// findResults returns the substring matches for query, or fuzzy
// suggestions when there are none.
func findResults(products []model.Product, query string) []picker.Result {
	view := catalog.NewSession(products).OnChanged(query)
	if !view.Empty() {
		return picker.FromView(view)
	}
	return picker.FromSuggestions(search.Suggest(products, view.Term, search.DefaultLimit))
}
