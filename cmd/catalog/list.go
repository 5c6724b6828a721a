package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/search"
)

var listSortFlag string

var listCmd = &cobra.Command{
	Use:   "list [query...]",
	Short: "Print matching products as a table",
	Long: `Print the products whose title contains the query (case-insensitive)
as a terminal table. Without a query every product is listed.

Examples:
  catalog list
  catalog list áo --sort priceDesc`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSortFlag, "sort", "", "sort key: nameAsc|nameDesc|priceAsc|priceDesc")
}

func runList(cmd *cobra.Command, args []string) error {
	key, err := catalog.ParseSortKey(listSortFlag)
	if err != nil {
		return err
	}

	ctx := rootCtx
	cat, err := loadCatalog(ctx)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), render.LoadErrorMessage)
		return err
	}

	query := strings.Join(args, " ")
	view := catalog.NewSession(cat.Products).Apply(query, key)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Results: %d\n", view.Count())
	if view.Empty() {
		fmt.Fprintln(out, render.EmptyMessage)
		if view.Term != "" {
			if titles := search.SuggestTitles(cat.Products, view.Term, search.DefaultLimit); len(titles) > 0 {
				fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(titles, ", "))
			}
		}
		return nil
	}

	fmt.Fprintln(out, newRenderer(nil).Table(view))
	return nil
}
