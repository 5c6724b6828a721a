package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/catalog"
	"github.com/nikbrunner/catalog/internal/imagecheck"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/search"
)

var (
	exportSortFlag        string
	exportOutputFlag      string
	exportCheckImagesFlag bool
)

var exportCmd = &cobra.Command{
	Use:   "export [query...]",
	Short: "Write matching products to a standalone HTML page",
	Long: `Render the products matching the query as a standalone HTML page.

The page carries the product table, the result count and the sort
controls. If the products cannot be loaded the page holds a single
error row and the command fails.

Default output: ~/Downloads/catalog-export-YYYY-MM-DD.html`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportSortFlag, "sort", "", "sort key: nameAsc|nameDesc|priceAsc|priceDesc")
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "output file")
	exportCmd.Flags().BoolVar(&exportCheckImagesFlag, "check-images", false, "replace broken thumbnails with the placeholder")
}

// defaultExportPath returns ~/Downloads/catalog-export-YYYY-MM-DD.html.
func defaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("catalog-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	key, err := catalog.ParseSortKey(exportSortFlag)
	if err != nil {
		return err
	}

	outputPath := exportOutputFlag
	if outputPath == "" {
		outputPath, err = defaultExportPath()
		if err != nil {
			return fmt.Errorf("default export path: %w", err)
		}
	}

	ctx := rootCtx
	cat, loadErr := loadCatalog(ctx)
	if loadErr != nil {
		var buf bytes.Buffer
		if err := newRenderer(nil).Page(&buf, render.Page{LoadFailed: true}); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		if err := writeExport(outputPath, buf.Bytes()); err != nil {
			return err
		}
		return loadErr
	}

	var broken map[model.ID]bool
	if exportCheckImagesFlag || cfg.ImageCheck.Enabled {
		results := imagecheck.CheckImages(ctx, cat.Products, imagecheck.Params{
			Concurrency: cfg.ImageCheck.Concurrency,
			Timeout:     cfg.ImageCheck.Timeout,
		})
		broken = imagecheck.BrokenIDs(results)
	}

	query := strings.Join(args, " ")
	view := catalog.NewSession(cat.Products).Apply(query, key)
	page := render.Page{View: view, Query: query}
	if view.Empty() && view.Term != "" {
		page.Suggestions = search.SuggestTitles(cat.Products, view.Term, search.DefaultLimit)
	}

	var buf bytes.Buffer
	if err := newRenderer(broken).Page(&buf, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := writeExport(outputPath, buf.Bytes()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d products to %s\n", view.Count(), view.Total, outputPath)
	return nil
}

func writeExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
