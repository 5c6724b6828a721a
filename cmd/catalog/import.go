package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/importer"
	"github.com/nikbrunner/catalog/internal/logger"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/storage"
)

var importDBFlag string

var importCmd = &cobra.Command{
	Use:   "import <file.json|file.html>",
	Short: "Copy a product feed into a SQLite database",
	Long: `Read a JSON product list, or a page written by "catalog export", and
replace the contents of a SQLite database with it. Products without an
id get a generated one.

The database can then be used as a source:
  catalog --source sqlite://~/.config/catalog/products.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDBFlag, "db", "", "SQLite database path (default ~/.config/catalog/products.db)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := rootCtx
	log := logger.FromContext(ctx)

	dbPath := storage.ExpandHome(importDBFlag)
	if dbPath == "" {
		p, err := storage.DefaultSQLitePath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		dbPath = p
	}

	cat, err := readFeed(ctx, args[0])
	if err != nil {
		return err
	}
	assigned := cat.AssignMissingIDs()

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Save(ctx, cat); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	log.V(1).Info("imported products", "file", args[0], "db", dbPath, "count", cat.Len())

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d products into %s", cat.Len(), dbPath)
	if assigned > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d ids generated)", assigned)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// readFeed loads a JSON feed, or an exported HTML page by extension.
func readFeed(ctx context.Context, path string) (*model.Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		products, err := importer.ParseHTMLProducts(f, cfg.PlaceholderImage)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return model.NewCatalog(products), nil
	default:
		return storage.NewJSONStorage(path).Load(ctx)
	}
}
