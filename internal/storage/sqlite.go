package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/catalog/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage keeps a product collection in a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the schema version recorded in the database.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

func (s *SQLiteStorage) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < currentSchemaVersion {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema. position keeps feed order.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			price REAL NOT NULL DEFAULT 0,
			category_id TEXT,
			category_name TEXT,
			description TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads all products in feed order.
func (s *SQLiteStorage) Load(ctx context.Context) (*model.Catalog, error) {
	source := "sqlite://" + s.path

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, price, category_id, category_name, description, images
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, loadError(source, err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		var id string
		var categoryID, categoryName sql.NullString
		var imagesJSON string

		if err := rows.Scan(&id, &p.Title, &p.Price, &categoryID, &categoryName, &p.Description, &imagesJSON); err != nil {
			return nil, loadError(source, err)
		}
		p.ID = model.ID(id)

		if categoryName.Valid {
			p.Category = &model.Category{ID: model.ID(categoryID.String), Name: categoryName.String}
		}

		if err := json.Unmarshal([]byte(imagesJSON), &p.Images); err != nil {
			return nil, loadError(source, fmt.Errorf("decode images of product %q: %w", id, err))
		}
		if len(p.Images) == 0 {
			p.Images = nil
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, loadError(source, err)
	}

	return model.NewCatalog(products), nil
}

// Save replaces the stored products with the catalog.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(ctx context.Context, catalog *model.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, position, title, price, category_id, category_name, description, images)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range catalog.Products {
		imagesJSON, _ := json.Marshal(p.Images)
		if p.Images == nil {
			imagesJSON = []byte("[]")
		}

		var categoryID, categoryName *string
		if p.Category != nil {
			id := string(p.Category.ID)
			name := p.Category.Name
			categoryID = &id
			categoryName = &name
		}

		if _, err := stmt.ExecContext(ctx,
			string(p.ID), i, p.Title, p.Price,
			categoryID, categoryName, p.Description, string(imagesJSON),
		); err != nil {
			return fmt.Errorf("insert product %q: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
