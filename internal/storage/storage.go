package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/catalog/internal/model"
)

// DefaultSource is the product feed location used when nothing is configured.
const DefaultSource = "./db.json"

// Source loads the full product collection.
type Source interface {
	Load(ctx context.Context) (*model.Catalog, error)
}

// JSONStorage reads and writes a db.json style product file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the catalog from the JSON file.
// A missing or malformed file is a load failure.
func (s *JSONStorage) Load(ctx context.Context) (*model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadError(s.path, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, loadError(s.path, err)
	}

	products, err := decodeProducts(bytes.NewReader(data))
	if err != nil {
		return nil, loadError(s.path, err)
	}
	return model.NewCatalog(products), nil
}

// Save writes the catalog as a top-level JSON array.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(catalog *model.Catalog) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(catalog.Products, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// decodeProducts accepts either a top-level array of products or an object
// with a "products" array.
func decodeProducts(r io.Reader) ([]model.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty product document")
	}

	if trimmed[0] == '{' {
		var wrapped struct {
			Products []model.Product `json:"products"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
		if wrapped.Products == nil {
			return nil, errors.New("decode products: missing \"products\" array")
		}
		return wrapped.Products, nil
	}

	var products []model.Product
	if err := json.Unmarshal(trimmed, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// OpenSource picks a Source for a location:
// http(s) URLs, sqlite:// or *.db files, and JSON files otherwise.
// A leading ~/ in file locations is expanded to the home directory.
func OpenSource(location string, params HTTPSourceParams) (Source, error) {
	if location == "" {
		location = DefaultSource
	}

	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		params.URL = location
		return NewHTTPSource(params), nil

	case strings.HasPrefix(lower, "sqlite://"):
		return openSQLiteSource(ExpandHome(location[len("sqlite://"):])), nil

	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return openSQLiteSource(ExpandHome(location)), nil

	default:
		return NewJSONStorage(ExpandHome(location)), nil
	}
}

// openSQLiteSource opens an existing database for reading. Only imports
// create databases, so a missing or unusable file becomes a Source whose
// Load reports the failure.
func openSQLiteSource(path string) Source {
	source := "sqlite://" + path
	if _, err := os.Stat(path); err != nil {
		return failedSource{err: loadError(source, err)}
	}
	s, err := NewSQLiteStorage(path)
	if err != nil {
		return failedSource{err: loadError(source, err)}
	}
	return s
}

// failedSource reports the same load failure on every Load.
type failedSource struct {
	err error
}

func (s failedSource) Load(context.Context) (*model.Catalog, error) {
	return nil, s.err
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// CloseSource closes sources that hold resources.
func CloseSource(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
