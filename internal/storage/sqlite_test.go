package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/storage"
)

func newSQLite(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "products.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	in := model.NewCatalog([]model.Product{
		{ID: "b", Title: "Quần jean", Price: 350000, Category: &model.Category{ID: "1", Name: "Clothes"}, Description: "Denim", Images: []string{"https://img/q.png", "https://img/q2.png"}},
		{ID: "a", Title: "Áo thun", Price: 15000},
	})
	assert.NilError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	assert.NilError(t, err)

	// Feed order, not id order
	assert.DeepEqual(t, out.Products, in.Products)
}

func TestSQLiteStorage_EmptyDatabase(t *testing.T) {
	s := newSQLite(t)

	out, err := s.Load(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, out.Len(), 0)

	version, err := s.SchemaVersion()
	assert.NilError(t, err)
	assert.Equal(t, version, 1)
}

func TestSQLiteStorage_SaveReplaces(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	assert.NilError(t, s.Save(ctx, model.NewCatalog([]model.Product{{ID: "1", Title: "Old"}})))
	assert.NilError(t, s.Save(ctx, model.NewCatalog([]model.Product{{ID: "2", Title: "New"}})))

	out, err := s.Load(ctx)
	assert.NilError(t, err)
	assert.Equal(t, out.Len(), 1)
	assert.Equal(t, out.Products[0].Title, "New")
}

func TestSQLiteStorage_DuplicateIDsRollBack(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	assert.NilError(t, s.Save(ctx, model.NewCatalog([]model.Product{{ID: "1", Title: "Kept"}})))

	err := s.Save(ctx, model.NewCatalog([]model.Product{
		{ID: "2", Title: "Dup"},
		{ID: "2", Title: "Dup again"},
	}))
	assert.Assert(t, err != nil)

	out, err := s.Load(ctx)
	assert.NilError(t, err)
	assert.Equal(t, out.Len(), 1)
	assert.Equal(t, out.Products[0].Title, "Kept")
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	ctx := context.Background()

	s, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	assert.NilError(t, s.Save(ctx, model.NewCatalog([]model.Product{{ID: "1", Title: "Persisted"}})))
	assert.NilError(t, s.Close())

	s2, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	defer s2.Close()

	out, err := s2.Load(ctx)
	assert.NilError(t, err)
	assert.Equal(t, out.Products[0].Title, "Persisted")
}

func TestSQLiteStorage_LoadAfterCloseIsLoadFailure(t *testing.T) {
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "products.db"))
	assert.NilError(t, err)
	assert.NilError(t, s.Close())

	_, err = s.Load(context.Background())
	assert.Assert(t, errors.Is(err, storage.ErrLoadFailure))
}

func TestSQLiteStorage_UndecodableImagesIsLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	s, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	defer s.Close()

	ctx := context.Background()
	assert.NilError(t, s.Save(ctx, model.NewCatalog([]model.Product{{ID: "1", Title: "Áo thun"}})))

	db, err := sql.Open("sqlite", path)
	assert.NilError(t, err)
	defer db.Close()
	_, err = db.Exec(`UPDATE products SET images = 'not json' WHERE id = '1'`)
	assert.NilError(t, err)

	_, err = s.Load(ctx)
	assert.Assert(t, errors.Is(err, storage.ErrLoadFailure))
	assert.ErrorContains(t, err, `decode images of product "1"`)
}
