package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/catalog/internal/storage"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog", "config.yaml")

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *cfg, storage.DefaultConfig())

	_, err = os.Stat(path)
	assert.NilError(t, err, "config file should be created")

	// Written defaults round-trip
	again, err := storage.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *again, storage.DefaultConfig())
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `source: https://shop.example/db.json
imageCheck:
  enabled: true
  timeout: 2s
`
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := storage.LoadConfig(path)
	assert.NilError(t, err)

	defaults := storage.DefaultConfig()
	assert.Equal(t, cfg.Source, "https://shop.example/db.json")
	assert.Equal(t, cfg.Listen, defaults.Listen)
	assert.Equal(t, cfg.PlaceholderImage, defaults.PlaceholderImage)
	assert.Equal(t, cfg.LogLevel, "info")
	assert.Equal(t, cfg.Timeout, defaults.Timeout)
	assert.Assert(t, cfg.ImageCheck.Enabled)
	assert.Equal(t, cfg.ImageCheck.Timeout, 2*time.Second)
	assert.Equal(t, cfg.ImageCheck.Concurrency, defaults.ImageCheck.Concurrency)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("source: [unterminated"), 0644))

	_, err := storage.LoadConfig(path)
	assert.Assert(t, err != nil)
}
