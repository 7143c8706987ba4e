package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.Search.SuggestLimit)
	assert.Equal(t, 10, cfg.Search.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.GreaterOrEqual(t, cfg.Search.WorkerPoolSize, 1)
}

func TestLoad(t *testing.T) {
	t.Run("empty path keeps defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults, rest stays", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[database]
path = "/var/lib/campusgrid"

[search]
page_size = 25
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/campusgrid", cfg.Database.Path)
		assert.Equal(t, 25, cfg.Search.PageSize)
		assert.Equal(t, 8, cfg.Search.SuggestLimit, "unset fields keep defaults")
	})

	t.Run("max page size never below page size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[search]
page_size = 40
max_page_size = 20
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.Search.MaxPageSize)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
