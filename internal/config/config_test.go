package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula/tabula/internal/config/data"
)

func TestConfig_LoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabula.yaml")

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, false))
	assert.Equal(t, DefaultStory, cfg.Tabula.DefaultStory)

	assert.ErrorIs(t, NewConfig().Load(path, true), data.ErrNotFound)
}

func TestConfig_LoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabula.yaml")
	raw := `tabula:
  apiTimeout: 5s
  loadDelay: nope
  defaultStory: reddit
  sources:
    swapi:
      url: http://localhost:8080/api/people/
    s3:
      bucket: photos
      pageSize: 50
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, true))

	tb := cfg.Tabula
	assert.Equal(t, 5*time.Second, tb.Timeout())
	assert.Equal(t, DefaultLoadDelay, tb.LoadDelay)
	assert.Equal(t, "reddit", tb.DefaultStory)
	assert.Equal(t, "http://localhost:8080/api/people/", tb.Sources.Swapi.URL)
	assert.Equal(t, "results", tb.Sources.Swapi.ItemsPath)
	assert.Equal(t, "next", tb.Sources.Swapi.CursorPath)
	assert.Equal(t, DefaultReddit, tb.Sources.Reddit)
	assert.Equal(t, "photos", tb.Sources.S3.Bucket)
	assert.Equal(t, int32(50), tb.Sources.S3.PageSize)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tabula.yaml")

	cfg := NewConfig()
	cfg.Tabula.CacheTTL = "1m"
	cfg.Tabula.UI.EnableMouse = true

	require.NoError(t, cfg.Save(path, false))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, cfg.Save(path, true))

	loaded := NewConfig()
	require.NoError(t, loaded.Load(path, true))
	assert.Equal(t, time.Minute, loaded.Tabula.TTL())
	assert.True(t, loaded.Tabula.UI.EnableMouse)
	assert.Equal(t, cfg.Tabula.Sources, loaded.Tabula.Sources)
}

func TestConfig_Refine(t *testing.T) {
	flags := NewFlags()
	*flags.Timeout = "10s"
	*flags.Delay = "250ms"
	*flags.Story = "async-loading"
	*flags.LogLevel = "debug"

	cfg := NewConfig()
	cfg.Refine(flags)

	assert.Equal(t, 10*time.Second, cfg.Tabula.Timeout())
	assert.Equal(t, 250*time.Millisecond, cfg.Tabula.Delay())
	assert.Equal(t, "async-loading", cfg.Tabula.DefaultStory)
	assert.Equal(t, "debug", cfg.Tabula.Logger.Level)
}

func TestConfig_RefineUnsetFlags(t *testing.T) {
	cfg := NewConfig()
	cfg.Tabula.Logger.Level = "warn"
	cfg.Refine(NewFlags())

	assert.Equal(t, "warn", cfg.Tabula.Logger.Level)
	assert.Equal(t, 30*time.Second, cfg.Tabula.Timeout())
	assert.Equal(t, time.Duration(0), cfg.Tabula.Delay())
}

func TestInitLocs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	require.NoError(t, InitLocs())
	assert.Equal(t, filepath.Join(dir, "config", "tabula", "tabula.yaml"), AppConfigFile)
	assert.Equal(t, filepath.Join(dir, "config", "tabula", "aliases.yaml"), AppAliasesFile)
	assert.Equal(t, filepath.Join(dir, "state", "tabula", "tabula.log"), AppLogFile)
	assert.DirExists(t, AppConfigDir)
	assert.DirExists(t, AppStateDir)
}
