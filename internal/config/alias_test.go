package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliases_Get(t *testing.T) {
	a := NewAliases()

	assert.Equal(t, "async-loading", a.Get("swapi"))
	assert.Equal(t, "reddit", a.Get("reddit"))

	a.Set("r", "reddit")
	assert.Equal(t, "reddit", a.Get("r"))
	assert.NotContains(t, DefaultAliases, "r")
}

func TestAliases_LoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	raw := `aliases:
  r: reddit
  sort: resizing-sortable
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	a := NewAliases()
	require.NoError(t, a.LoadFrom(path))

	assert.Equal(t, "reddit", a.Get("r"))
	assert.Equal(t, "resizing-sortable", a.Get("sort"))
	assert.Equal(t, "example", a.Get("static"))
	assert.Len(t, a.All(), len(DefaultAliases)+1)
}

func TestAliases_LoadFromMissing(t *testing.T) {
	a := NewAliases()

	require.NoError(t, a.LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, DefaultAliases, a.All())
}

func TestAliases_SaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")

	a := NewAliases()
	a.Set("r", "reddit")
	require.NoError(t, a.SaveTo(path))

	b := &Aliases{Alias: map[string]string{}}
	require.NoError(t, b.LoadFrom(path))
	assert.Equal(t, a.All(), b.All())
}
