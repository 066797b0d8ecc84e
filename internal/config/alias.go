package config

import (
	"errors"
	"maps"
	"sync"

	"github.com/tabula/tabula/internal/config/data"
)

// Aliases maps short names to story names.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex      `yaml:"-"`
}

// DefaultAliases are the built-in story aliases.
var DefaultAliases = map[string]string{
	"static":  "example",
	"swapi":   "async-loading",
	"async":   "async-loading",
	"sort":    "sortable",
	"resize":  "resizing-sortable",
	"empty":   "empty-state",
	"loading": "loading-no-items",
	"grid":    "many-items",
	"many":    "many-items",
	"s3":      "s3-objects",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	return &Aliases{
		Alias: maps.Clone(DefaultAliases),
	}
}

// Load loads aliases from the default aliases file.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom merges aliases from path over the current ones.
// A missing file is not an error.
func (a *Aliases) LoadFrom(path string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	loaded := Aliases{Alias: make(map[string]string)}
	if err := data.LoadYAML(path, &loaded); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil
		}
		return err
	}
	maps.Copy(a.Alias, loaded.Alias)

	return nil
}

// SaveTo saves aliases to a specific file path.
func (a *Aliases) SaveTo(path string) error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(path, a)
}

// Get returns the story for an alias, or the original if not found.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if story, ok := a.Alias[alias]; ok {
		return story
	}
	return alias
}

// Set sets an alias.
func (a *Aliases) Set(alias, story string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[alias] = story
}

// All returns a copy of all aliases.
func (a *Aliases) All() map[string]string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return maps.Clone(a.Alias)
}
