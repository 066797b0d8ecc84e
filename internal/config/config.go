package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/tabula/tabula/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Tabula *Tabula `yaml:"tabula"`
	mx     sync.RWMutex
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Tabula: NewTabula(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept unless force is set.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if err := data.LoadYAML(path, c); err != nil {
		if errors.Is(err, data.ErrNotFound) && !force {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.Tabula == nil {
		c.Tabula = NewTabula()
	}
	c.Tabula.Validate()

	return nil
}

// Save saves the configuration to path.
// If force is false, only saves if the file already exists.
func (c *Config) Save(path string, force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	if _, err := os.Stat(path); err != nil && !force {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flag overrides.
func (c *Config) Refine(flags *data.Flags) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Tabula == nil {
		c.Tabula = NewTabula()
	}
	if flags != nil {
		c.Tabula.Override(flags)
	}
}
