package config

import (
	"github.com/tabula/tabula/internal/config/data"
)

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags returns flags bound to empty values, ready for cobra to fill.
func NewFlags() *data.Flags {
	return &data.Flags{
		LogLevel:   new(string),
		LogFile:    new(string),
		ConfigFile: new(string),
		Timeout:    new(string),
		Delay:      new(string),
		Story:      new(string),
	}
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
