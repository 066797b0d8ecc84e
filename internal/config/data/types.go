// Package data provides configuration data types for the tabula application.
package data

import "time"

// Flags represents CLI command-line flags for the tabula application.
type Flags struct {
	LogLevel   *string // Log level (e.g., debug, info, warn, error)
	LogFile    *string // Path to log file
	ConfigFile *string // Path to config file
	Timeout    *string // Request timeout, e.g. 10s
	Delay      *string // Artificial load delay, e.g. 500ms
	Story      *string // Story to open on start
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
	Logoless    bool `yaml:"logoless"`
	NoIcons     bool `yaml:"noIcons"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level string `yaml:"level"`
}

// HTTPSource configures a paginated JSON endpoint.
type HTTPSource struct {
	URL         string `yaml:"url"`
	ItemsPath   string `yaml:"itemsPath"`
	CursorPath  string `yaml:"cursorPath"`
	CursorParam string `yaml:"cursorParam,omitempty"`
	KeyPath     string `yaml:"keyPath,omitempty"`
	FieldPrefix string `yaml:"fieldPrefix,omitempty"`
}

// IsSet returns true if the endpoint is configured.
func (h HTTPSource) IsSet() bool {
	return h.URL != ""
}

// Merge fills unset fields from defaults.
func (h HTTPSource) Merge(defaults HTTPSource) HTTPSource {
	if h.URL == "" {
		return defaults
	}
	if h.ItemsPath == "" {
		h.ItemsPath = defaults.ItemsPath
	}
	if h.CursorPath == "" {
		h.CursorPath = defaults.CursorPath
	}
	return h
}

// S3Source configures the bucket listing story.
type S3Source struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix,omitempty"`
	Profile  string `yaml:"profile,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	PageSize int32  `yaml:"pageSize,omitempty"`
}

// Sources groups data source settings.
type Sources struct {
	Swapi  HTTPSource `yaml:"swapi"`
	Reddit HTTPSource `yaml:"reddit"`
	S3     S3Source   `yaml:"s3"`
}

// ParseDuration parses d, returning fallback when d is empty or invalid.
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	v, err := time.ParseDuration(d)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
