package config

import (
	"time"

	"github.com/tabula/tabula/internal/config/data"
)

// Default settings.
const (
	DefaultAPITimeout = "30s"
	DefaultLoadDelay  = "0s"
	DefaultCacheTTL   = "30s"
	DefaultStory      = "example"
)

// Default endpoints for the remote stories.
var (
	DefaultSwapi = data.HTTPSource{
		URL:        "https://swapi.py4e.com/api/people/?search=",
		ItemsPath:  "results",
		CursorPath: "next",
		KeyPath:    "name",
	}

	DefaultReddit = data.HTTPSource{
		URL:         "https://www.reddit.com/r/upliftingnews.json",
		ItemsPath:   "data.children",
		CursorPath:  "data.after",
		CursorParam: "after",
		KeyPath:     "data.id",
		FieldPrefix: "data.",
	}
)

// Tabula holds the application settings.
type Tabula struct {
	APITimeout   string       `yaml:"apiTimeout"`
	LoadDelay    string       `yaml:"loadDelay"`
	CacheTTL     string       `yaml:"cacheTTL"`
	DefaultStory string       `yaml:"defaultStory"`
	UI           data.UI      `yaml:"ui"`
	Logger       data.Logger  `yaml:"logger"`
	Sources      data.Sources `yaml:"sources"`
}

// NewTabula returns settings with defaults.
func NewTabula() *Tabula {
	return &Tabula{
		APITimeout:   DefaultAPITimeout,
		LoadDelay:    DefaultLoadDelay,
		CacheTTL:     DefaultCacheTTL,
		DefaultStory: DefaultStory,
		Logger:       data.Logger{Level: DefaultLogLevel},
		Sources: data.Sources{
			Swapi:  DefaultSwapi,
			Reddit: DefaultReddit,
		},
	}
}

// Validate fills in missing or invalid settings.
func (t *Tabula) Validate() {
	if _, err := time.ParseDuration(t.APITimeout); err != nil {
		t.APITimeout = DefaultAPITimeout
	}
	if _, err := time.ParseDuration(t.LoadDelay); err != nil {
		t.LoadDelay = DefaultLoadDelay
	}
	if _, err := time.ParseDuration(t.CacheTTL); err != nil {
		t.CacheTTL = DefaultCacheTTL
	}
	if t.DefaultStory == "" {
		t.DefaultStory = DefaultStory
	}
	if t.Logger.Level == "" {
		t.Logger.Level = DefaultLogLevel
	}
	t.Sources.Swapi = t.Sources.Swapi.Merge(DefaultSwapi)
	t.Sources.Reddit = t.Sources.Reddit.Merge(DefaultReddit)
}

// Override applies CLI flags over the loaded settings.
func (t *Tabula) Override(flags *data.Flags) {
	if IsStringSet(flags.LogLevel) {
		t.Logger.Level = *flags.LogLevel
	}
	if IsStringSet(flags.Timeout) {
		t.APITimeout = *flags.Timeout
	}
	if IsStringSet(flags.Delay) {
		t.LoadDelay = *flags.Delay
	}
	if IsStringSet(flags.Story) {
		t.DefaultStory = *flags.Story
	}
	t.Validate()
}

// Timeout returns the per request timeout.
func (t *Tabula) Timeout() time.Duration {
	return data.ParseDuration(t.APITimeout, 30*time.Second)
}

// Delay returns the artificial delay applied before remote loads.
func (t *Tabula) Delay() time.Duration {
	return data.ParseDuration(t.LoadDelay, 0)
}

// TTL returns the page cache time to live.
func (t *Tabula) TTL() time.Duration {
	return data.ParseDuration(t.CacheTTL, 30*time.Second)
}
