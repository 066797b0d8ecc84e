package aws

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultProfile is the shared config profile used when none is set.
const DefaultProfile = "default"

// ProfileDiscovery finds profiles declared in the shared AWS files.
type ProfileDiscovery struct {
	credentialsPath string
	configPath      string
}

// NewProfileDiscovery uses the standard ~/.aws locations, honoring
// AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE.
func NewProfileDiscovery() *ProfileDiscovery {
	home, _ := os.UserHomeDir()
	d := ProfileDiscovery{
		credentialsPath: filepath.Join(home, ".aws", "credentials"),
		configPath:      filepath.Join(home, ".aws", "config"),
	}
	if p := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); p != "" {
		d.credentialsPath = p
	}
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		d.configPath = p
	}
	return &d
}

// NewProfileDiscoveryAt reads profiles from explicit files.
func NewProfileDiscoveryAt(credentialsPath, configPath string) *ProfileDiscovery {
	return &ProfileDiscovery{
		credentialsPath: credentialsPath,
		configPath:      configPath,
	}
}

// ProfileNames returns the sorted profile names from both files.
// Missing files are not an error.
func (d *ProfileDiscovery) ProfileNames() ([]string, error) {
	names := make(map[string]struct{})

	if _, err := os.Stat(d.credentialsPath); err == nil {
		f, err := ini.Load(d.credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials file: %w", err)
		}
		for _, section := range f.Sections() {
			if name := section.Name(); name != ini.DefaultSection {
				names[name] = struct{}{}
			}
		}
	}

	if _, err := os.Stat(d.configPath); err == nil {
		f, err := ini.Load(d.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		for _, section := range f.Sections() {
			name := section.Name()
			switch {
			case name == DefaultProfile:
				names[DefaultProfile] = struct{}{}
			case strings.HasPrefix(name, "profile "):
				names[strings.TrimPrefix(name, "profile ")] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Validate checks that profile is declared. An empty profile is accepted
// since the SDK then falls back to its default chain.
func (d *ProfileDiscovery) Validate(profile string) error {
	if profile == "" {
		return nil
	}
	names, err := d.ProfileNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == profile {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
}
