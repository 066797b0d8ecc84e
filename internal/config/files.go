package config

import (
	"os"
	"path/filepath"
)

// AppName names the config and state directories.
const AppName = "tabula"

// Resolved by InitLocs.
var (
	AppConfigDir   string
	AppStateDir    string
	AppConfigFile  string
	AppAliasesFile string
	AppLogFile     string
)

// xdgDir returns $env/tabula, or home/fallback.../tabula when env is unset.
func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, AppName)
}

// InitLocs resolves the application paths following the XDG base directory
// layout and creates the directories.
func InitLocs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	AppConfigDir = xdgDir("XDG_CONFIG_HOME", home, ".config")
	AppStateDir = xdgDir("XDG_STATE_HOME", home, ".local", "state")
	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, d := range []string{AppConfigDir, AppStateDir} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return err
		}
	}

	return nil
}
