// ABOUTME: Standard filesystem paths for keycast configuration and logs
// ABOUTME: Resolves ~/.keycast/ and falls back to ./.keycast when HOME is unknown

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".keycast"

// GlobalDir returns the user-global config directory (~/.keycast/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the path of the optional settings file.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// LogFile returns the default log destination used while the overlay owns the terminal.
func LogFile() string {
	return filepath.Join(GlobalDir(), "keycast.log")
}
