package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetTallyHome returns the tally home directory, creating it if needed.
// Priority order:
//  1. TALLY_HOME environment variable (if set)
//  2. ~/.tally
//  3. .tally in the current working directory
func GetTallyHome() (string, error) {
	home := os.Getenv("TALLY_HOME")
	if home == "" {
		if userHome, err := os.UserHomeDir(); err == nil && userHome != "" {
			home = filepath.Join(userHome, ".tally")
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("get working directory: %w", err)
			}
			home = filepath.Join(cwd, ".tally")
		}
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create tally home directory: %w", err)
	}

	return home, nil
}

// GetHistoryDBPath returns the configured history database path, falling back
// to $TALLY_HOME/history.db
func (c *Config) GetHistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}

	home, err := GetTallyHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}
