package config

import "os"
import "path/filepath"

// Returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// Returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "cursive", "config.toml")
}

// Returns the default path for the training SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), "cursive", "training.db")
}

// Returns the default directory for rendered handwriting exports.
func DefaultExportDir() string {
	return filepath.Join(XDGDataHome(), "cursive", "exports")
}
