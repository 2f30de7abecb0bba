package config

import (
	"os"
	"path/filepath"
)

const appName = "melovue-shell"

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for melovue-shell:
// - $XDG_CONFIG_HOME/melovue-shell (default: ~/.config/melovue-shell)
// - $XDG_CACHE_HOME/melovue-shell (default: ~/.cache/melovue-shell)
func GetXDGDirs() (*XDGDirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(homeDir, ".cache")
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		CacheHome:  filepath.Join(cacheHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for melovue-shell.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetStagingDir returns the cache directory used to stage downloaded
// installer artifacts. The artifact is overwritten on each attempt.
func GetStagingDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.CacheHome, "updates"), nil
}
