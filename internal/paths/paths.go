// Package paths resolves where the resolvconf CLI keeps its stored
// configuration, following the XDG Base Directory Specification.
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

const appName = "resolvconf"

var (
	configDir string
	once      sync.Once
)

// ConfigDir returns the directory holding the CLI configuration:
// /etc/resolvconf when running as root, $XDG_CONFIG_HOME/resolvconf
// when set, and ~/.config/resolvconf otherwise. The result is cached
// after the first call.
func ConfigDir() string {
	once.Do(func() {
		configDir = resolveConfigDir()
	})
	return configDir
}

// ConfigFile returns the path of the main configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Reset clears the cached directory so tests can vary the environment.
func Reset() {
	configDir = ""
	once = sync.Once{}
}

func resolveConfigDir() string {
	if os.Geteuid() == 0 {
		return filepath.Join("/etc", appName)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	return filepath.Join(homeDir(), ".config", appName)
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return "/"
}
