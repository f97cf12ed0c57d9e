// Package config handles the XDG configuration directory and the optional
// config.toml that selects the storage backend.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.toml"
)

// Storage kinds accepted in config.toml.
const (
	StorageText   = "text"
	StorageYAML   = "yaml"
	StorageSQLite = "sqlite"
)

// defaultStateFile maps a storage kind to its default filename.
var defaultStateFile = map[string]string{
	StorageText:   "todo.txt",
	StorageYAML:   "todo.yaml",
	StorageSQLite: "todo.db",
}

// fileSettings is the on-disk shape of config.toml.
type fileSettings struct {
	Storage string `toml:"storage"`
	File    string `toml:"file"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Storage selects the persistence backend: text, yaml or sqlite.
	Storage string

	// File overrides the state file path. Empty means the default file
	// for the storage kind inside Dir.
	File string

	// Debug enables the invocation log.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config rooted at the default or specified config directory
// and applies config.toml from that directory if present.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Storage: StorageText}

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if fs.Storage != "" {
		if _, ok := defaultStateFile[fs.Storage]; !ok {
			return nil, fmt.Errorf("%s: unknown storage kind %q", path, fs.Storage)
		}
		cfg.Storage = fs.Storage
	}
	cfg.File = fs.File
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// StatePath returns the path of the persisted document.
func (c *Config) StatePath() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(c.Dir, defaultStateFile[c.Storage])
}

// LogDir returns the directory for debug logs.
func (c *Config) LogDir() string {
	return filepath.Join(c.Dir, "logs")
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
