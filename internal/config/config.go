package config

// Package config persists the single piece of application configuration, the
// uploads database URL, as a small JSON file shared by the GUI and console
// front-ends. Loading never fails: anything wrong with the stored file falls
// back to the built-in default so the app always starts with a usable URL.

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultCatalogURL is the built-in uploads database location used whenever
// no valid configuration is stored.
const DefaultCatalogURL = "https://raw.githubusercontent.com/SabeeirSharrma/ATT-DB/main/uploads.json"

// Config file naming
const (
	ConfigFileName = "config.json"
	AppConfigDir   = "allthetorr"
)

// File permissions
const (
	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0755
)

// Config is the persisted configuration record. Its single key matches the
// on-disk JSON object exactly.
type Config struct {
	CatalogURL string `json:"catalog_url"`
}

// Store manages the configuration file at a fixed path
type Store struct {
	path string
}

// NewStore creates a store bound to the given config file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user config file location, falling back to the
// working directory when the user config dir cannot be resolved.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(base, AppConfigDir, ConfigFileName)
}

// Path returns the file path this store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted configuration. A missing file, unreadable file,
// malformed JSON, or a top level that is not an object (older builds wrote a
// bare array) all resolve to the default URL; Load never fails.
func (s *Store) Load() Config {
	fallback := Config{CatalogURL: DefaultCatalogURL}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fallback
	}

	// Decode into a generic value first so a wrong top-level shape is
	// detected instead of half-applied.
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fallback
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return fallback
	}

	url, ok := obj["catalog_url"].(string)
	if !ok || url == "" {
		return fallback
	}
	return Config{CatalogURL: url}
}

// Save writes the configuration, overwriting any existing file. Callers treat
// a write failure as a non-fatal warning; the in-memory config stays valid.
func (s *Store) Save(cfg Config) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, DefaultFilePermissions)
}
