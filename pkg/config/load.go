package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/huepick/config.toml
//  2. ~/.config/huepick/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Values absent
// from the input keep their defaults; environment overrides win last.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies HUEPICK_* environment variables on top of
// whatever the file (or defaults) provided.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HUEPICK_THEME"); v != "" {
		cfg.General.Theme = v
	}
	if v := os.Getenv("HUEPICK_FORMAT"); v != "" {
		cfg.General.OutputFormat = v
	}
	if v := os.Getenv("HUEPICK_COLOR"); v != "" {
		cfg.General.InitialColor = v
	}
}

// configSearchPaths returns the candidate config file paths in priority
// order.
func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "huepick", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "huepick", "config.toml"))
	}
	return paths
}
