// Package config loads huepick's TOML configuration, following the
// XDG base directory convention with environment overrides.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Picker  PickerConfig  `toml:"picker"`
}

// GeneralConfig holds chooser-wide settings.
type GeneralConfig struct {
	// Theme names a built-in or registered theme.
	Theme string `toml:"theme"`

	// InitialColor seeds the field's externally supplied value. It is
	// deliberately not validated here: the field displays an external
	// value verbatim, whatever it is.
	InitialColor string `toml:"initial_color"`

	// OutputFormat selects how the committed color is printed:
	// "hex" or "rgb".
	OutputFormat string `toml:"output_format"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// PickerConfig holds swatch-grid settings.
type PickerConfig struct {
	// Mouse enables click-to-pick on the swatch grid.
	Mouse bool `toml:"mouse"`

	// Hues is the number of hue columns in the grid.
	Hues int `toml:"hues"`

	// Shades is the number of lightness rows in the grid.
	Shades int `toml:"shades"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Theme:        "default",
			OutputFormat: "hex",
			LogLevel:     "info",
		},
		Picker: PickerConfig{
			Mouse:  true,
			Hues:   12,
			Shades: 6,
		},
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	switch c.General.OutputFormat {
	case "hex", "rgb":
	default:
		return fmt.Errorf("config: output_format %q, want \"hex\" or \"rgb\"", c.General.OutputFormat)
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level %q, want debug|info|warn|error", c.General.LogLevel)
	}
	if c.Picker.Hues < 4 || c.Picker.Hues > 36 {
		return fmt.Errorf("config: picker.hues %d out of range 4-36", c.Picker.Hues)
	}
	if c.Picker.Shades < 2 || c.Picker.Shades > 12 {
		return fmt.Errorf("config: picker.shades %d out of range 2-12", c.Picker.Shades)
	}
	return nil
}
