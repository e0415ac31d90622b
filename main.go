// huepick is an interactive terminal color chooser.
//
// It presents a validating color field (hex or rgb() literals) paired
// with a swatch-grid picker. The accepted color prints to stdout, so
// it composes with command substitution:
//
//	BG=$(huepick -color "#1a2b3c")
//
// Flags:
//
//	-color string   Initial color value
//	-theme string   Theme name (overrides config)
//	-config string  Path to configuration file
//	-format string  Output format: hex|rgb (overrides config)
//	-no-mouse       Disable mouse support
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/huepick/pkg/app"
	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
	"gitlab.com/tinyland/lab/huepick/pkg/config"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		initColor   = flag.String("color", "", "Initial color value")
		themeName   = flag.String("theme", "", "Theme name (overrides config)")
		format      = flag.String("format", "", "Output format: hex|rgb (overrides config)")
		noMouse     = flag.Bool("no-mouse", false, "Disable mouse support")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("huepick %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration, then apply flag overrides on top.
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *initColor != "" {
		cfg.General.InitialColor = *initColor
	}
	if *themeName != "" {
		cfg.General.Theme = *themeName
	}
	if *format != "" {
		cfg.General.OutputFormat = *format
	}
	if *noMouse {
		cfg.Picker.Mouse = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *verbose || cfg.General.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "huepick requires an interactive terminal")
		os.Exit(1)
	}

	loadUserThemes()

	// Downsample theme colors for terminals without true color.
	theme.SetCurrent(cfg.General.Theme)
	theme.Current = theme.Adapt(theme.Current, theme.DetectDepth())

	var zones *zone.Manager
	if cfg.Picker.Mouse {
		zones = zone.New()
		defer zones.Close()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Picker.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	// Keep stdout clean for the result when it is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}

	slog.Debug("starting chooser",
		"theme", cfg.General.Theme,
		"format", cfg.General.OutputFormat,
		"initial", cfg.General.InitialColor)

	m := app.New(cfg, zones)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result, ok := final.(*app.AppModel)
	if !ok || !result.Accepted() {
		slog.Debug("cancelled without a pick")
		os.Exit(1)
	}

	fmt.Println(formatColor(result.Value(), cfg.General.OutputFormat))
}

// loadUserThemes registers any *.toml themes found under the user's
// config directory. A broken theme file logs a warning and is skipped.
func loadUserThemes() {
	for _, dir := range themeSearchDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
				continue
			}
			path := filepath.Join(dir, e.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				slog.Warn("skipping theme file", "path", path, "err", err)
				continue
			}
			t, err := theme.LoadFromTOML(data)
			if err != nil {
				slog.Warn("skipping theme file", "path", path, "err", err)
				continue
			}
			if err := theme.Register(t); err != nil {
				slog.Warn("skipping theme file", "path", path, "err", err)
			}
		}
	}
}

func themeSearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "huepick", "themes"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "huepick", "themes"))
	}
	return dirs
}

// formatColor renders the committed value in the configured output
// format. Values whose channels cannot be read (a verbatim external
// value that never validated) print as-is.
func formatColor(value, format string) string {
	r, g, b, ok := colorspec.Channels(value)
	if !ok {
		return value
	}
	if format == "rgb" {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return colorspec.HexFor(r, g, b)
}
