package theme

import (
	"fmt"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
)

// BorderColor returns the border hex color for a panel based on focus.
func BorderColor(t Theme, focused bool) string {
	if focused {
		return t.BorderFocus
	}
	return t.Border
}

// Colorize wraps text in ANSI true-color foreground escape sequences using
// the given hex color. Returns text unchanged if hexColor is empty or invalid.
func Colorize(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	r, g, b, ok := colorspec.ParseHex(hexColor)
	if !ok {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// KeyHint renders a "key:description" fragment for the status bar,
// coloring the key and description with the theme's help colors.
func KeyHint(t Theme, key, desc string) string {
	return Colorize(key, t.HelpKey) + Colorize(":"+desc, t.HelpDesc)
}
