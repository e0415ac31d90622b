package components

import (
	"fmt"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
)

// Color produces an ANSI true-color (24-bit) foreground escape sequence from
// a hex color string like "#ff5500" or "ff5500". Returns an empty string if
// the input is empty or malformed.
func Color(hex string) string {
	r, g, b, ok := colorspec.ParseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// BgColor produces an ANSI true-color (24-bit) background escape sequence
// from a hex color string like "#ff5500" or "ff5500".
func BgColor(hex string) string {
	r, g, b, ok := colorspec.ParseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// Bold wraps s in ANSI bold escape sequences.
func Bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}

// Dim wraps s in ANSI dim/faint escape sequences.
func Dim(s string) string {
	return "\x1b[2m" + s + "\x1b[22m"
}

// Reset returns the ANSI reset sequence that clears all styling.
func Reset() string {
	return "\x1b[0m"
}
