package theme

import "github.com/muesli/termenv"

// DetectDepth probes the terminal's color support via termenv and
// returns the depth in bits: 24 for true color, 8 for 256-color, 4
// for basic ANSI, 1 for monochrome. Feed the result to Adapt.
func DetectDepth() int {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}
