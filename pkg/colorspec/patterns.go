package colorspec

import "regexp"

var (
	// hexPattern matches "#" plus exactly 3 or 6 hex digits.
	hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

	// shorthandPattern matches only the 3-digit shorthand form.
	shorthandPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{3}$`)

	// rgbPattern matches rgb() functional notation. Each channel is
	// 1-3 decimal digits; whitespace is tolerated around channels.
	// There is deliberately no 0-255 range check.
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)
