package components

import "strings"

// Swatch renders a solid block of the given hex color, width cells wide
// and height rows tall. If the color cannot be parsed, a hatched
// placeholder of the same dimensions is returned instead so layouts
// stay stable.
func Swatch(hex string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	bg := BgColor(hex)
	var row string
	if bg == "" {
		row = Dim(strings.Repeat("░", width))
	} else {
		row = bg + strings.Repeat(" ", width) + Reset()
	}

	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// SwatchCell renders a single-row swatch chip, width cells wide. Used
// for picker grid cells and the inline field chip.
func SwatchCell(hex string, width int) string {
	return Swatch(hex, width, 1)
}
