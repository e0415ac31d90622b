// Package components provides box/border rendering, swatch blocks, and
// ANSI-aware text primitives shared by the field, picker, and tooltip
// layers.
package components

// Align controls horizontal text alignment within a box or cell.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// Padding defines spacing on each side of a content area.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPaddingHV creates a Padding with separate horizontal and vertical values.
// horiz applies to Left and Right; vert applies to Top and Bottom.
func NewPaddingHV(horiz, vert int) Padding {
	if horiz < 0 {
		horiz = 0
	}
	if vert < 0 {
		vert = 0
	}
	return Padding{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}
