package components

import (
	"strings"
)

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	// BorderNone renders no border at all.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded
	// BorderHeavy uses heavy (thick) box-drawing characters.
	BorderHeavy
)

// borderChars holds the characters that define a border.
type borderChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle: {
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
	},
	BorderRounded: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
	},
	BorderHeavy: {
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
	},
}

// BoxStyle controls the visual appearance of a rendered box.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	Padding    Padding
	FG         string // border foreground hex color like "#ff5500"
}

// DefaultBoxStyle returns a BoxStyle with rounded borders, no title,
// and zero padding.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Border:     BorderRounded,
		TitleAlign: AlignLeft,
	}
}

// RenderBox renders content inside a box with borders, returning a
// multi-line string. The width and height specify the outer dimensions
// of the box (including borders and padding).
//
// If width < 2 (no room for borders) or height < 2, an empty string is
// returned. Content lines are truncated or padded to fit the available
// interior width; missing lines are filled with blanks.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if style.Border == BorderNone {
		return renderNoBorder(content, width, height, style)
	}
	if width < 2 || height < 2 {
		return ""
	}

	chars := borderSets[style.Border]
	colorPre, colorSuf := borderColors(style)

	interiorWidth := width - 2 - style.Padding.Left - style.Padding.Right
	if interiorWidth < 0 {
		interiorWidth = 0
	}
	interiorHeight := height - 2 - style.Padding.Top - style.Padding.Bottom
	if interiorHeight < 0 {
		interiorHeight = 0
	}

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	var buf strings.Builder
	topFill := width - 2

	// Top border with optional title.
	buf.WriteString(colorPre)
	buf.WriteString(chars.TopLeft)
	buf.WriteString(colorSuf)
	if style.Title != "" && topFill > 0 {
		buf.WriteString(renderTitleBar(style.Title, style.TitleAlign, topFill, chars.Horizontal, colorPre, colorSuf))
	} else {
		buf.WriteString(colorPre)
		buf.WriteString(strings.Repeat(chars.Horizontal, topFill))
		buf.WriteString(colorSuf)
	}
	buf.WriteString(colorPre)
	buf.WriteString(chars.TopRight)
	buf.WriteString(colorSuf)
	buf.WriteByte('\n')

	leftPad := strings.Repeat(" ", style.Padding.Left)
	rightPad := strings.Repeat(" ", style.Padding.Right)
	emptyInterior := strings.Repeat(" ", interiorWidth)

	writeRow := func(inner string) {
		buf.WriteString(colorPre)
		buf.WriteString(chars.Vertical)
		buf.WriteString(colorSuf)
		buf.WriteString(leftPad)
		buf.WriteString(inner)
		buf.WriteString(rightPad)
		buf.WriteString(colorPre)
		buf.WriteString(chars.Vertical)
		buf.WriteString(colorSuf)
		buf.WriteByte('\n')
	}

	for i := 0; i < style.Padding.Top; i++ {
		writeRow(emptyInterior)
	}
	for i := 0; i < interiorHeight; i++ {
		if i < len(contentLines) {
			writeRow(fitLine(contentLines[i], interiorWidth))
		} else {
			writeRow(emptyInterior)
		}
	}
	for i := 0; i < style.Padding.Bottom; i++ {
		writeRow(emptyInterior)
	}

	// Bottom border.
	buf.WriteString(colorPre)
	buf.WriteString(chars.BottomLeft)
	buf.WriteString(strings.Repeat(chars.Horizontal, topFill))
	buf.WriteString(chars.BottomRight)
	buf.WriteString(colorSuf)

	return buf.String()
}

// renderNoBorder renders content without any border, applying only padding.
func renderNoBorder(content string, width, height int, style BoxStyle) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	interiorWidth := width - style.Padding.Left - style.Padding.Right
	if interiorWidth < 0 {
		interiorWidth = 0
	}

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	leftPad := strings.Repeat(" ", style.Padding.Left)
	rightPad := strings.Repeat(" ", style.Padding.Right)
	emptyInterior := strings.Repeat(" ", interiorWidth)

	lines := make([]string, 0, height)
	for i := 0; i < style.Padding.Top && len(lines) < height; i++ {
		lines = append(lines, leftPad+emptyInterior+rightPad)
	}
	for i := 0; len(lines) < height-style.Padding.Bottom; i++ {
		if i < len(contentLines) {
			lines = append(lines, leftPad+fitLine(contentLines[i], interiorWidth)+rightPad)
		} else {
			lines = append(lines, leftPad+emptyInterior+rightPad)
		}
	}
	for len(lines) < height {
		lines = append(lines, leftPad+emptyInterior+rightPad)
	}

	return strings.Join(lines, "\n")
}

// renderTitleBar renders the top border segment with an embedded title,
// e.g. "─ Color ─────".
func renderTitleBar(title string, align Align, fill int, horizontal, colorPre, colorSuf string) string {
	label := " " + title + " "
	labelWidth := VisibleLen(label)
	if labelWidth >= fill {
		return fitLine(colorPre+Truncate(label, fill)+colorSuf, fill)
	}

	remain := fill - labelWidth
	var left, right int
	switch align {
	case AlignCenter:
		left = remain / 2
		right = remain - left
	case AlignRight:
		left = remain - 1
		right = 1
		if left < 0 {
			left = 0
			right = remain
		}
	default:
		left = 1
		right = remain - 1
		if right < 0 {
			left = 0
			right = remain
		}
	}

	var buf strings.Builder
	buf.WriteString(colorPre)
	buf.WriteString(strings.Repeat(horizontal, left))
	buf.WriteString(colorSuf)
	buf.WriteString(label)
	buf.WriteString(colorPre)
	buf.WriteString(strings.Repeat(horizontal, right))
	buf.WriteString(colorSuf)
	return buf.String()
}

// fitLine truncates or pads a line to exactly width visible cells.
func fitLine(line string, width int) string {
	return PadRight(Truncate(line, width), width)
}

// borderColors returns the ANSI prefix/suffix for border characters.
func borderColors(style BoxStyle) (pre, suf string) {
	pre = Color(style.FG)
	if pre == "" {
		return "", ""
	}
	return pre, Reset()
}
