// Package picker implements the swatch-grid color picker overlay. It
// is the guaranteed-well-formed input surface: whatever happens here,
// the only value it can ever emit is a full 6-digit lowercase hex
// literal, so consumers apply picks without validating them.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	colorful "github.com/lucasb-eyer/go-colorful"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
	"gitlab.com/tinyland/lab/huepick/pkg/components"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

// PickedMsg is emitted when a swatch is chosen. Value is always a full
// 6-digit lowercase hex literal.
type PickedMsg struct {
	Value string
}

// CancelMsg is emitted when the picker is dismissed without a choice.
type CancelMsg struct{}

// cellWidth is the rendered width of one swatch in terminal cells.
const cellWidth = 2

// gridSaturation is the fixed saturation of the hue rows.
const gridSaturation = 0.65

// Picker is the swatch-grid widget. The first row is a grayscale ramp;
// the remaining rows sweep hues at descending lightness.
type Picker struct {
	grid  [][]string // [row][col] full hex literals
	row   int
	col   int
	zones *zone.Manager
}

// New builds a picker with the given number of hue columns and shade
// rows (plus the grayscale row). zones may be nil to disable mouse
// hit-testing.
func New(hues, shades int, zones *zone.Manager) *Picker {
	if hues < 2 {
		hues = 2
	}
	if shades < 1 {
		shades = 1
	}

	grid := make([][]string, 0, shades+1)

	// Grayscale ramp, black to white.
	grays := make([]string, hues)
	for c := 0; c < hues; c++ {
		v := uint8(c * 255 / (hues - 1))
		grays[c] = colorspec.HexFor(v, v, v)
	}
	grid = append(grid, grays)

	// Hue rows, bright to dark.
	for r := 0; r < shades; r++ {
		l := 0.85 - 0.60*float64(r)/float64(max(shades-1, 1))
		row := make([]string, hues)
		for c := 0; c < hues; c++ {
			h := float64(c) * 360.0 / float64(hues)
			row[c] = colorful.Hsl(h, gridSaturation, l).Clamped().Hex()
		}
		grid = append(grid, row)
	}

	return &Picker{grid: grid, zones: zones}
}

// ID returns the unique identifier for this widget.
func (p *Picker) ID() string {
	return "swatch-picker"
}

// Title returns the display name for this widget.
func (p *Picker) Title() string {
	return "Pick a color"
}

// MinSize returns the minimum width and height this widget requires.
func (p *Picker) MinSize() (int, int) {
	return len(p.grid[0])*cellWidth + 2, len(p.grid) + 2
}

// Current returns the hex literal under the cursor.
func (p *Picker) Current() string {
	return p.grid[p.row][p.col]
}

// Seed positions the cursor at the swatch nearest to the given hex
// value. Unparseable seeds fall back to opaque white.
func (p *Picker) Seed(hex string) {
	r, g, b, ok := colorspec.ParseHex(hex)
	if !ok {
		r, g, b = 255, 255, 255
	}
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	bestRow, bestCol := 0, 0
	bestDist := -1.0
	for ri, row := range p.grid {
		for ci, cell := range row {
			cr, cg, cb, _ := colorspec.ParseHex(cell)
			have := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
			d := want.DistanceRgb(have)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				bestRow, bestCol = ri, ci
			}
		}
	}
	p.row, p.col = bestRow, bestCol
}

// Update is a no-op; the picker reacts to keys and mouse only.
func (p *Picker) Update(_ tea.Msg) tea.Cmd {
	return nil
}

// HandleKey moves the cursor (arrows or hjkl, wrapping at the edges),
// confirms with enter, or cancels with esc.
func (p *Picker) HandleKey(msg tea.KeyMsg) tea.Cmd {
	rows := len(p.grid)
	cols := len(p.grid[0])

	switch msg.String() {
	case "up", "k":
		p.row = (p.row - 1 + rows) % rows
	case "down", "j":
		p.row = (p.row + 1) % rows
	case "left", "h":
		p.col = (p.col - 1 + cols) % cols
	case "right", "l":
		p.col = (p.col + 1) % cols
	case "enter", " ":
		return p.pickCmd(p.row, p.col)
	case "esc", "q":
		return func() tea.Msg { return CancelMsg{} }
	}
	return nil
}

// HandleMouse resolves a left-button release against the swatch zones
// and picks the hit swatch, if any.
func (p *Picker) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if p.zones == nil {
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for ri, row := range p.grid {
		for ci := range row {
			if p.zones.Get(p.zoneID(ri, ci)).InBounds(msg) {
				p.row, p.col = ri, ci
				return p.pickCmd(ri, ci)
			}
		}
	}
	return nil
}

// pickCmd emits the swatch at (row, col) as a PickedMsg.
func (p *Picker) pickCmd(row, col int) tea.Cmd {
	v := p.grid[row][col]
	return func() tea.Msg { return PickedMsg{Value: v} }
}

// View renders the swatch grid with the cursor frame and the current
// color readout.
func (p *Picker) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	t := theme.Current

	var lines []string
	for ri, row := range p.grid {
		var buf strings.Builder
		for ci, cell := range row {
			chip := components.SwatchCell(cell, cellWidth)
			if p.zones != nil {
				chip = p.zones.Mark(p.zoneID(ri, ci), chip)
			}
			if ri == p.row && ci == p.col {
				cur := components.Color(t.SwatchCursor)
				buf.WriteString(cur + "▌" + components.Reset())
				buf.WriteString(chip)
				buf.WriteString(cur + "▐" + components.Reset())
			} else {
				buf.WriteString(" ")
				buf.WriteString(chip)
				buf.WriteString(" ")
			}
		}
		lines = append(lines, buf.String())
	}

	readout := theme.Colorize("current: ", t.PickerLabel) +
		components.SwatchCell(p.Current(), cellWidth) +
		" " + theme.Colorize(p.Current(), t.PickerLabel)
	lines = append(lines, "", readout)

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// zoneID names the bubblezone mark for a grid cell.
func (p *Picker) zoneID(row, col int) string {
	return fmt.Sprintf("swatch:%d:%d", row, col)
}
