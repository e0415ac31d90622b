package app

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
	"gitlab.com/tinyland/lab/huepick/pkg/components"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	panelWidth    = 46
)

// View renders the whole screen: the chooser panel (or the picker
// overlay) plus a one-line status bar.
func (m *AppModel) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	var body string
	if m.pickerOpen {
		body = m.viewPicker(width)
	} else {
		body = m.viewPanel(width)
	}

	out := body + "\n" + m.viewStatusBar(width)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// viewPanel renders the field, the picker trigger, and the committed
// value preview inside a titled box.
func (m *AppModel) viewPanel(width int) string {
	t := theme.Current

	boxW := min(panelWidth, width)
	innerW := boxW - 4

	var lines []string
	lines = append(lines, strings.Split(m.field.View(innerW, fieldViewHeight(m)), "\n")...)
	lines = append(lines, "")

	trigger := m.tip.RenderTrigger(m.focus == focusTrigger)
	if m.zones != nil {
		trigger = m.zones.Mark(triggerZoneID, trigger)
	}
	lines = append(lines, trigger)
	if m.focus == focusTrigger {
		lines = append(lines, strings.Split(m.tip.RenderFloat(), "\n")...)
	}

	lines = append(lines, "")
	lines = append(lines, m.viewPreview()...)

	style := components.BoxStyle{
		Border:     components.BorderRounded,
		Title:      "huepick",
		TitleAlign: components.AlignLeft,
		Padding:    components.NewPaddingHV(1, 0),
		FG:         theme.BorderColor(t, true),
	}
	return components.RenderBox(strings.Join(lines, "\n"), boxW, len(lines)+2, style)
}

// fieldViewHeight leaves room for the hint line only when it shows,
// so the panel does not jump around.
func fieldViewHeight(m *AppModel) int {
	if m.field.Invalid() {
		return 3
	}
	return 2
}

// viewPreview renders the committed value as a swatch block with a
// channel readout. Uncommitted garbage (a verbatim external value that
// never validated) gets the hatched placeholder.
func (m *AppModel) viewPreview() []string {
	t := theme.Current

	hex := ""
	readout := theme.Colorize("no color committed", t.Dim)
	if r, g, b, ok := colorspec.Channels(m.value); ok {
		hex = colorspec.HexFor(r, g, b)
		readout = theme.Colorize(m.value, t.PickerLabel) +
			theme.Colorize(fmt.Sprintf("  r:%d g:%d b:%d", r, g, b), t.Dim)
	} else if m.value != "" {
		readout = theme.Colorize(m.value, t.Dim)
	}

	swatch := components.Swatch(hex, 8, 2)
	lines := strings.Split(swatch, "\n")
	lines = append(lines, readout)
	return lines
}

// viewPicker renders the picker overlay centered horizontally.
func (m *AppModel) viewPicker(width int) string {
	t := theme.Current

	minW, minH := m.picker.MinSize()
	boxW := minW + 6
	boxH := minH + 3
	content := m.picker.View(boxW-4, boxH-2)

	style := components.BoxStyle{
		Border:     components.BorderRounded,
		Title:      m.picker.Title(),
		TitleAlign: components.AlignLeft,
		Padding:    components.NewPaddingHV(1, 0),
		FG:         theme.BorderColor(t, true),
	}
	box := components.RenderBox(content, boxW, boxH, style)

	margin := (width - boxW) / 2
	if margin <= 0 {
		return box
	}
	pad := strings.Repeat(" ", margin)
	out := make([]string, 0, boxH)
	for _, line := range strings.Split(box, "\n") {
		out = append(out, pad+line)
	}
	return strings.Join(out, "\n")
}

// viewStatusBar renders the bottom key-hint line.
func (m *AppModel) viewStatusBar(width int) string {
	t := theme.Current

	var hints []string
	if m.pickerOpen {
		hints = []string{
			theme.KeyHint(t, "arrows", "move"),
			theme.KeyHint(t, "enter", "pick"),
			theme.KeyHint(t, "esc", "back"),
		}
	} else {
		hints = []string{
			theme.KeyHint(t, "enter", "accept"),
			theme.KeyHint(t, "ctrl+p", "picker"),
			theme.KeyHint(t, "tab", "focus"),
			theme.KeyHint(t, "ctrl+t", "theme"),
			theme.KeyHint(t, "esc", "cancel"),
		}
	}
	return components.PadRight(components.Truncate(strings.Join(hints, "  "), width), width)
}
