// Package tooltip provides a minimal trigger-plus-floating-content
// hint primitive. The trigger renders inline; the float renders as a
// small bordered box the embedder composites near the trigger.
package tooltip

import (
	"gitlab.com/tinyland/lab/huepick/pkg/components"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

// Tooltip pairs an inline trigger with floating hint content.
type Tooltip struct {
	Trigger string
	Content string
}

// New creates a tooltip.
func New(trigger, content string) Tooltip {
	return Tooltip{Trigger: trigger, Content: content}
}

// RenderTrigger renders the inline trigger, accent-colored when the
// trigger owns focus.
func (tp Tooltip) RenderTrigger(focused bool) string {
	t := theme.Current
	if focused {
		return theme.Colorize(tp.Trigger, t.Accent)
	}
	return theme.Colorize(tp.Trigger, t.Dim)
}

// RenderFloat renders the floating content as a one-line bordered box.
// Returns an empty string if the content does not fit.
func (tp Tooltip) RenderFloat() string {
	t := theme.Current
	width := components.VisibleLen(tp.Content) + 4
	style := components.BoxStyle{
		Border:  components.BorderRounded,
		Padding: components.NewPaddingHV(1, 0),
		FG:      t.Border,
	}
	return components.RenderBox(theme.Colorize(tp.Content, t.Dim), width, 3, style)
}
