// Package field implements the color-value form field: a text input
// with inline lexical validation, shorthand normalization, and an
// advisory invalid state.
//
// The field holds a transient local echo of an externally owned color
// value. Local edits that validate are normalized and reported through
// the change callback; edits that fail validation only set the invalid
// flag. An external SetValue always wins and resets local state.
package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

// maxInputLen caps typed input; the longest legal literal is
// "rgb(255, 255, 255)" at 18 cells, with slack for extra whitespace.
const maxInputLen = 24

// fallbackSeed is the picker seed when the external value is not a
// hex literal.
const fallbackSeed = "#ffffff"

// ColorField is a stateful color input widget.
type ColorField struct {
	input    textinput.Model
	label    string
	value    string // externally supplied value, echoed locally
	lastText string // last trimmed text seen, to detect real edits
	invalid  bool
	onChange func(string) tea.Cmd
}

// New creates a ColorField. The onChange callback is invoked with a
// normalized legal color string whenever an edit validates or a picked
// value is applied; it may be nil.
func New(label string, onChange func(string) tea.Cmd) *ColorField {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb or rgb(r, g, b)"
	ti.CharLimit = maxInputLen
	ti.Prompt = "> "
	ti.Width = maxInputLen + 2
	return &ColorField{
		input:    ti,
		label:    label,
		onChange: onChange,
	}
}

// ID returns the unique identifier for this widget.
func (f *ColorField) ID() string {
	return "color-field"
}

// Title returns the display name for this widget.
func (f *ColorField) Title() string {
	if f.label != "" {
		return f.label
	}
	return "Color"
}

// MinSize returns the minimum width and height this widget requires.
func (f *ColorField) MinSize() (int, int) {
	return maxInputLen + 6, 3
}

// Value returns the externally supplied value the field is echoing.
func (f *ColorField) Value() string {
	return f.value
}

// Text returns the currently displayed text.
func (f *ColorField) Text() string {
	return f.input.Value()
}

// Invalid reports whether the displayed text is flagged invalid.
func (f *ColorField) Invalid() bool {
	return f.invalid
}

// SetValue resynchronizes the field with a changed external value. The
// value is displayed verbatim, local edit state is discarded, and the
// invalid flag clears. No re-validation occurs: an external value is
// trusted as-is, whatever it looks like.
func (f *ColorField) SetValue(v string) {
	f.value = v
	f.lastText = strings.TrimSpace(v)
	f.invalid = false
	f.input.SetValue(v)
	f.input.CursorEnd()
}

// ApplyPicked applies a picker result. Picker output is always a full
// 6-digit hex literal, so it bypasses validation entirely: the
// callback fires with the value directly, the displayed text follows,
// and the invalid flag clears.
func (f *ColorField) ApplyPicked(hex string) tea.Cmd {
	f.input.SetValue(hex)
	f.input.CursorEnd()
	f.lastText = hex
	f.invalid = false
	if f.onChange != nil {
		return f.onChange(hex)
	}
	return nil
}

// PickerSeed derives the picker's starting value from the externally
// supplied value: used only when it starts with "#" (expanded to the
// 6-digit form), otherwise opaque white. The displayed text plays no
// part in seeding.
func (f *ColorField) PickerSeed() string {
	if strings.HasPrefix(f.value, "#") {
		return colorspec.Normalize(f.value)
	}
	return fallbackSeed
}

// Focus gives keyboard focus to the text input and returns the cursor
// blink command.
func (f *ColorField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus from the text input.
func (f *ColorField) Blur() {
	f.input.Blur()
}

// Focused reports whether the text input has keyboard focus.
func (f *ColorField) Focused() bool {
	return f.input.Focused()
}

// Update handles non-key messages (cursor blink ticks).
func (f *ColorField) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// HandleKey processes a key event when the field has focus. The raw
// text is trimmed after every keystroke; if the trimmed text changed
// it is re-classified.
func (f *ColorField) HandleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return tea.Batch(cmd, f.syncEdit())
}

// syncEdit trims the displayed text and re-classifies it when it has
// actually changed since the last look.
func (f *ColorField) syncEdit() tea.Cmd {
	text := strings.TrimSpace(f.input.Value())
	if text != f.input.Value() {
		f.input.SetValue(text)
		f.input.CursorEnd()
	}
	if text == f.lastText {
		return nil
	}
	f.lastText = text

	if text == "" {
		// Empty is never flagged, and never reported.
		f.invalid = false
		return nil
	}
	if !colorspec.IsValid(text) {
		f.invalid = true
		return nil
	}
	f.invalid = false
	if f.onChange != nil {
		return f.onChange(colorspec.Normalize(text))
	}
	return nil
}

// View renders the field: label, input line, and the hint line shown
// while the text is flagged invalid.
func (f *ColorField) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	t := theme.Current
	f.applyStyles(t)

	var lines []string
	if f.label != "" {
		labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title))
		lines = append(lines, labelStyle.Render(f.label))
	}
	lines = append(lines, f.input.View())
	if f.invalid {
		hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorHint))
		lines = append(lines, hintStyle.Render("not a color: use #rgb, #rrggbb, or rgb(r, g, b)"))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
