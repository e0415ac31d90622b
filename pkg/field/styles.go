package field

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/huepick/pkg/theme"
)

// styleVariant is the discrete visual state of the input. It is a pure
// function of the invalid flag, keeping the visual mapping decoupled
// from any particular styling mechanism.
type styleVariant int

const (
	variantNeutral styleVariant = iota
	variantError
)

// variantFor maps the invalid flag to a style variant.
func variantFor(invalid bool) styleVariant {
	if invalid {
		return variantError
	}
	return variantNeutral
}

// applyStyles pushes the active theme onto the underlying textinput
// according to the current variant.
func (f *ColorField) applyStyles(t theme.Theme) {
	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.InputPlaceholder))

	switch variantFor(f.invalid) {
	case variantError:
		f.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.InputError))
		f.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.InputError))
	default:
		f.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.InputText))
		f.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.InputPrompt))
	}
}
