// Package app provides the Bubbletea application skeleton for the
// color chooser: event types, the root model, widget contract, and
// focus handling. Every update completes synchronously inside the
// handler that triggered it; widget state is exclusively owned by the
// running model.
package app

import tea "github.com/charmbracelet/bubbletea"

// ColorCommittedEvent announces a change to the externally owned color
// value. Carried values are always legal color strings: they originate
// from a validated, normalized field edit or from the picker.
type ColorCommittedEvent struct {
	Value string
}

// OpenPickerEvent requests the picker overlay, seeded with a color.
type OpenPickerEvent struct {
	Seed string
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}

// CommitCmd wraps a committed color value in a command.
func CommitCmd(value string) tea.Cmd {
	return func() tea.Msg {
		return ColorCommittedEvent{Value: value}
	}
}

// OpenPickerCmd requests the picker overlay with the given seed.
func OpenPickerCmd(seed string) tea.Cmd {
	return func() tea.Msg {
		return OpenPickerEvent{Seed: seed}
	}
}

// ThemeChangeCmd requests a switch to the named theme.
func ThemeChangeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return ThemeChangeEvent{Theme: name}
	}
}
