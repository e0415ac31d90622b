package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/huepick/pkg/config"
	"gitlab.com/tinyland/lab/huepick/pkg/field"
	"gitlab.com/tinyland/lab/huepick/pkg/picker"
	"gitlab.com/tinyland/lab/huepick/pkg/theme"
	"gitlab.com/tinyland/lab/huepick/pkg/tooltip"
)

// triggerZoneID names the mouse hit zone on the picker trigger.
const triggerZoneID = "picker-trigger"

// focusTarget identifies which surface owns keyboard focus.
type focusTarget int

const (
	focusField focusTarget = iota
	focusTrigger
	focusCount
)

// AppModel is the root Bubbletea model.
type AppModel struct {
	cfg    *config.Config
	field  *field.ColorField
	picker *picker.Picker
	tip    tooltip.Tooltip
	zones  *zone.Manager

	// value is the externally owned committed color. The field holds
	// only a transient echo of it.
	value string

	focus      focusTarget
	pickerOpen bool
	accepted   bool
	width      int
	height     int
}

// New builds the root model from configuration. zones may be nil when
// mouse support is disabled.
func New(cfg *config.Config, zones *zone.Manager) *AppModel {
	m := &AppModel{
		cfg:    cfg,
		picker: picker.New(cfg.Picker.Hues, cfg.Picker.Shades, zones),
		tip:    tooltip.New("[ pick ■ ]", "enter: open the swatch picker"),
		zones:  zones,
		value:  cfg.General.InitialColor,
	}
	m.field = field.New("Color", func(v string) tea.Cmd {
		return CommitCmd(v)
	})
	m.field.SetValue(m.value)
	return m
}

// Value returns the committed color value.
func (m *AppModel) Value() string {
	return m.value
}

// Accepted reports whether the session ended with an accepted color.
func (m *AppModel) Accepted() bool {
	return m.accepted
}

// Init starts cursor blinking in the field.
func (m *AppModel) Init() tea.Cmd {
	return m.field.Focus()
}

// Update is the single synchronous message handler.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case ColorCommittedEvent:
		// External value change: the field resynchronizes and drops
		// any local edit state. Same-value commits are not a change.
		if msg.Value != m.value {
			m.value = msg.Value
			m.field.SetValue(msg.Value)
		}
		return m, nil

	case OpenPickerEvent:
		m.pickerOpen = true
		m.picker.Seed(msg.Seed)
		return m, nil

	case ThemeChangeEvent:
		theme.SetCurrent(msg.Theme)
		return m, nil

	case picker.PickedMsg:
		m.pickerOpen = false
		m.setFocus(focusField)
		return m, m.field.ApplyPicked(msg.Value)

	case picker.CancelMsg:
		m.pickerOpen = false
		return m, nil
	}

	// Everything else (cursor blink ticks) goes to the field.
	return m, m.field.Update(msg)
}

// handleKey routes key events by focus and overlay state.
func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.accepted = false
		return m, tea.Quit
	}

	if m.pickerOpen {
		return m, m.picker.HandleKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.CycleFocusForward()
		return m, nil
	case "shift+tab":
		m.CycleFocusBackward()
		return m, nil
	case "ctrl+p":
		return m, OpenPickerCmd(m.field.PickerSeed())
	case "ctrl+t":
		return m, ThemeChangeCmd(m.nextThemeName())
	case "enter":
		if m.focus == focusTrigger {
			return m, OpenPickerCmd(m.field.PickerSeed())
		}
		m.accepted = true
		return m, tea.Quit
	case "esc":
		m.accepted = false
		return m, tea.Quit
	}

	if m.focus == focusField {
		return m, m.field.HandleKey(msg)
	}
	return m, nil
}

// handleMouse routes mouse events to the picker overlay or the
// trigger zone.
func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.zones == nil {
		return nil
	}
	if m.pickerOpen {
		return m.picker.HandleMouse(msg)
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
		m.zones.Get(triggerZoneID).InBounds(msg) {
		m.focus = focusTrigger
		return OpenPickerCmd(m.field.PickerSeed())
	}
	return nil
}

// nextThemeName returns the theme after the current one, wrapping.
func (m *AppModel) nextThemeName() string {
	names := theme.Names()
	for i, name := range names {
		if name == theme.Current.Name {
			return names[(i+1)%len(names)]
		}
	}
	return "default"
}
