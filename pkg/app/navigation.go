package app

// CycleFocusForward moves focus to the next surface, wrapping around.
func (m *AppModel) CycleFocusForward() {
	m.setFocus((m.focus + 1) % focusCount)
}

// CycleFocusBackward moves focus to the previous surface, wrapping
// around.
func (m *AppModel) CycleFocusBackward() {
	m.setFocus((m.focus - 1 + focusCount) % focusCount)
}

// setFocus moves keyboard focus, keeping the field's own focus state
// in step so its cursor only blinks while it is the active surface.
func (m *AppModel) setFocus(target focusTarget) {
	m.focus = target
	if target == focusField {
		m.field.Focus()
	} else {
		m.field.Blur()
	}
}
