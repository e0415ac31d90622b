package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is the contract every UI unit in the chooser implements.
// Update receives app events and other non-key messages; HandleKey
// receives key events only while the widget owns focus; View renders
// into the given area.
type Widget interface {
	ID() string
	Title() string
	Update(msg tea.Msg) tea.Cmd
	HandleKey(key tea.KeyMsg) tea.Cmd
	View(width, height int) string
	MinSize() (int, int)
}
