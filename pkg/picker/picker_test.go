package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/huepick/pkg/colorspec"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEverySwatchIsFullLowercaseHex(t *testing.T) {
	p := New(12, 6, nil)
	for ri, row := range p.grid {
		for ci, cell := range row {
			if len(cell) != 7 {
				t.Errorf("grid[%d][%d] = %q, want 7-char hex", ri, ci, cell)
			}
			if !colorspec.IsValid(cell) {
				t.Errorf("grid[%d][%d] = %q fails validation", ri, ci, cell)
			}
			if cell != strings.ToLower(cell) {
				t.Errorf("grid[%d][%d] = %q not lowercase", ri, ci, cell)
			}
		}
	}
}

func TestGrayRowEndpoints(t *testing.T) {
	p := New(12, 6, nil)
	if p.grid[0][0] != "#000000" {
		t.Errorf("gray ramp starts at %q, want #000000", p.grid[0][0])
	}
	if p.grid[0][11] != "#ffffff" {
		t.Errorf("gray ramp ends at %q, want #ffffff", p.grid[0][11])
	}
}

func TestEnterEmitsCurrentSwatch(t *testing.T) {
	p := New(12, 6, nil)
	p.HandleKey(keyMsg("down"))
	p.HandleKey(keyMsg("right"))

	cmd := p.HandleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(PickedMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PickedMsg", cmd())
	}
	if msg.Value != p.Current() {
		t.Errorf("picked %q, cursor at %q", msg.Value, p.Current())
	}
	if len(msg.Value) != 7 || !colorspec.IsValid(msg.Value) {
		t.Errorf("picked value %q is not full hex", msg.Value)
	}
}

func TestEscCancels(t *testing.T) {
	p := New(12, 6, nil)
	cmd := p.HandleKey(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("esc produced %T, want CancelMsg", cmd())
	}
}

func TestCursorWrapsAround(t *testing.T) {
	p := New(12, 6, nil)

	p.HandleKey(keyMsg("up"))
	if p.row != len(p.grid)-1 {
		t.Errorf("up from row 0 landed on %d, want %d", p.row, len(p.grid)-1)
	}
	p.HandleKey(keyMsg("down"))
	if p.row != 0 {
		t.Errorf("down wrapped to %d, want 0", p.row)
	}
	p.HandleKey(keyMsg("left"))
	if p.col != 11 {
		t.Errorf("left from col 0 landed on %d, want 11", p.col)
	}
	p.HandleKey(keyMsg("right"))
	if p.col != 0 {
		t.Errorf("right wrapped to %d, want 0", p.col)
	}
}

func TestSeedFindsExactSwatch(t *testing.T) {
	p := New(12, 6, nil)
	p.Seed("#ffffff")
	if p.Current() != "#ffffff" {
		t.Errorf("Seed(#ffffff) landed on %q", p.Current())
	}
	p.Seed("#000000")
	if p.Current() != "#000000" {
		t.Errorf("Seed(#000000) landed on %q", p.Current())
	}
}

func TestSeedUnparseableFallsBackToWhite(t *testing.T) {
	p := New(12, 6, nil)
	p.Seed("notacolor")
	if p.Current() != "#ffffff" {
		t.Errorf("Seed(garbage) landed on %q, want nearest to white", p.Current())
	}
}

func TestSeedAcceptsShorthand(t *testing.T) {
	p := New(12, 6, nil)
	p.Seed("#fff")
	if p.Current() != "#ffffff" {
		t.Errorf("Seed(#fff) landed on %q, want #ffffff", p.Current())
	}
}

func TestViewShowsReadout(t *testing.T) {
	p := New(12, 6, nil)
	out := p.View(80, 20)
	if !strings.Contains(out, "current: ") {
		t.Error("view missing current color readout")
	}
	if !strings.Contains(out, p.Current()) {
		t.Error("view missing current hex literal")
	}
}

func TestViewRowCount(t *testing.T) {
	p := New(8, 4, nil)
	out := p.View(80, 20)
	// 5 grid rows (gray + 4 shades) + blank + readout.
	if got := len(strings.Split(out, "\n")); got != 7 {
		t.Errorf("view has %d lines, want 7", got)
	}
}
