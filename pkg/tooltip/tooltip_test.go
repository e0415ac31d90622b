package tooltip

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderTriggerContainsLabel(t *testing.T) {
	tp := New("[pick]", "enter: open the picker")
	for _, focused := range []bool{true, false} {
		out := tp.RenderTrigger(focused)
		if !strings.Contains(ansiPattern.ReplaceAllString(out, ""), "[pick]") {
			t.Errorf("trigger (focused=%v) missing label: %q", focused, out)
		}
	}
}

func TestRenderTriggerFocusChangesStyle(t *testing.T) {
	tp := New("[pick]", "hint")
	if tp.RenderTrigger(true) == tp.RenderTrigger(false) {
		t.Error("focused and unfocused triggers render identically")
	}
}

func TestRenderFloat(t *testing.T) {
	tp := New("[pick]", "enter: open the picker")
	out := tp.RenderFloat()
	plain := ansiPattern.ReplaceAllString(out, "")
	if !strings.Contains(plain, "enter: open the picker") {
		t.Errorf("float missing content: %q", plain)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("float has %d lines, want 3", len(strings.Split(out, "\n")))
	}
}
