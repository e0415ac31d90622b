package components

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes escape sequences for asserting visible content.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestColorProducesTrueColorEscape(t *testing.T) {
	got := Color("#ff5500")
	if got != "\x1b[38;2;255;85;0m" {
		t.Errorf("Color(#ff5500) = %q", got)
	}
	if Color("") != "" {
		t.Error("Color(\"\") should be empty")
	}
	if Color("zzz") != "" {
		t.Error("Color(invalid) should be empty")
	}
}

func TestColorAcceptsShorthand(t *testing.T) {
	if got := Color("#f50"); got != "\x1b[38;2;255;85;0m" {
		t.Errorf("Color(#f50) = %q, want expanded channels", got)
	}
}

func TestBgColor(t *testing.T) {
	if got := BgColor("001122"); got != "\x1b[48;2;0;17;34m" {
		t.Errorf("BgColor(001122) = %q", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := Truncate("hello world", 5); stripANSI(got) != "hello" {
		t.Errorf("Truncate = %q", got)
	}
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	if VisibleLen(Color("#ff0000")+"abc"+Reset()) != 3 {
		t.Error("VisibleLen should ignore escape sequences")
	}
}

func TestRenderBoxDimensions(t *testing.T) {
	out := RenderBox("hi", 10, 4, DefaultBoxStyle())
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("box has %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if w := VisibleLen(line); w != 10 {
			t.Errorf("line %d width = %d, want 10: %q", i, w, stripANSI(line))
		}
	}
	if !strings.Contains(stripANSI(out), "hi") {
		t.Error("box content missing")
	}
}

func TestRenderBoxTitle(t *testing.T) {
	style := DefaultBoxStyle()
	style.Title = "Color"
	out := stripANSI(RenderBox("", 20, 3, style))
	if !strings.Contains(out, " Color ") {
		t.Errorf("title missing from top border: %q", strings.Split(out, "\n")[0])
	}
}

func TestRenderBoxTooSmall(t *testing.T) {
	if out := RenderBox("x", 1, 1, DefaultBoxStyle()); out != "" {
		t.Errorf("undersized box = %q, want empty", out)
	}
}

func TestRenderBoxNoBorder(t *testing.T) {
	style := BoxStyle{Border: BorderNone, Padding: NewPaddingHV(1, 0)}
	out := RenderBox("ab", 6, 2, style)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("no-border box has %d lines, want 2", len(lines))
	}
	if lines[0] != " ab   " {
		t.Errorf("line 0 = %q, want %q", lines[0], " ab   ")
	}
}

func TestSwatchDimensions(t *testing.T) {
	out := Swatch("#ff0000", 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("swatch has %d rows, want 2", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "\x1b[48;2;255;0;0m") {
			t.Errorf("swatch row missing background escape: %q", line)
		}
		if VisibleLen(line) != 4 {
			t.Errorf("swatch row width = %d, want 4", VisibleLen(line))
		}
	}
}

func TestSwatchInvalidColorPlaceholder(t *testing.T) {
	out := Swatch("notacolor", 3, 1)
	if strings.Contains(out, "\x1b[48;2") {
		t.Error("invalid color should not produce a background escape")
	}
	if VisibleLen(out) != 3 {
		t.Errorf("placeholder width = %d, want 3", VisibleLen(out))
	}
}
