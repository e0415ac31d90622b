package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"testing"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// --- Get / SetCurrent / Names ---

func TestGetDefault(t *testing.T) {
	th := Get("default")
	if th.Name != "default" {
		t.Errorf("Get(\"default\").Name = %q, want %q", th.Name, "default")
	}
	if th.Accent != "#7C3AED" {
		t.Errorf("Get(\"default\").Accent = %q, want %q", th.Accent, "#7C3AED")
	}
}

func TestGetGruvbox(t *testing.T) {
	th := Get("gruvbox")
	if th.Name != "gruvbox" {
		t.Errorf("Get(\"gruvbox\").Name = %q, want %q", th.Name, "gruvbox")
	}
	if th.InputError != "#fb4934" {
		t.Errorf("Get(\"gruvbox\").InputError = %q, want %q", th.InputError, "#fb4934")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	th := Get("unknown-theme-xyz")
	def := Get("default")
	if th.Name != def.Name {
		t.Errorf("Get(\"unknown\") = %q, want %q (default)", th.Name, def.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("Names() returned %d themes, want 4", len(names))
	}
	expected := []string{"default", "gruvbox", "light", "tokyo-night"}
	sort.Strings(expected)
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestSetCurrent(t *testing.T) {
	defer SetCurrent("default")
	SetCurrent("tokyo-night")
	if Current.Name != "tokyo-night" {
		t.Errorf("Current.Name = %q after SetCurrent(\"tokyo-night\")", Current.Name)
	}
}

func TestBuiltinsAllFullHex(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		if err := thValidateTheme(th); err != nil {
			t.Errorf("builtin theme %q fails validation: %v", name, err)
		}
		if !thTestHexPattern.MatchString(th.Background) {
			t.Errorf("theme %q Background = %q, not full hex", name, th.Background)
		}
	}
}

// --- TOML round trip ---

func TestTOMLRoundTrip(t *testing.T) {
	orig := Get("gruvbox")
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	got, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if got != orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestLoadFromTOMLRejectsBadHex(t *testing.T) {
	th := Get("default")
	th.Name = "broken"
	th.InputError = "red"
	data, err := SaveToTOML(th)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	if _, err := LoadFromTOML(data); err == nil {
		t.Error("LoadFromTOML accepted a non-hex color value")
	} else if !strings.Contains(err.Error(), "input.error") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestLoadFromTOMLRejectsGarbage(t *testing.T) {
	if _, err := LoadFromTOML([]byte("not = [valid")); err == nil {
		t.Error("LoadFromTOML accepted malformed TOML")
	}
}

func TestRegisterRejectsShorthand(t *testing.T) {
	th := Get("default")
	th.Name = "shorthand"
	th.Accent = "#abc"
	if err := Register(th); err == nil {
		t.Error("Register accepted a 3-digit shorthand color")
	}
}

// --- 256-color fallback ---

func TestAdaptNoopAt24Bit(t *testing.T) {
	th := Get("default")
	if got := Adapt(th, 24); got != th {
		t.Error("Adapt at depth 24 should not modify the theme")
	}
}

func TestAdaptConvertsAt8Bit(t *testing.T) {
	th := Get("default")
	got := Adapt(th, 8)
	if got.Accent == th.Accent {
		t.Errorf("Adapt at depth 8 left Accent as %q", got.Accent)
	}
	if strings.HasPrefix(got.Accent, "#") {
		t.Errorf("adapted Accent = %q, want a 256-color index", got.Accent)
	}
}

func TestTo256ColorKnownValues(t *testing.T) {
	cases := map[string]string{
		"#000000": "16",  // cube black
		"#ffffff": "231", // cube white
		"#ff0000": "196", // pure red maps into the cube
	}
	for hex, want := range cases {
		if got := thTo256Color(hex); got != want {
			t.Errorf("thTo256Color(%q) = %q, want %q", hex, got, want)
		}
	}
}

func TestTo256ColorGrayPrefersRamp(t *testing.T) {
	got := thTo256Color("#808080")
	idx := 0
	if _, err := fmt.Sscanf(got, "%d", &idx); err != nil {
		t.Fatalf("thTo256Color(#808080) = %q, not numeric", got)
	}
	if idx < 232 && idx != 16+36*2+6*2+2 {
		t.Errorf("mid gray mapped to %d, expected grayscale ramp or cube gray", idx)
	}
}

func TestTo256ColorInvalidPassthrough(t *testing.T) {
	if got := thTo256Color("nothex"); got != "nothex" {
		t.Errorf("thTo256Color(\"nothex\") = %q, want passthrough", got)
	}
}

// --- apply helpers ---

func TestColorize(t *testing.T) {
	out := Colorize("x", "#ff0000")
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") || !strings.Contains(out, "x") {
		t.Errorf("Colorize output %q missing escape or text", out)
	}
	if got := Colorize("x", ""); got != "x" {
		t.Errorf("Colorize with empty color = %q, want passthrough", got)
	}
	if got := Colorize("x", "bogus"); got != "x" {
		t.Errorf("Colorize with invalid color = %q, want passthrough", got)
	}
}

func TestBorderColor(t *testing.T) {
	th := Get("default")
	if got := BorderColor(th, true); got != th.BorderFocus {
		t.Errorf("BorderColor(focused) = %q, want %q", got, th.BorderFocus)
	}
	if got := BorderColor(th, false); got != th.Border {
		t.Errorf("BorderColor(unfocused) = %q, want %q", got, th.Border)
	}
}
