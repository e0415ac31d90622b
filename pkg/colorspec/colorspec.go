// Package colorspec classifies and normalizes textual color literals.
//
// Two notations are recognized: hex literals ("#fff", "#ffcc00") and
// rgb() functional literals ("rgb(255, 128, 0)"). Classification is
// purely lexical; rgb() channels are capped at three digits but never
// range-checked, so "rgb(999,999,999)" classifies as valid.
package colorspec

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValid reports whether s is a hex color literal ("#" plus 3 or 6
// hex digits) or an rgb() functional literal with up to three decimal
// digits per channel and optional whitespace around each. The empty
// string is not valid.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	return hexPattern.MatchString(s) || rgbPattern.MatchString(s)
}

// Normalize expands a 3-digit shorthand hex literal to its 6-digit
// form by duplicating each digit ("#abc" becomes "#aabbcc"). Any other
// input, including invalid strings, is returned unchanged; Normalize
// does not validate.
func Normalize(s string) string {
	if !shorthandPattern.MatchString(s) {
		return s
	}
	b := make([]byte, 0, 7)
	b = append(b, '#')
	for i := 1; i < 4; i++ {
		b = append(b, s[i], s[i])
	}
	return string(b)
}

// ParseHex parses a hex literal into its channel values. Both the 3-
// and 6-digit forms are accepted, with or without the leading "#".
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = Normalize("#" + s)[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// HexFor formats channel values as a lowercase 6-digit hex literal.
func HexFor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Channels extracts displayable channel values from any valid literal.
// Hex literals parse exactly; rgb() literals have each channel clamped
// to 255 for display, since validation never range-checks them. The
// bool result is false for strings IsValid rejects.
func Channels(s string) (r, g, b uint8, ok bool) {
	if hexPattern.MatchString(s) {
		return ParseHex(s)
	}
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	return clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3]), true
}

// clampChannel parses a 1-3 digit decimal string, clamping to 255.
func clampChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}
