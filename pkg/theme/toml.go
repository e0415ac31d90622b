package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Frame  thTOMLFrame  `toml:"frame"`
	Input  thTOMLInput  `toml:"input"`
	Picker thTOMLPicker `toml:"picker"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLFrame struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type thTOMLInput struct {
	Text        string `toml:"text"`
	Placeholder string `toml:"placeholder"`
	Prompt      string `toml:"prompt"`
	Error       string `toml:"error"`
	ErrorHint   string `toml:"error_hint"`
}

type thTOMLPicker struct {
	Cursor string `toml:"cursor"`
	Label  string `toml:"label"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Border:      tt.Frame.Border,
		BorderFocus: tt.Frame.BorderFocus,
		Title:       tt.Frame.Title,

		InputText:        tt.Input.Text,
		InputPlaceholder: tt.Input.Placeholder,
		InputPrompt:      tt.Input.Prompt,
		InputError:       tt.Input.Error,
		ErrorHint:        tt.Input.ErrorHint,

		SwatchCursor: tt.Picker.Cursor,
		PickerLabel:  tt.Picker.Label,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Frame: thTOMLFrame{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
		},
		Input: thTOMLInput{
			Text:        t.InputText,
			Placeholder: t.InputPlaceholder,
			Prompt:      t.InputPrompt,
			Error:       t.InputError,
			ErrorHint:   t.ErrorHint,
		},
		Picker: thTOMLPicker{
			Cursor: t.SwatchCursor,
			Label:  t.PickerLabel,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// Register validates a theme and adds it to the registry, making it
// available via Get and Names.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thValidateTheme checks that a theme has a name and that every color
// field is a full 6-digit hex literal.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing name")
	}
	fields := map[string]string{
		"base.background":    t.Background,
		"base.foreground":    t.Foreground,
		"base.dim":           t.Dim,
		"base.accent":        t.Accent,
		"frame.border":       t.Border,
		"frame.border_focus": t.BorderFocus,
		"frame.title":        t.Title,
		"input.text":         t.InputText,
		"input.placeholder":  t.InputPlaceholder,
		"input.prompt":       t.InputPrompt,
		"input.error":        t.InputError,
		"input.error_hint":   t.ErrorHint,
		"picker.cursor":      t.SwatchCursor,
		"picker.label":       t.PickerLabel,
		"help.key":           t.HelpKey,
		"help.desc":          t.HelpDesc,
	}
	for name, val := range fields {
		if !thHexColorRegex.MatchString(val) {
			return fmt.Errorf("theme %q: field %s: invalid hex color %q", t.Name, name, val)
		}
	}
	return nil
}
