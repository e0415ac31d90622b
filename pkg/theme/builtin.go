package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thTokyoNightTheme(),
		thLightTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",

		InputText:        "#d4d4d4",
		InputPlaceholder: "#6b6b6b",
		InputPrompt:      "#7C3AED",
		InputError:       "#e06c75",
		ErrorHint:        "#e06c75",

		SwatchCursor: "#f9e2af",
		PickerLabel:  "#d4d4d4",

		HelpKey:  "#7C3AED",
		HelpDesc: "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#ebdbb2",

		InputText:        "#ebdbb2",
		InputPlaceholder: "#928374",
		InputPrompt:      "#fe8019",
		InputError:       "#fb4934",
		ErrorHint:        "#fb4934",

		SwatchCursor: "#fabd2f",
		PickerLabel:  "#ebdbb2",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thTokyoNightTheme returns the cool blue Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: "#1a1b26",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Border:      "#3b4261",
		BorderFocus: "#7aa2f7",
		Title:       "#c0caf5",

		InputText:        "#c0caf5",
		InputPlaceholder: "#565f89",
		InputPrompt:      "#7aa2f7",
		InputError:       "#f7768e",
		ErrorHint:        "#f7768e",

		SwatchCursor: "#e0af68",
		PickerLabel:  "#c0caf5",

		HelpKey:  "#7aa2f7",
		HelpDesc: "#565f89",
	}
}

// thLightTheme returns a light theme for bright terminal backgrounds.
func thLightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#fafafa",
		Foreground: "#383a42",
		Dim:        "#a0a1a7",
		Accent:     "#4078f2",

		Border:      "#d3d3d3",
		BorderFocus: "#4078f2",
		Title:       "#383a42",

		InputText:        "#383a42",
		InputPlaceholder: "#a0a1a7",
		InputPrompt:      "#4078f2",
		InputError:       "#e45649",
		ErrorHint:        "#e45649",

		SwatchCursor: "#c18401",
		PickerLabel:  "#383a42",

		HelpKey:  "#4078f2",
		HelpDesc: "#a0a1a7",
	}
}
