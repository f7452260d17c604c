package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme, or an unknown one, is configured.
const DefaultTheme = "spring"

// Theme maps semantic UI roles to colors. Models receive a Theme explicitly
// through Styles; there is no process-wide current theme.
type Theme struct {
	Name          string
	Primary       lipgloss.Color // borders, headings, keywords, progress
	PrimaryBright lipgloss.Color // focused elements
	PrimaryDim    lipgloss.Color // subtitles
	Secondary     lipgloss.Color // category headers, annotations, attributes
	Accent        lipgloss.Color // recent markers, string literals
	Text          lipgloss.Color
	TextDim       lipgloss.Color // hints, descriptions
	Success       lipgloss.Color
	Error         lipgloss.Color
	Comment       lipgloss.Color // code comments
	Base          lipgloss.Color // foreground on filled backgrounds
	Surface       lipgloss.Color // bar backgrounds
}

// flavorTheme builds a theme from a Catppuccin flavor.
func flavorTheme(name string, f catppuccin.Flavor) Theme {
	return Theme{
		Name:          name,
		Primary:       lipgloss.Color(f.Blue().Hex),
		PrimaryBright: lipgloss.Color(f.Lavender().Hex),
		PrimaryDim:    lipgloss.Color(f.Sapphire().Hex),
		Secondary:     lipgloss.Color(f.Teal().Hex),
		Accent:        lipgloss.Color(f.Yellow().Hex),
		Text:          lipgloss.Color(f.Text().Hex),
		TextDim:       lipgloss.Color(f.Overlay1().Hex),
		Success:       lipgloss.Color(f.Green().Hex),
		Error:         lipgloss.Color(f.Red().Hex),
		Comment:       lipgloss.Color(f.Overlay0().Hex),
		Base:          lipgloss.Color(f.Base().Hex),
		Surface:       lipgloss.Color(f.Surface0().Hex),
	}
}

var themes = []Theme{
	{
		Name:          "spring",
		Primary:       lipgloss.Color("#6DB33F"),
		PrimaryBright: lipgloss.Color("#8FD560"),
		PrimaryDim:    lipgloss.Color("#508232"),
		Secondary:     lipgloss.Color("6"),
		Accent:        lipgloss.Color("#FFC83C"),
		Text:          lipgloss.Color("7"),
		TextDim:       lipgloss.Color("8"),
		Success:       lipgloss.Color("#28A745"),
		Error:         lipgloss.Color("1"),
		Comment:       lipgloss.Color("#646464"),
		Base:          lipgloss.Color("0"),
		Surface:       lipgloss.Color("236"),
	},
	flavorTheme("catppuccin-latte", catppuccin.Latte),
	flavorTheme("catppuccin-frappe", catppuccin.Frappe),
	flavorTheme("catppuccin-macchiato", catppuccin.Macchiato),
	flavorTheme("catppuccin-mocha", catppuccin.Mocha),
	{
		Name:          "dracula",
		Primary:       lipgloss.Color("#BD93F9"),
		PrimaryBright: lipgloss.Color("#D4B8FF"),
		PrimaryDim:    lipgloss.Color("#8A6BBF"),
		Secondary:     lipgloss.Color("#8BE9FD"),
		Accent:        lipgloss.Color("#FFB86C"),
		Text:          lipgloss.Color("#F8F8F2"),
		TextDim:       lipgloss.Color("#6272A4"),
		Success:       lipgloss.Color("#50FA7B"),
		Error:         lipgloss.Color("#FF5555"),
		Comment:       lipgloss.Color("#6272A4"),
		Base:          lipgloss.Color("#282A36"),
		Surface:       lipgloss.Color("#44475A"),
	},
	{
		Name:          "nord",
		Primary:       lipgloss.Color("#88C0D0"),
		PrimaryBright: lipgloss.Color("#8FBCBB"),
		PrimaryDim:    lipgloss.Color("#5E81AC"),
		Secondary:     lipgloss.Color("#81A1C1"),
		Accent:        lipgloss.Color("#EBCB8B"),
		Text:          lipgloss.Color("#ECEFF4"),
		TextDim:       lipgloss.Color("#4C566A"),
		Success:       lipgloss.Color("#A3BE8C"),
		Error:         lipgloss.Color("#BF616A"),
		Comment:       lipgloss.Color("#616E88"),
		Base:          lipgloss.Color("#2E3440"),
		Surface:       lipgloss.Color("#3B4252"),
	},
	{
		Name:          "gruvbox-dark",
		Primary:       lipgloss.Color("#FE8019"),
		PrimaryBright: lipgloss.Color("#FABD2F"),
		PrimaryDim:    lipgloss.Color("#D65D0E"),
		Secondary:     lipgloss.Color("#8EC07C"),
		Accent:        lipgloss.Color("#B8BB26"),
		Text:          lipgloss.Color("#EBDBB2"),
		TextDim:       lipgloss.Color("#665C54"),
		Success:       lipgloss.Color("#B8BB26"),
		Error:         lipgloss.Color("#FB4934"),
		Comment:       lipgloss.Color("#928374"),
		Base:          lipgloss.Color("#282828"),
		Surface:       lipgloss.Color("#3C3836"),
	},
	{
		Name:          "tokyo-night",
		Primary:       lipgloss.Color("#7AA2F7"),
		PrimaryBright: lipgloss.Color("#A9B8E8"),
		PrimaryDim:    lipgloss.Color("#3D59A1"),
		Secondary:     lipgloss.Color("#7DCFFF"),
		Accent:        lipgloss.Color("#E0AF68"),
		Text:          lipgloss.Color("#C0CAF5"),
		TextDim:       lipgloss.Color("#565F89"),
		Success:       lipgloss.Color("#9ECE6A"),
		Error:         lipgloss.Color("#F7768E"),
		Comment:       lipgloss.Color("#565F89"),
		Base:          lipgloss.Color("#1A1B26"),
		Surface:       lipgloss.Color("#24283B"),
	},
}

// ThemeNames lists the registered themes in display order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme returns the named theme and whether it exists.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeByName returns the named theme, falling back to the spring theme.
func ThemeByName(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return themes[0]
}

// SuggestTheme returns the registered theme closest to an unknown name, or
// "" when nothing is close. A name that is a prefix or suffix of a theme
// (e.g. "mocha") wins over edit distance.
func SuggestTheme(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	for _, t := range themes {
		if strings.HasPrefix(t.Name, name) || strings.HasSuffix(t.Name, name) {
			return t.Name
		}
	}

	best, bestDist := "", max(2, len(name)/3)+1
	for _, t := range themes {
		if d := levenshtein.ComputeDistance(name, t.Name); d < bestDist {
			best, bestDist = t.Name, d
		}
	}
	return best
}
