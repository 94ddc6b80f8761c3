package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the semantic colors a theme provides.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#24283b"),
		Info:       lipgloss.Color("#7dcfff"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Info:       lipgloss.Color("#8ec07c"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"), // Blue
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Surface:    lipgloss.Color("#313244"), // Surface0
		Info:       lipgloss.Color("#94e2d5"), // Teal
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Warning:    lipgloss.Color("#f9e2af"), // Yellow
		Error:      lipgloss.Color("#f38ba8"), // Red
	},
	"light": {
		Primary:    lipgloss.Color("#2563eb"),
		Foreground: lipgloss.Color("#1f2937"),
		Muted:      lipgloss.Color("#6b7280"),
		Surface:    lipgloss.Color("#f3f4f6"),
		Info:       lipgloss.Color("#2563eb"),
		Success:    lipgloss.Color("#16a34a"),
		Warning:    lipgloss.Color("#ca8a04"),
		Error:      lipgloss.Color("#dc2626"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
