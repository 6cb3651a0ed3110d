package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/backdrop/internal/theme"
)

// Theme is the colour set of the panel around the canvas.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       string(theme.Dark),
		Primary:    lipgloss.Color("#60a5fa"),
		Accent:     lipgloss.Color("#a855f7"),
		Background: lipgloss.Color(theme.Dark.Background()),
		Text:       lipgloss.Color(theme.Dark.Foreground()),
		Muted:      lipgloss.Color(theme.Dark.Secondary()),
		Success:    lipgloss.Color("#10b981"),
		Warning:    lipgloss.Color("#f59e0b"),
	}

	ThemeLight = Theme{
		Name:       string(theme.Light),
		Primary:    lipgloss.Color("#1d4ed8"),
		Accent:     lipgloss.Color("#7e22ce"),
		Background: lipgloss.Color(theme.Light.Background()),
		Text:       lipgloss.Color(theme.Light.Foreground()),
		Muted:      lipgloss.Color(theme.Light.Secondary()),
		Success:    lipgloss.Color("#047857"),
		Warning:    lipgloss.Color("#b45309"),
	}
)

// ThemeFor returns the panel theme matching the engines' theme signal.
func ThemeFor(t theme.Theme) Theme {
	if t.IsDark() {
		return ThemeDark
	}
	return ThemeLight
}
