package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	DefaultMarker = "❯ "
	DefaultAccent = "6"
)

// Theme holds the user adjustable parts of prompt rendering.
type Theme struct {
	Marker string
	Accent string
}

var (
	renderer    = lipgloss.NewRenderer(os.Stdout)
	activeTheme = Theme{Marker: DefaultMarker, Accent: DefaultAccent}

	accentStyle  lipgloss.Style
	decorStyle   lipgloss.Style
	captionStyle lipgloss.Style
	bannerStyle  lipgloss.Style
)

func init() {
	setupStyles(false)
}

func setupStyles(colors bool) {
	if colors {
		renderer.SetColorProfile(DetectColorMode().Profile())
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	accent := lipgloss.Color(activeTheme.Accent)
	accentStyle = renderer.NewStyle().Foreground(accent)
	decorStyle = renderer.NewStyle().Foreground(accent).Bold(true)
	captionStyle = renderer.NewStyle().Faint(true)
	bannerStyle = renderer.NewStyle().
		Bold(true).
		Foreground(accent).
		Border(ActiveBorder()).
		BorderForeground(accent).
		Padding(0, 2)
}

// UseTheme replaces the active theme. Empty fields keep their defaults.
func UseTheme(theme Theme) {
	if len(theme.Marker) == 0 {
		theme.Marker = DefaultMarker
	}
	if len(theme.Accent) == 0 {
		theme.Accent = DefaultAccent
	}
	activeTheme = theme
	setupStyles(!Colorless && !Disabled && len(Reset) > 0)
}

func ActiveTheme() Theme {
	return activeTheme
}

// Decorate emphasises text for display. It has no side effects.
func Decorate(text string) string {
	return decorStyle.Render(text)
}

// Accent colours text with the theme accent without other emphasis.
func Accent(text string) string {
	return accentStyle.Render(text)
}

// Caption renders secondary text.
func Caption(text string) string {
	return captionStyle.Render(text)
}

// Width is the display width of text, ignoring escape sequences.
func Width(text string) int {
	return lipgloss.Width(text)
}

// Truncate cuts text to at most width display columns. A width below one
// leaves text alone.
func Truncate(text string, width int) string {
	if width < 1 || lipgloss.Width(text) <= width {
		return text
	}
	return renderer.NewStyle().MaxWidth(width).Render(text)
}

// ActiveBorder picks rounded borders when the terminal can show Unicode and
// falls back to plain ASCII corners otherwise.
func ActiveBorder() lipgloss.Border {
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" || !Iconic {
		return lipgloss.Border{
			Top:         "-",
			Bottom:      "-",
			Left:        "|",
			Right:       "|",
			TopLeft:     "+",
			TopRight:    "+",
			BottomLeft:  "+",
			BottomRight: "+",
		}
	}
	return lipgloss.RoundedBorder()
}
