package segment

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style is an immutable foreground/background/bold triple
type Style struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Bold       bool
}

// NewStyle creates a style with the given foreground and background
func NewStyle(fg, bg lipgloss.TerminalColor) Style {
	return Style{Foreground: fg, Background: bg}
}

// WithBold returns a bold copy of the style
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// Render wraps text in the style's escape sequence followed by a reset
func (s Style) Render(text string) string {
	return s.lipgloss().Render(text)
}

// Equal reports whether two styles produce the same escape output
func (s Style) Equal(other Style) bool {
	return s.Render("x") == other.Render("x")
}

func (s Style) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != nil {
		st = st.Foreground(s.Foreground)
	}
	if s.Background != nil {
		st = st.Background(s.Background)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// ParseColorProfile maps a profile name to a termenv profile.
// Unknown names fall back to ANSI256.
func ParseColorProfile(name string) termenv.Profile {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii":
		return termenv.Ascii
	case "ansi":
		return termenv.ANSI
	case "truecolor":
		return termenv.TrueColor
	default:
		return termenv.ANSI256
	}
}

// SetColorProfile sets the color profile used to render every style
func SetColorProfile(name string) {
	lipgloss.SetColorProfile(ParseColorProfile(name))
}
