// Package segment provides styled, padded and truncated status bar segments
// Segment Layer: styles, segments and segment sequences
package segment

import "github.com/charmbracelet/lipgloss"

// Palette colors. Gray maps to the terminal's white and White to its bright
// white, matching how most themes render the basic ANSI set.
var (
	BG      lipgloss.TerminalColor = lipgloss.Color("0")
	Red     lipgloss.TerminalColor = lipgloss.Color("1")
	Green   lipgloss.TerminalColor = lipgloss.Color("2")
	Yellow  lipgloss.TerminalColor = lipgloss.Color("3")
	Blue    lipgloss.TerminalColor = lipgloss.Color("4")
	Magenta lipgloss.TerminalColor = lipgloss.Color("5")
	Cyan    lipgloss.TerminalColor = lipgloss.Color("6")
	Gray    lipgloss.TerminalColor = lipgloss.Color("7")
	White   lipgloss.TerminalColor = lipgloss.Color("15")
	Black   lipgloss.TerminalColor = lipgloss.Color("#000000")
)
