package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the preview
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	// Render the bar first so the header reports the tier it chose
	line := m.bar.String(m.Cols())

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.styles.Frame.Render(line))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader renders the title and render details
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("tabline preview")

	details := fmt.Sprintf("%d cols · %s tabs · %d open", m.Cols(), m.bar.Tier(), len(m.bar.Tabs()))
	if m.watcher != nil {
		details += " · watching"
	}
	if m.lastUpdate != "" {
		details += " · " + m.lastUpdate
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.styles.Subtitle.Render(details))
}
