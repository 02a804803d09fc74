// Package tui is an interactive preview of the status bar.
//
// The preview drives a host.Bar the way a workspace would: mode and tab
// changes become host events, and the window width becomes the render
// width.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tabline/internal/host"
	"github.com/young1lin/tabline/internal/monitor"
)

// Model represents the preview state
type Model struct {
	bar     *host.Bar
	watcher monitor.WatcherInterface

	// Width of the terminal and the user's adjustment to it
	width  int
	offset int

	keys keyMap
	help help.Model

	lastUpdate string
	ready      bool
	quitting   bool
	err        error

	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Frame    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	secondaryColor := lipgloss.Color("239")

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(secondaryColor),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// NewModel creates a preview of bar. When watcher is not nil its
// snapshots replace the bar's state as they arrive.
func NewModel(bar *host.Bar, watcher monitor.WatcherInterface) Model {
	return Model{
		bar:     bar,
		watcher: watcher,
		keys:    defaultKeyMap,
		help:    help.New(),
		styles:  DefaultStyles(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForSnapshot(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Cols returns the width the bar is rendered at
func (m Model) Cols() int {
	cols := m.width + m.offset
	if cols < 0 {
		return 0
	}
	return cols
}
