package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tabline/internal/host"
	"github.com/young1lin/tabline/internal/statusbar/tabs"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case TickMsg:
		m.lastUpdate = msg.Time
		return m, tickCmd()

	case SnapshotMsg:
		if err := m.bar.Apply(msg.Snapshot); err != nil {
			m.err = err
		} else {
			m.err = nil
		}
		if m.watcher != nil {
			return m, waitForSnapshot(m.watcher)
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		if m.watcher != nil {
			return m, waitForSnapshot(m.watcher)
		}
		return m, nil

	case WatcherClosedMsg:
		m.watcher = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Mode):
		m.apply(host.ModeEvent(m.bar.Mode().Next().Name()))

	case key.Matches(msg, m.keys.Prev):
		m.setTabs(shiftActive(m.bar.Tabs(), -1))

	case key.Matches(msg, m.keys.Next):
		m.setTabs(shiftActive(m.bar.Tabs(), 1))

	case key.Matches(msg, m.keys.NewTab):
		m.setTabs(addTab(m.bar.Tabs()))

	case key.Matches(msg, m.keys.CloseTab):
		m.setTabs(closeTab(m.bar.Tabs()))

	case key.Matches(msg, m.keys.Fullscreen):
		m.setTabs(toggle(m.bar.Tabs(), func(t *tabs.Info) { t.IsFullscreenActive = !t.IsFullscreenActive }))

	case key.Matches(msg, m.keys.Sync):
		m.setTabs(toggle(m.bar.Tabs(), func(t *tabs.Info) { t.IsSyncPanesActive = !t.IsSyncPanesActive }))

	case key.Matches(msg, m.keys.Narrower):
		if m.Cols() > 0 {
			m.offset--
		}

	case key.Matches(msg, m.keys.Wider):
		if m.offset < 0 {
			m.offset++
		}
	}

	return m, nil
}

func (m *Model) setTabs(list []tabs.Info) {
	m.apply(host.TabsEvent(list))
}

func (m *Model) apply(ev host.Event) {
	if _, err := m.bar.Update(ev); err != nil {
		m.err = err
	}
}

// tickCmd returns a command that sends TickMsg messages
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t.Format("15:04:05")}
	})
}
