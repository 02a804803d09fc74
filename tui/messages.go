package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tabline/internal/host"
	"github.com/young1lin/tabline/internal/monitor"
)

// TickMsg is sent every second so the clock stays current
type TickMsg struct {
	Time string
}

// SnapshotMsg carries a new workspace state from a watched file
type SnapshotMsg struct {
	Snapshot host.Snapshot
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherClosedMsg is sent when the snapshot watcher stops
type WatcherClosedMsg struct{}

// waitForSnapshot returns a command delivering the watcher's next
// snapshot or error
func waitForSnapshot(w monitor.WatcherInterface) tea.Cmd {
	return func() tea.Msg {
		select {
		case s, ok := <-w.Snapshots():
			if !ok {
				return WatcherClosedMsg{}
			}
			return SnapshotMsg{Snapshot: s}
		case err, ok := <-w.Errors():
			if !ok {
				return WatcherClosedMsg{}
			}
			return ErrorMsg{Err: err}
		}
	}
}
