package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/young1lin/tabline/internal/statusbar/segment"
)

// Mode is the host's current input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	ModePrompt
	ModeTmux
)

var modeNames = map[string]Mode{
	"normal":      ModeNormal,
	"locked":      ModeLocked,
	"resize":      ModeResize,
	"pane":        ModePane,
	"tab":         ModeTab,
	"scroll":      ModeScroll,
	"entersearch": ModeEnterSearch,
	"search":      ModeSearch,
	"renametab":   ModeRenameTab,
	"renamepane":  ModeRenamePane,
	"session":     ModeSession,
	"move":        ModeMove,
	"prompt":      ModePrompt,
	"tmux":        ModeTmux,
}

// ParseMode parses a mode name. Matching ignores case, '_' and '-', so
// "EnterSearch", "enter_search" and "enter-search" are the same mode.
func ParseMode(name string) (Mode, bool) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	m, ok := modeNames[key]
	return m, ok
}

// Name returns the canonical name accepted by ParseMode
func (m Mode) Name() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return "normal"
}

// String returns the label shown in the bar
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeLocked:
		return "LOCKED"
	case ModeResize:
		return "RESIZE"
	case ModePane, ModeRenamePane:
		return "PANE"
	case ModeTab, ModeRenameTab:
		return "TAB"
	case ModeScroll:
		return "SCROLL"
	case ModeEnterSearch, ModeSearch:
		return "SEARCH"
	case ModeSession:
		return "SESSION"
	case ModeMove:
		return "MOVE"
	case ModePrompt:
		return "PROMPT"
	case ModeTmux:
		return "TMUX"
	default:
		return "NORMAL"
	}
}

// Color returns the mode's background color
func (m Mode) Color() lipgloss.TerminalColor {
	switch m {
	case ModeNormal:
		return segment.Blue
	case ModeLocked:
		return segment.Gray
	case ModeTmux:
		return segment.Red
	case ModeScroll, ModeEnterSearch, ModeSearch:
		return segment.Magenta
	default:
		return segment.Yellow
	}
}

// Next returns the mode after m, wrapping around
func (m Mode) Next() Mode {
	return (m + 1) % (ModeTmux + 1)
}
