package tabs

import (
	"fmt"

	"github.com/young1lin/tabline/internal/statusbar/segment"
)

// Glyphs are the markers drawn inside tab segments
type Glyphs struct {
	Fullscreen string
	Sync       string
	Arrow      string
}

// DefaultGlyphs returns the nerd-font markers and a plain range arrow
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Fullscreen: "\U000F0293",
		Sync:       "\U000F1378",
		Arrow:      "→",
	}
}

func tabStyle(active bool) segment.Style {
	if active {
		return segment.NewStyle(segment.Black, segment.Yellow)
	}
	return segment.NewStyle(segment.Black, segment.Gray)
}

// fullSegment renders number, name and state markers
func fullSegment(tab Info, g Glyphs) segment.Segment {
	content := fmt.Sprintf("%d  %s", tab.Position+1, tab.Name)
	markers := ""
	if tab.IsSyncPanesActive {
		markers += g.Sync
	}
	if tab.IsFullscreenActive {
		markers += g.Fullscreen
	}
	if markers != "" {
		content += " " + markers
	}
	return segment.New(segment.Text(content), tabStyle(tab.Active))
}

// compactSegment renders only the tab number, except for the active tab
func compactSegment(tab Info, g Glyphs) segment.Segment {
	if tab.Active {
		return fullSegment(tab, g)
	}
	content := fmt.Sprintf("%d", tab.Position+1)
	return segment.New(segment.Text(content), tabStyle(false))
}

// rangeSegment summarizes the tabs first..last (0-based, inclusive)
func rangeSegment(first, last int, g Glyphs) segment.Segment {
	content := fmt.Sprintf("%d", first+1)
	if last > first {
		content = fmt.Sprintf("%d  %s  %d", first+1, g.Arrow, last+1)
	}
	return segment.New(segment.Text(content), tabStyle(false))
}
