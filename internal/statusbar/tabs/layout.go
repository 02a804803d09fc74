// Package tabs lays out the tab list in three precomputed tiers
// Tabs Layer: full, compact and folded tab renderings
package tabs

import (
	"cmp"
	"math"
	"slices"

	"github.com/young1lin/tabline/internal/statusbar/render"
	"github.com/young1lin/tabline/internal/statusbar/segment"
)

// Info describes one tab as reported by the host
type Info struct {
	Position           int    `json:"position"`
	Name               string `json:"name"`
	Active             bool   `json:"active"`
	IsFullscreenActive bool   `json:"is_fullscreen_active"`
	IsSyncPanesActive  bool   `json:"is_sync_panes_active"`
}

// Tier identifies one of the precomputed renderings
type Tier int

const (
	TierFull Tier = iota
	TierCompact
	TierFold
)

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierCompact:
		return "compact"
	default:
		return "fold"
	}
}

type tier struct {
	width    int
	rendered string
}

func newTier(seq segment.Sequence) tier {
	rendered := seq.String()
	return tier{width: render.Measure(rendered), rendered: rendered}
}

// Layout holds the three tiers of one tab list.
//
// The tiers are rendered once by New. Only MaxWidth changes afterwards; set
// it before each render to pick the tier that fits.
type Layout struct {
	MaxWidth int

	full    tier
	compact tier
	fold    tier
}

// New builds the tiers for a tab list using the default glyphs
func New(list []Info) *Layout {
	return NewWithGlyphs(list, DefaultGlyphs())
}

// NewWithGlyphs builds the tiers for a tab list.
// The list is ordered by position; the first active tab is the active one.
func NewWithGlyphs(list []Info, g Glyphs) *Layout {
	ordered := slices.Clone(list)
	slices.SortStableFunc(ordered, func(a, b Info) int {
		return cmp.Compare(a.Position, b.Position)
	})

	var full, compact segment.Sequence
	for _, tab := range ordered {
		full = append(full, fullSegment(tab, g))
		compact = append(compact, compactSegment(tab, g))
	}

	return &Layout{
		MaxWidth: math.MaxInt,
		full:     newTier(full),
		compact:  newTier(compact),
		fold:     newTier(foldSequence(ordered, g)),
	}
}

// foldSequence renders the active tab between summaries of the tabs
// before and after it
func foldSequence(ordered []Info, g Glyphs) segment.Sequence {
	if len(ordered) == 0 {
		return nil
	}
	last := len(ordered) - 1

	active := slices.IndexFunc(ordered, func(t Info) bool { return t.Active })
	if active < 0 {
		return segment.Sequence{rangeSegment(ordered[0].Position, ordered[last].Position, g)}
	}

	var seq segment.Sequence
	if active > 0 {
		seq = append(seq, rangeSegment(ordered[0].Position, ordered[active-1].Position, g))
	}
	seq = append(seq, fullSegment(ordered[active], g))
	if active < last {
		seq = append(seq, rangeSegment(ordered[active+1].Position, ordered[last].Position, g))
	}
	return seq
}

// Tier returns the tier selected by the current MaxWidth.
// A tier is chosen only when it is strictly narrower than the budget; fold
// is the last resort and may overflow.
func (l *Layout) Tier() Tier {
	switch {
	case l.MaxWidth > l.full.width:
		return TierFull
	case l.MaxWidth > l.compact.width:
		return TierCompact
	default:
		return TierFold
	}
}

// String returns the rendering of the selected tier
func (l *Layout) String() string {
	return l.TierString(l.Tier())
}

// Width returns the width of the selected tier
func (l *Layout) Width() int {
	return l.TierWidth(l.Tier())
}

// TierWidth returns the cached width of a tier
func (l *Layout) TierWidth(t Tier) int {
	switch t {
	case TierFull:
		return l.full.width
	case TierCompact:
		return l.compact.width
	default:
		return l.fold.width
	}
}

// TierString returns the cached rendering of a tier
func (l *Layout) TierString(t Tier) string {
	switch t {
	case TierFull:
		return l.full.rendered
	case TierCompact:
		return l.compact.rendered
	default:
		return l.fold.rendered
	}
}
