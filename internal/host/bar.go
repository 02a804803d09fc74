package host

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/young1lin/tabline/internal/statusbar/config"
	"github.com/young1lin/tabline/internal/statusbar/content"
	"github.com/young1lin/tabline/internal/statusbar/layout"
	"github.com/young1lin/tabline/internal/statusbar/render"
	"github.com/young1lin/tabline/internal/statusbar/segment"
	"github.com/young1lin/tabline/internal/statusbar/tabs"
)

// DefaultSession is shown until the host reports a current session
const DefaultSession = "default"

// Bar is the status bar state driven by host events.
//
// Mode and session are kept as pre-rendered segments in shared cells that
// the compositor reads on every render. The tab layout is rebuilt on each
// tab update and only its budget changes between renders.
type Bar struct {
	mu sync.Mutex

	cfg        *config.Config
	compositor *layout.Compositor
	glyphs     tabs.Glyphs

	mode     content.Mode
	modeCell *content.Shared

	session     string
	sessionCell *content.Shared

	tabList []tabs.Info
	clock   *content.Clock
}

// Options configure a Bar
type Options struct {
	// Config supplies segment, clock and display settings; nil uses defaults
	Config *config.Config
	// Time drives the clock; nil reads the system clock
	Time content.TimeSource
}

// Load builds a bar in its initial state: NORMAL mode, the default
// session and no tabs. The configured color profile and width metric are
// applied process-wide.
//
// An unknown clock timezone falls back to UTC; the error is returned
// together with a usable bar.
func Load(opts Options) (*Bar, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	segment.SetColorProfile(cfg.Render.ColorProfile)
	render.SetMetric(render.ParseMetric(cfg.Render.WidthMetric))

	location, tzErr := content.LoadLocation(cfg.Clock.Timezone)

	b := &Bar{
		cfg:        cfg,
		compositor: layout.NewCompositor(),
		glyphs: tabs.Glyphs{
			Fullscreen: cfg.Tabs.FullscreenMarker,
			Sync:       cfg.Tabs.SyncMarker,
			Arrow:      cfg.Tabs.RangeArrow,
		},
		mode:    content.ModeNormal,
		session: DefaultSession,
		clock:   content.NewClock(opts.Time, location, cfg.Clock.Format, cfg.Clock.Epoch),
	}
	b.modeCell = content.NewShared(b.modeSegment().String())
	b.sessionCell = content.NewShared(b.sessionSegment().String())

	if b.shows(content.ContentMode) {
		b.compositor.AddLeft(b.modeCell)
	}
	if b.shows(content.ContentSession) {
		b.compositor.AddLeft(b.sessionCell)
	}
	if b.shows(content.ContentClock) {
		b.compositor.AddRight(b.clockSegment())
	}
	b.compositor.SetFiller(cfg.Render.Filler)
	b.rebuildTabs()

	if tzErr != nil {
		return b, tzErr
	}
	return b, nil
}

func (b *Bar) shows(element content.ContentType) bool {
	return b.cfg.ShouldShow(string(element))
}

func (b *Bar) caps(s segment.Segment) segment.Segment {
	return s.Caps(b.cfg.Segments.CapBegin, b.cfg.Segments.CapEnd)
}

func (b *Bar) modeSegment() segment.Segment {
	s := segment.New(b.mode, segment.NewStyle(segment.Black, b.mode.Color()).WithBold()).
		MinWidth(b.cfg.Segments.ModeMinWidth).
		MaxWidth(b.cfg.Segments.MaxWidth)
	return b.caps(s)
}

func (b *Bar) sessionSegment() segment.Segment {
	s := segment.New(segment.Text(b.session), segment.NewStyle(segment.Black, segment.Green)).
		MinWidth(b.cfg.Segments.SessionMinWidth).
		MaxWidth(b.cfg.Segments.MaxWidth)
	return b.caps(s)
}

func (b *Bar) clockSegment() segment.Segment {
	s := segment.New(b.clock, segment.NewStyle(segment.Black, segment.White)).
		MaxWidth(b.cfg.Clock.MaxWidth)
	return b.caps(s)
}

func (b *Bar) rebuildTabs() {
	if !b.shows(content.ContentTabs) {
		b.compositor.SetTabs(nil)
		return
	}
	b.compositor.SetTabs(tabs.NewWithGlyphs(b.tabList, b.glyphs))
}

// Update applies a state event and reports whether the bar should be
// re-rendered. Render requests are not state events and return false.
func (b *Bar) Update(ev Event) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch ev.Type {
	case EventMode:
		mode, ok := content.ParseMode(ev.Mode)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownMode, ev.Mode)
		}
		b.mode = mode
		b.modeCell.Set(b.modeSegment().String())
		return true, nil

	case EventSessions:
		idx := slices.IndexFunc(ev.Sessions, func(s SessionInfo) bool { return s.IsCurrentSession })
		if idx < 0 {
			return false, nil
		}
		name := strings.TrimSpace(ev.Sessions[idx].Name)
		if name == "" {
			name = DefaultSession
		}
		b.session = name
		b.sessionCell.Set(b.sessionSegment().String())
		return true, nil

	case EventTabs:
		b.tabList = slices.Clone(ev.Tabs)
		b.rebuildTabs()
		return true, nil

	case EventRender:
		return false, nil

	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// Apply feeds every state event of a snapshot to the bar. A rejected
// event does not stop the rest; the rejections are returned joined.
func (b *Bar) Apply(s Snapshot) error {
	var errs []error
	for _, ev := range s.Events() {
		if _, err := b.Update(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Render writes one line of exactly cols columns, unless the fixed
// elements alone are wider
func (b *Bar) Render(w io.Writer, cols int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.compositor.Render(w, cols)
}

// String renders the bar for the given width
func (b *Bar) String(cols int) string {
	var sb strings.Builder
	_ = b.Render(&sb, cols)
	return sb.String()
}

// Mode returns the current input mode
func (b *Bar) Mode() content.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Session returns the current session name
func (b *Bar) Session() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Tabs returns a copy of the current tab list
func (b *Bar) Tabs() []tabs.Info {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.tabList)
}

// Tier returns the tab tier chosen by the last render
func (b *Bar) Tier() tabs.Tier {
	b.mu.Lock()
	defer b.mu.Unlock()
	if l := b.compositor.Tabs(); l != nil {
		return l.Tier()
	}
	return tabs.TierFull
}
