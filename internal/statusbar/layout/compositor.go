// Package layout composes the status bar line
// Layout Layer: fixed left/right elements around the tab tiers
package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/young1lin/tabline/internal/statusbar/render"
	"github.com/young1lin/tabline/internal/statusbar/segment"
	"github.com/young1lin/tabline/internal/statusbar/tabs"
)

// DefaultFiller is the glyph repeated over unused columns
const DefaultFiller = "-"

// Element is anything that renders to display text on demand
type Element = fmt.Stringer

// Compositor lays out left elements, the tab tiers, filler and right
// elements so the line is exactly as wide as the terminal
type Compositor struct {
	left  []Element
	right []Element
	tabs  *tabs.Layout

	filler      string
	fillerStyle segment.Style
}

// NewCompositor creates a compositor with no elements and no tabs
func NewCompositor() *Compositor {
	return &Compositor{
		tabs:        tabs.New(nil),
		filler:      DefaultFiller,
		fillerStyle: segment.NewStyle(segment.Gray, segment.BG),
	}
}

// AddLeft appends elements to the left side
func (c *Compositor) AddLeft(elements ...Element) {
	c.left = append(c.left, elements...)
}

// AddRight appends elements to the right side
func (c *Compositor) AddRight(elements ...Element) {
	c.right = append(c.right, elements...)
}

// SetTabs replaces the tab layout. A nil layout hides the tabs.
func (c *Compositor) SetTabs(l *tabs.Layout) {
	c.tabs = l
}

// Tabs returns the current tab layout
func (c *Compositor) Tabs() *tabs.Layout {
	return c.tabs
}

// SetFiller sets the filler glyph; an empty glyph restores the default
func (c *Compositor) SetFiller(glyph string) {
	if glyph == "" {
		glyph = DefaultFiller
	}
	c.filler = glyph
}

// Render writes one line of exactly cols columns, unless the fixed elements
// alone are wider, in which case the line overflows.
//
// Right elements are measured before the tabs are rendered so the tab tier
// is chosen with both fixed sides accounted for.
func (c *Compositor) Render(w io.Writer, cols int) error {
	var b strings.Builder
	used := 0

	for _, e := range c.left {
		s := e.String()
		used += render.Measure(s)
		b.WriteString(s)
	}

	right := make([]string, len(c.right))
	for i, e := range c.right {
		right[i] = e.String()
		used += render.Measure(right[i])
	}

	if c.tabs != nil {
		budget := cols - used
		if budget < 0 {
			budget = 0
		}
		c.tabs.MaxWidth = budget
		used += c.tabs.Width()
		b.WriteString(c.tabs.String())
	}

	if remaining := cols - used; remaining > 0 {
		b.WriteString(c.fillerStyle.Render(render.Repeat(c.filler, remaining)))
	}

	for _, s := range right {
		b.WriteString(s)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the line into a string
func (c *Compositor) String(cols int) string {
	var b strings.Builder
	_ = c.Render(&b, cols)
	return b.String()
}
