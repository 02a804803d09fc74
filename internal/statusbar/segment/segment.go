package segment

import (
	"fmt"
	"strings"

	"github.com/young1lin/tabline/internal/statusbar/render"
)

// flatten keeps content on one line; lipgloss renders a newline as a
// second padded row
var flatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ", "\v", " ", "\f", " ")

const (
	// DefaultMaxWidth is the default truncation ceiling for segment content
	DefaultMaxWidth = 32
	// MinTruncateWidth is the smallest ceiling that still leaves room for
	// one cluster next to the ellipsis
	MinTruncateWidth = len(render.Ellipsis) + 1
)

// Text is literal segment content
type Text string

func (t Text) String() string {
	return string(t)
}

// Segment is a single styled block of text.
//
// Content is rendered on every String call, so content backed by live data
// (a clock) stays current. Configuration methods take a value receiver and
// return the updated copy; a segment already handed to someone else is never
// changed by them.
type Segment struct {
	content fmt.Stringer
	style   Style

	minWidth int
	maxWidth int

	padLeft  string
	padRight string

	capBegin string
	capEnd   string
}

// New creates a segment with default widths, single-space padding and no caps
func New(content fmt.Stringer, style Style) Segment {
	if content == nil {
		content = Text("")
	}
	return Segment{
		content:  content,
		style:    style,
		maxWidth: DefaultMaxWidth,
		padLeft:  " ",
		padRight: " ",
	}
}

// MinWidth returns a copy that pads content to at least width columns
func (s Segment) MinWidth(width int) Segment {
	if width < 0 {
		width = 0
	}
	s.minWidth = width
	return s
}

// MaxWidth returns a copy that truncates content wider than width columns.
// Widths below MinTruncateWidth are clamped.
func (s Segment) MaxWidth(width int) Segment {
	if width < MinTruncateWidth {
		width = MinTruncateWidth
	}
	s.maxWidth = width
	return s
}

// Padding returns a copy with the given fixed padding strings
func (s Segment) Padding(left, right string) Segment {
	s.padLeft = left
	s.padRight = right
	return s
}

// Caps returns a copy drawing begin and end as color-transition caps
func (s Segment) Caps(begin, end string) Segment {
	s.capBegin = begin
	s.capEnd = end
	return s
}

// Style returns the segment's style
func (s Segment) Style() Style {
	return s.style
}

// Content returns the rendered content after truncation and centering
func (s Segment) Content() string {
	content := render.Truncate(flatten.Replace(s.content.String()), s.maxWidth)
	return render.PadCenter(content, s.minWidth)
}

// String renders the segment: begin cap, styled padded content, end cap
func (s Segment) String() string {
	begin := NewStyle(BG, s.style.Background)
	end := NewStyle(s.style.Background, BG)

	var b strings.Builder
	b.WriteString(begin.Render(s.capBegin))
	b.WriteString(s.style.Render(s.padLeft + s.Content() + s.padRight))
	b.WriteString(end.Render(s.capEnd))
	return b.String()
}

// Width returns the visual width of the rendered segment
func (s Segment) Width() int {
	return render.Measure(s.String())
}
