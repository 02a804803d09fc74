// Package render provides width measurement and alignment for the status bar
// Render Layer: visual width, padding and truncation
package render

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis is appended to truncated content
const Ellipsis = "..."

// Metric selects how a grapheme cluster is charged against a width budget
type Metric int32

const (
	// MetricGraphemes charges one column per grapheme cluster
	MetricGraphemes Metric = iota
	// MetricCells charges terminal cells, so wide glyphs (e.g., CJK) count two
	MetricCells
)

// String returns the configuration name of the metric
func (m Metric) String() string {
	if m == MetricCells {
		return "cells"
	}
	return "graphemes"
}

// ParseMetric parses a metric name, falling back to MetricGraphemes
func ParseMetric(name string) Metric {
	if strings.EqualFold(strings.TrimSpace(name), "cells") {
		return MetricCells
	}
	return MetricGraphemes
}

var metric atomic.Int32

// SetMetric sets the process-wide width metric
func SetMetric(m Metric) {
	metric.Store(int32(m))
}

// CurrentMetric returns the process-wide width metric
func CurrentMetric() Metric {
	return Metric(metric.Load())
}

// Measure returns the visual width of a string.
// Escape sequences are stripped first, then grapheme clusters are counted.
func Measure(s string) int {
	if s == "" {
		return 0
	}
	plain := ansi.Strip(s)
	if CurrentMetric() == MetricCells {
		return runewidth.StringWidth(plain)
	}
	return uniseg.GraphemeClusterCount(plain)
}

// clusterWidth is the width charged for one grapheme cluster
func clusterWidth(cluster string) int {
	if CurrentMetric() == MetricCells {
		return runewidth.StringWidth(cluster)
	}
	return 1
}

// PadCenter centers a string within the given width.
// When the padding is odd the extra column goes to the trailing side.
func PadCenter(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	rightPadding := padding - leftPadding
	return strings.Repeat(" ", leftPadding) + s + strings.Repeat(" ", rightPadding)
}

// Truncate shortens s to at most width columns, ending with Ellipsis.
// Strings that already fit are returned unchanged. Escape sequences are
// dropped from truncated output and grapheme clusters are never split.
func Truncate(s string, width int) string {
	if Measure(s) <= width {
		return s
	}
	keep := width - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(ansi.Strip(s))
	for g.Next() {
		cluster := g.Str()
		w := clusterWidth(cluster)
		if used+w > keep {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// Repeat returns glyph repeated until it covers width columns.
// Glyphs wider than one column never overshoot the width.
func Repeat(glyph string, width int) string {
	if width <= 0 || glyph == "" {
		return ""
	}
	gw := Measure(glyph)
	if gw <= 0 {
		return ""
	}
	out := strings.Repeat(glyph, width/gw)
	if rest := width % gw; rest > 0 {
		out += strings.Repeat(" ", rest)
	}
	return out
}
