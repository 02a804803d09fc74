package render

import (
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "NORMAL", 6},
		{"combining mark", "café", 4},
		{"emoji with modifier", "👍🏽 ok", 4},
		{"flag", "🇩🇪", 1},
		{"zwj family", "👨‍👩‍👧", 1},
		{"cjk counts clusters", "日本語", 3},
		{"nerd font glyph", "\U000F0293", 1},
		{"sgr escapes ignored", "\x1b[1;31mred\x1b[0m", 3},
		{"escape only", "\x1b[38;5;4m\x1b[48;2;0;0;0m\x1b[0m", 0},
		{"escapes around emoji", "\x1b[42m👍🏽\x1b[0m", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(tt.input); got != tt.want {
				t.Errorf("Measure(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureCells(t *testing.T) {
	SetMetric(MetricCells)
	defer SetMetric(MetricGraphemes)

	if got := Measure("日本語"); got != 6 {
		t.Errorf("Measure(cjk) in cells = %d, want 6", got)
	}
	if got := Measure("\x1b[31mabc\x1b[0m"); got != 3 {
		t.Errorf("Measure(styled ascii) in cells = %d, want 3", got)
	}
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input string
		want  Metric
	}{
		{"cells", MetricCells},
		{"CELLS", MetricCells},
		{"graphemes", MetricGraphemes},
		{"", MetricGraphemes},
		{"bogus", MetricGraphemes},
	}
	for _, tt := range tests {
		if got := ParseMetric(tt.input); got != tt.want {
			t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if MetricCells.String() != "cells" || MetricGraphemes.String() != "graphemes" {
		t.Error("Metric.String() does not round-trip with ParseMetric")
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"even padding", "ab", 6, "  ab  "},
		{"odd padding goes to trailing side", "ab", 5, " ab  "},
		{"single extra column", "abc", 4, "abc "},
		{"exact fit", "abcd", 4, "abcd"},
		{"wider than field", "abcdef", 4, "abcdef"},
		{"zero width", "ab", 0, "ab"},
		{"grapheme aware", "é", 3, " é "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadCenter(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("PadCenter(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadCenterWidth(t *testing.T) {
	for width := 0; width < 20; width++ {
		for _, s := range []string{"", "x", "TAB", "👍🏽👍🏽", "NORMAL"} {
			got := Measure(PadCenter(s, width))
			want := width
			if Measure(s) > width {
				want = Measure(s)
			}
			if got != want {
				t.Errorf("Measure(PadCenter(%q, %d)) = %d, want %d", s, width, got, want)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "session", 32, "session"},
		{"exact fit", "abcd", 4, "abcd"},
		{"one over", "abcde", 4, "a..."},
		{"long", "a-very-long-session-name", 10, "a-very-..."},
		{"does not split clusters", "👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽", 5, "👍🏽👍🏽..."},
		{"combining marks stay attached", "ééééé", 4, "é..."},
		{"escapes are dropped", "\x1b[31mabcdefgh\x1b[0m", 6, "abc..."},
		{"degenerate width", "abcdef", 2, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateWidthProperty(t *testing.T) {
	inputs := []string{
		"abcdefghijklmnopqrstuvwxyz",
		strings.Repeat("🇩🇪", 20),
		strings.Repeat("ö", 20),
		"mixed 日本語 and 👍🏽 glyphs in one string",
	}
	for _, s := range inputs {
		for width := 4; width < Measure(s); width++ {
			got := Truncate(s, width)
			if Measure(got) != width {
				t.Errorf("Measure(Truncate(%q, %d)) = %d, want %d", s, width, Measure(got), width)
			}
			if !strings.HasSuffix(got, Ellipsis) {
				t.Errorf("Truncate(%q, %d) = %q, missing ellipsis", s, width, got)
			}
		}
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		glyph string
		width int
		want  string
	}{
		{"-", 5, "-----"},
		{"-", 0, ""},
		{"-", -3, ""},
		{"", 4, ""},
		{"ab", 5, "abab "},
	}
	for _, tt := range tests {
		if got := Repeat(tt.glyph, tt.width); got != tt.want {
			t.Errorf("Repeat(%q, %d) = %q, want %q", tt.glyph, tt.width, got, tt.want)
		}
	}
}
