// Package config provides YAML configuration support for the status bar
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points every lookup location at empty temp directories
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("TABLINE_TIMEZONE", "")
	t.Setenv("TABLINE_COLOR_PROFILE", "")
	t.Setenv("TABLINE_WIDTH_METRIC", "")
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Clock.Timezone != "UTC" {
		t.Errorf("Default Timezone should be 'UTC', got '%s'", cfg.Clock.Timezone)
	}
	if !cfg.Clock.Epoch {
		t.Error("Default Epoch should be true")
	}
	if cfg.Clock.MaxWidth != 64 {
		t.Errorf("Default clock MaxWidth should be 64, got %d", cfg.Clock.MaxWidth)
	}
	if cfg.Segments.ModeMinWidth != 10 || cfg.Segments.SessionMinWidth != 10 {
		t.Errorf("Default min widths should be 10, got %d/%d", cfg.Segments.ModeMinWidth, cfg.Segments.SessionMinWidth)
	}
	if cfg.Segments.MaxWidth != 32 {
		t.Errorf("Default segment MaxWidth should be 32, got %d", cfg.Segments.MaxWidth)
	}
	if cfg.Render.Filler != "-" {
		t.Errorf("Default Filler should be '-', got '%s'", cfg.Render.Filler)
	}
	if cfg.Render.ColorProfile != "ansi256" {
		t.Errorf("Default ColorProfile should be 'ansi256', got '%s'", cfg.Render.ColorProfile)
	}
	if cfg.Render.WidthMetric != "graphemes" {
		t.Errorf("Default WidthMetric should be 'graphemes', got '%s'", cfg.Render.WidthMetric)
	}
	if cfg.Tabs.RangeArrow != "→" {
		t.Errorf("Default RangeArrow should be '→', got '%s'", cfg.Tabs.RangeArrow)
	}
	if cfg.Update.Check {
		t.Error("Default update Check should be false")
	}
}

func TestShouldShow(t *testing.T) {
	tests := []struct {
		name    string
		show    []string
		hide    []string
		element string
		want    bool
	}{
		{"empty show/hide - shows everything", nil, nil, "clock", true},
		{"show list - only shows listed items", []string{"mode", "tabs"}, nil, "mode", true},
		{"show list - hides unlisted items", []string{"mode", "tabs"}, nil, "clock", false},
		{"hide list - hides listed items", nil, []string{"session"}, "session", false},
		{"hide list - shows unlisted items", nil, []string{"session"}, "mode", true},
		{"both lists - hide takes priority", []string{"mode", "clock"}, []string{"clock"}, "clock", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Display: DisplayConfig{Show: tt.show, Hide: tt.hide}}
			if got := cfg.ShouldShow(tt.element); got != tt.want {
				t.Errorf("ShouldShow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "full config",
			content: `
display:
  hide: [session]
clock:
  timezone: Europe/Berlin
  format: "15:04"
  epoch: false
segments:
  modeMinWidth: 8
  capBegin: "<"
  capEnd: ">"
tabs:
  rangeArrow: "..."
render:
  filler: "="
  colorProfile: TrueColor
  widthMetric: cells
update:
  check: true
history:
  path: /tmp/events.db
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Clock.Timezone != "Europe/Berlin" || cfg.Clock.Format != "15:04" || cfg.Clock.Epoch {
					t.Errorf("clock = %+v", cfg.Clock)
				}
				if cfg.Segments.ModeMinWidth != 8 || cfg.Segments.SessionMinWidth != 10 {
					t.Errorf("segments = %+v", cfg.Segments)
				}
				if cfg.Segments.CapBegin != "<" || cfg.Segments.CapEnd != ">" {
					t.Errorf("caps = %q %q", cfg.Segments.CapBegin, cfg.Segments.CapEnd)
				}
				if cfg.Tabs.RangeArrow != "..." || cfg.Tabs.SyncMarker == "" {
					t.Errorf("tabs = %+v", cfg.Tabs)
				}
				if cfg.Render.Filler != "=" || cfg.Render.ColorProfile != "truecolor" || cfg.Render.WidthMetric != "cells" {
					t.Errorf("render = %+v", cfg.Render)
				}
				if !cfg.Update.Check || cfg.History.Path != "/tmp/events.db" {
					t.Errorf("update/history = %+v %+v", cfg.Update, cfg.History)
				}
				if cfg.ShouldShow("session") {
					t.Error("session should be hidden")
				}
			},
		},
		{
			name: "invalid values fall back to defaults",
			content: `
render:
  colorProfile: sixteen-million
  widthMetric: bytes
  filler: ""
segments:
  maxWidth: -4
clock:
  maxWidth: 0
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Render.ColorProfile != "ansi256" {
					t.Errorf("ColorProfile = %q, want ansi256", cfg.Render.ColorProfile)
				}
				if cfg.Render.WidthMetric != "graphemes" {
					t.Errorf("WidthMetric = %q, want graphemes", cfg.Render.WidthMetric)
				}
				if cfg.Render.Filler != "-" {
					t.Errorf("Filler = %q, want -", cfg.Render.Filler)
				}
				if cfg.Segments.MaxWidth != 32 || cfg.Clock.MaxWidth != 64 {
					t.Errorf("max widths = %d/%d", cfg.Segments.MaxWidth, cfg.Clock.MaxWidth)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: "clock: [unclosed",
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, "config"+string(rune('0'+i))+".yaml")
			writeFile(t, path, tt.content)

			cfg, err := loadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("loadFile() error = %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()

	cfg, err := Load("", project)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Filler != "-" {
		t.Errorf("expected defaults without config files, got filler %q", cfg.Render.Filler)
	}

	writeFile(t, filepath.Join(home, ".config", AppName, "config.yaml"), "render:\n  filler: g\n")
	cfg, err = Load("", project)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Filler != "g" {
		t.Errorf("expected global config, got filler %q", cfg.Render.Filler)
	}

	writeFile(t, filepath.Join(project, ProjectFile), "render:\n  filler: p\n")
	cfg, err = Load("", project)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Filler != "p" {
		t.Errorf("expected project config, got filler %q", cfg.Render.Filler)
	}

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicit, "render:\n  filler: e\n")
	cfg, err = Load(explicit, project)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Filler != "e" {
		t.Errorf("expected explicit config, got filler %q", cfg.Render.Filler)
	}

	if _, err := Load(filepath.Join(project, "nope.yaml"), project); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TABLINE_TIMEZONE", "Asia/Tokyo")
	t.Setenv("TABLINE_COLOR_PROFILE", "ascii")
	t.Setenv("TABLINE_WIDTH_METRIC", "CELLS")

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Clock.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q", cfg.Clock.Timezone)
	}
	if cfg.Render.ColorProfile != "ascii" {
		t.Errorf("ColorProfile = %q", cfg.Render.ColorProfile)
	}
	if cfg.Render.WidthMetric != "cells" {
		t.Errorf("WidthMetric = %q", cfg.Render.WidthMetric)
	}
}

func TestHistoryPath(t *testing.T) {
	home := isolate(t)

	cfg := DefaultConfig()
	want := filepath.Join(home, ".cache", AppName, "history.db")
	if got := cfg.HistoryPath(); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}

	cfg.History.Path = "/var/tmp/x.db"
	if got := cfg.HistoryPath(); got != "/var/tmp/x.db" {
		t.Errorf("HistoryPath() = %q", got)
	}
}
