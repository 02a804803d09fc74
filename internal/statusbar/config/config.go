// Package config provides YAML configuration support for the status bar
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectFile is looked up in the working directory
	ProjectFile = ".tabline.yaml"
	// AppName is the directory name under the user config directory
	AppName = "tabline"
)

// Config represents the status bar configuration
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Clock    ClockConfig    `yaml:"clock"`
	Segments SegmentsConfig `yaml:"segments"`
	Tabs     TabsConfig     `yaml:"tabs"`
	Render   RenderConfig   `yaml:"render"`
	Update   UpdateConfig   `yaml:"update"`
	History  HistoryConfig  `yaml:"history"`
}

// DisplayConfig controls which elements are displayed
type DisplayConfig struct {
	Show []string `yaml:"show"`
	Hide []string `yaml:"hide"`
}

// ClockConfig controls the clock element
type ClockConfig struct {
	Timezone string `yaml:"timezone"`
	Format   string `yaml:"format"` // Go time layout
	Epoch    bool   `yaml:"epoch"`
	MaxWidth int    `yaml:"maxWidth"`
}

// SegmentsConfig controls the fixed segments
type SegmentsConfig struct {
	ModeMinWidth    int    `yaml:"modeMinWidth"`
	SessionMinWidth int    `yaml:"sessionMinWidth"`
	MaxWidth        int    `yaml:"maxWidth"`
	CapBegin        string `yaml:"capBegin"`
	CapEnd          string `yaml:"capEnd"`
}

// TabsConfig controls tab markers
type TabsConfig struct {
	FullscreenMarker string `yaml:"fullscreenMarker"`
	SyncMarker       string `yaml:"syncMarker"`
	RangeArrow       string `yaml:"rangeArrow"`
}

// RenderConfig controls line rendering
type RenderConfig struct {
	Filler       string `yaml:"filler"`
	ColorProfile string `yaml:"colorProfile"` // "ascii", "ansi", "ansi256" or "truecolor"
	WidthMetric  string `yaml:"widthMetric"`  // "graphemes" or "cells"
}

// UpdateConfig controls the release check
type UpdateConfig struct {
	Check bool `yaml:"check"`
}

// HistoryConfig controls the event recorder
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// Load loads configuration with priority:
// 1. Explicit path (an error if it cannot be read)
// 2. Project-level: .tabline.yaml in projectDir
// 3. Global: <user config dir>/tabline/config.yaml
// 4. Default: built-in defaults
// Environment overrides are applied last.
func Load(path, projectDir string) (*Config, error) {
	cfg, err := load(path, projectDir)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func load(path, projectDir string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	if projectDir != "" {
		projectConfig := filepath.Join(projectDir, ProjectFile)
		if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
			return loadFile(projectConfig)
		}
	}

	if globalConfig := GlobalPath(); globalConfig != "" {
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return loadFile(globalConfig)
		}
	}

	return DefaultConfig(), nil
}

// GlobalPath returns the global config file path, or "" when the user
// config directory is unknown
func GlobalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// loadFile loads configuration from a specific file
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces invalid values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()

	switch strings.ToLower(c.Render.ColorProfile) {
	case "ascii", "ansi", "ansi256", "truecolor":
		c.Render.ColorProfile = strings.ToLower(c.Render.ColorProfile)
	default:
		c.Render.ColorProfile = def.Render.ColorProfile
	}

	switch strings.ToLower(c.Render.WidthMetric) {
	case "graphemes", "cells":
		c.Render.WidthMetric = strings.ToLower(c.Render.WidthMetric)
	default:
		c.Render.WidthMetric = def.Render.WidthMetric
	}

	if c.Render.Filler == "" {
		c.Render.Filler = def.Render.Filler
	}
	if c.Segments.ModeMinWidth < 0 {
		c.Segments.ModeMinWidth = def.Segments.ModeMinWidth
	}
	if c.Segments.SessionMinWidth < 0 {
		c.Segments.SessionMinWidth = def.Segments.SessionMinWidth
	}
	if c.Segments.MaxWidth <= 0 {
		c.Segments.MaxWidth = def.Segments.MaxWidth
	}
	if c.Clock.MaxWidth <= 0 {
		c.Clock.MaxWidth = def.Clock.MaxWidth
	}
	if c.Tabs.RangeArrow == "" {
		c.Tabs.RangeArrow = def.Tabs.RangeArrow
	}
}

// applyEnv applies TABLINE_* environment overrides
func applyEnv(c *Config) {
	if tz := os.Getenv("TABLINE_TIMEZONE"); tz != "" {
		c.Clock.Timezone = tz
	}
	if profile := os.Getenv("TABLINE_COLOR_PROFILE"); profile != "" {
		c.Render.ColorProfile = profile
	}
	if metric := os.Getenv("TABLINE_WIDTH_METRIC"); metric != "" {
		c.Render.WidthMetric = metric
	}
	c.normalize()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Show: nil,
			Hide: nil,
		},
		Clock: ClockConfig{
			Timezone: "UTC",
			Format:   "",
			Epoch:    true,
			MaxWidth: 64,
		},
		Segments: SegmentsConfig{
			ModeMinWidth:    10,
			SessionMinWidth: 10,
			MaxWidth:        32,
		},
		Tabs: TabsConfig{
			FullscreenMarker: "\U000F0293",
			SyncMarker:       "\U000F1378",
			RangeArrow:       "→",
		},
		Render: RenderConfig{
			Filler:       "-",
			ColorProfile: "ansi256",
			WidthMetric:  "graphemes",
		},
		Update: UpdateConfig{
			Check: false,
		},
		History: HistoryConfig{
			Path: "",
		},
	}
}

// ShouldShow returns true if the given element should be displayed
func (c *Config) ShouldShow(element string) bool {
	for _, h := range c.Display.Hide {
		if h == element {
			return false
		}
	}

	// If show is empty, show everything (except hide list)
	if len(c.Display.Show) == 0 {
		return true
	}

	for _, s := range c.Display.Show {
		if s == element {
			return true
		}
	}
	return false
}

// HistoryPath returns the event database path, defaulting to the user
// cache directory
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName, "history.db")
}
