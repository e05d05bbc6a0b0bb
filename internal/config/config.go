// Package config holds the run configuration: output page geometry, region
// split fractions and label styling. Values come from defaults, optionally
// overridden by a yaml file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all collator configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
}

// LayoutConfig configures composite-page geometry, in PDF points. PageWidth
// and PageHeight describe the portrait base size; composite pages use the
// swapped, landscape orientation.
type LayoutConfig struct {
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`

	// QuestionSplit is the left-region width fraction on question pages;
	// ExtraSplit the same for two-up extra-space pages.
	QuestionSplit float64 `yaml:"question_split"`
	ExtraSplit    float64 `yaml:"extra_split"`

	LabelBarHeight float64 `yaml:"label_bar_height"`
	LabelFontSize  float64 `yaml:"label_font_size"`
	LabelInsetX    float64 `yaml:"label_inset_x"`
	LabelBaseline  float64 `yaml:"label_baseline"`
}

// OutputConfig configures output document naming.
type OutputConfig struct {
	QuestionPrefix string `yaml:"question_prefix"`
	ExtraSpaceName string `yaml:"extra_space_name"`
}

// Default returns the stock configuration: A4 pages, 60/40 question split,
// 50/50 extra-space split, 40pt label bar with 14pt Helvetica.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			PageWidth:      595,
			PageHeight:     842,
			QuestionSplit:  0.6,
			ExtraSplit:     0.5,
			LabelBarHeight: 40,
			LabelFontSize:  14,
			LabelInsetX:    10,
			LabelBaseline:  12,
		},
		Output: OutputConfig{
			QuestionPrefix: "Q",
			ExtraSpaceName: "Extra_space",
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects geometry that cannot produce a sane composite page.
func (c *Config) Validate() error {
	l := c.Layout
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g", l.PageWidth, l.PageHeight)
	}
	if l.QuestionSplit <= 0 || l.QuestionSplit >= 1 {
		return fmt.Errorf("question_split must be between 0 and 1, got %g", l.QuestionSplit)
	}
	if l.ExtraSplit <= 0 || l.ExtraSplit >= 1 {
		return fmt.Errorf("extra_split must be between 0 and 1, got %g", l.ExtraSplit)
	}
	if l.LabelBarHeight < 0 || l.LabelFontSize <= 0 {
		return fmt.Errorf("label bar height and font size must be positive")
	}
	if c.Output.QuestionPrefix == "" || c.Output.ExtraSpaceName == "" {
		return fmt.Errorf("output names must not be empty")
	}
	return nil
}
