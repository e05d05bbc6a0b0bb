package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 595.0, cfg.Layout.PageWidth)
	assert.Equal(t, 842.0, cfg.Layout.PageHeight)
	assert.Equal(t, 0.6, cfg.Layout.QuestionSplit)
	assert.Equal(t, 0.5, cfg.Layout.ExtraSplit)
	assert.Equal(t, "Q", cfg.Output.QuestionPrefix)
	assert.Equal(t, "Extra_space", cfg.Output.ExtraSpaceName)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout:\n  question_split: 0.7\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0.7, cfg.Layout.QuestionSplit)
		// Untouched values keep their defaults.
		assert.Equal(t, 0.5, cfg.Layout.ExtraSplit)
		assert.Equal(t, 40.0, cfg.Layout.LabelBarHeight)
	})

	t.Run("rejects bad geometry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout:\n  question_split: 1.5\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero page width":    func(c *Config) { c.Layout.PageWidth = 0 },
		"extra split at one": func(c *Config) { c.Layout.ExtraSplit = 1 },
		"zero font size":     func(c *Config) { c.Layout.LabelFontSize = 0 },
		"empty prefix":       func(c *Config) { c.Output.QuestionPrefix = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
