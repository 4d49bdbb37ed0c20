package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.Equal(t, 30, cfg.Analysis.RecentDays)
	assert.Equal(t, 180, cfg.Analysis.StaleDays)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drivestat.yaml")

	content := []byte(`
logging:
  level: debug
analysis:
  top_n: 5
  recent_days: 7
  stale_days: 90
output: json
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 5, cfg.Analysis.TopN)
	assert.Equal(t, 7, cfg.Analysis.RecentDays)
	assert.Equal(t, 90, cfg.Analysis.StaleDays)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRIVESTAT_ANALYSIS_TOP_N", "25")
	t.Setenv("DRIVESTAT_OUTPUT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Analysis.TopN)
	assert.Equal(t, "json", cfg.Output)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad output", func(c *Config) { c.Output = "xml" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"zero top_n", func(c *Config) { c.Analysis.TopN = 0 }},
		{"huge top_n", func(c *Config) { c.Analysis.TopN = 1000 }},
		{"inverted windows", func(c *Config) {
			c.Analysis.RecentDays = 200
			c.Analysis.StaleDays = 100
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Logging: Logging{Level: "info"},
				Analysis: Analysis{
					TopN:       10,
					RecentDays: 30,
					StaleDays:  180,
				},
				Output: "table",
			}

			require.NoError(t, Validate(cfg))

			tc.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
