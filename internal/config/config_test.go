package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qpusanity/internal/checks"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, checks.DefaultTolerance, cfg.Checks.Tolerance)
	assert.Equal(t, checks.DefaultMinSpanDays, cfg.Checks.MinSpanDays)
	assert.Equal(t, int64(checks.DefaultMaxWorkloadsPerDay), cfg.Checks.MaxWorkloadsPerDay)
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	path := writeConfig(t, "checks:\n  tolerance: 0.1\n  max_span_days: 200\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, cfg.Checks.Tolerance)
	assert.Equal(t, 200, cfg.Checks.MaxSpanDays)
	// Untouched thresholds keep their defaults.
	assert.Equal(t, checks.DefaultMinSpanDays, cfg.Checks.MinSpanDays)
	assert.Equal(t, int64(checks.DefaultMinBlocksPerDay), cfg.Checks.MinBlocksPerDay)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "checks:\n  tolerence: 0.1\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsInvalidThresholds(t *testing.T) {
	cases := []string{
		"checks:\n  tolerance: 1.5\n",
		"checks:\n  min_span_days: 200\n  max_span_days: 100\n",
		"checks:\n  new_share_min: 0.7\n  new_share_max: 0.6\n",
		"checks:\n  min_blocks_per_day: -1\n",
	}
	for _, content := range cases {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, content)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
