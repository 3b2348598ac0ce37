package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewLogger_WritesJSONToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: path,
		Rotation: config.RotationConfig{Enabled: true, MaxSize: 1},
	}

	logger, closer, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("day simulated", "day", 3)
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"day simulated"`)
	assert.Contains(t, string(data), `"day":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLogger_UnsupportedOutput(t *testing.T) {
	_, _, err := NewLogger(config.LoggingConfig{Output: "syslog"})

	assert.Error(t, err)
}
