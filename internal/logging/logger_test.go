package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/vidmeta/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.Config{ColorMode: config.ColorNever}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		ColorMode: config.ColorNever,
		LogFile:   filepath.Join(dir, "vidmeta.log"),
	}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)

	l.Info("to file")
	l.Error("and an error")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.Contains(t, string(b), "[ERROR] and an error")
	// File sink stays plain even if colors were wanted elsewhere.
	assert.NotContains(t, string(b), "\033[")
}

func TestNewLogger_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		ColorMode: config.ColorNever,
		LogFile:   filepath.Join(dir, "nested", "logs", "vidmeta.log"),
	}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()

	l.Info("creates parents")
	_, statErr := os.Stat(filepath.Dir(cfg.LogFile))
	assert.NoError(t, statErr)
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		ColorMode: config.ColorNever,
		LogFile:   filepath.Join(dir, "vidmeta.log"),
	}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)

	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "[DEBUG] shown")
}
