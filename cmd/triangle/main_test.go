package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 640\nheight = 480\ntitle = \"file\"\n"), 0o644))

	cmd := newCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--config", path, "--height", "200", "--debug"}))

	opts := options{config: path, height: 200, debug: true}
	cfg, err := windowConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, "file", cfg.Title)
	assert.True(t, cfg.Debug)
}

func TestWindowConfigRejectsBadSize(t *testing.T) {
	cmd := newCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--width", "0"}))

	_, err := windowConfig(cmd, options{width: 0})
	require.Error(t, err)
}
