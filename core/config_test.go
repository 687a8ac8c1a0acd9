package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/core"
	"diamond-gl/math"
)

func TestParseWindowConfigKeepsDefaults(t *testing.T) {
	config, err := core.ParseWindowConfig([]byte(`
title = "triangle"
width = 640
vsync = false

[background]
r = 1.0
a = 0.5
`))
	require.NoError(t, err)

	defaults := core.DefaultWindowConfig()
	assert.Equal(t, "triangle", config.Title)
	assert.Equal(t, 640, config.Width)
	assert.Equal(t, defaults.Height, config.Height)
	assert.False(t, config.VSync)
	assert.Equal(t, 4, config.GLMajor)
	assert.Equal(t, 6, config.GLMinor)
	assert.Equal(t, math.NewVec4(1, defaults.Background.G, defaults.Background.B, 0.5), config.Background.Vec4())
}

func TestParseWindowConfigRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      `width = `,
		"zero height": `height = 0`,
		"old context": "gl_major = 4\ngl_minor = 1",
		"samples":     `samples = -2`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := core.ParseWindowConfig([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestLoadWindowConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("fullscreen = true\nsamples = 8\n"), 0o644))

	config, err := core.LoadWindowConfig(path)
	require.NoError(t, err)
	assert.True(t, config.Fullscreen)
	assert.Equal(t, 8, config.Samples)

	_, err = core.LoadWindowConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultWindowConfigIsValid(t *testing.T) {
	assert.NoError(t, core.DefaultWindowConfig().Validate())
}
