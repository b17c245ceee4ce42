package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
	assert.Equal(t, 10, s.Chunks.Size)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunkview.yaml")
	data := []byte("chunks:\n  size: 16\n  cubic: true\n  visit_policy: accumulate\ncamera:\n  speed: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, s.Chunks.Size)
	assert.True(t, s.Chunks.Cubic)
	assert.Equal(t, "accumulate", s.Chunks.VisitPolicy)
	assert.Equal(t, float32(5), s.Camera.Speed)
	// untouched fields keep their defaults
	assert.Equal(t, float32(0.1), s.Camera.Sensitivity)
	assert.Equal(t, 1, s.Chunks.VisitRadius)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero chunk size": "chunks:\n  size: 0\n",
		"bad policy":      "chunks:\n  visit_policy: everything\n",
		"negative radius": "chunks:\n  visit_radius: -2\n",
		"bad planes":      "render:\n  near: 10\n  far: 1\n",
		"malformed":       "chunks: [\n",
		"bad log level":   "log_level: loud\n",
		"tiny terrain":    "terrain:\n  procedural: true\n  size: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chunkview.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLevel(t *testing.T) {
	s := Default()
	lvl, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	s.LogLevel = "DEBUG"
	lvl, err = s.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
