package game

import (
	"path/filepath"
	"testing"

	"chunkview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTerrain(t *testing.T) {
	hm, err := loadTerrain(config.TerrainSettings{})
	require.NoError(t, err)
	assert.Nil(t, hm)

	hm, err = loadTerrain(config.TerrainSettings{Procedural: true, Seed: 5, Size: 16})
	require.NoError(t, err)
	require.NotNil(t, hm)
	assert.Equal(t, 16, hm.Width)
	assert.Equal(t, 16, hm.Depth)

	_, err = loadTerrain(config.TerrainSettings{
		Heightmap:  filepath.Join(t.TempDir(), "missing.png"),
		Procedural: true,
		Size:       16,
	})
	assert.Error(t, err, "a configured image must not silently fall back to noise")
}
