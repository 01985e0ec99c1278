package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	h, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, History{}, h)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.json")
	h := History{
		Deprioritized: []string{"Fishing Hole"},
		Prioritized:   []string{"Town Gate"},
		Goal:          "defeat_boss",
	}
	require.NoError(t, h.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, h, loaded)
}

func TestDefaultPathHonorsEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("REMOTE_HISTORY_PATH", override)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, override, path)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	require.NoError(t, History{Goal: "x"}.Save(path))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
