package hostconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadWorldDataMissingOptionalTablesDegradeGracefully(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "game.json", `{"filler_item_name": "nothing"}`)
	writeFile(t, dir, "items.json", `[{"name": "sword", "count": 1}]`)
	writeFile(t, dir, "locations.json", `[{"name": "chest", "requires": "|sword|"}]`)

	data, err := LoadWorldData(dir)
	require.NoError(t, err)
	assert.Equal(t, "nothing", data.Game.FillerItemName)
	assert.Len(t, data.Items, 1)
	assert.Empty(t, data.Categories)
	assert.Empty(t, data.Regions)
}

func TestLoadYamlOptionsCoercesScalars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	writeFile(t, dir, "player.yaml", `
hard_mode: true
difficulty: 3
goal: "defeat_boss"
deprioritized_locations:
  - "Fishing Hole"
prioritized_locations:
  - "Town Gate"
`)

	y, err := LoadYamlOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, y.Options()["hard_mode"])
	assert.Equal(t, 3, y.Options()["difficulty"])
	assert.Equal(t, "defeat_boss", y.Goal)
	assert.True(t, y.Deprioritized()["Fishing Hole"])
	assert.True(t, y.Prioritized()["Town Gate"])
}
