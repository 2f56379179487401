package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = `
prefabs:
  - name: goblin
    count: 3
    tags: [npc, hostile]
    components:
      position: {x: 1, y: 2.5}
      health: {value: 30, max: 30}
  - name: villager
    tags: [npc, friendly]
    components:
      name: {value: 村民}
`

func TestParsePrefabTable(t *testing.T) {
	tbl, err := ParsePrefabTable([]byte(sampleList))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Count())
	assert.Equal(t, 4, tbl.Total(), "villager count defaults to 1")

	g, ok := tbl.Get("goblin")
	require.True(t, ok)
	assert.Equal(t, []string{"npc", "hostile"}, g.Tags)
	assert.Equal(t, []string{"health", "position"}, g.ComponentNames())
	assert.Equal(t, 2.5, g.Components["position"]["y"])
	assert.Equal(t, 1, g.Components["position"]["x"])

	v, ok := tbl.Get("villager")
	require.True(t, ok)
	assert.Equal(t, "村民", v.Components["name"]["value"])

	_, ok = tbl.Get("dragon")
	assert.False(t, ok)
}

func TestParsePrefabTableErrors(t *testing.T) {
	_, err := ParsePrefabTable([]byte("prefabs:\n  - count: 2\n"))
	assert.ErrorContains(t, err, "no name")

	_, err = ParsePrefabTable([]byte("prefabs:\n  - name: a\n  - name: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParsePrefabTable([]byte("prefabs:\n  - name: a\n    count: -1\n"))
	assert.ErrorContains(t, err, "negative")

	_, err = ParsePrefabTable([]byte("prefabs: [\n"))
	assert.Error(t, err)
}

func TestLoadPrefabTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefab_list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))

	tbl, err := LoadPrefabTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Count())

	_, err = LoadPrefabTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read prefab_list")
}
