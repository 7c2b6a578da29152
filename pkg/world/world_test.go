package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkExplored_CopyOnWrite(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Generate(rng)[HomeMapID]

	marked := m.MarkExplored(2, 3)
	require.NotSame(t, m, marked)
	assert.True(t, marked.ExploredAt(2, 3))
	assert.False(t, m.ExploredAt(2, 3), "original must be untouched")

	// The tile grid itself stays shared.
	assert.Same(t, &m.Tiles[0][0], &marked.Tiles[0][0])
}

func TestMarkExplored_AlreadyExploredReturnsReceiver(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Generate(rng)[HomeMapID]

	once := m.MarkExplored(2, 3)
	twice := once.MarkExplored(2, 3)
	assert.Same(t, once, twice)
}

func TestMarkExplored_OutOfBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Generate(rng)[HomeMapID]

	assert.Same(t, m, m.MarkExplored(-1, 0))
	assert.Same(t, m, m.MarkExplored(m.Width, 0))
}

func TestStepCost(t *testing.T) {
	world := &Map{Kind: KindWorld}
	village := &Map{Kind: KindVillage}

	assert.Equal(t, 5, StepCost(world, Grass))
	assert.Equal(t, 1, StepCost(village, Road))
	// Rough terrain costs the same everywhere.
	assert.Equal(t, 10, StepCost(world, Mountain))
	assert.Equal(t, 10, StepCost(village, Water))
}

func TestWalkable(t *testing.T) {
	assert.False(t, Walkable(Wall))
	assert.False(t, Walkable(House))
	assert.True(t, Walkable(Grass))
	assert.True(t, Walkable(Door))
	assert.True(t, Walkable(Water))
}

func TestWilderness(t *testing.T) {
	for _, terr := range []Terrain{Grass, Forest, Mountain, Dungeon, Ruins, Water} {
		assert.True(t, Wilderness(terr), string(terr))
	}
	for _, terr := range []Terrain{Road, Floor, Wall, House, Door, Sand} {
		assert.False(t, Wilderness(terr), string(terr))
	}
}

func TestGenerate_ProducesAllMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	maps := Generate(rng)

	for _, id := range []string{WorldMapID, VillageMapID, CityMapID, HomeMapID} {
		m, ok := maps[id]
		require.True(t, ok, id)
		assert.Equal(t, id, m.ID)
		assert.Equal(t, m.Height, len(m.Tiles))
		for _, row := range m.Tiles {
			assert.Equal(t, m.Width, len(row))
		}
	}
	assert.Equal(t, KindWorld, maps[WorldMapID].Kind)
}

func TestGenerate_PortalsResolve(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	maps := Generate(rng)

	portals := 0
	for _, m := range maps {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				p := m.Tiles[y][x].Portal
				if p == nil {
					continue
				}
				portals++
				dest, ok := maps[p.MapID]
				require.True(t, ok, "portal in %s points to unknown map %s", m.ID, p.MapID)
				assert.True(t, dest.In(p.X, p.Y), "portal in %s lands outside %s", m.ID, p.MapID)
				assert.True(t, Walkable(dest.Tiles[p.Y][p.X].Terrain),
					"portal in %s lands on unwalkable tile of %s", m.ID, p.MapID)
			}
		}
	}
	assert.GreaterOrEqual(t, portals, 5, "expected world portals plus return portals")
}

func TestGenerate_WorldBorderIsWater(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := Generate(rng)[WorldMapID]

	for i := 0; i < m.Width; i++ {
		assert.Equal(t, Water, m.Tiles[0][i].Terrain)
		assert.Equal(t, Water, m.Tiles[m.Height-1][i].Terrain)
		assert.Equal(t, Water, m.Tiles[i][0].Terrain)
		assert.Equal(t, Water, m.Tiles[i][m.Width-1].Terrain)
	}
}
