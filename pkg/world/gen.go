package world

import "math/rand"

// Canonical map ids. The world map hosts portals into the three local
// maps; local maps portal back to their world tile.
const (
	WorldMapID   = "world"
	VillageMapID = "village"
	CityMapID    = "city"
	HomeMapID    = "home"
)

const (
	worldSize   = 48
	villageSize = 24
	citySize    = 32
	homeSize    = 8
)

// Generate builds the full map set. World, village and city layouts are
// procedural from rng; the home interior is fixed. Maps are generated
// once at startup and their tiles never mutate afterwards.
func Generate(rng *rand.Rand) map[string]*Map {
	maps := map[string]*Map{
		WorldMapID:   generateWorld(rng),
		VillageMapID: generateVillage(rng),
		CityMapID:    generateCity(rng),
		HomeMapID:    generateHome(),
	}
	return maps
}

func newMap(id, name string, kind Kind, size int) *Map {
	m := &Map{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Width:  size,
		Height: size,
		Tiles:  make([][]Tile, size),
	}
	for y := range m.Tiles {
		m.Tiles[y] = make([]Tile, size)
	}
	m.Explored = make([]uint64, (size*size+63)/64)
	return m
}

func generateWorld(rng *rand.Rand) *Map {
	m := newMap(WorldMapID, "Wilds of Eldermere", KindWorld, worldSize)
	for y := 0; y < worldSize; y++ {
		for x := 0; x < worldSize; x++ {
			m.Tiles[y][x] = Tile{Terrain: rollWorldTerrain(rng)}
		}
	}
	// Ocean border keeps the player inside the grid's interior.
	for i := 0; i < worldSize; i++ {
		m.Tiles[0][i] = Tile{Terrain: Water}
		m.Tiles[worldSize-1][i] = Tile{Terrain: Water}
		m.Tiles[i][0] = Tile{Terrain: Water}
		m.Tiles[i][worldSize-1] = Tile{Terrain: Water}
	}
	// Settlement portals sit on road tiles so arrival never costs
	// rough-terrain time.
	place := func(x, y int, id string, dx, dy int) {
		m.Tiles[y][x] = Tile{Terrain: Road, Portal: &Portal{MapID: id, X: dx, Y: dy}}
	}
	place(12, 12, VillageMapID, villageSize/2, villageSize-2)
	place(34, 30, CityMapID, citySize/2, citySize-2)
	place(12, 11, HomeMapID, homeSize/2, homeSize-2)
	return m
}

func rollWorldTerrain(rng *rand.Rand) Terrain {
	r := rng.Float64()
	switch {
	case r < 0.48:
		return Grass
	case r < 0.70:
		return Forest
	case r < 0.82:
		return Mountain
	case r < 0.90:
		return Water
	case r < 0.96:
		return Sand
	case r < 0.985:
		return Ruins
	default:
		return Dungeon
	}
}

func generateVillage(rng *rand.Rand) *Map {
	m := newMap(VillageMapID, "Thornbury Village", KindVillage, villageSize)
	for y := 0; y < villageSize; y++ {
		for x := 0; x < villageSize; x++ {
			m.Tiles[y][x] = Tile{Terrain: Grass}
		}
	}
	// Crossroads through the center.
	for i := 0; i < villageSize; i++ {
		m.Tiles[villageSize/2][i] = Tile{Terrain: Road}
		m.Tiles[i][villageSize/2] = Tile{Terrain: Road}
	}
	// Houses scattered off the roads.
	for n := 0; n < 8; n++ {
		x := 2 + rng.Intn(villageSize-4)
		y := 2 + rng.Intn(villageSize-4)
		if m.Tiles[y][x].Terrain == Grass {
			m.Tiles[y][x] = Tile{Terrain: House}
		}
	}
	// South road exit returns to the world map.
	m.Tiles[villageSize-1][villageSize/2] = Tile{
		Terrain: Road,
		Portal:  &Portal{MapID: WorldMapID, X: 12, Y: 13},
	}
	return m
}

func generateCity(rng *rand.Rand) *Map {
	m := newMap(CityMapID, "Aldhaven", KindCity, citySize)
	for y := 0; y < citySize; y++ {
		for x := 0; x < citySize; x++ {
			m.Tiles[y][x] = Tile{Terrain: Floor}
		}
	}
	for i := 0; i < citySize; i++ {
		m.Tiles[0][i] = Tile{Terrain: Wall}
		m.Tiles[citySize-1][i] = Tile{Terrain: Wall}
		m.Tiles[i][0] = Tile{Terrain: Wall}
		m.Tiles[i][citySize-1] = Tile{Terrain: Wall}
	}
	// Street grid every four tiles.
	for y := 4; y < citySize-1; y += 4 {
		for x := 1; x < citySize-1; x++ {
			m.Tiles[y][x] = Tile{Terrain: Road}
		}
	}
	for n := 0; n < 14; n++ {
		x := 2 + rng.Intn(citySize-4)
		y := 2 + rng.Intn(citySize-4)
		if m.Tiles[y][x].Terrain == Floor {
			m.Tiles[y][x] = Tile{Terrain: House}
		}
	}
	// South gate back to the world map.
	m.Tiles[citySize-1][citySize/2] = Tile{
		Terrain: Door,
		Portal:  &Portal{MapID: WorldMapID, X: 34, Y: 31},
	}
	return m
}

func generateHome() *Map {
	m := newMap(HomeMapID, "Home", KindHome, homeSize)
	for y := 0; y < homeSize; y++ {
		for x := 0; x < homeSize; x++ {
			t := Floor
			if x == 0 || y == 0 || x == homeSize-1 || y == homeSize-1 {
				t = Wall
			}
			m.Tiles[y][x] = Tile{Terrain: t}
		}
	}
	m.Tiles[homeSize-1][homeSize/2] = Tile{
		Terrain: Door,
		Portal:  &Portal{MapID: WorldMapID, X: 12, Y: 10},
	}
	return m
}
