package world

import "github.com/jwebster45206/realm-engine/pkg/calendar"

// Terrain is the tile surface type.
type Terrain string

const (
	Grass    Terrain = "grass"
	Forest   Terrain = "forest"
	Mountain Terrain = "mountain"
	Water    Terrain = "water"
	Sand     Terrain = "sand"
	Ruins    Terrain = "ruins"
	Dungeon  Terrain = "dungeon"
	Road     Terrain = "road"
	Floor    Terrain = "floor"
	Wall     Terrain = "wall"
	House    Terrain = "house"
	Door     Terrain = "door"
)

// Wilderness reports whether a terrain is eligible for encounters and
// foraging.
func Wilderness(t Terrain) bool {
	switch t {
	case Grass, Forest, Mountain, Dungeon, Ruins, Water:
		return true
	}
	return false
}

// Walkable reports whether the player can step onto a terrain.
func Walkable(t Terrain) bool {
	switch t {
	case Wall, House:
		return false
	}
	return true
}

// Kind distinguishes map scales; the world map uses a larger step cost.
type Kind string

const (
	KindWorld   Kind = "world"
	KindVillage Kind = "village"
	KindCity    Kind = "city"
	KindHome    Kind = "home"
)

// Portal links a tile to a destination map and position.
type Portal struct {
	MapID string `json:"map_id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Tile is one map cell. Tiles never mutate after generation; the
// explored flag lives in the map's bitset so change detection can rely
// on tile identity.
type Tile struct {
	Terrain Terrain `json:"terrain"`
	Portal  *Portal `json:"portal,omitempty"`
}

// Map is a tile grid plus a per-map explored bitset indexed y*Width+x.
type Map struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Tiles    [][]Tile `json:"tiles"`
	Explored []uint64 `json:"explored"`
}

// In reports whether (x, y) is within bounds.
func (m *Map) In(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y), or nil when out of bounds.
func (m *Map) At(x, y int) *Tile {
	if !m.In(x, y) {
		return nil
	}
	return &m.Tiles[y][x]
}

// ExploredAt reports whether the tile at (x, y) has been stepped on.
func (m *Map) ExploredAt(x, y int) bool {
	if !m.In(x, y) {
		return false
	}
	i := y*m.Width + x
	if i/64 >= len(m.Explored) {
		return false
	}
	return m.Explored[i/64]&(1<<(i%64)) != 0
}

// MarkExplored returns a copy of the map with the tile at (x, y)
// flagged explored. The tile grid is shared with the receiver; only the
// map header and bitset are cloned, so untouched structure keeps its
// identity for shallow-equality change detection.
func (m *Map) MarkExplored(x, y int) *Map {
	if !m.In(x, y) || m.ExploredAt(x, y) {
		return m
	}
	clone := *m
	clone.Explored = make([]uint64, (m.Width*m.Height+63)/64)
	copy(clone.Explored, m.Explored)
	i := y*m.Width + x
	clone.Explored[i/64] |= 1 << (i % 64)
	return &clone
}

// StepCost is the clock cost in minutes of stepping onto a tile.
// Mountain and water override the map-based cost on any map.
func StepCost(m *Map, t Terrain) int {
	if t == Mountain || t == Water {
		return calendar.CostRoughTerrain
	}
	if m.Kind == KindWorld {
		return calendar.CostWorldStep
	}
	return calendar.CostLocalStep
}
