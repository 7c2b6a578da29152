package content

import (
	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

// EnemyTemplate is a static enemy archetype scaled at spawn time by the
// enemy generator.
type EnemyTemplate struct {
	Name string            `json:"name"`
	Base actor.Stats       `json:"base"`
	Loot []actor.LootEntry `json:"loot,omitempty"`
}

func lootOf(id string, chance float64) actor.LootEntry {
	return actor.LootEntry{Item: Consumables[id], Chance: chance}
}

// EnemyTemplates lists spawnable archetypes per wilderness terrain.
// Tiles with no list fall back to the grassland table.
var EnemyTemplates = map[world.Terrain][]EnemyTemplate{
	world.Grass: {
		{Name: "Wolf", Base: actor.Stats{Strength: 6, Dexterity: 5, Constitution: 4, Intelligence: 1, Speed: 7, Luck: 3},
			Loot: []actor.LootEntry{lootOf(ItemFang, 0.5), lootOf(ItemPelt, 0.3)}},
		{Name: "Boar", Base: actor.Stats{Strength: 7, Dexterity: 3, Constitution: 6, Intelligence: 1, Speed: 4, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemSteak, 0.4), lootOf(ItemPelt, 0.25)}},
		{Name: "Slime", Base: actor.Stats{Strength: 3, Dexterity: 2, Constitution: 5, Intelligence: 1, Speed: 2, Luck: 4},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.35)}},
		{Name: "Bandit", Base: actor.Stats{Strength: 5, Dexterity: 6, Constitution: 4, Intelligence: 3, Speed: 5, Luck: 4},
			Loot: []actor.LootEntry{lootOf(ItemBread, 0.5), lootOf(ItemPotion, 0.15)}},
	},
	world.Forest: {
		{Name: "Goblin", Base: actor.Stats{Strength: 4, Dexterity: 6, Constitution: 3, Intelligence: 2, Speed: 6, Luck: 5},
			Loot: []actor.LootEntry{lootOf(ItemFang, 0.3), lootOf(ItemDust, 0.2)}},
		{Name: "Giant Spider", Base: actor.Stats{Strength: 5, Dexterity: 7, Constitution: 3, Intelligence: 1, Speed: 7, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.3)}},
		{Name: "Dire Wolf", Base: actor.Stats{Strength: 8, Dexterity: 6, Constitution: 5, Intelligence: 1, Speed: 8, Luck: 3},
			Loot: []actor.LootEntry{lootOf(ItemFang, 0.6), lootOf(ItemPelt, 0.5)}},
	},
	world.Mountain: {
		{Name: "Harpy", Base: actor.Stats{Strength: 5, Dexterity: 7, Constitution: 4, Intelligence: 3, Speed: 9, Luck: 4},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.4)}},
		{Name: "Rock Golem", Base: actor.Stats{Strength: 10, Dexterity: 2, Constitution: 10, Intelligence: 1, Speed: 2, Luck: 1},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.5)}},
	},
	world.Water: {
		{Name: "Drowned One", Base: actor.Stats{Strength: 6, Dexterity: 4, Constitution: 6, Intelligence: 2, Speed: 3, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.3)}},
		{Name: "Siren", Base: actor.Stats{Strength: 3, Dexterity: 5, Constitution: 3, Intelligence: 8, Speed: 6, Luck: 5},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.45), lootOf(ItemFlower, 0.3)}},
	},
	world.Ruins: {
		{Name: "Skeleton", Base: actor.Stats{Strength: 5, Dexterity: 4, Constitution: 4, Intelligence: 1, Speed: 4, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.35)}},
		{Name: "Ghoul", Base: actor.Stats{Strength: 7, Dexterity: 5, Constitution: 6, Intelligence: 2, Speed: 5, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemFang, 0.4)}},
	},
	world.Dungeon: {
		{Name: "Cave Troll", Base: actor.Stats{Strength: 11, Dexterity: 3, Constitution: 9, Intelligence: 1, Speed: 3, Luck: 2},
			Loot: []actor.LootEntry{lootOf(ItemPelt, 0.5), lootOf(ItemPotion, 0.25)}},
		{Name: "Wraith", Base: actor.Stats{Strength: 4, Dexterity: 6, Constitution: 4, Intelligence: 9, Speed: 7, Luck: 4},
			Loot: []actor.LootEntry{lootOf(ItemDust, 0.6), lootOf(ItemMaxPotion, 0.05)}},
	},
}

// TemplatesFor returns the archetype list for a terrain, falling back
// to grassland when the terrain has none.
func TemplatesFor(t world.Terrain) []EnemyTemplate {
	if list, ok := EnemyTemplates[t]; ok && len(list) > 0 {
		return list
	}
	return EnemyTemplates[world.Grass]
}
