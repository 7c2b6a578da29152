package content

import (
	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

// NPCs returns the fixed world roster. Instances are created once at
// world generation and never added or removed afterwards.
func NPCs() []actor.NPC {
	return []actor.NPC{
		{ID: "mira", Name: "Mira", Role: "merchant",
			MapID: world.VillageMapID, X: 10, Y: 12, DialogueID: "merchant_greet"},
		{ID: "borin", Name: "Borin", Role: "blacksmith",
			MapID: world.VillageMapID, X: 14, Y: 10, DialogueID: "smith_greet"},
		{ID: "tessa", Name: "Tessa", Role: "baker",
			MapID: world.VillageMapID, X: 8, Y: 14, DialogueID: "baker_greet"},
		{ID: "rowan", Name: "Elder Rowan", Role: "villager",
			MapID: world.VillageMapID, X: 12, Y: 8, DialogueID: "elder_greet"},
		{ID: "garrick", Name: "Garrick", Role: "weaponsmith",
			MapID: world.CityMapID, X: 12, Y: 16, DialogueID: "smith_greet"},
		{ID: "odo", Name: "Odo", Role: "armorsmith",
			MapID: world.CityMapID, X: 20, Y: 16, DialogueID: "smith_greet"},
		{ID: "selene", Name: "Selene", Role: "alchemist",
			MapID: world.CityMapID, X: 16, Y: 10, DialogueID: "alchemist_greet"},
		{ID: "hobb", Name: "Hobb", Role: "innkeeper",
			MapID: world.CityMapID, X: 8, Y: 8, DialogueID: "innkeeper_greet"},
	}
}
