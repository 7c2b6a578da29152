package content

import "github.com/jwebster45206/realm-engine/pkg/item"

// Consumable and misc item ids.
const (
	ItemPotion    = "potion"
	ItemMaxPotion = "max_potion"
	ItemBread     = "bread"
	ItemSteak     = "steak"
	ItemCheese    = "cheese"
	ItemFlower    = "flower"
	ItemDust      = "dust"
	ItemFang      = "fang"
	ItemPelt      = "pelt"
)

// HealFull marks a consumable that restores HP to the derived maximum.
const HealFull = -1

// HealAmounts maps consumable id to flat HP restored on use.
var HealAmounts = map[string]int{
	ItemPotion:    50,
	ItemMaxPotion: HealFull,
	ItemBread:     10,
	ItemSteak:     30,
	ItemCheese:    20,
}

// Consumables is the fixed item registry (quantity left zero; the
// stacking algebra assigns quantities when items enter a collection).
var Consumables = map[string]item.Item{
	ItemPotion: {
		ID: ItemPotion, Name: "Potion", Type: item.TypeConsumable,
		Rarity: item.RarityCommon, Value: 25,
		Description: "Restores 50 HP. Tastes of copper and regret.",
	},
	ItemMaxPotion: {
		ID: ItemMaxPotion, Name: "Max Potion", Type: item.TypeConsumable,
		Rarity: item.RarityRare, Value: 150,
		Description: "Restores all HP.",
	},
	ItemBread: {
		ID: ItemBread, Name: "Bread", Type: item.TypeConsumable,
		Rarity: item.RarityCommon, Value: 5,
		Description: "Restores 10 HP. Slightly stale.",
	},
	ItemSteak: {
		ID: ItemSteak, Name: "Steak", Type: item.TypeConsumable,
		Rarity: item.RarityCommon, Value: 20,
		Description: "Restores 30 HP.",
	},
	ItemCheese: {
		ID: ItemCheese, Name: "Cheese", Type: item.TypeConsumable,
		Rarity: item.RarityCommon, Value: 12,
		Description: "Restores 20 HP.",
	},
	ItemFlower: {
		ID: ItemFlower, Name: "Wildflower", Type: item.TypeMisc,
		Rarity: item.RarityCommon, Value: 3,
		Description: "Pretty, if you squint.",
	},
	ItemDust: {
		ID: ItemDust, Name: "Glimmering Dust", Type: item.TypeMisc,
		Rarity: item.RarityUncommon, Value: 8,
		Description: "Alchemists pay for this. Nobody asks why.",
	},
	ItemFang: {
		ID: ItemFang, Name: "Monster Fang", Type: item.TypeMisc,
		Rarity: item.RarityCommon, Value: 6,
		Description: "Proof of a fight won, or scavenged.",
	},
	ItemPelt: {
		ID: ItemPelt, Name: "Thick Pelt", Type: item.TypeMisc,
		Rarity: item.RarityCommon, Value: 10,
		Description: "Warm, heavy, faintly musky.",
	},
}

// Material is a gear material tier used by the gear generator.
// MinLevel gates the tier by player level.
type Material struct {
	Name      string `json:"name"`
	MinLevel  int    `json:"min_level"`
	Stat      int    `json:"stat"`       // base attribute bonus before rarity scaling
	BaseValue int    `json:"base_value"` // base gold value before scaling
	ArmorOnly bool   `json:"armor_only,omitempty"`
}

// Materials in ascending tier order. The generator picks the highest
// tier the level allows; leather is a low-level armor-only alternative.
var Materials = []Material{
	{Name: "Leather", MinLevel: 0, Stat: 1, BaseValue: 15, ArmorOnly: true},
	{Name: "Iron", MinLevel: 0, Stat: 2, BaseValue: 30},
	{Name: "Steel", MinLevel: 4, Stat: 4, BaseValue: 80},
	{Name: "Mithril", MinLevel: 9, Stat: 7, BaseValue: 200},
	{Name: "Adamantite", MinLevel: 16, Stat: 11, BaseValue: 500},
}

// Weapon and armor archetypes; slot assignment derives from the name.
var (
	WeaponArchetypes = []string{"Sword", "Axe", "Mace", "Dagger"}
	ArmorArchetypes  = []string{"Shield", "Helmet", "Boots", "Cuirass", "Robe"}
)

// ArchetypeSlot maps a base-name archetype to its equipment slot.
func ArchetypeSlot(name string) item.Slot {
	switch name {
	case "Sword", "Axe", "Mace", "Dagger":
		return item.SlotMainHand
	case "Shield":
		return item.SlotOffHand
	case "Helmet":
		return item.SlotHead
	case "Boots":
		return item.SlotFeet
	default:
		return item.SlotBody
	}
}

// StarterWeapon is the blade every new character begins with.
var StarterWeapon = item.Item{
	ID: "rusty_sword", Name: "Rusty Sword", Type: item.TypeWeapon,
	Rarity: item.RarityCommon, Value: 5, Quantity: 1,
	Slot: item.SlotMainHand, Damage: 3,
	Description: "It has seen better decades.",
}
