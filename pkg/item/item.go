package item

// Type classifies an item for stacking and equip rules.
type Type string

const (
	TypeWeapon     Type = "weapon"
	TypeArmor      Type = "armor"
	TypeConsumable Type = "consumable"
	TypeMisc       Type = "misc"
)

// Slot is an equipment slot on the player.
type Slot string

const (
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotHead     Slot = "head"
	SlotBody     Slot = "body"
	SlotFeet     Slot = "feet"
)

// Rarity tiers. Legendary is never rolled by the gear generator;
// it exists for hand-placed content.
type Rarity int

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "common"
	}
}

// StatBonus is the additive attribute contribution of an equipped item.
type StatBonus struct {
	Strength     int `json:"strength,omitempty"`
	Dexterity    int `json:"dexterity,omitempty"`
	Constitution int `json:"constitution,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
	Speed        int `json:"speed,omitempty"`
	Luck         int `json:"luck,omitempty"`
}

// Item is one inventory entry. Consumable and misc items stack
// (one entry per id, Quantity >= 1); weapons and armor never stack,
// each occupies its own entry with Quantity fixed at 1.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        Type      `json:"type"`
	Rarity      Rarity    `json:"rarity"`
	Value       int       `json:"value"`
	Quantity    int       `json:"quantity"`
	Slot        Slot      `json:"slot,omitempty"`
	Damage      int       `json:"damage,omitempty"`
	Defense     int       `json:"defense,omitempty"`
	Bonus       StatBonus `json:"bonus,omitempty"`
}

// Stackable reports whether items of this type merge into a single
// quantity-bearing entry.
func (it Item) Stackable() bool {
	return it.Type == TypeConsumable || it.Type == TypeMisc
}

// Add returns the collection with amount units of it added. Stackable
// items merge into an existing entry by id; everything else appends
// amount separate single-quantity entries.
func Add(items []Item, it Item, amount int) []Item {
	if amount <= 0 {
		return items
	}
	out := make([]Item, len(items), len(items)+amount)
	copy(out, items)
	if it.Stackable() {
		for i := range out {
			if out[i].ID == it.ID {
				out[i].Quantity += amount
				return out
			}
		}
		it.Quantity = amount
		return append(out, it)
	}
	for i := 0; i < amount; i++ {
		entry := it
		entry.Quantity = 1
		out = append(out, entry)
	}
	return out
}

// Remove returns the collection with amount units of it removed,
// matching the first entry by id. A stack larger than amount is
// decremented; a stack of exactly amount is deleted. Removing more
// than is present clamps to deletion rather than going negative.
func Remove(items []Item, it Item, amount int) []Item {
	if amount <= 0 {
		return items
	}
	for i := range items {
		if items[i].ID != it.ID {
			continue
		}
		out := make([]Item, len(items))
		copy(out, items)
		if out[i].Quantity > amount {
			out[i].Quantity -= amount
			return out
		}
		return append(out[:i], out[i+1:]...)
	}
	return items
}

// Count returns the total quantity of entries matching id.
func Count(items []Item, id string) int {
	n := 0
	for i := range items {
		if items[i].ID == id {
			n += items[i].Quantity
		}
	}
	return n
}

// Find returns the first entry matching id, or nil.
func Find(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
