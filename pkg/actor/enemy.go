package actor

import "github.com/jwebster45206/realm-engine/pkg/item"

// LootEntry is one independent drop roll attached to an enemy.
type LootEntry struct {
	Item   item.Item `json:"item"`
	Chance float64   `json:"chance"` // 0..1
}

// Enemy is a transient combatant. Instances exist only inside an active
// CombatState; rewards are copied out to the player before discard.
type Enemy struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Rarity int    `json:"rarity"` // 1 common, 2 uncommon, 3 rare
	Stats  Stats  `json:"stats"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`

	RewardExp  int            `json:"reward_exp"`
	RewardGold int            `json:"reward_gold"`
	Loot       []LootEntry    `json:"loot,omitempty"`
	Effects    []StatusEffect `json:"effects,omitempty"`
}

// StatSource assembles the enemy's inputs to ComputeStats. Enemies
// carry no equipment or race.
func (e *Enemy) StatSource() StatSource {
	return StatSource{
		Base:    e.Stats,
		Level:   e.Level,
		Effects: e.Effects,
	}
}

// Derived recomputes the enemy's derived stats.
func (e *Enemy) Derived() Derived {
	d, _ := ComputeStats(e.StatSource())
	return d
}
