package actor

import "github.com/jwebster45206/realm-engine/pkg/item"

// NPC is a world inhabitant created at world-generation time. NPCs are
// never created or destroyed at runtime; only affinity and shop
// bookkeeping mutate.
type NPC struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"` // e.g. "merchant", "blacksmith", "baker"
	MapID      string `json:"map_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	DialogueID string `json:"dialogue_id,omitempty"`

	Affinity int `json:"affinity"` // -100..100

	// Shop bookkeeping. Inventory regenerates at most once per seven
	// in-world days, or unconditionally the first time the shop opens.
	Inventory             []item.Item `json:"inventory,omitempty"`
	HasGeneratedInventory bool        `json:"has_generated_inventory"`
	LastRestockDay        int         `json:"last_restock_day"`
}
