package engine

import (
	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/item"
)

// Action is the closed set of intents the engine accepts. Each variant
// carries a fixed payload; Transition dispatches on the concrete type.
// Unrecognized or ill-formed actions are defined no-ops.
type Action interface {
	isAction()
}

// Attribute names a base stat for point allocation.
type Attribute string

const (
	AttrStrength     Attribute = "strength"
	AttrDexterity    Attribute = "dexterity"
	AttrConstitution Attribute = "constitution"
	AttrIntelligence Attribute = "intelligence"
	AttrSpeed        Attribute = "speed"
	AttrLuck         Attribute = "luck"
)

// Menu and character creation.

// NewGame moves from the menu to character creation.
type NewGame struct{}

// StartGame creates the player and enters exploration.
type StartGame struct {
	Name  string
	Race  actor.Race
	Class actor.Class
}

// Exploration.

// Move steps the player to an adjacent walkable tile. Stepping onto a
// portal tile relocates across maps.
type Move struct{ X, Y int }

// Search spends 30 minutes scouring the current tile.
type Search struct{}

// Rest sleeps for eight hours and fully restores HP and MP.
type Rest struct{}

// Screens.

// OpenScreen enters a passive screen mode from exploration (settings
// and load are also reachable from the menu).
type OpenScreen struct{ Mode Mode }

// CloseScreen leaves the current screen, returning to the previous
// mode for settings/load and to exploration otherwise.
type CloseScreen struct{}

// Inventory and equipment.

// EquipItem equips the inventory entry at the given index.
type EquipItem struct{ Index int }

// UnequipItem returns the equipped item in a slot to the inventory.
type UnequipItem struct{ Slot item.Slot }

// UseItem consumes one unit of a consumable by id.
type UseItem struct{ ItemID string }

// AllocateStat spends one attribute point.
type AllocateStat struct{ Attribute Attribute }

// Storage.

// Deposit moves one unit from the inventory to the stash.
type Deposit struct{ ItemID string }

// Withdraw moves one unit from the stash to the inventory.
type Withdraw struct{ ItemID string }

// Quests.

// GenerateQuest rolls a new quest for the player.
type GenerateQuest struct{}

// ClaimQuest collects the rewards of a completed quest.
type ClaimQuest struct{ QuestID string }

// Shops.

// OpenShop opens an NPC's shop, restocking if due.
type OpenShop struct{ NPCID string }

// BuyItem purchases one unit from the active shop.
type BuyItem struct{ ItemID string }

// SellItem sells one unit to the active shop for half value.
type SellItem struct{ ItemID string }

// RestockShop forces a restock of the active shop for 100 gold.
type RestockShop struct{}

// Combat lifecycle.

// InitCombat enters combat against a directly assigned enemy.
type InitCombat struct{ Enemy actor.Enemy }

// StartCombat begins the tick loop of an initialized encounter.
type StartCombat struct{}

// CombatTick resolves one exchange and judges victory or defeat.
type CombatTick struct{}

// ToggleCombatSpeed cycles the three tick-interval presets.
type ToggleCombatSpeed struct{}

// AttemptFlee rolls the escape chance; failure costs a crippled turn.
type AttemptFlee struct{}

// CloseCombat leaves a judged encounter, applying rewards or defeat.
type CloseCombat struct{}

// Dialogue.

// StartInteraction opens an NPC's dialogue at its start node.
type StartInteraction struct{ NPCID string }

// SelectOption picks a dialogue option by position.
type SelectOption struct{ Index int }

// EndInteraction closes the dialogue.
type EndInteraction struct{}

// Persistence and settings.

// SaveGame writes the snapshot to a named slot.
type SaveGame struct{ Slot int }

// LoadGame replaces the state from a named slot.
type LoadGame struct{ Slot int }

// SetAutoSave updates the autosave frequency.
type SetAutoSave struct{ Frequency AutoSaveFrequency }

func (NewGame) isAction()           {}
func (StartGame) isAction()         {}
func (Move) isAction()              {}
func (Search) isAction()            {}
func (Rest) isAction()              {}
func (OpenScreen) isAction()        {}
func (CloseScreen) isAction()       {}
func (EquipItem) isAction()         {}
func (UnequipItem) isAction()       {}
func (UseItem) isAction()           {}
func (AllocateStat) isAction()      {}
func (Deposit) isAction()           {}
func (Withdraw) isAction()          {}
func (GenerateQuest) isAction()     {}
func (ClaimQuest) isAction()        {}
func (OpenShop) isAction()          {}
func (BuyItem) isAction()           {}
func (SellItem) isAction()          {}
func (RestockShop) isAction()       {}
func (InitCombat) isAction()        {}
func (StartCombat) isAction()       {}
func (CombatTick) isAction()        {}
func (ToggleCombatSpeed) isAction() {}
func (AttemptFlee) isAction()       {}
func (CloseCombat) isAction()       {}
func (StartInteraction) isAction()  {}
func (SelectOption) isAction()      {}
func (EndInteraction) isAction()    {}
func (SaveGame) isAction()          {}
func (LoadGame) isAction()          {}
func (SetAutoSave) isAction()       {}
