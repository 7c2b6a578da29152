package engine

import (
	"fmt"

	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
)

func (e *Engine) equipItem(gs *GameState, a EquipItem) *GameState {
	if gs.Mode != ModeInventory && gs.Mode != ModeExploration {
		return gs
	}
	if a.Index < 0 || a.Index >= len(gs.Player.Inventory) {
		return gs
	}
	it := gs.Player.Inventory[a.Index]
	if (it.Type != item.TypeWeapon && it.Type != item.TypeArmor) || it.Slot == "" {
		return gs
	}

	next := gs.clone()
	// Remove the chosen entry by index: gear entries can share an id
	// while differing in rarity, so id-based removal could take the
	// wrong one.
	inv := append([]item.Item(nil), next.Player.Inventory...)
	next.Player.Inventory = append(inv[:a.Index], inv[a.Index+1:]...)

	if prev, ok := next.Player.Equipment[it.Slot]; ok {
		next.Player.Inventory = item.Add(next.Player.Inventory, prev, 1)
	}
	if next.Player.Equipment == nil {
		next.Player.Equipment = map[item.Slot]item.Item{}
	}
	it.Quantity = 1
	next.Player.Equipment[it.Slot] = it
	next.Player.ClampVitals()
	next.addLog(LogInfo, fmt.Sprintf("Equipped %s.", it.Name))
	return next
}

func (e *Engine) unequipItem(gs *GameState, a UnequipItem) *GameState {
	if gs.Mode != ModeInventory && gs.Mode != ModeExploration && gs.Mode != ModeCharacter {
		return gs
	}
	prev, ok := gs.Player.Equipment[a.Slot]
	if !ok {
		return gs
	}
	next := gs.clone()
	delete(next.Player.Equipment, a.Slot)
	next.Player.Inventory = item.Add(next.Player.Inventory, prev, 1)
	next.Player.ClampVitals()
	next.addLog(LogInfo, fmt.Sprintf("Unequipped %s.", prev.Name))
	return next
}

func (e *Engine) useItem(gs *GameState, a UseItem) *GameState {
	if gs.Mode != ModeInventory && gs.Mode != ModeExploration {
		return gs
	}
	entry := item.Find(gs.Player.Inventory, a.ItemID)
	if entry == nil {
		return gs
	}
	heal, ok := content.HealAmounts[a.ItemID]
	if !ok {
		return gs
	}

	next := gs.clone()
	used := *entry
	next.Player.Inventory = item.Remove(next.Player.Inventory, used, 1)
	d := next.Player.Derived()
	if heal == content.HealFull {
		next.Player.HP = d.MaxHP
		next.addLog(LogInfo, fmt.Sprintf("The %s restores you completely.", used.Name))
		return next
	}
	next.Player.HP += heal
	if next.Player.HP > d.MaxHP {
		next.Player.HP = d.MaxHP
	}
	next.addLog(LogInfo, fmt.Sprintf("You use the %s and recover %d HP.", used.Name, heal))
	return next
}

func (e *Engine) allocateStat(gs *GameState, a AllocateStat) *GameState {
	if gs.Player.StatPoints <= 0 {
		return gs
	}
	next := gs.clone()
	switch a.Attribute {
	case AttrStrength:
		next.Player.Base.Strength++
	case AttrDexterity:
		next.Player.Base.Dexterity++
	case AttrConstitution:
		next.Player.Base.Constitution++
	case AttrIntelligence:
		next.Player.Base.Intelligence++
	case AttrSpeed:
		next.Player.Base.Speed++
	case AttrLuck:
		next.Player.Base.Luck++
	default:
		return gs
	}
	next.Player.StatPoints--
	return next
}

func (e *Engine) deposit(gs *GameState, a Deposit) *GameState {
	if gs.Mode != ModeStorage {
		return gs
	}
	entry := item.Find(gs.Player.Inventory, a.ItemID)
	if entry == nil {
		return gs
	}
	next := gs.clone()
	moved := *entry
	next.Player.Inventory = item.Remove(next.Player.Inventory, moved, 1)
	next.Storage = item.Add(next.Storage, moved, 1)
	return next
}

func (e *Engine) withdraw(gs *GameState, a Withdraw) *GameState {
	if gs.Mode != ModeStorage {
		return gs
	}
	entry := item.Find(gs.Storage, a.ItemID)
	if entry == nil {
		return gs
	}
	next := gs.clone()
	moved := *entry
	next.Storage = item.Remove(next.Storage, moved, 1)
	next.Player.Inventory = item.Add(next.Player.Inventory, moved, 1)
	return next
}
