package engine

import (
	"fmt"

	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/procgen"
)

// restockIntervalDays is the minimum age of a shop inventory before a
// free restock on open.
const restockIntervalDays = 7

// manualRestockCost is the gold price of forcing a restock early.
const manualRestockCost = 100

func (e *Engine) openShop(gs *GameState, npcID string) *GameState {
	if gs.Mode != ModeExploration && gs.Mode != ModeInteraction {
		return gs
	}
	npc := gs.FindNPC(npcID)
	if npc == nil {
		return gs
	}

	next := gs.clone()
	n := next.FindNPC(npcID)
	today := calendar.TotalDays(next.Date)
	if !n.HasGeneratedInventory || today-n.LastRestockDay >= restockIntervalDays {
		n.Inventory = procgen.ShopInventory(e.rng, n.Role, next.Player.Level)
		n.HasGeneratedInventory = true
		n.LastRestockDay = today
	}
	next.Mode = ModeShop
	next.ActiveShopNPCID = npcID
	next.ActiveInteraction = nil
	return next
}

func (e *Engine) buyItem(gs *GameState, a BuyItem) *GameState {
	if gs.Mode != ModeShop {
		return gs
	}
	npc := gs.FindNPC(gs.ActiveShopNPCID)
	if npc == nil {
		return gs
	}
	entry := item.Find(npc.Inventory, a.ItemID)
	if entry == nil || gs.Player.Gold < entry.Value {
		return gs
	}

	next := gs.clone()
	n := next.FindNPC(gs.ActiveShopNPCID)
	bought := *entry
	next.Player.Gold -= bought.Value
	n.Inventory = item.Remove(n.Inventory, bought, 1)
	next.Player.Inventory = item.Add(next.Player.Inventory, bought, 1)
	next.addLog(LogInfo, fmt.Sprintf("Bought %s for %d gold.", bought.Name, bought.Value))
	return next
}

func (e *Engine) sellItem(gs *GameState, a SellItem) *GameState {
	if gs.Mode != ModeShop {
		return gs
	}
	npc := gs.FindNPC(gs.ActiveShopNPCID)
	if npc == nil {
		return gs
	}
	entry := item.Find(gs.Player.Inventory, a.ItemID)
	if entry == nil {
		return gs
	}

	next := gs.clone()
	n := next.FindNPC(gs.ActiveShopNPCID)
	sold := *entry
	price := sold.Value / 2
	next.Player.Inventory = item.Remove(next.Player.Inventory, sold, 1)
	next.Player.Gold += price
	n.Inventory = item.Add(n.Inventory, sold, 1)
	next.addLog(LogInfo, fmt.Sprintf("Sold %s for %d gold.", sold.Name, price))
	return next
}

func (e *Engine) restockShop(gs *GameState) *GameState {
	if gs.Mode != ModeShop {
		return gs
	}
	npc := gs.FindNPC(gs.ActiveShopNPCID)
	if npc == nil || gs.Player.Gold < manualRestockCost {
		return gs
	}

	next := gs.clone()
	n := next.FindNPC(gs.ActiveShopNPCID)
	next.Player.Gold -= manualRestockCost
	n.Inventory = procgen.ShopInventory(e.rng, n.Role, next.Player.Level)
	n.HasGeneratedInventory = true
	n.LastRestockDay = calendar.TotalDays(next.Date)
	next.addLog(LogInfo, fmt.Sprintf("%s restocks the shelves for %d gold.", n.Name, manualRestockCost))
	return next
}
