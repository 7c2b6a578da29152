package engine

import (
	"fmt"

	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/procgen"
)

func (e *Engine) startInteraction(gs *GameState, a StartInteraction) *GameState {
	if gs.Mode != ModeExploration {
		return gs
	}
	npc := gs.FindNPC(a.NPCID)
	if npc == nil || npc.DialogueID == "" {
		return gs
	}
	tree, ok := content.Dialogues[npc.DialogueID]
	if !ok {
		return gs
	}
	next := gs.clone()
	next.Mode = ModeInteraction
	next.ActiveInteraction = &Interaction{NPCID: a.NPCID, NodeID: tree.Start}
	next.addLog(LogDialogue, fmt.Sprintf("%s: %s", npc.Name, tree.Nodes[tree.Start].Text))
	return next
}

func (e *Engine) selectOption(gs *GameState, a SelectOption) *GameState {
	if gs.Mode != ModeInteraction || gs.ActiveInteraction == nil {
		return gs
	}
	npc := gs.FindNPC(gs.ActiveInteraction.NPCID)
	if npc == nil {
		return gs
	}
	tree, ok := content.Dialogues[npc.DialogueID]
	if !ok {
		return gs
	}
	node, ok := tree.Nodes[gs.ActiveInteraction.NodeID]
	if !ok {
		return gs
	}
	if a.Index < 0 || a.Index >= len(node.Options) {
		return gs
	}
	opt := node.Options[a.Index]
	if !e.optionAffordable(gs, opt) {
		return gs
	}

	next := gs.clone()
	next.addLog(LogDialogue, fmt.Sprintf("%s: %s", next.Player.Name, opt.Text))
	for _, eff := range opt.Effects {
		e.applyDialogueEffect(next, npc.ID, eff)
		// open_shop and rest change mode; stop interpreting the node.
		if next.Mode != ModeInteraction {
			return next
		}
	}
	if opt.Next != "" {
		if dest, ok := tree.Nodes[opt.Next]; ok {
			next.ActiveInteraction.NodeID = opt.Next
			next.addLog(LogDialogue, fmt.Sprintf("%s: %s", npc.Name, dest.Text))
			return next
		}
	}
	next.ActiveInteraction = nil
	next.Mode = ModeExploration
	return next
}

// optionAffordable pre-checks effects that can fail, so an option
// either applies fully or not at all.
func (e *Engine) optionAffordable(gs *GameState, opt content.DialogueOption) bool {
	for _, eff := range opt.Effects {
		switch eff.Kind {
		case content.EffectAdjustGold:
			if eff.Amount < 0 && gs.Player.Gold < -eff.Amount {
				return false
			}
		case content.EffectGrantItem:
			if eff.Amount < 0 && item.Count(gs.Player.Inventory, eff.ItemID) < -eff.Amount {
				return false
			}
		}
	}
	return true
}

// applyDialogueEffect interprets one declarative effect descriptor.
func (e *Engine) applyDialogueEffect(next *GameState, npcID string, eff content.DialogueEffect) {
	switch eff.Kind {
	case content.EffectGrantItem:
		tmpl, ok := content.Consumables[eff.ItemID]
		if !ok {
			return
		}
		if eff.Amount >= 0 {
			amt := eff.Amount
			if amt == 0 {
				amt = 1
			}
			next.gainItem(tmpl, amt)
			next.addLog(LogInfo, fmt.Sprintf("Received %s.", tmpl.Name))
		} else {
			next.Player.Inventory = item.Remove(next.Player.Inventory, tmpl, -eff.Amount)
			next.addLog(LogInfo, fmt.Sprintf("Gave away %s.", tmpl.Name))
		}
	case content.EffectAdjustAffinity:
		if n := next.FindNPC(npcID); n != nil {
			n.Affinity += eff.Amount
			if n.Affinity > 100 {
				n.Affinity = 100
			}
			if n.Affinity < -100 {
				n.Affinity = -100
			}
		}
	case content.EffectAdjustGold:
		next.Player.Gold += eff.Amount
	case content.EffectOpenShop:
		today := calendar.TotalDays(next.Date)
		n := next.FindNPC(npcID)
		if n == nil {
			return
		}
		if !n.HasGeneratedInventory || today-n.LastRestockDay >= restockIntervalDays {
			n.Inventory = procgen.ShopInventory(e.rng, n.Role, next.Player.Level)
			n.HasGeneratedInventory = true
			n.LastRestockDay = today
		}
		next.Mode = ModeShop
		next.ActiveShopNPCID = npcID
		next.ActiveInteraction = nil
	case content.EffectGenerateQuest:
		q := procgen.Quest(e.rng, next.Player.Level)
		next.Player.Quests = append(next.Player.Quests, q)
		next.addLog(LogQuest, fmt.Sprintf("New quest: %s", q.Title))
	case content.EffectRest:
		e.advanceClock(next, 480)
		d := next.Player.Derived()
		next.Player.HP = d.MaxHP
		next.Player.MP = d.MaxMP
		next.ActiveInteraction = nil
		next.Mode = ModeExploration
		next.addLog(LogNarrative, "You sleep soundly and wake restored.")
		next.event = true
	}
}

func (e *Engine) endInteraction(gs *GameState) *GameState {
	if gs.Mode != ModeInteraction {
		return gs
	}
	next := gs.clone()
	next.ActiveInteraction = nil
	next.Mode = ModeExploration
	return next
}
