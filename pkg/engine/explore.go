package engine

import (
	"fmt"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/combat"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/procgen"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

const encounterChance = 0.03

func (e *Engine) newGame(gs *GameState) *GameState {
	if gs.Mode != ModeMenu {
		return gs
	}
	next := gs.clone()
	next.Mode = ModeCreation
	return next
}

func (e *Engine) startGame(gs *GameState, a StartGame) *GameState {
	if gs.Mode != ModeCreation {
		return gs
	}
	race, ok := content.Races[a.Race]
	if !ok {
		return gs
	}
	class, ok := content.Classes[a.Class]
	if !ok {
		return gs
	}
	name := a.Name
	if name == "" {
		name = "Adventurer"
	}

	next := gs.clone()
	home := next.Maps[world.HomeMapID]
	next.Player = actor.Player{
		Name:    name,
		Race:    race.ID,
		Class:   class.ID,
		SkillID: class.SkillID,
		Level:   1,
		MaxExp:  100,
		Gold:    100,
		Base:    race.Base.Add(class.Bonus),
		X:       home.Width / 2,
		Y:       home.Height / 2,
		Equipment: map[item.Slot]item.Item{
			item.SlotMainHand: content.StarterWeapon,
		},
	}
	next.Player.Inventory = item.Add(next.Player.Inventory, content.Consumables[content.ItemPotion], 2)
	next.Player.Inventory = item.Add(next.Player.Inventory, content.Consumables[content.ItemBread], 1)

	d := next.Player.Derived()
	next.Player.HP = d.MaxHP
	next.Player.MP = d.MaxMP

	next.CurrentMapID = world.HomeMapID
	next.Mode = ModeExploration
	next.addLog(LogNarrative, fmt.Sprintf("%s the %s %s wakes to a new life.", name, race.Name, class.Name))
	return next
}

func (e *Engine) move(gs *GameState, a Move) *GameState {
	if gs.Mode != ModeExploration {
		return gs
	}
	m := gs.CurrentMap()
	if m == nil {
		return gs
	}
	tile := m.At(a.X, a.Y)
	if tile == nil || !world.Walkable(tile.Terrain) {
		return gs
	}
	if dx, dy := a.X-gs.Player.X, a.Y-gs.Player.Y; dx*dx+dy*dy != 1 {
		return gs
	}

	next := gs.clone()
	next.Maps[next.CurrentMapID] = m.MarkExplored(a.X, a.Y)
	next.Player.X, next.Player.Y = a.X, a.Y
	e.advanceClock(next, world.StepCost(m, tile.Terrain))

	if tile.Portal != nil {
		dest := next.Maps[tile.Portal.MapID]
		if dest != nil {
			next.CurrentMapID = tile.Portal.MapID
			next.Player.X, next.Player.Y = tile.Portal.X, tile.Portal.Y
			next.Maps[dest.ID] = dest.MarkExplored(tile.Portal.X, tile.Portal.Y)
			next.addLog(LogNarrative, fmt.Sprintf("You arrive at %s.", dest.Name))
			next.event = true
		}
		return next
	}

	if m.Kind == world.KindWorld && world.Wilderness(tile.Terrain) && e.rng.Float64() < encounterChance {
		enemy := procgen.Enemy(e.rng, tile.Terrain, next.Player.Level)
		next.Combat = &combat.State{Enemy: enemy, Cooldowns: map[string]int{}, Speed: combat.SpeedNormal}
		next.Mode = ModeCombat
		next.addLog(LogCombat, fmt.Sprintf("A %s blocks your path!", enemy.Name))
	}
	return next
}

func (e *Engine) search(gs *GameState) *GameState {
	if gs.Mode != ModeExploration {
		return gs
	}
	m := gs.CurrentMap()
	if m == nil {
		return gs
	}
	tile := m.At(gs.Player.X, gs.Player.Y)
	if tile == nil {
		return gs
	}

	next := gs.clone()
	e.advanceClock(next, calendar.CostSearch)

	if !world.Wilderness(tile.Terrain) {
		next.addLog(LogNarrative, "You poke around but find nothing of interest.")
		return next
	}

	switch r := e.rng.Float64(); {
	case r < 0.35:
		if m.Kind != world.KindWorld {
			next.addLog(LogNarrative, "Rustling in the undergrowth, then silence.")
			return next
		}
		enemy := procgen.Enemy(e.rng, tile.Terrain, next.Player.Level)
		next.Combat = &combat.State{Enemy: enemy, Cooldowns: map[string]int{}, Speed: combat.SpeedNormal}
		next.Mode = ModeCombat
		next.addLog(LogCombat, fmt.Sprintf("Your rummaging disturbs a %s!", enemy.Name))
	case r < 0.55:
		found := e.rollSearchFind(next.Player.Level)
		next.gainItem(found, 1)
		next.addLog(LogNarrative, fmt.Sprintf("You find a %s.", found.Name))
	default:
		next.addLog(LogNarrative, "Half an hour of searching turns up nothing.")
	}
	return next
}

// rollSearchFind is a 50/50 split between a consumable and a
// misc-or-rare-weapon roll.
func (e *Engine) rollSearchFind(level int) item.Item {
	if e.rng.Float64() < 0.5 {
		picks := []string{content.ItemPotion, content.ItemBread, content.ItemCheese, content.ItemFlower}
		return content.Consumables[picks[e.rng.Intn(len(picks))]]
	}
	if e.rng.Float64() < 0.2 {
		return procgen.Gear(e.rng, level, item.TypeWeapon)
	}
	picks := []string{content.ItemDust, content.ItemFang, content.ItemPelt, content.ItemFlower}
	return content.Consumables[picks[e.rng.Intn(len(picks))]]
}

func (e *Engine) rest(gs *GameState) *GameState {
	if gs.Mode != ModeExploration && gs.Mode != ModeInteraction {
		return gs
	}
	next := gs.clone()
	e.advanceClock(next, calendar.CostRest)
	d := next.Player.Derived()
	next.Player.HP = d.MaxHP
	next.Player.MP = d.MaxMP
	next.addLog(LogNarrative, "You sleep soundly and wake restored.")
	next.event = true
	return next
}

// screenModes lists the passive screens OpenScreen may enter. Settings
// and load are also reachable from the menu; the rest require
// exploration.
var screenModes = map[Mode]bool{
	ModeSettings:  true,
	ModeInventory: true,
	ModeCharacter: true,
	ModeStorage:   true,
	ModeQuests:    true,
	ModeSave:      true,
	ModeLoad:      true,
	ModeMapView:   true,
}

func (e *Engine) openScreen(gs *GameState, a OpenScreen) *GameState {
	if !screenModes[a.Mode] {
		return gs
	}
	fromMenu := gs.Mode == ModeMenu && (a.Mode == ModeSettings || a.Mode == ModeLoad)
	if gs.Mode != ModeExploration && !fromMenu {
		return gs
	}
	next := gs.clone()
	next.PreviousMode = gs.Mode
	next.Mode = a.Mode
	return next
}

func (e *Engine) closeScreen(gs *GameState) *GameState {
	if gs.Mode == ModeShop {
		next := gs.clone()
		next.Mode = ModeExploration
		next.ActiveShopNPCID = ""
		return next
	}
	if !screenModes[gs.Mode] {
		return gs
	}
	next := gs.clone()
	if (gs.Mode == ModeSettings || gs.Mode == ModeLoad) &&
		(gs.PreviousMode == ModeMenu || gs.PreviousMode == ModeExploration) {
		next.Mode = gs.PreviousMode
	} else {
		next.Mode = ModeExploration
	}
	next.PreviousMode = ""
	return next
}
