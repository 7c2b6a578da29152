package engine

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/combat"
	"github.com/jwebster45206/realm-engine/pkg/quest"
)

func (e *Engine) initCombat(gs *GameState, a InitCombat) *GameState {
	if gs.Mode != ModeExploration {
		return gs
	}
	next := gs.clone()
	next.Combat = &combat.State{
		Enemy:     a.Enemy,
		Cooldowns: map[string]int{},
		Speed:     combat.SpeedNormal,
	}
	next.Mode = ModeCombat
	return next
}

func (e *Engine) startCombat(gs *GameState) *GameState {
	if gs.Mode != ModeCombat || gs.Combat == nil || gs.Combat.IsStarted {
		return gs
	}
	next := gs.clone()
	next.Combat.IsStarted = true
	next.addLog(LogCombat, fmt.Sprintf("The %s attacks! Steel yourself.", next.Combat.Enemy.Name))
	return next
}

func (e *Engine) combatTick(gs *GameState) *GameState {
	if gs.Mode != ModeCombat || gs.Combat == nil || !gs.Combat.IsStarted || gs.Combat.Victory != nil {
		return gs
	}
	next := gs.clone()
	res := combat.ResolveTurn(&next.Player, &next.Combat.Enemy, next.Combat.Cooldowns, e.rng, false)
	e.applyTurn(next, res)
	return next
}

// applyTurn composites a resolved exchange into the state and judges
// victory or defeat.
func (e *Engine) applyTurn(next *GameState, res combat.TurnResult) {
	next.Player.HP = res.PlayerHP
	next.Player.MP = res.PlayerMP
	next.Combat.Enemy.HP = res.EnemyHP
	next.Combat.Cooldowns = res.Cooldowns
	for _, line := range res.Logs {
		next.addLog(LogCombat, line)
	}

	if next.Combat.Enemy.HP <= 0 {
		v := true
		next.Combat.Victory = &v
		next.Combat.Loot = combat.RollLoot(&next.Combat.Enemy, e.rng)
		next.addLog(LogCombat, fmt.Sprintf("The %s falls!", next.Combat.Enemy.Name))
	} else if next.Player.HP <= 0 {
		v := false
		next.Combat.Victory = &v
		next.addLog(LogCombat, "Everything goes dark...")
	}
}

func (e *Engine) toggleCombatSpeed(gs *GameState) *GameState {
	if gs.Mode != ModeCombat || gs.Combat == nil {
		return gs
	}
	next := gs.clone()
	next.Combat.Speed = next.Combat.Speed.Next()
	next.addLog(LogInfo, fmt.Sprintf("Combat speed: %s.", next.Combat.Speed))
	return next
}

func (e *Engine) attemptFlee(gs *GameState) *GameState {
	if gs.Mode != ModeCombat || gs.Combat == nil || !gs.Combat.IsStarted || gs.Combat.Victory != nil {
		return gs
	}
	next := gs.clone()
	_, ptotal := actor.ComputeStats(next.Player.StatSource())
	chance := combat.FleeChance(ptotal.Speed, next.Combat.Enemy.Stats.Speed)
	if e.rng.Intn(100) < chance {
		next.Combat = nil
		next.Mode = ModeExploration
		next.addLog(LogCombat, "You slip away before the fight turns ugly.")
		return next
	}
	next.addLog(LogCombat, "No escape! You stumble, and the enemy seizes the opening.")
	res := combat.ResolveTurn(&next.Player, &next.Combat.Enemy, next.Combat.Cooldowns, e.rng, true)
	e.applyTurn(next, res)
	return next
}

func (e *Engine) closeCombat(gs *GameState) *GameState {
	if gs.Mode != ModeCombat || gs.Combat == nil || gs.Combat.Victory == nil {
		return gs
	}
	next := gs.clone()
	c := next.Combat

	if *c.Victory {
		next.Player.Exp += c.Enemy.RewardExp
		next.Player.Gold += c.Enemy.RewardGold
		next.addLog(LogCombat, fmt.Sprintf("Victory! +%d exp, +%d gold.", c.Enemy.RewardExp, c.Enemy.RewardGold))
		for _, drop := range c.Loot {
			next.gainItem(drop, drop.Quantity)
			next.addLog(LogInfo, fmt.Sprintf("Looted %s.", drop.Name))
		}
		e.advanceKillQuests(next, c.Enemy.Name)
		next.event = true
	} else {
		next.Player.HP = 1
		next.addLog(LogNarrative, "You come to, battered but alive.")
	}

	next.Combat = nil
	next.Mode = ModeExploration
	return next
}

// advanceKillQuests credits one kill toward every matching active kill
// quest. Rarity prefixes ("Vicious", "Alpha") still count toward the
// base archetype.
func (e *Engine) advanceKillQuests(next *GameState, enemyName string) {
	for i := range next.Player.Quests {
		q := &next.Player.Quests[i]
		if q.Status != quest.Active || q.Kind != quest.Kill || !strings.Contains(enemyName, q.Target) {
			continue
		}
		q.AmountCurrent++
		if q.AmountCurrent >= q.AmountRequired {
			q.AmountCurrent = q.AmountRequired
			q.Status = quest.Completed
			next.addLog(LogQuest, fmt.Sprintf("Quest complete: %s", q.Title))
		}
	}
}
