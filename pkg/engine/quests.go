package engine

import (
	"fmt"

	"github.com/jwebster45206/realm-engine/pkg/procgen"
	"github.com/jwebster45206/realm-engine/pkg/quest"
)

func (e *Engine) generateQuest(gs *GameState) *GameState {
	if gs.Mode != ModeQuests && gs.Mode != ModeInteraction {
		return gs
	}
	next := gs.clone()
	q := procgen.Quest(e.rng, next.Player.Level)
	next.Player.Quests = append(next.Player.Quests, q)
	next.addLog(LogQuest, fmt.Sprintf("New quest: %s", q.Title))
	return next
}

func (e *Engine) claimQuest(gs *GameState, a ClaimQuest) *GameState {
	if gs.Mode != ModeQuests {
		return gs
	}
	idx := -1
	for i := range gs.Player.Quests {
		if gs.Player.Quests[i].ID == a.QuestID {
			idx = i
			break
		}
	}
	if idx < 0 || gs.Player.Quests[idx].Status != quest.Completed {
		return gs
	}

	next := gs.clone()
	q := next.Player.Quests[idx]
	next.Player.Quests = append(next.Player.Quests[:idx], next.Player.Quests[idx+1:]...)
	next.Player.CompletedQuestIDs = append(next.Player.CompletedQuestIDs, q.ID)
	next.Player.Exp += q.RewardExp
	next.Player.Gold += q.RewardGold
	next.addLog(LogQuest, fmt.Sprintf("Claimed %s: +%d exp, +%d gold.", q.Title, q.RewardExp, q.RewardGold))
	return next
}
