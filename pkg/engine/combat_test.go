package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/combat"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
)

func weakWolf() actor.Enemy {
	return actor.Enemy{
		ID: "wolf", Name: "Vicious Wolf", Level: 1,
		HP: 1, MaxHP: 1,
		RewardExp: 8, RewardGold: 6,
	}
}

func TestInitCombat_EntersCombatMode(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)

	gs = e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()})
	require.Equal(t, ModeCombat, gs.Mode)
	require.NotNil(t, gs.Combat)
	assert.False(t, gs.Combat.IsStarted)
	assert.Equal(t, combat.SpeedNormal, gs.Combat.Speed)

	// Ticks before the encounter starts do nothing.
	assert.Same(t, gs, e.Transition(ctx, gs, CombatTick{}))
}

func TestStartCombat_Idempotent(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs = e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()})

	gs = e.Transition(ctx, gs, StartCombat{})
	assert.True(t, gs.Combat.IsStarted)
	assert.Same(t, gs, e.Transition(ctx, gs, StartCombat{}))
}

func TestCombat_VictoryAdvancesKillQuest(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs.Player.Quests = append(gs.Player.Quests, quest.Quest{
		ID: "q-wolves", Kind: quest.Kill, Title: "Cull the Wolves", Target: "Wolf",
		AmountRequired: 2, AmountCurrent: 1, Status: quest.Active,
	})
	expBefore := gs.Player.Exp
	goldBefore := gs.Player.Gold

	gs = e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()})
	gs = e.Transition(ctx, gs, StartCombat{})
	gs = e.Transition(ctx, gs, CombatTick{})

	require.NotNil(t, gs.Combat.Victory)
	assert.True(t, *gs.Combat.Victory)

	// A judged encounter ignores further ticks.
	assert.Same(t, gs, e.Transition(ctx, gs, CombatTick{}))

	gs = e.Transition(ctx, gs, CloseCombat{})
	assert.Equal(t, ModeExploration, gs.Mode)
	assert.Nil(t, gs.Combat)
	assert.Equal(t, expBefore+8, gs.Player.Exp)
	assert.Equal(t, goldBefore+6, gs.Player.Gold)

	q := gs.Player.Quests[0]
	assert.Equal(t, quest.Completed, q.Status)
	assert.Equal(t, 2, q.AmountCurrent)
}

func TestCombat_GuaranteedLootFeedsCollectQuest(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs.Player.Quests = append(gs.Player.Quests, quest.Quest{
		ID: "q-flowers", Kind: quest.Collect, Title: "A Simple Bouquet", Target: "flower",
		AmountRequired: 1, Status: quest.Active,
	})

	enemy := weakWolf()
	enemy.Loot = []actor.LootEntry{
		{Item: item.Item{ID: "flower", Name: "Wildflower", Type: item.TypeMisc, Value: 3}, Chance: 1.0},
	}

	gs = e.Transition(ctx, gs, InitCombat{Enemy: enemy})
	gs = e.Transition(ctx, gs, StartCombat{})
	gs = e.Transition(ctx, gs, CombatTick{})
	gs = e.Transition(ctx, gs, CloseCombat{})

	assert.Equal(t, 1, item.Count(gs.Player.Inventory, "flower"))
	assert.Equal(t, quest.Completed, gs.Player.Quests[0].Status)
}

func TestCombat_DefeatLeavesPlayerAtOneHP(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)

	brute := actor.Enemy{
		ID: "brute", Name: "Ruin Brute", Level: 20,
		HP: 100000, MaxHP: 100000,
		Stats: actor.Stats{Strength: 5000},
	}
	gs = e.Transition(ctx, gs, InitCombat{Enemy: brute})
	gs = e.Transition(ctx, gs, StartCombat{})

	// The player occasionally dodges; tick until the fight is judged.
	for i := 0; i < 200 && gs.Combat.Victory == nil; i++ {
		gs = e.Transition(ctx, gs, CombatTick{})
	}
	require.NotNil(t, gs.Combat.Victory)
	assert.False(t, *gs.Combat.Victory)

	gs = e.Transition(ctx, gs, CloseCombat{})
	assert.Equal(t, 1, gs.Player.HP)
	assert.Equal(t, ModeExploration, gs.Mode)
	assert.Nil(t, gs.Combat)
}

func TestToggleCombatSpeed_Cycles(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs = e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()})

	gs = e.Transition(ctx, gs, ToggleCombatSpeed{})
	assert.Equal(t, combat.SpeedFast, gs.Combat.Speed)
	gs = e.Transition(ctx, gs, ToggleCombatSpeed{})
	assert.Equal(t, combat.SpeedSlow, gs.Combat.Speed)
}

func TestAttemptFlee_BothOutcomesOccur(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	base := startedGame(t, e)

	tough := actor.Enemy{
		ID: "boar", Name: "Ironhide Boar", Level: 5,
		HP: 100000, MaxHP: 100000,
	}

	var escaped, cornered int
	for i := 0; i < 60; i++ {
		gs := e.Transition(ctx, base, InitCombat{Enemy: tough})
		gs = e.Transition(ctx, gs, StartCombat{})
		gs = e.Transition(ctx, gs, AttemptFlee{})
		if gs.Mode == ModeExploration {
			escaped++
			assert.Nil(t, gs.Combat)
		} else {
			cornered++
			require.NotNil(t, gs.Combat)
			// A failed flee hands the enemy a free exchange.
			assert.Less(t, gs.Combat.Enemy.HP, tough.HP, "the player still swings back")
		}
	}
	assert.Positive(t, escaped, "a 50 percent roll should land at least once in 60 tries")
	assert.Positive(t, cornered)
}

func TestCloseCombat_RequiresJudgedEncounter(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs = e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()})
	gs = e.Transition(ctx, gs, StartCombat{})

	assert.Same(t, gs, e.Transition(ctx, gs, CloseCombat{}))
}

func TestInitCombat_RequiresExploration(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := startedGame(t, e)
	gs = e.Transition(ctx, gs, OpenScreen{Mode: ModeInventory})

	assert.Same(t, gs, e.Transition(ctx, gs, InitCombat{Enemy: weakWolf()}))
}
