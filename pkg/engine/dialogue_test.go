package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
)

func talkingTo(t *testing.T, e *Engine, npcID string) *GameState {
	t.Helper()
	gs := startedGame(t, e)
	gs = e.Transition(context.Background(), gs, StartInteraction{NPCID: npcID})
	require.Equal(t, ModeInteraction, gs.Mode)
	return gs
}

func TestStartInteraction_OpensAtStartNode(t *testing.T) {
	e, _ := testEngine(1)
	gs := talkingTo(t, e, "tessa")

	require.NotNil(t, gs.ActiveInteraction)
	assert.Equal(t, "tessa", gs.ActiveInteraction.NPCID)
	assert.Equal(t, "hello", gs.ActiveInteraction.NodeID)
	assert.Contains(t, lastLogOfKind(gs, LogDialogue), "Tessa:")
}

func TestStartInteraction_UnknownNPCIsNoOp(t *testing.T) {
	e, _ := testEngine(1)
	gs := startedGame(t, e)
	assert.Same(t, gs, e.Transition(context.Background(), gs, StartInteraction{NPCID: "nobody"}))
}

func TestSelectOption_GiftRequiresTheItem(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "tessa")

	// The baker's second option gives away a flower the player does
	// not have yet.
	assert.Same(t, gs, e.Transition(ctx, gs, SelectOption{Index: 1}))

	gs.Player.Inventory = item.Add(gs.Player.Inventory, content.Consumables[content.ItemFlower], 1)
	next := e.Transition(ctx, gs, SelectOption{Index: 1})

	assert.Zero(t, item.Count(next.Player.Inventory, content.ItemFlower))
	assert.Equal(t, 5, next.FindNPC("tessa").Affinity)
	assert.Equal(t, ModeExploration, next.Mode, "option without a next node ends the talk")
	assert.Nil(t, next.ActiveInteraction)
}

func TestSelectOption_InnRoomCostsTenGold(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "hobb")
	gs.Player.HP = 3

	next := e.Transition(ctx, gs, SelectOption{Index: 0})

	assert.Equal(t, 90, next.Player.Gold)
	assert.Equal(t, next.Player.Derived().MaxHP, next.Player.HP)
	assert.Equal(t, ModeExploration, next.Mode)
	assert.Equal(t, 16, next.Date.Hour)
}

func TestSelectOption_InnRoomUnaffordable(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "hobb")
	gs.Player.Gold = 9

	assert.Same(t, gs, e.Transition(ctx, gs, SelectOption{Index: 0}))
}

func TestSelectOption_ElderHandsOutWork(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "rowan")

	next := e.Transition(ctx, gs, SelectOption{Index: 0})

	require.Len(t, next.Player.Quests, 1)
	assert.Equal(t, ModeInteraction, next.Mode)
	assert.Equal(t, "work", next.ActiveInteraction.NodeID)

	// "I'll get to it." closes the conversation.
	done := e.Transition(ctx, next, SelectOption{Index: 1})
	assert.Equal(t, ModeExploration, done.Mode)
	assert.Nil(t, done.ActiveInteraction)
}

func TestSelectOption_MerchantOpensShop(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "mira")

	next := e.Transition(ctx, gs, SelectOption{Index: 0})

	assert.Equal(t, ModeShop, next.Mode)
	assert.Equal(t, "mira", next.ActiveShopNPCID)
	assert.Nil(t, next.ActiveInteraction)
	assert.NotEmpty(t, next.FindNPC("mira").Inventory)
}

func TestSelectOption_IndexOutOfRange(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "mira")

	assert.Same(t, gs, e.Transition(ctx, gs, SelectOption{Index: 99}))
	assert.Same(t, gs, e.Transition(ctx, gs, SelectOption{Index: -1}))
}

func TestEndInteraction_ReturnsToExploration(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := talkingTo(t, e, "rowan")

	next := e.Transition(ctx, gs, EndInteraction{})
	assert.Equal(t, ModeExploration, next.Mode)
	assert.Nil(t, next.ActiveInteraction)

	assert.Same(t, next, e.Transition(ctx, next, EndInteraction{}))
}
