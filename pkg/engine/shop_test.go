package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/realm-engine/pkg/item"
)

func openedShop(t *testing.T, e *Engine) *GameState {
	t.Helper()
	gs := startedGame(t, e)
	gs = e.Transition(context.Background(), gs, OpenShop{NPCID: "mira"})
	require.Equal(t, ModeShop, gs.Mode)
	return gs
}

func TestOpenShop_GeneratesInventoryOnce(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := openedShop(t, e)

	npc := gs.FindNPC("mira")
	require.NotNil(t, npc)
	assert.True(t, npc.HasGeneratedInventory)
	assert.NotEmpty(t, npc.Inventory)
	assert.Equal(t, "mira", gs.ActiveShopNPCID)

	// Reopening within the restock window keeps the same stock.
	stock := append([]item.Item(nil), npc.Inventory...)
	gs = e.Transition(ctx, gs, CloseScreen{})
	gs = e.Transition(ctx, gs, OpenShop{NPCID: "mira"})
	assert.Equal(t, stock, gs.FindNPC("mira").Inventory)
}

func TestOpenShop_UnknownNPCIsNoOp(t *testing.T) {
	e, _ := testEngine(1)
	gs := startedGame(t, e)
	assert.Same(t, gs, e.Transition(context.Background(), gs, OpenShop{NPCID: "nobody"}))
}

func TestBuyItem_ExactGoldSucceeds(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := openedShop(t, e)

	entry := gs.FindNPC("mira").Inventory[0]
	had := item.Count(gs.Player.Inventory, entry.ID)
	gs.Player.Gold = entry.Value

	next := e.Transition(ctx, gs, BuyItem{ItemID: entry.ID})

	assert.Zero(t, next.Player.Gold)
	assert.Equal(t, had+1, item.Count(next.Player.Inventory, entry.ID))
	assert.Equal(t, item.Count(gs.FindNPC("mira").Inventory, entry.ID)-1,
		item.Count(next.FindNPC("mira").Inventory, entry.ID))
}

func TestBuyItem_OneGoldShortIsNoOp(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := openedShop(t, e)

	entry := gs.FindNPC("mira").Inventory[0]
	gs.Player.Gold = entry.Value - 1

	assert.Same(t, gs, e.Transition(ctx, gs, BuyItem{ItemID: entry.ID}))
}

func TestBuyItem_UnstockedItemIsNoOp(t *testing.T) {
	e, _ := testEngine(1)
	gs := openedShop(t, e)
	assert.Same(t, gs, e.Transition(context.Background(), gs, BuyItem{ItemID: "adamantite_sword"}))
}

func TestSellItem_HalfValueAndStockGain(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := openedShop(t, e)
	goldBefore := gs.Player.Gold
	stockBefore := item.Count(gs.FindNPC("mira").Inventory, "bread")

	next := e.Transition(ctx, gs, SellItem{ItemID: "bread"})

	// Bread is worth 5; half value rounds down.
	assert.Equal(t, goldBefore+2, next.Player.Gold)
	assert.Zero(t, item.Count(next.Player.Inventory, "bread"))
	assert.Equal(t, stockBefore+1, item.Count(next.FindNPC("mira").Inventory, "bread"))
}

func TestSellItem_RequiresOwnership(t *testing.T) {
	e, _ := testEngine(1)
	gs := openedShop(t, e)
	assert.Same(t, gs, e.Transition(context.Background(), gs, SellItem{ItemID: "pelt"}))
}

func TestRestockShop_CostsGold(t *testing.T) {
	e, _ := testEngine(1)
	ctx := context.Background()
	gs := openedShop(t, e)
	gs.Player.Gold = 150

	next := e.Transition(ctx, gs, RestockShop{})
	assert.Equal(t, 50, next.Player.Gold)
	assert.NotEmpty(t, next.FindNPC("mira").Inventory)

	next.Player.Gold = 99
	assert.Same(t, next, e.Transition(ctx, next, RestockShop{}))
}

func TestShopActions_RequireShopMode(t *testing.T) {
	e, _ := testEngine(1)
	gs := startedGame(t, e)
	ctx := context.Background()

	assert.Same(t, gs, e.Transition(ctx, gs, BuyItem{ItemID: "potion"}))
	assert.Same(t, gs, e.Transition(ctx, gs, SellItem{ItemID: "potion"}))
	assert.Same(t, gs, e.Transition(ctx, gs, RestockShop{}))
}
