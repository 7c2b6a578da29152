package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func potion() Item {
	return Item{ID: "potion", Name: "Potion", Type: TypeConsumable, Value: 20}
}

func sword() Item {
	return Item{ID: "iron_sword", Name: "Iron Sword", Type: TypeWeapon, Slot: SlotMainHand, Damage: 7, Value: 60}
}

func TestAdd_StacksConsumables(t *testing.T) {
	var inv []Item
	inv = Add(inv, potion(), 2)
	inv = Add(inv, potion(), 3)

	require.Len(t, inv, 1)
	assert.Equal(t, 5, inv[0].Quantity)
	assert.Equal(t, 5, Count(inv, "potion"))
}

func TestAdd_WeaponsNeverStack(t *testing.T) {
	var inv []Item
	inv = Add(inv, sword(), 1)
	inv = Add(inv, sword(), 2)

	require.Len(t, inv, 3)
	for _, it := range inv {
		assert.Equal(t, 1, it.Quantity)
	}
	assert.Equal(t, 3, Count(inv, "iron_sword"))
}

func TestRemove_DecrementsAndDeletes(t *testing.T) {
	var inv []Item
	inv = Add(inv, potion(), 3)

	inv = Remove(inv, potion(), 1)
	require.Len(t, inv, 1)
	assert.Equal(t, 2, inv[0].Quantity)

	inv = Remove(inv, potion(), 2)
	assert.Empty(t, inv)
}

func TestRemove_ClampsOverRemoval(t *testing.T) {
	var inv []Item
	inv = Add(inv, potion(), 2)

	inv = Remove(inv, potion(), 10)
	assert.Empty(t, inv)
}

func TestRemove_NonStackableRemovesOneEntry(t *testing.T) {
	var inv []Item
	inv = Add(inv, sword(), 2)

	inv = Remove(inv, sword(), 1)
	assert.Len(t, inv, 1)
}

func TestRemove_MissingIDIsNoOp(t *testing.T) {
	var inv []Item
	inv = Add(inv, potion(), 1)

	inv = Remove(inv, sword(), 1)
	require.Len(t, inv, 1)
	assert.Equal(t, "potion", inv[0].ID)
}

func TestFind(t *testing.T) {
	var inv []Item
	inv = Add(inv, potion(), 1)
	inv = Add(inv, sword(), 1)

	found := Find(inv, "iron_sword")
	require.NotNil(t, found)
	assert.Equal(t, 7, found.Damage)
	assert.Nil(t, Find(inv, "missing"))
}

func TestStackable(t *testing.T) {
	assert.True(t, potion().Stackable())
	assert.True(t, Item{ID: "pelt", Type: TypeMisc}.Stackable())
	assert.False(t, sword().Stackable())
	assert.False(t, Item{ID: "helm", Type: TypeArmor, Slot: SlotHead}.Stackable())
}
