package procgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

func TestEnemy_LevelFloorsAtOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		e := Enemy(rng, world.Grass, 1)
		assert.GreaterOrEqual(t, e.Level, 1)
		assert.LessOrEqual(t, e.Level, 2)
	}
}

func TestEnemy_LevelStaysNearPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		e := Enemy(rng, world.Forest, 10)
		assert.GreaterOrEqual(t, e.Level, 9)
		assert.LessOrEqual(t, e.Level, 11)
	}
}

func TestEnemy_RarityPrefixesAndFury(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		e := Enemy(rng, world.Grass, 5)
		seen[e.Rarity] = true
		switch e.Rarity {
		case 2:
			assert.True(t, strings.HasPrefix(e.Name, "Vicious "), e.Name)
		case 3:
			assert.True(t, strings.HasPrefix(e.Name, "Alpha "), e.Name)
			require.NotEmpty(t, e.Effects)
			assert.Equal(t, "Alpha Fury", e.Effects[0].Name)
			assert.Equal(t, -1, e.Effects[0].Duration)
		default:
			assert.False(t, strings.HasPrefix(e.Name, "Vicious "))
			assert.False(t, strings.HasPrefix(e.Name, "Alpha "))
			assert.Empty(t, e.Effects)
		}
		assert.Equal(t, e.MaxHP, e.HP)
		assert.NotEmpty(t, e.ID)
	}
	assert.True(t, seen[1] && seen[2] && seen[3], "300 rolls should hit every rarity")
}

func TestEnemy_RewardsScaleWithLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	e := Enemy(rng, world.Grass, 10)
	assert.GreaterOrEqual(t, e.RewardExp, 10*e.Level)
	assert.GreaterOrEqual(t, e.RewardGold, 5*e.Level)
}

func TestGear_MaterialBreakpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cases := map[int]string{
		1:  "iron",
		4:  "steel",
		9:  "mithril",
		16: "adamantite",
	}
	for level, material := range cases {
		it := Gear(rng, level, item.TypeWeapon)
		assert.True(t, strings.HasPrefix(it.ID, material+"_"),
			"level %d weapon %q should be %s", level, it.ID, material)
	}
}

func TestGear_WeaponShape(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		it := Gear(rng, 5, item.TypeWeapon)
		assert.Equal(t, item.TypeWeapon, it.Type)
		assert.Equal(t, 1, it.Quantity)
		assert.GreaterOrEqual(t, it.Damage, 5+5) // base 5 at common, plus level
		assert.Zero(t, it.Defense)
		assert.Positive(t, it.Value)
		assert.GreaterOrEqual(t, it.Bonus.Strength, 1)
	}
}

func TestGear_ArmorShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	slots := map[item.Slot]bool{}
	for i := 0; i < 80; i++ {
		it := Gear(rng, 10, item.TypeArmor)
		assert.Equal(t, item.TypeArmor, it.Type)
		assert.Positive(t, it.Defense)
		assert.Zero(t, it.Damage)
		slots[it.Slot] = true
	}
	// Armor archetypes cover more than one slot.
	assert.Greater(t, len(slots), 1)
}

func TestGear_LowLevelArmorMayBeLeather(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	leather := 0
	for i := 0; i < 200; i++ {
		if strings.HasPrefix(Gear(rng, 2, item.TypeArmor).ID, "leather_") {
			leather++
		}
	}
	assert.Greater(t, leather, 0, "some low-level armor should be leather")
	assert.Less(t, leather, 200, "not all low-level armor should be leather")
}

func TestShopInventory_RoleSeeds(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	baker := ShopInventory(rng, "baker", 3)
	assert.Equal(t, 5, item.Count(baker, "bread"))
	assert.Equal(t, 3, item.Count(baker, "cheese"))
	assert.Equal(t, 3, item.Count(baker, "steak"))

	alchemist := ShopInventory(rng, "alchemist", 3)
	assert.Equal(t, 5, item.Count(alchemist, "potion"))
	assert.Equal(t, 1, item.Count(alchemist, "max_potion"))
}

func TestShopInventory_SmithsStockGear(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	weaponsmith := ShopInventory(rng, "weaponsmith", 5)
	gear := 0
	for _, it := range weaponsmith {
		if it.Type == item.TypeWeapon {
			gear++
		}
		assert.NotEqual(t, item.TypeArmor, it.Type, "weaponsmith sells no armor")
	}
	assert.Equal(t, 5, gear)

	armorsmith := ShopInventory(rng, "armorsmith", 5)
	armor := 0
	for _, it := range armorsmith {
		if it.Type == item.TypeArmor {
			armor++
		}
	}
	assert.Equal(t, 5, armor)
}

func TestQuest_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	kinds := map[quest.Kind]bool{}
	for i := 0; i < 100; i++ {
		q := Quest(rng, 4)
		kinds[q.Kind] = true
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Target)
		assert.Equal(t, quest.Active, q.Status)
		assert.GreaterOrEqual(t, q.AmountRequired, 2)
		assert.LessOrEqual(t, q.AmountRequired, 4)
		assert.Zero(t, q.AmountCurrent)
		assert.Equal(t, 4*50, q.RewardExp)
		assert.Equal(t, 4*25, q.RewardGold)
	}
	assert.True(t, kinds[quest.Kill] && kinds[quest.Collect])
}

func TestQuest_LevelFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	q := Quest(rng, 0)
	assert.Equal(t, 50, q.RewardExp)
	assert.Equal(t, 25, q.RewardGold)
}
