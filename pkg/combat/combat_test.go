package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
)

// A punching-bag enemy: zero stats mean its attacks always land for
// the 1-damage floor and it never dodges or crits.
func dummyEnemy(hp int) actor.Enemy {
	return actor.Enemy{
		ID: "dummy", Name: "Dummy", Level: 1,
		HP: hp, MaxHP: hp,
	}
}

func TestSpeed_CyclesAndIntervals(t *testing.T) {
	assert.Equal(t, SpeedNormal, SpeedSlow.Next())
	assert.Equal(t, SpeedFast, SpeedNormal.Next())
	assert.Equal(t, SpeedSlow, SpeedFast.Next())
	assert.Greater(t, SpeedSlow.Interval(), SpeedNormal.Interval())
	assert.Greater(t, SpeedNormal.Interval(), SpeedFast.Interval())
}

func TestResolveTurn_MinimumDamageIsOne(t *testing.T) {
	// No strength, no weapon, no skill: every exchange deals exactly 1.
	p := &actor.Player{Name: "Pacifist", Level: 1, HP: 60, MP: 0}
	en := dummyEnemy(10)
	rng := rand.New(rand.NewSource(1))

	res := ResolveTurn(p, &en, nil, rng, false)
	assert.Equal(t, 9, res.EnemyHP)
	assert.Equal(t, 59, res.PlayerHP)
}

func TestResolveTurn_HealSkill(t *testing.T) {
	p := &actor.Player{
		Name:    "Cleric",
		Level:   1,
		SkillID: content.SkillHolyLight,
		Base:    actor.Stats{Intelligence: 20},
		HP:      20,
		MP:      20,
	}
	d := p.Derived()
	en := dummyEnemy(50)
	rng := rand.New(rand.NewSource(2))

	res := ResolveTurn(p, &en, map[string]int{}, rng, false)

	sk := content.Skills[content.SkillHolyLight]
	// 20 INT heals 60, clamped to max, then the counterattack lands
	// for the 1-damage floor.
	assert.Equal(t, d.MaxHP-1, res.PlayerHP)
	assert.Equal(t, 20-sk.MPCost, res.PlayerMP)
	assert.Equal(t, sk.Cooldown, res.Cooldowns[content.SkillHolyLight])
	assert.Equal(t, 50, res.EnemyHP, "healing deals no damage")
}

func TestResolveTurn_SkillOnCooldownFallsBackToAttack(t *testing.T) {
	p := &actor.Player{
		Name:    "Cleric",
		Level:   1,
		SkillID: content.SkillHolyLight,
		Base:    actor.Stats{Intelligence: 20},
		HP:      30,
		MP:      20,
	}
	en := dummyEnemy(50)
	rng := rand.New(rand.NewSource(3))

	res := ResolveTurn(p, &en, map[string]int{content.SkillHolyLight: 2}, rng, false)

	assert.Equal(t, 1, res.Cooldowns[content.SkillHolyLight], "cooldown ticks down")
	assert.Equal(t, 20, res.PlayerMP, "no MP spent")
	assert.Equal(t, 49, res.EnemyHP, "basic attack lands for the floor")
}

func TestResolveTurn_InsufficientMPFallsBackToAttack(t *testing.T) {
	p := &actor.Player{
		Name:    "Cleric",
		Level:   1,
		SkillID: content.SkillHolyLight,
		Base:    actor.Stats{Intelligence: 20},
		HP:      30,
		MP:      5,
	}
	en := dummyEnemy(50)
	rng := rand.New(rand.NewSource(4))

	res := ResolveTurn(p, &en, map[string]int{}, rng, false)
	assert.Equal(t, 5, res.PlayerMP)
	assert.Equal(t, 49, res.EnemyHP)
}

func TestResolveTurn_RecoilSkill(t *testing.T) {
	p := &actor.Player{
		Name:    "Berserker",
		Level:   1,
		SkillID: content.SkillRecklessBlow,
		Base:    actor.Stats{Strength: 10},
		HP:      60,
		MP:      20,
	}
	d := p.Derived()
	en := dummyEnemy(500)
	rng := rand.New(rand.NewSource(5))

	res := ResolveTurn(p, &en, map[string]int{}, rng, false)

	sk := content.Skills[content.SkillRecklessBlow]
	recoil := int(float64(d.MaxHP) * sk.RecoilFrac)
	require.Positive(t, recoil)
	// Recoil plus the enemy's floor hit.
	assert.Equal(t, 60-recoil-1, res.PlayerHP)
	assert.Less(t, res.EnemyHP, 500)
}

func TestResolveTurn_PlayerActsLast(t *testing.T) {
	// With the enemy striking first and the player at 1 HP, the
	// player falls before acting.
	p := &actor.Player{Name: "Fragile", Level: 1, HP: 1, MP: 0}
	en := dummyEnemy(50)
	rng := rand.New(rand.NewSource(6))

	res := ResolveTurn(p, &en, nil, rng, true)
	assert.Equal(t, 0, res.PlayerHP)
	assert.Equal(t, 50, res.EnemyHP, "downed player does not act")
}

func TestResolveTurn_DoesNotMutateInputs(t *testing.T) {
	p := &actor.Player{Name: "A", Level: 1, HP: 40, MP: 10}
	en := dummyEnemy(30)
	cooldowns := map[string]int{"x": 2}
	rng := rand.New(rand.NewSource(7))

	ResolveTurn(p, &en, cooldowns, rng, false)
	assert.Equal(t, 40, p.HP)
	assert.Equal(t, 30, en.HP)
	assert.Equal(t, 2, cooldowns["x"])
}

func TestFleeChance_Bounds(t *testing.T) {
	assert.Equal(t, 50, FleeChance(5, 5))
	assert.Equal(t, 60, FleeChance(7, 5))
	assert.Equal(t, 10, FleeChance(0, 50))
	assert.Equal(t, 90, FleeChance(50, 0))
}

func TestFleeChance_Monotonic(t *testing.T) {
	prev := FleeChance(0, 10)
	for speed := 1; speed <= 30; speed++ {
		cur := FleeChance(speed, 10)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestRollLoot_ChanceExtremes(t *testing.T) {
	en := actor.Enemy{
		Loot: []actor.LootEntry{
			{Item: item.Item{ID: "pelt", Type: item.TypeMisc, Value: 4}, Chance: 1.0},
			{Item: item.Item{ID: "fang", Type: item.TypeMisc, Value: 6}, Chance: 0.0},
		},
	}
	rng := rand.New(rand.NewSource(8))

	drops := RollLoot(&en, rng)
	assert.Equal(t, 1, item.Count(drops, "pelt"))
	assert.Zero(t, item.Count(drops, "fang"))
}
