package combat

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
)

// Speed selects the tick interval while combat runs.
type Speed int

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

// Next cycles to the following speed preset.
func (s Speed) Next() Speed { return (s + 1) % 3 }

// Interval is the wall-clock delay between combat ticks.
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return 1500 * time.Millisecond
	case SpeedFast:
		return 500 * time.Millisecond
	default:
		return time.Second
	}
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "normal"
	}
}

// State is the transient combat aggregate, present on the game state
// exactly while the mode is combat. Victory is nil until judged.
type State struct {
	Enemy     actor.Enemy    `json:"enemy"`
	IsStarted bool           `json:"is_started"`
	Victory   *bool          `json:"victory,omitempty"`
	Cooldowns map[string]int `json:"cooldowns,omitempty"`
	Speed     Speed          `json:"speed"`
	Loot      []item.Item    `json:"loot,omitempty"`
}

// TurnResult carries one resolved exchange back to the caller, which
// composites the HP/MP values into player and enemy and judges
// victory or defeat.
type TurnResult struct {
	PlayerHP  int
	PlayerMP  int
	EnemyHP   int
	Cooldowns map[string]int
	Logs      []string
}

// ResolveTurn resolves one simultaneous player-then-enemy exchange.
// Pure: neither combatant is mutated. When playerActsLast is set (a
// failed flee cripples the player's speed) the enemy strikes first and
// the player only acts if still standing.
func ResolveTurn(p *actor.Player, en *actor.Enemy, cooldowns map[string]int, rng *rand.Rand, playerActsLast bool) TurnResult {
	res := TurnResult{
		PlayerHP:  p.HP,
		PlayerMP:  p.MP,
		EnemyHP:   en.HP,
		Cooldowns: make(map[string]int, len(cooldowns)),
	}
	for k, v := range cooldowns {
		if v > 0 {
			v--
		}
		res.Cooldowns[k] = v
	}

	pd := p.Derived()
	ed := en.Derived()
	_, ptotal := actor.ComputeStats(p.StatSource())
	_, etotal := actor.ComputeStats(en.StatSource())

	playerAct := func() {
		if res.EnemyHP <= 0 || res.PlayerHP <= 0 {
			return
		}
		skill, ok := content.Skills[p.SkillID]
		if ok && res.Cooldowns[skill.ID] == 0 && res.PlayerMP >= skill.MPCost {
			res.Cooldowns[skill.ID] = skill.Cooldown
			res.PlayerMP -= skill.MPCost
			switch skill.Kind {
			case content.SkillHeal:
				heal := ptotal.Intelligence * skill.HealPerIntelligence
				res.PlayerHP += heal
				if res.PlayerHP > pd.MaxHP {
					res.PlayerHP = pd.MaxHP
				}
				res.Logs = append(res.Logs, fmt.Sprintf("%s casts %s and recovers %d HP.", p.Name, skill.Name, heal))
			case content.SkillMagical:
				dmg := rollDamage(rng, ptotal.Intelligence+p.WeaponDamage(), skill.Multiplier, pd.CritChance+skill.BonusCrit, ed.MagicalDef)
				res.EnemyHP -= dmg
				res.Logs = append(res.Logs, fmt.Sprintf("%s casts %s for %d damage.", p.Name, skill.Name, dmg))
			default:
				dmg := rollDamage(rng, ptotal.Strength+p.WeaponDamage(), skill.Multiplier, pd.CritChance+skill.BonusCrit, ed.PhysicalDef)
				res.EnemyHP -= dmg
				res.Logs = append(res.Logs, fmt.Sprintf("%s uses %s for %d damage.", p.Name, skill.Name, dmg))
			}
			if skill.RecoilFrac > 0 {
				recoil := int(float64(pd.MaxHP) * skill.RecoilFrac)
				res.PlayerHP -= recoil
				res.Logs = append(res.Logs, fmt.Sprintf("%s staggers from the recoil (%d damage).", p.Name, recoil))
			}
			return
		}
		dmg := rollDamage(rng, ptotal.Strength+p.WeaponDamage(), 1.0, pd.CritChance, ed.PhysicalDef)
		res.EnemyHP -= dmg
		res.Logs = append(res.Logs, fmt.Sprintf("%s attacks %s for %d damage.", p.Name, en.Name, dmg))
	}

	enemyAct := func() {
		if res.EnemyHP <= 0 || res.PlayerHP <= 0 {
			return
		}
		if float64(rng.Intn(100)) < pd.Evasion {
			res.Logs = append(res.Logs, fmt.Sprintf("%s lunges, but %s slips aside.", en.Name, p.Name))
			return
		}
		dmg := rollDamage(rng, etotal.Strength, 1.0, ed.CritChance, pd.PhysicalDef)
		res.PlayerHP -= dmg
		res.Logs = append(res.Logs, fmt.Sprintf("%s strikes %s for %d damage.", en.Name, p.Name, dmg))
	}

	if playerActsLast {
		enemyAct()
		playerAct()
	} else {
		playerAct()
		enemyAct()
	}
	return res
}

// rollDamage applies the shared damage formula:
// max(1, floor((attack × mult × crit) − defense×0.5)).
func rollDamage(rng *rand.Rand, attack int, mult, critChance, defense float64) int {
	critMult := 1.0
	if float64(rng.Intn(100)) < critChance {
		critMult = 1.5
	}
	raw := float64(attack) * mult * critMult
	dmg := int(math.Floor(raw - defense*0.5))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// FleeChance is the percent chance of escaping, monotonic in the speed
// difference and bounded to [10, 90].
func FleeChance(playerSpeed, enemySpeed int) int {
	chance := 50 + (playerSpeed-enemySpeed)*5
	if chance < 10 {
		chance = 10
	}
	if chance > 90 {
		chance = 90
	}
	return chance
}

// RollLoot rolls each of the enemy's loot entries independently.
func RollLoot(en *actor.Enemy, rng *rand.Rand) []item.Item {
	var drops []item.Item
	for _, entry := range en.Loot {
		if rng.Float64() < entry.Chance {
			drops = item.Add(drops, entry.Item, 1)
		}
	}
	return drops
}
