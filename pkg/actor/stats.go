package actor

import (
	"github.com/jwebster45206/realm-engine/pkg/item"
)

// Stats are the six core attributes shared by players and enemies.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Speed        int `json:"speed"`
	Luck         int `json:"luck"`
}

// Add returns the field-wise sum of two stat blocks.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Strength:     s.Strength + o.Strength,
		Dexterity:    s.Dexterity + o.Dexterity,
		Constitution: s.Constitution + o.Constitution,
		Intelligence: s.Intelligence + o.Intelligence,
		Speed:        s.Speed + o.Speed,
		Luck:         s.Luck + o.Luck,
	}
}

// EffectKind tags a status effect's mechanical contribution.
type EffectKind string

const (
	EffectStrengthBuff EffectKind = "strength_buff"
	EffectDefenseBuff  EffectKind = "defense_buff"
)

// StatusEffect is an active buff. Duration is counted in combat turns;
// a negative duration never expires.
type StatusEffect struct {
	Kind     EffectKind `json:"kind"`
	Name     string     `json:"name"`
	Amount   int        `json:"amount"`
	Duration int        `json:"duration"`
}

// Derived holds the combat numbers recomputed from attributes,
// equipment and status effects. Never stored as authoritative state.
type Derived struct {
	MaxHP       int     `json:"max_hp"`
	MaxMP       int     `json:"max_mp"`
	PhysicalDef float64 `json:"physical_def"`
	MagicalDef  float64 `json:"magical_def"`
	Evasion     float64 `json:"evasion"`
	CritChance  float64 `json:"crit_chance"`
	HPRegen     int     `json:"hp_regen"` // per in-world hour
	MPRegen     int     `json:"mp_regen"`
}

// StatSource is everything ComputeStats reads. Enemies pass no
// equipment and no race.
type StatSource struct {
	Base      Stats
	Level     int
	Race      Race
	Equipment []item.Item
	Effects   []StatusEffect
}

// ComputeStats derives combat numbers from a stat source. Call it fresh
// whenever totals are needed; results must not be cached across any
// state mutation.
func ComputeStats(src StatSource) (Derived, Stats) {
	total := src.Base
	for _, eq := range src.Equipment {
		total = total.Add(Stats{
			Strength:     eq.Bonus.Strength,
			Dexterity:    eq.Bonus.Dexterity,
			Constitution: eq.Bonus.Constitution,
			Intelligence: eq.Bonus.Intelligence,
			Speed:        eq.Bonus.Speed,
			Luck:         eq.Bonus.Luck,
		})
	}
	for _, ef := range src.Effects {
		switch ef.Kind {
		case EffectStrengthBuff:
			total.Strength += ef.Amount
		case EffectDefenseBuff:
			total.Constitution += ef.Amount
		}
	}

	d := Derived{
		MaxHP:       50 + total.Constitution*5 + src.Level*10,
		MaxMP:       20 + total.Intelligence*3 + src.Level*5,
		PhysicalDef: float64(total.Constitution)*0.5 + float64(total.Strength)*0.2,
		MagicalDef:  float64(total.Intelligence) * 0.5,
		Evasion:     float64(total.Speed)*0.5 + float64(total.Luck)*0.1,
		CritChance:  float64(total.Dexterity)*0.5 + float64(total.Luck)*0.2,
		HPRegen:     total.Constitution + total.Strength/5,
		MPRegen:     int(float64(total.Intelligence)*0.8 + float64(src.Level)*0.5),
	}
	for _, eq := range src.Equipment {
		d.PhysicalDef += float64(eq.Defense)
	}
	if src.Race == RaceHalfling {
		d.Evasion += 10
	}
	if src.Race == RaceGnome {
		d.CritChance += 15
	}
	return d, total
}
