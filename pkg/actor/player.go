package actor

import (
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
)

// Race identifiers. Halflings are the evasion specialists and gnomes
// the luck specialists; ComputeStats grants their flat bonuses.
type Race string

const (
	RaceHuman    Race = "human"
	RaceElf      Race = "elf"
	RaceDwarf    Race = "dwarf"
	RaceOrc      Race = "orc"
	RaceHalfling Race = "halfling"
	RaceGnome    Race = "gnome"
)

// Class identifiers. Each class carries exactly one combat skill.
type Class string

const (
	ClassWarrior   Class = "warrior"
	ClassMage      Class = "mage"
	ClassRogue     Class = "rogue"
	ClassBerserker Class = "berserker"
	ClassCleric    Class = "cleric"
)

// Player is the sole player-controlled entity. Created once at game
// start and never destroyed within a session; defeat floors HP at 1.
type Player struct {
	Name       string `json:"name"`
	Race       Race   `json:"race"`
	Class      Class  `json:"class"`
	SkillID    string `json:"skill_id"`
	Level      int    `json:"level"`
	Exp        int    `json:"exp"`
	MaxExp     int    `json:"max_exp"`
	HP         int    `json:"hp"`
	MP         int    `json:"mp"`
	Gold       int    `json:"gold"`
	StatPoints int    `json:"stat_points"`
	Base       Stats  `json:"base_stats"`
	X          int    `json:"x"`
	Y          int    `json:"y"`

	Inventory []item.Item             `json:"inventory"`
	Equipment map[item.Slot]item.Item `json:"equipment,omitempty"`
	Effects   []StatusEffect          `json:"effects,omitempty"`

	Quests            []quest.Quest `json:"quests,omitempty"`
	CompletedQuestIDs []string      `json:"completed_quest_ids,omitempty"`
}

// EquippedItems returns the equipment as a flat list for stat
// computation, in stable slot order.
func (p *Player) EquippedItems() []item.Item {
	if len(p.Equipment) == 0 {
		return nil
	}
	slots := []item.Slot{item.SlotMainHand, item.SlotOffHand, item.SlotHead, item.SlotBody, item.SlotFeet}
	out := make([]item.Item, 0, len(p.Equipment))
	for _, s := range slots {
		if eq, ok := p.Equipment[s]; ok {
			out = append(out, eq)
		}
	}
	return out
}

// StatSource assembles the player's inputs to ComputeStats.
func (p *Player) StatSource() StatSource {
	return StatSource{
		Base:      p.Base,
		Level:     p.Level,
		Race:      p.Race,
		Equipment: p.EquippedItems(),
		Effects:   p.Effects,
	}
}

// Derived recomputes the player's derived stats.
func (p *Player) Derived() Derived {
	d, _ := ComputeStats(p.StatSource())
	return d
}

// WeaponDamage is the flat damage of the main-hand weapon, if any.
func (p *Player) WeaponDamage() int {
	if w, ok := p.Equipment[item.SlotMainHand]; ok {
		return w.Damage
	}
	return 0
}

// ClampVitals bounds HP and MP to the current derived maximums.
func (p *Player) ClampVitals() {
	d := p.Derived()
	if p.HP > d.MaxHP {
		p.HP = d.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
	if p.MP > d.MaxMP {
		p.MP = d.MaxMP
	}
	if p.MP < 0 {
		p.MP = 0
	}
}

// Regen applies hourly regeneration scaled by elapsed minutes, clamped
// to the derived maximums. Resting bypasses this and restores fully.
func (p *Player) Regen(minutes int) {
	d := p.Derived()
	p.HP += d.HPRegen * minutes / 60
	p.MP += d.MPRegen * minutes / 60
	if p.HP > d.MaxHP {
		p.HP = d.MaxHP
	}
	if p.MP > d.MaxMP {
		p.MP = d.MaxMP
	}
}
