package content

// SkillKind selects the attack/defense stat pairing for a skill.
type SkillKind string

const (
	SkillPhysical SkillKind = "physical"
	SkillMagical  SkillKind = "magical"
	SkillHeal     SkillKind = "heal"
)

// Skill ids.
const (
	SkillPowerSlash   = "power_slash"
	SkillFireball     = "fireball"
	SkillShadowStrike = "shadow_strike"
	SkillRecklessBlow = "reckless_blow"
	SkillHolyLight    = "holy_light"
)

// Skill is a class combat skill. Multiplier scales the damage formula;
// BonusCrit is a flat crit-chance addition for that action only;
// RecoilFrac self-damages the user by that fraction of max HP;
// HealPerIntelligence restores intelligence x N HP instead of dealing
// damage.
type Skill struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Kind                SkillKind `json:"kind"`
	MPCost              int       `json:"mp_cost"`
	Cooldown            int       `json:"cooldown"` // turns
	Multiplier          float64   `json:"multiplier"`
	BonusCrit           float64   `json:"bonus_crit,omitempty"`
	RecoilFrac          float64   `json:"recoil_frac,omitempty"`
	HealPerIntelligence int       `json:"heal_per_intelligence,omitempty"`
}

// Skills is the skill registry, one per class.
var Skills = map[string]Skill{
	SkillPowerSlash: {
		ID: SkillPowerSlash, Name: "Power Slash",
		Kind: SkillPhysical, MPCost: 10, Cooldown: 3, Multiplier: 1.5,
	},
	SkillFireball: {
		ID: SkillFireball, Name: "Fireball",
		Kind: SkillMagical, MPCost: 15, Cooldown: 4, Multiplier: 1.8,
	},
	SkillShadowStrike: {
		ID: SkillShadowStrike, Name: "Shadow Strike",
		Kind: SkillPhysical, MPCost: 8, Cooldown: 3, Multiplier: 1.2,
		BonusCrit: 30,
	},
	SkillRecklessBlow: {
		ID: SkillRecklessBlow, Name: "Reckless Blow",
		Kind: SkillPhysical, MPCost: 12, Cooldown: 5, Multiplier: 2.5,
		RecoilFrac: 0.10,
	},
	SkillHolyLight: {
		ID: SkillHolyLight, Name: "Holy Light",
		Kind: SkillHeal, MPCost: 12, Cooldown: 4,
		HealPerIntelligence: 3,
	},
}
