package content

import "github.com/jwebster45206/realm-engine/pkg/actor"

// RaceDef is a playable race template.
type RaceDef struct {
	ID          actor.Race  `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Base        actor.Stats `json:"base"`
}

// Races is the playable race registry.
var Races = map[actor.Race]RaceDef{
	actor.RaceHuman: {
		ID: actor.RaceHuman, Name: "Human",
		Description: "Adaptable and unremarkable in every direction.",
		Base:        actor.Stats{Strength: 5, Dexterity: 5, Constitution: 5, Intelligence: 5, Speed: 5, Luck: 5},
	},
	actor.RaceElf: {
		ID: actor.RaceElf, Name: "Elf",
		Description: "Keen-eyed and quick, at home under the canopy.",
		Base:        actor.Stats{Strength: 3, Dexterity: 6, Constitution: 4, Intelligence: 7, Speed: 6, Luck: 4},
	},
	actor.RaceDwarf: {
		ID: actor.RaceDwarf, Name: "Dwarf",
		Description: "Stone-stubborn, built to take a beating.",
		Base:        actor.Stats{Strength: 6, Dexterity: 4, Constitution: 7, Intelligence: 4, Speed: 3, Luck: 5},
	},
	actor.RaceOrc: {
		ID: actor.RaceOrc, Name: "Orc",
		Description: "Raw muscle; subtlety sold separately.",
		Base:        actor.Stats{Strength: 8, Dexterity: 4, Constitution: 6, Intelligence: 2, Speed: 4, Luck: 3},
	},
	actor.RaceHalfling: {
		ID: actor.RaceHalfling, Name: "Halfling",
		Description: "Too small and too fast to hit.",
		Base:        actor.Stats{Strength: 3, Dexterity: 6, Constitution: 4, Intelligence: 4, Speed: 8, Luck: 6},
	},
	actor.RaceGnome: {
		ID: actor.RaceGnome, Name: "Gnome",
		Description: "Improbably lucky at the worst possible moments.",
		Base:        actor.Stats{Strength: 3, Dexterity: 5, Constitution: 4, Intelligence: 6, Speed: 4, Luck: 9},
	},
}

// ClassDef is a playable class template. Bonus is added to the race
// base at character creation; SkillID names the class combat skill.
type ClassDef struct {
	ID          actor.Class `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Bonus       actor.Stats `json:"bonus"`
	SkillID     string      `json:"skill_id"`
}

// Classes is the playable class registry.
var Classes = map[actor.Class]ClassDef{
	actor.ClassWarrior: {
		ID: actor.ClassWarrior, Name: "Warrior",
		Description: "Sword, shield, and the patience to use both.",
		Bonus:       actor.Stats{Strength: 2, Constitution: 1},
		SkillID:     SkillPowerSlash,
	},
	actor.ClassMage: {
		ID: actor.ClassMage, Name: "Mage",
		Description: "Solves problems by setting them on fire.",
		Bonus:       actor.Stats{Intelligence: 3},
		SkillID:     SkillFireball,
	},
	actor.ClassRogue: {
		ID: actor.ClassRogue, Name: "Rogue",
		Description: "Strikes from the dark and counts the take.",
		Bonus:       actor.Stats{Dexterity: 2, Speed: 1},
		SkillID:     SkillShadowStrike,
	},
	actor.ClassBerserker: {
		ID: actor.ClassBerserker, Name: "Berserker",
		Description: "Trades skin for damage and calls it a bargain.",
		Bonus:       actor.Stats{Strength: 3},
		SkillID:     SkillRecklessBlow,
	},
	actor.ClassCleric: {
		ID: actor.ClassCleric, Name: "Cleric",
		Description: "Keeps the party standing, starting with themselves.",
		Bonus:       actor.Stats{Intelligence: 2, Constitution: 1},
		SkillID:     SkillHolyLight,
	},
}
