// Package procgen holds the procedural generators: enemies, gear,
// shop inventories and quests. Every generator takes its *rand.Rand
// explicitly so callers control determinism.
package procgen

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

var titler = cases.Title(language.English)

// Enemy instantiates a scaled enemy for a tile. The template is drawn
// uniformly from the tile's archetype list (grassland fallback), level
// is the player's plus or minus one (floored at 1), and rarity scales
// both stats and rewards.
func Enemy(rng *rand.Rand, terrain world.Terrain, playerLevel int) actor.Enemy {
	templates := content.TemplatesFor(terrain)
	tmpl := templates[rng.Intn(len(templates))]

	level := playerLevel + rng.Intn(3) - 1
	if level < 1 {
		level = 1
	}
	scale := 1 + float64(level)*0.1

	rarity := 1
	switch r := rng.Float64(); {
	case r < 0.8:
		rarity = 1
	case r < 0.95:
		rarity = 2
	default:
		rarity = 3
	}
	rarityMult := 1 + float64(rarity-1)*0.5

	stats := actor.Stats{
		Strength:     int(float64(tmpl.Base.Strength) * scale * rarityMult),
		Dexterity:    int(float64(tmpl.Base.Dexterity) * scale * rarityMult),
		Constitution: int(float64(tmpl.Base.Constitution) * scale * rarityMult),
		Intelligence: int(float64(tmpl.Base.Intelligence) * scale * rarityMult),
		Speed:        int(float64(tmpl.Base.Speed) * scale * rarityMult),
		Luck:         int(float64(tmpl.Base.Luck) * scale * rarityMult),
	}
	maxHP := int((50 + float64(stats.Constitution)*5) * scale)

	name := tmpl.Name
	switch rarity {
	case 2:
		name = "Vicious " + name
	case 3:
		name = "Alpha " + name
	}

	e := actor.Enemy{
		ID:         uuid.NewString(),
		Name:       name,
		Level:      level,
		Rarity:     rarity,
		Stats:      stats,
		HP:         maxHP,
		MaxHP:      maxHP,
		RewardExp:  int(10 * float64(level) * rarityMult),
		RewardGold: int(5 * float64(level) * rarityMult),
		Loot:       tmpl.Loot,
	}
	if rarity >= 3 {
		e.Effects = append(e.Effects, actor.StatusEffect{
			Kind:     actor.EffectStrengthBuff,
			Name:     "Alpha Fury",
			Amount:   5,
			Duration: -1,
		})
	}
	return e
}

// Gear rolls a weapon or armor piece for a level. Material tier follows
// level breakpoints; low-level armor may come out leather instead of
// the level-appropriate metal.
func Gear(rng *rand.Rand, level int, kind item.Type) item.Item {
	mat := materialFor(level)
	if kind == item.TypeArmor && level < 5 && rng.Float64() < 0.5 {
		mat = content.Materials[0] // leather
	}

	rarity := item.RarityCommon
	switch r := rng.Float64(); {
	case r > 0.98:
		rarity = item.RarityEpic
	case r > 0.9:
		rarity = item.RarityRare
	case r > 0.7:
		rarity = item.RarityUncommon
	}
	mult := rarityMultiplier(rarity)

	var arch string
	if kind == item.TypeWeapon {
		arch = content.WeaponArchetypes[rng.Intn(len(content.WeaponArchetypes))]
	} else {
		arch = content.ArmorArchetypes[rng.Intn(len(content.ArmorArchetypes))]
	}

	it := item.Item{
		ID:       strings.ToLower(mat.Name + "_" + arch),
		Name:     gearName(rarity, mat.Name, arch),
		Type:     kind,
		Rarity:   rarity,
		Value:    int(float64(mat.BaseValue) * mult * (1 + float64(level)*0.1)),
		Quantity: 1,
		Slot:     content.ArchetypeSlot(arch),
	}
	bonus := int(math.Ceil(float64(mat.Stat) * mult))
	if kind == item.TypeWeapon {
		it.Damage = int(5*mult) + level
		it.Bonus.Strength = bonus
	} else {
		it.Defense = int(2*mult + float64(level)*0.5)
		it.Bonus.Constitution = bonus
	}
	return it
}

func materialFor(level int) content.Material {
	switch {
	case level > 15:
		return content.Materials[4] // adamantite
	case level > 8:
		return content.Materials[3] // mithril
	case level > 3:
		return content.Materials[2] // steel
	default:
		return content.Materials[1] // iron
	}
}

func rarityMultiplier(r item.Rarity) float64 {
	switch r {
	case item.RarityUncommon:
		return 1.2
	case item.RarityRare:
		return 1.5
	case item.RarityEpic:
		return 2.0
	case item.RarityLegendary:
		return 3.0
	default:
		return 1.0
	}
}

func gearName(r item.Rarity, material, arch string) string {
	if r == item.RarityCommon {
		return titler.String(strings.ToLower(material + " " + arch))
	}
	return titler.String(strings.ToLower(r.String() + " " + material + " " + arch))
}

// ShopInventory builds a shopkeeper's stock: a role-keyed starter set
// of consumables plus five rolls of procedural gear biased by the role
// keyword.
func ShopInventory(rng *rand.Rand, role string, level int) []item.Item {
	var stock []item.Item
	add := func(id string, qty int) {
		stock = item.Add(stock, content.Consumables[id], qty)
	}

	switch {
	case strings.Contains(role, "merchant"):
		add(content.ItemPotion, 5)
		add(content.ItemBread, 3)
		add(content.ItemFlower, 2)
	case strings.Contains(role, "alchemist"):
		add(content.ItemPotion, 5)
		add(content.ItemMaxPotion, 1)
		add(content.ItemDust, 3)
	case strings.Contains(role, "baker"):
		add(content.ItemBread, 5)
		add(content.ItemCheese, 3)
		add(content.ItemSteak, 3)
	}

	for i := 0; i < 5; i++ {
		switch {
		case strings.Contains(role, "weapon"):
			stock = item.Add(stock, Gear(rng, level, item.TypeWeapon), 1)
		case strings.Contains(role, "armor"):
			stock = item.Add(stock, Gear(rng, level, item.TypeArmor), 1)
		case strings.Contains(role, "smith"):
			kind := item.TypeWeapon
			if rng.Float64() >= 0.7 {
				kind = item.TypeArmor
			}
			stock = item.Add(stock, Gear(rng, level, kind), 1)
		case strings.Contains(role, "merchant"):
			if rng.Float64() < 0.3 {
				kind := item.TypeWeapon
				if rng.Float64() < 0.5 {
					kind = item.TypeArmor
				}
				stock = item.Add(stock, Gear(rng, level, kind), 1)
			}
		}
	}
	return stock
}

// Quest rolls a kill-or-collect objective scaled to the player level.
func Quest(rng *rand.Rand, level int) quest.Quest {
	if level < 1 {
		level = 1
	}
	kind := quest.Kill
	seeds := content.KillQuestSeeds
	if rng.Float64() < 0.5 {
		kind = quest.Collect
		seeds = content.CollectQuestSeeds
	}
	seed := seeds[rng.Intn(len(seeds))]
	return quest.Quest{
		ID:             uuid.NewString(),
		Kind:           kind,
		Title:          seed.Title,
		Description:    fmt.Sprintf("%s (%s)", seed.Description, seed.Target),
		Target:         seed.Target,
		AmountRequired: 2 + rng.Intn(3),
		RewardExp:      level * 50,
		RewardGold:     level * 25,
		Status:         quest.Active,
	}
}
