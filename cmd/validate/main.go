package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/engine"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <save.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &SaveValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Save file is valid!")
}

type SaveValidator struct {
	errors []string
}

func (v *SaveValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var gs engine.GameState
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&gs); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	// The importer applies the same shape checks the loader does.
	if _, err := engine.Import(data); err != nil {
		return fmt.Errorf("file %s rejected by importer: %w", filename, err)
	}

	v.validateState(&gs)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *SaveValidator) validateState(gs *engine.GameState) {
	v.validatePlayer(&gs.Player)

	if gs.CurrentMapID == "" {
		v.addError("current_map_id is empty")
	}
	if _, ok := gs.Maps[gs.CurrentMapID]; !ok {
		v.addError(fmt.Sprintf("current_map_id '%s' has no matching map", gs.CurrentMapID))
	}

	for id, m := range gs.Maps {
		if m == nil {
			v.addError(fmt.Sprintf("map '%s' is null", id))
			continue
		}
		if m.Width <= 0 || m.Height <= 0 {
			v.addError(fmt.Sprintf("map '%s' has invalid dimensions %dx%d", id, m.Width, m.Height))
		}
		if len(m.Tiles) != m.Height {
			v.addError(fmt.Sprintf("map '%s' has %d tile rows, expected %d", id, len(m.Tiles), m.Height))
		}
		for _, tile := range flatten(m.Tiles) {
			if tile.Portal != nil {
				if _, ok := gs.Maps[tile.Portal.MapID]; !ok {
					v.addError(fmt.Sprintf("map '%s' has a portal to unknown map '%s'", id, tile.Portal.MapID))
				}
			}
		}
	}

	for i := range gs.NPCs {
		v.validateNPC(&gs.NPCs[i], gs)
	}

	for _, it := range gs.Storage {
		v.validateItem("storage", it)
	}
}

func (v *SaveValidator) validatePlayer(p *actor.Player) {
	if _, ok := content.Races[p.Race]; !ok {
		v.addError(fmt.Sprintf("player race '%s' is not a known race", p.Race))
	}
	if _, ok := content.Classes[p.Class]; !ok {
		v.addError(fmt.Sprintf("player class '%s' is not a known class", p.Class))
	}
	if p.SkillID != "" {
		if _, ok := content.Skills[p.SkillID]; !ok {
			v.addError(fmt.Sprintf("player skill '%s' is not a known skill", p.SkillID))
		}
	}
	if p.Level < 1 {
		v.addError(fmt.Sprintf("player level %d is below 1", p.Level))
	}
	if p.MaxExp <= 0 {
		v.addError(fmt.Sprintf("player max_exp %d must be positive", p.MaxExp))
	}
	if p.HP < 0 || p.MP < 0 || p.Gold < 0 || p.StatPoints < 0 {
		v.addError("player hp, mp, gold and stat_points must be non-negative")
	}

	d := p.Derived()
	if p.HP > d.MaxHP {
		v.addError(fmt.Sprintf("player hp %d exceeds derived max %d", p.HP, d.MaxHP))
	}
	if p.MP > d.MaxMP {
		v.addError(fmt.Sprintf("player mp %d exceeds derived max %d", p.MP, d.MaxMP))
	}

	for _, it := range p.Inventory {
		v.validateItem("inventory", it)
	}
	for slot, it := range p.Equipment {
		if it.Slot != slot {
			v.addError(fmt.Sprintf("equipment slot '%s' holds item '%s' declared for slot '%s'", slot, it.ID, it.Slot))
		}
	}
	for _, q := range p.Quests {
		v.validateQuest(q)
	}
}

func (v *SaveValidator) validateNPC(npc *actor.NPC, gs *engine.GameState) {
	if npc.ID == "" {
		v.addError("NPC with empty id")
		return
	}
	if _, ok := gs.Maps[npc.MapID]; !ok {
		v.addError(fmt.Sprintf("NPC '%s' is on unknown map '%s'", npc.ID, npc.MapID))
	}
	if npc.Affinity < -100 || npc.Affinity > 100 {
		v.addError(fmt.Sprintf("NPC '%s' affinity %d is outside -100..100", npc.ID, npc.Affinity))
	}
	if npc.DialogueID != "" {
		if _, ok := content.Dialogues[npc.DialogueID]; !ok {
			v.addError(fmt.Sprintf("NPC '%s' references unknown dialogue '%s'", npc.ID, npc.DialogueID))
		}
	}
	for _, it := range npc.Inventory {
		v.validateItem(fmt.Sprintf("NPC '%s' shop", npc.ID), it)
	}
}

func (v *SaveValidator) validateItem(context string, it item.Item) {
	if it.ID == "" {
		v.addError(fmt.Sprintf("%s contains an item with empty id", context))
	}
	if it.Quantity < 1 {
		v.addError(fmt.Sprintf("%s item '%s' has quantity %d, expected >= 1", context, it.ID, it.Quantity))
	}
	if !it.Stackable() && it.Quantity != 1 {
		v.addError(fmt.Sprintf("%s item '%s' is non-stackable but has quantity %d", context, it.ID, it.Quantity))
	}
	if it.Value < 0 {
		v.addError(fmt.Sprintf("%s item '%s' has negative value", context, it.ID))
	}
}

func (v *SaveValidator) validateQuest(q quest.Quest) {
	if q.ID == "" {
		v.addError("quest with empty id")
		return
	}
	if q.Kind != quest.Kill && q.Kind != quest.Collect {
		v.addError(fmt.Sprintf("quest '%s' has unknown kind '%s'", q.ID, q.Kind))
	}
	if q.Status != quest.Active && q.Status != quest.Completed {
		v.addError(fmt.Sprintf("quest '%s' has unknown status '%s'", q.ID, q.Status))
	}
	if q.AmountRequired < 1 {
		v.addError(fmt.Sprintf("quest '%s' requires amount %d, expected >= 1", q.ID, q.AmountRequired))
	}
	if q.AmountCurrent < 0 || q.AmountCurrent > q.AmountRequired {
		v.addError(fmt.Sprintf("quest '%s' progress %d is outside 0..%d", q.ID, q.AmountCurrent, q.AmountRequired))
	}
}

func (v *SaveValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func flatten(rows [][]world.Tile) []world.Tile {
	var out []world.Tile
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
