package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/combat"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

// Mode is the current UI/control mode. Exploration is the hub: almost
// every other mode is entered from it and returns to it.
type Mode string

const (
	ModeMenu        Mode = "menu"
	ModeCreation    Mode = "creation"
	ModeExploration Mode = "exploration"
	ModeCombat      Mode = "combat"
	ModeInteraction Mode = "interaction"
	ModeSettings    Mode = "settings"
	ModeInventory   Mode = "inventory"
	ModeCharacter   Mode = "character"
	ModeStorage     Mode = "storage"
	ModeQuests      Mode = "quests"
	ModeShop        Mode = "shop"
	ModeSave        Mode = "save"
	ModeLoad        Mode = "load"
	ModeMapView     Mode = "map_view"
)

// Weather is a cosmetic environmental flag, rerolled on day rollover.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherFog   Weather = "fog"
	WeatherStorm Weather = "storm"
)

// LogKind classifies a narration entry.
type LogKind string

const (
	LogNarrative LogKind = "narrative"
	LogSystem    LogKind = "system"
	LogCombat    LogKind = "combat"
	LogInfo      LogKind = "info"
	LogDialogue  LogKind = "dialogue"
	LogQuest     LogKind = "quest"
)

// LogEntry is one line of the engine's narration channel.
type LogEntry struct {
	Kind LogKind       `json:"kind"`
	Text string        `json:"text"`
	Date calendar.Date `json:"date"`
}

// LogCap bounds the retained log history.
const LogCap = 50

// AutoSaveFrequency configures when the engine writes the reserved
// autosave slot.
type AutoSaveFrequency string

const (
	AutoSaveOff    AutoSaveFrequency = "off"
	AutoSaveEvent  AutoSaveFrequency = "event"
	AutoSaveHourly AutoSaveFrequency = "hourly"
	AutoSaveDaily  AutoSaveFrequency = "daily"
	AutoSaveWeekly AutoSaveFrequency = "weekly"
)

// Settings are the user-configurable options carried in the snapshot.
type Settings struct {
	AutoSaveFrequency AutoSaveFrequency `json:"auto_save_frequency"`
}

// Interaction points at the in-progress dialogue. Present exactly
// while the mode is interaction.
type Interaction struct {
	NPCID  string `json:"npc_id"`
	NodeID string `json:"node_id"`
}

// GameState is the single authoritative snapshot threaded through the
// transition engine. Transitions never mutate their input; they return
// a structurally-shared copy.
type GameState struct {
	ID           uuid.UUID `json:"id"`
	Mode         Mode      `json:"mode"`
	PreviousMode Mode      `json:"previous_mode,omitempty"` // exploration or menu only

	Player actor.Player `json:"player"`
	NPCs   []actor.NPC  `json:"npcs"`

	Maps         map[string]*world.Map `json:"maps"`
	CurrentMapID string                `json:"current_map_id"`

	Storage []item.Item `json:"storage,omitempty"`

	Date      calendar.Date      `json:"date"`
	Weather   Weather            `json:"weather"`
	TimeOfDay calendar.TimeOfDay `json:"time_of_day"`

	Logs []LogEntry `json:"logs,omitempty"`

	ActiveInteraction *Interaction  `json:"active_interaction,omitempty"`
	Combat            *combat.State `json:"combat,omitempty"`
	ActiveShopNPCID   string        `json:"active_shop_npc_id,omitempty"`

	Settings  Settings  `json:"settings"`
	UpdatedAt time.Time `json:"updated_at"`

	// event marks the transition autosave-eligible for the on-event
	// frequency. Transient; never serialized.
	event bool
}

// clone returns a copy safe to mutate without touching the receiver.
// Small aggregates (logs, npcs, quests, equipment, combat) are copied
// outright; the tile grids inside maps stay shared and rely on
// world.Map's own copy-on-write.
func (gs *GameState) clone() *GameState {
	next := *gs
	next.event = false

	next.Logs = append([]LogEntry(nil), gs.Logs...)
	next.NPCs = append([]actor.NPC(nil), gs.NPCs...)
	next.Player.Quests = append([]quest.Quest(nil), gs.Player.Quests...)
	next.Player.Effects = append([]actor.StatusEffect(nil), gs.Player.Effects...)
	next.Player.CompletedQuestIDs = append([]string(nil), gs.Player.CompletedQuestIDs...)

	if gs.Player.Equipment != nil {
		next.Player.Equipment = make(map[item.Slot]item.Item, len(gs.Player.Equipment))
		for k, v := range gs.Player.Equipment {
			next.Player.Equipment[k] = v
		}
	}

	next.Maps = make(map[string]*world.Map, len(gs.Maps))
	for k, v := range gs.Maps {
		next.Maps[k] = v
	}

	if gs.ActiveInteraction != nil {
		ai := *gs.ActiveInteraction
		next.ActiveInteraction = &ai
	}
	if gs.Combat != nil {
		c := *gs.Combat
		c.Cooldowns = make(map[string]int, len(gs.Combat.Cooldowns))
		for k, v := range gs.Combat.Cooldowns {
			c.Cooldowns[k] = v
		}
		c.Loot = append([]item.Item(nil), gs.Combat.Loot...)
		next.Combat = &c
	}
	return &next
}

// addLog appends a narration entry, trimming history to the cap.
func (gs *GameState) addLog(kind LogKind, text string) {
	if len(gs.Logs) >= LogCap {
		gs.Logs = gs.Logs[len(gs.Logs)-(LogCap-1):]
	}
	gs.Logs = append(gs.Logs, LogEntry{Kind: kind, Text: text, Date: gs.Date})
}

// CurrentMap returns the active map, or nil if the id is dangling.
func (gs *GameState) CurrentMap() *world.Map {
	return gs.Maps[gs.CurrentMapID]
}

// FindNPC returns the NPC with the given id, or nil.
func (gs *GameState) FindNPC(id string) *actor.NPC {
	for i := range gs.NPCs {
		if gs.NPCs[i].ID == id {
			return &gs.NPCs[i]
		}
	}
	return nil
}
