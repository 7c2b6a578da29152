package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// AutosaveKey is the reserved autosave slot; manual saves never touch it.
const AutosaveKey = "autosave"

// MaxSaveSlots bounds the numbered manual slots.
const MaxSaveSlots = 5

// SlotKey returns the storage key for a numbered manual save slot.
func SlotKey(slot int) string {
	return fmt.Sprintf("save:%d", slot)
}

// snapshotJSON serializes a state for persistence. Transient surfaces
// are stripped so a loaded game always resumes in plain exploration.
func snapshotJSON(gs *GameState) ([]byte, error) {
	snap := gs.clone()
	snap.Mode = ModeExploration
	snap.PreviousMode = ""
	snap.Combat = nil
	snap.ActiveInteraction = nil
	snap.ActiveShopNPCID = ""
	snap.UpdatedAt = time.Now()
	return json.Marshal(snap)
}

func (e *Engine) saveGame(ctx context.Context, gs *GameState, a SaveGame) *GameState {
	if gs.Mode != ModeSave || e.store == nil {
		return gs
	}
	if a.Slot < 1 || a.Slot > MaxSaveSlots {
		return gs
	}
	data, err := snapshotJSON(gs)
	if err != nil {
		e.logger.Error("failed to marshal save", "slot", a.Slot, "error", err)
		return gs
	}
	if err := e.store.Write(ctx, SlotKey(a.Slot), data); err != nil {
		e.logger.Error("failed to write save", "slot", a.Slot, "error", err)
		return gs
	}

	next := gs.clone()
	next.Mode = ModeExploration
	next.PreviousMode = ""
	next.addLog(LogInfo, fmt.Sprintf("Game saved to slot %d.", a.Slot))
	return next
}

func (e *Engine) loadGame(ctx context.Context, gs *GameState, a LoadGame) *GameState {
	if gs.Mode != ModeLoad || e.store == nil {
		return gs
	}

	key := AutosaveKey
	if a.Slot > 0 {
		if a.Slot > MaxSaveSlots {
			return gs
		}
		key = SlotKey(a.Slot)
	}

	data, err := e.store.Read(ctx, key)
	if err != nil {
		e.logger.Error("failed to read save", "key", key, "error", err)
		return gs
	}
	if data == nil {
		return gs
	}

	loaded, err := DecodeState(data)
	if err != nil {
		e.logger.Error("failed to decode save", "key", key, "error", err)
		return gs
	}
	loaded.addLog(LogInfo, "Game loaded.")
	return loaded
}

func (e *Engine) setAutoSave(gs *GameState, a SetAutoSave) *GameState {
	if gs.Mode != ModeSettings {
		return gs
	}
	switch a.Frequency {
	case AutoSaveOff, AutoSaveEvent, AutoSaveHourly, AutoSaveDaily, AutoSaveWeekly:
	default:
		return gs
	}
	next := gs.clone()
	next.Settings.AutoSaveFrequency = a.Frequency
	return next
}

// DecodeState parses a persisted snapshot and restores the invariants
// serialization cannot carry. Payloads missing the player or world are
// rejected outright rather than hydrated into a broken session.
func DecodeState(data []byte) (*GameState, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("save data is not a JSON object: %w", err)
	}
	for _, required := range []string{"player", "maps"} {
		if _, ok := probe[required]; !ok {
			return nil, fmt.Errorf("save data is missing %q", required)
		}
	}

	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse save data: %w", err)
	}

	gs.Mode = ModeExploration
	gs.PreviousMode = ""
	gs.Combat = nil
	gs.ActiveInteraction = nil
	gs.ActiveShopNPCID = ""
	if gs.CurrentMapID == "" || gs.Maps[gs.CurrentMapID] == nil {
		return nil, fmt.Errorf("save data references unknown map %q", gs.CurrentMapID)
	}
	if gs.Settings.AutoSaveFrequency == "" {
		gs.Settings.AutoSaveFrequency = AutoSaveEvent
	}
	gs.Player.ClampVitals()
	return &gs, nil
}

// Export serializes the state for out-of-band backup or inspection.
func Export(gs *GameState) ([]byte, error) {
	return snapshotJSON(gs)
}

// Import is the inverse of Export, with the same shape validation the
// loader applies.
func Import(data []byte) (*GameState, error) {
	return DecodeState(data)
}
