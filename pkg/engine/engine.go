package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

// Store is the persistence capability the engine writes snapshots
// through. Read returns nil data (no error) when the key is absent.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Engine is the transition engine: a reducer over GameState. It owns
// the RNG, the persistence gateway and the operational logger; game
// narration goes through GameState.Logs instead.
type Engine struct {
	rng    *rand.Rand
	store  Store
	logger *slog.Logger
}

// New creates an engine. A zero seed falls back to the clock.
func New(store Store, logger *slog.Logger, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		rng:    rand.New(rand.NewSource(seed)),
		store:  store,
		logger: logger,
	}
}

// NewSession builds a fresh menu-mode state with a generated world.
func (e *Engine) NewSession() *GameState {
	return &GameState{
		ID:           uuid.New(),
		Mode:         ModeMenu,
		NPCs:         content.NPCs(),
		Maps:         world.Generate(e.rng),
		CurrentMapID: world.HomeMapID,
		Date:         calendar.Date{Year: 1, Month: 3, Day: 1, Hour: 8},
		Weather:      WeatherClear,
		TimeOfDay:    calendar.TimeOfDayAt(8),
		Settings:     Settings{AutoSaveFrequency: AutoSaveEvent},
		UpdatedAt:    time.Now(),
	}
}

// Transition applies exactly one transition rule and returns the
// resulting snapshot. Malformed or inapplicable actions return the
// input state unchanged; no transition ever fails loudly. The caller
// must serialize submissions: one action in flight at a time.
func (e *Engine) Transition(ctx context.Context, gs *GameState, a Action) *GameState {
	if gs == nil || a == nil {
		return gs
	}
	before := gs.Date

	var next *GameState
	switch act := a.(type) {
	case NewGame:
		next = e.newGame(gs)
	case StartGame:
		next = e.startGame(gs, act)
	case Move:
		next = e.move(gs, act)
	case Search:
		next = e.search(gs)
	case Rest:
		next = e.rest(gs)
	case OpenScreen:
		next = e.openScreen(gs, act)
	case CloseScreen:
		next = e.closeScreen(gs)
	case EquipItem:
		next = e.equipItem(gs, act)
	case UnequipItem:
		next = e.unequipItem(gs, act)
	case UseItem:
		next = e.useItem(gs, act)
	case AllocateStat:
		next = e.allocateStat(gs, act)
	case Deposit:
		next = e.deposit(gs, act)
	case Withdraw:
		next = e.withdraw(gs, act)
	case GenerateQuest:
		next = e.generateQuest(gs)
	case ClaimQuest:
		next = e.claimQuest(gs, act)
	case OpenShop:
		next = e.openShop(gs, act.NPCID)
	case BuyItem:
		next = e.buyItem(gs, act)
	case SellItem:
		next = e.sellItem(gs, act)
	case RestockShop:
		next = e.restockShop(gs)
	case InitCombat:
		next = e.initCombat(gs, act)
	case StartCombat:
		next = e.startCombat(gs)
	case CombatTick:
		next = e.combatTick(gs)
	case ToggleCombatSpeed:
		next = e.toggleCombatSpeed(gs)
	case AttemptFlee:
		next = e.attemptFlee(gs)
	case CloseCombat:
		next = e.closeCombat(gs)
	case StartInteraction:
		next = e.startInteraction(gs, act)
	case SelectOption:
		next = e.selectOption(gs, act)
	case EndInteraction:
		next = e.endInteraction(gs)
	case SaveGame:
		next = e.saveGame(ctx, gs, act)
	case LoadGame:
		next = e.loadGame(ctx, gs, act)
	case SetAutoSave:
		next = e.setAutoSave(gs, act)
	default:
		e.logger.Warn("unrecognized action", "type", fmt.Sprintf("%T", a))
		return gs
	}

	if next == gs {
		return gs
	}

	e.settleLevelUps(next)
	e.maybeAutosave(ctx, before, next)
	next.event = false
	next.UpdatedAt = time.Now()
	return next
}

// advanceClock moves the in-world clock, recomputes the time of day,
// rerolls weather on day rollover, and applies regeneration.
func (e *Engine) advanceClock(gs *GameState, minutes int) {
	prevDay := calendar.TotalDays(gs.Date)
	gs.Date = calendar.Advance(gs.Date, minutes)
	gs.TimeOfDay = calendar.TimeOfDayAt(gs.Date.Hour)
	if calendar.TotalDays(gs.Date) != prevDay {
		gs.Weather = e.rollWeather()
	}
	gs.Player.Regen(minutes)
}

func (e *Engine) rollWeather() Weather {
	switch r := e.rng.Float64(); {
	case r < 0.6:
		return WeatherClear
	case r < 0.8:
		return WeatherRain
	case r < 0.92:
		return WeatherFog
	default:
		return WeatherStorm
	}
}

// settleLevelUps loops until exp no longer reaches the threshold, so a
// single reward crossing several thresholds levels more than once.
func (e *Engine) settleLevelUps(gs *GameState) {
	p := &gs.Player
	if p.MaxExp <= 0 {
		return
	}
	for p.Exp >= p.MaxExp {
		p.Exp -= p.MaxExp
		p.Level++
		p.MaxExp = p.MaxExp * 3 / 2
		p.StatPoints += 2
		d := p.Derived()
		p.HP = d.MaxHP
		p.MP = d.MaxMP
		gs.addLog(LogSystem, fmt.Sprintf("%s reached level %d!", p.Name, p.Level))
	}
}

// maybeAutosave writes the reserved autosave slot when the configured
// frequency triggers. Persistence failures are swallowed: the state
// transition already succeeded.
func (e *Engine) maybeAutosave(ctx context.Context, before calendar.Date, next *GameState) {
	if e.store == nil {
		return
	}
	var due bool
	switch next.Settings.AutoSaveFrequency {
	case AutoSaveEvent:
		due = next.event
	case AutoSaveHourly:
		due = totalHours(before) != totalHours(next.Date)
	case AutoSaveDaily:
		due = calendar.TotalDays(before) != calendar.TotalDays(next.Date)
	case AutoSaveWeekly:
		due = calendar.TotalDays(before)/7 != calendar.TotalDays(next.Date)/7
	default:
		return
	}
	if !due {
		return
	}
	data, err := snapshotJSON(next)
	if err != nil {
		e.logger.Error("failed to marshal autosave", "error", err)
		return
	}
	if err := e.store.Write(ctx, AutosaveKey, data); err != nil {
		e.logger.Error("failed to write autosave", "error", err)
		return
	}
	next.addLog(LogInfo, "Game autosaved.")
}

func totalHours(d calendar.Date) int {
	return calendar.TotalDays(d)*24 + d.Hour
}

// gainItem routes an item into the player's inventory through the
// stacking algebra and advances any matching collect quest.
func (gs *GameState) gainItem(it item.Item, amount int) {
	gs.Player.Inventory = item.Add(gs.Player.Inventory, it, amount)
	for i := range gs.Player.Quests {
		q := &gs.Player.Quests[i]
		if q.Status != quest.Active || q.Kind != quest.Collect || q.Target != it.ID {
			continue
		}
		q.AmountCurrent += amount
		if q.AmountCurrent >= q.AmountRequired {
			q.AmountCurrent = q.AmountRequired
			q.Status = quest.Completed
			gs.addLog(LogQuest, fmt.Sprintf("Quest complete: %s", q.Title))
		}
	}
}
