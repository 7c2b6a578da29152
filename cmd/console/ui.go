package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/realm-engine/pkg/actor"
	"github.com/jwebster45206/realm-engine/pkg/engine"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

// Creation screen field order.
const (
	fieldName = iota
	fieldRace
	fieldClass
)

var raceOrder = []actor.Race{
	actor.RaceHuman, actor.RaceElf, actor.RaceDwarf,
	actor.RaceOrc, actor.RaceHalfling, actor.RaceGnome,
}

var classOrder = []actor.Class{
	actor.ClassWarrior, actor.ClassMage, actor.ClassRogue,
	actor.ClassBerserker, actor.ClassCleric,
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	eng *engine.Engine
	gs  *engine.GameState
	ctx context.Context

	logViewport viewport.Model
	nameInput   textinput.Model
	ready       bool
	width       int
	height      int

	// Creation screen state
	creationField int
	raceIdx       int
	classIdx      int

	// Generic list cursor, reset on every mode change
	cursor int

	// Storage and shop screens toggle between two lists
	rightPane bool

	// tickGen invalidates in-flight combat tick timers when the speed
	// changes or combat ends.
	tickGen int

	// Quit confirmation state
	showQuitModal bool
}

type combatTickMsg struct {
	gen int
}

func NewConsoleUI(eng *engine.Engine, gs *engine.GameState) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = "Adventurer"
	ti.CharLimit = 24
	ti.Width = 24

	vp := viewport.New(60, 10)

	return ConsoleUI{
		eng:         eng,
		gs:          gs,
		ctx:         context.Background(),
		nameInput:   ti,
		logViewport: vp,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

// dispatch submits one action to the engine and handles side effects of
// the resulting mode change (combat tick scheduling, cursor reset).
func (m *ConsoleUI) dispatch(a engine.Action) tea.Cmd {
	prevMode := m.gs.Mode
	m.gs = m.eng.Transition(m.ctx, m.gs, a)

	if m.gs.Mode != prevMode {
		m.cursor = 0
		m.rightPane = false
	}

	if m.gs.Mode == engine.ModeCombat && prevMode != engine.ModeCombat {
		m.gs = m.eng.Transition(m.ctx, m.gs, engine.StartCombat{})
		m.tickGen++
		return m.scheduleTick()
	}
	if m.gs.Mode != engine.ModeCombat {
		m.tickGen++
	}
	return nil
}

func (m *ConsoleUI) scheduleTick() tea.Cmd {
	if m.gs.Combat == nil {
		return nil
	}
	gen := m.tickGen
	return tea.Tick(m.gs.Combat.Speed.Interval(), func(time.Time) tea.Msg {
		return combatTickMsg{gen: gen}
	})
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 4
		m.logViewport.Height = 8
		m.ready = true

	case combatTickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		c := m.gs.Combat
		if m.gs.Mode != engine.ModeCombat || c == nil || !c.IsStarted || c.Victory != nil {
			return m, nil
		}
		m.gs = m.eng.Transition(m.ctx, m.gs, engine.CombatTick{})
		if c = m.gs.Combat; c != nil && c.Victory == nil {
			return m, m.scheduleTick()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.gs.Mode {
	case engine.ModeMenu:
		return m.handleMenuKey(msg)
	case engine.ModeCreation:
		return m.handleCreationKey(msg)
	case engine.ModeExploration:
		return m.handleExplorationKey(msg)
	case engine.ModeCombat:
		return m.handleCombatKey(msg)
	case engine.ModeInteraction:
		return m.handleInteractionKey(msg)
	case engine.ModeShop:
		return m.handleShopKey(msg)
	case engine.ModeInventory:
		return m.handleInventoryKey(msg)
	case engine.ModeCharacter:
		return m.handleCharacterKey(msg)
	case engine.ModeStorage:
		return m.handleStorageKey(msg)
	case engine.ModeQuests:
		return m.handleQuestsKey(msg)
	case engine.ModeSave:
		return m.handleSaveKey(msg)
	case engine.ModeLoad:
		return m.handleLoadKey(msg)
	case engine.ModeSettings:
		return m.handleSettingsKey(msg)
	case engine.ModeMapView:
		if msg.Type == tea.KeyEsc || msg.String() == "m" {
			return m, m.dispatch(engine.CloseScreen{})
		}
	}
	return m, nil
}

func (m ConsoleUI) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.creationField = fieldName
		m.raceIdx, m.classIdx = 0, 0
		return m, m.dispatch(engine.NewGame{})
	case "l":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeLoad})
	case "o":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeSettings})
	case "q":
		m.showQuitModal = true
	}
	return m, nil
}

func (m ConsoleUI) handleCreationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.dispatch(engine.StartGame{
			Name:  strings.TrimSpace(m.nameInput.Value()),
			Race:  raceOrder[m.raceIdx],
			Class: classOrder[m.classIdx],
		})
	case tea.KeyUp:
		if m.creationField > fieldName {
			m.creationField--
		}
		if m.creationField == fieldName {
			m.nameInput.Focus()
		}
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		if m.creationField < fieldClass {
			m.creationField++
			m.nameInput.Blur()
		}
		return m, nil
	case tea.KeyLeft:
		switch m.creationField {
		case fieldRace:
			m.raceIdx = (m.raceIdx + len(raceOrder) - 1) % len(raceOrder)
		case fieldClass:
			m.classIdx = (m.classIdx + len(classOrder) - 1) % len(classOrder)
		}
		return m, nil
	case tea.KeyRight:
		switch m.creationField {
		case fieldRace:
			m.raceIdx = (m.raceIdx + 1) % len(raceOrder)
		case fieldClass:
			m.classIdx = (m.classIdx + 1) % len(classOrder)
		}
		return m, nil
	}

	if m.creationField == fieldName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ConsoleUI) handleExplorationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.gs.Player
	switch msg.String() {
	case "up":
		return m, m.dispatch(engine.Move{X: p.X, Y: p.Y - 1})
	case "down":
		return m, m.dispatch(engine.Move{X: p.X, Y: p.Y + 1})
	case "left":
		return m, m.dispatch(engine.Move{X: p.X - 1, Y: p.Y})
	case "right":
		return m, m.dispatch(engine.Move{X: p.X + 1, Y: p.Y})
	case "e":
		return m, m.dispatch(engine.Search{})
	case "r":
		return m, m.dispatch(engine.Rest{})
	case "t":
		if npc := m.adjacentNPC(); npc != nil {
			return m, m.dispatch(engine.StartInteraction{NPCID: npc.ID})
		}
	case "p":
		if npc := m.adjacentNPC(); npc != nil {
			return m, m.dispatch(engine.OpenShop{NPCID: npc.ID})
		}
	case "i":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeInventory})
	case "c":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeCharacter})
	case "q":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeQuests})
	case "b":
		if m.gs.CurrentMapID == world.HomeMapID {
			return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeStorage})
		}
	case "m":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeMapView})
	case "v":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeSave})
	case "l":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeLoad})
	case "o":
		return m, m.dispatch(engine.OpenScreen{Mode: engine.ModeSettings})
	}
	return m, nil
}

// adjacentNPC finds an NPC on the player's tile or one of its four
// neighbors on the current map.
func (m *ConsoleUI) adjacentNPC() *actor.NPC {
	p := m.gs.Player
	for i := range m.gs.NPCs {
		npc := &m.gs.NPCs[i]
		if npc.MapID != m.gs.CurrentMapID {
			continue
		}
		dx, dy := npc.X-p.X, npc.Y-p.Y
		if dx*dx+dy*dy <= 1 {
			return npc
		}
	}
	return nil
}

func (m ConsoleUI) handleCombatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.gs.Combat
	if c == nil {
		return m, nil
	}
	switch msg.String() {
	case " ":
		cmd := m.dispatch(engine.ToggleCombatSpeed{})
		m.tickGen++
		return m, tea.Batch(cmd, m.scheduleTick())
	case "f":
		if c.Victory == nil {
			return m, m.dispatch(engine.AttemptFlee{})
		}
	case "enter":
		if c.Victory != nil {
			return m, m.dispatch(engine.CloseCombat{})
		}
	}
	return m, nil
}

func (m ConsoleUI) handleInteractionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m, m.dispatch(engine.EndInteraction{})
	}
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return m, m.dispatch(engine.SelectOption{Index: int(s[0] - '1')})
	}
	return m, nil
}

func (m ConsoleUI) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	npc := m.gs.FindNPC(m.gs.ActiveShopNPCID)
	if npc == nil {
		return m, m.dispatch(engine.CloseScreen{})
	}
	list := npc.Inventory
	if m.rightPane {
		list = m.gs.Player.Inventory
	}
	switch msg.String() {
	case "esc":
		return m, m.dispatch(engine.CloseScreen{})
	case "tab":
		m.rightPane = !m.rightPane
		m.cursor = 0
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "r":
		return m, m.dispatch(engine.RestockShop{})
	case "enter":
		if m.cursor >= len(list) {
			return m, nil
		}
		id := list[m.cursor].ID
		if m.rightPane {
			return m, m.dispatch(engine.SellItem{ItemID: id})
		}
		return m, m.dispatch(engine.BuyItem{ItemID: id})
	}
	return m, nil
}

func (m ConsoleUI) handleInventoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inv := m.gs.Player.Inventory
	switch msg.String() {
	case "esc", "i":
		return m, m.dispatch(engine.CloseScreen{})
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(inv)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= len(inv) {
			return m, nil
		}
		it := inv[m.cursor]
		switch it.Type {
		case item.TypeWeapon, item.TypeArmor:
			return m, m.dispatch(engine.EquipItem{Index: m.cursor})
		case item.TypeConsumable:
			return m, m.dispatch(engine.UseItem{ItemID: it.ID})
		}
	case "1":
		return m, m.dispatch(engine.UnequipItem{Slot: item.SlotMainHand})
	case "2":
		return m, m.dispatch(engine.UnequipItem{Slot: item.SlotOffHand})
	case "3":
		return m, m.dispatch(engine.UnequipItem{Slot: item.SlotHead})
	case "4":
		return m, m.dispatch(engine.UnequipItem{Slot: item.SlotBody})
	case "5":
		return m, m.dispatch(engine.UnequipItem{Slot: item.SlotFeet})
	}
	return m, nil
}

func (m ConsoleUI) handleCharacterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	attrs := map[string]engine.Attribute{
		"1": engine.AttrStrength,
		"2": engine.AttrDexterity,
		"3": engine.AttrConstitution,
		"4": engine.AttrIntelligence,
		"5": engine.AttrSpeed,
		"6": engine.AttrLuck,
	}
	s := msg.String()
	if s == "esc" || s == "c" {
		return m, m.dispatch(engine.CloseScreen{})
	}
	if attr, ok := attrs[s]; ok {
		return m, m.dispatch(engine.AllocateStat{Attribute: attr})
	}
	return m, nil
}

func (m ConsoleUI) handleStorageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.gs.Player.Inventory
	if m.rightPane {
		list = m.gs.Storage
	}
	switch msg.String() {
	case "esc", "b":
		return m, m.dispatch(engine.CloseScreen{})
	case "tab":
		m.rightPane = !m.rightPane
		m.cursor = 0
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= len(list) {
			return m, nil
		}
		id := list[m.cursor].ID
		if m.rightPane {
			return m, m.dispatch(engine.Withdraw{ItemID: id})
		}
		return m, m.dispatch(engine.Deposit{ItemID: id})
	}
	return m, nil
}

func (m ConsoleUI) handleQuestsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quests := m.gs.Player.Quests
	switch msg.String() {
	case "esc", "q":
		return m, m.dispatch(engine.CloseScreen{})
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(quests)-1 {
			m.cursor++
		}
	case "g":
		return m, m.dispatch(engine.GenerateQuest{})
	case "enter":
		if m.cursor < len(quests) {
			return m, m.dispatch(engine.ClaimQuest{QuestID: quests[m.cursor].ID})
		}
	}
	return m, nil
}

func (m ConsoleUI) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "esc" {
		return m, m.dispatch(engine.CloseScreen{})
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '0'+engine.MaxSaveSlots {
		return m, m.dispatch(engine.SaveGame{Slot: int(s[0] - '0')})
	}
	return m, nil
}

func (m ConsoleUI) handleLoadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "esc" {
		return m, m.dispatch(engine.CloseScreen{})
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '0'+engine.MaxSaveSlots {
		return m, m.dispatch(engine.LoadGame{Slot: int(s[0] - '0')})
	}
	return m, nil
}

var autoSaveOrder = []engine.AutoSaveFrequency{
	engine.AutoSaveOff,
	engine.AutoSaveEvent,
	engine.AutoSaveHourly,
	engine.AutoSaveDaily,
	engine.AutoSaveWeekly,
}

func (m ConsoleUI) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "o":
		return m, m.dispatch(engine.CloseScreen{})
	case "a":
		cur := 0
		for i, f := range autoSaveOrder {
			if f == m.gs.Settings.AutoSaveFrequency {
				cur = i
				break
			}
		}
		next := autoSaveOrder[(cur+1)%len(autoSaveOrder)]
		return m, m.dispatch(engine.SetAutoSave{Frequency: next})
	}
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.showQuitModal = false
				return m, nil
			}
		}
	}
	return m, nil
}
