package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/realm-engine/pkg/calendar"
	"github.com/jwebster45206/realm-engine/pkg/content"
	"github.com/jwebster45206/realm-engine/pkg/engine"
	"github.com/jwebster45206/realm-engine/pkg/item"
	"github.com/jwebster45206/realm-engine/pkg/quest"
	"github.com/jwebster45206/realm-engine/pkg/world"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")). // yellow
			Bold(true)

	npcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	combatLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // red

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var terrainGlyphs = map[world.Terrain]string{
	world.Grass:    ".",
	world.Forest:   "T",
	world.Mountain: "^",
	world.Water:    "~",
	world.Sand:     ",",
	world.Ruins:    "&",
	world.Dungeon:  "D",
	world.Road:     "=",
	world.Floor:    ".",
	world.Wall:     "#",
	world.House:    "H",
	world.Door:     "+",
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderModal("Quit Game?",
			"Abandon your adventure? Unsaved progress is lost.",
			"Press Y to quit, N to continue")
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	switch m.gs.Mode {
	case engine.ModeMenu:
		return m.renderMenu()
	case engine.ModeCreation:
		return m.renderCreation()
	case engine.ModeCombat:
		return m.renderCombat()
	case engine.ModeInteraction:
		return m.renderInteraction()
	case engine.ModeShop:
		return m.renderShop()
	case engine.ModeInventory:
		return m.renderInventory()
	case engine.ModeCharacter:
		return m.renderCharacter()
	case engine.ModeStorage:
		return m.renderStorage()
	case engine.ModeQuests:
		return m.renderQuests()
	case engine.ModeSave:
		return m.renderSlots("Save Game", "Press 1-5 to choose a slot, Esc to cancel")
	case engine.ModeLoad:
		return m.renderSlots("Load Game", "Press 0 for the autosave, 1-5 for a slot, Esc to cancel")
	case engine.ModeSettings:
		return m.renderSettings()
	case engine.ModeMapView:
		return m.renderMapView()
	default:
		return m.renderExploration()
	}
}

func (m ConsoleUI) renderModal(title, body, hint string) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(title))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(body, 44))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render(hint))
	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("REALM ENGINE"))
	b.WriteString("\n\n")
	b.WriteString("A small world, yours to wander.\n\n")
	b.WriteString("  n - New Game\n")
	b.WriteString("  l - Load Game\n")
	b.WriteString("  o - Settings\n")
	b.WriteString("  q - Quit\n")
	modal := modalStyle.Width(40).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderCreation() string {
	race := content.Races[raceOrder[m.raceIdx]]
	class := content.Classes[classOrder[m.classIdx]]

	label := func(field int, text string) string {
		if m.creationField == field {
			return selectedStyle.Render(text)
		}
		return text
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Create Your Character"))
	b.WriteString("\n\n")
	b.WriteString(label(fieldName, "Name:  ") + m.nameInput.View() + "\n\n")
	b.WriteString(label(fieldRace, "Race:  ") + fmt.Sprintf("< %s >", race.Name) + "\n")
	b.WriteString(promptStyle.Render(wordwrap.String(race.Description, 44)) + "\n\n")
	b.WriteString(label(fieldClass, "Class: ") + fmt.Sprintf("< %s >", class.Name) + "\n")
	b.WriteString(promptStyle.Render(wordwrap.String(class.Description, 44)) + "\n\n")

	stats := race.Base.Add(class.Bonus)
	b.WriteString(fmt.Sprintf("STR %d  DEX %d  CON %d  INT %d  SPD %d  LCK %d\n\n",
		stats.Strength, stats.Dexterity, stats.Constitution,
		stats.Intelligence, stats.Speed, stats.Luck))
	b.WriteString(promptStyle.Render("Up/Down: field  Left/Right: choose  Enter: begin"))

	modal := modalStyle.Width(52).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderMap draws a camera window centered on the player. Unexplored
// tiles render as blank space.
func (m ConsoleUI) renderMap(wm *world.Map, viewW, viewH int) string {
	p := m.gs.Player

	left := p.X - viewW/2
	top := p.Y - viewH/2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if left+viewW > wm.Width {
		left = wm.Width - viewW
	}
	if top+viewH > wm.Height {
		top = wm.Height - viewH
	}
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}

	npcAt := make(map[[2]int]bool)
	for _, npc := range m.gs.NPCs {
		if npc.MapID == m.gs.CurrentMapID {
			npcAt[[2]int{npc.X, npc.Y}] = true
		}
	}

	var b strings.Builder
	for y := top; y < top+viewH && y < wm.Height; y++ {
		for x := left; x < left+viewW && x < wm.Width; x++ {
			switch {
			case x == p.X && y == p.Y:
				b.WriteString(playerStyle.Render("@"))
			case npcAt[[2]int{x, y}]:
				b.WriteString(npcStyle.Render("☺"))
			case !wm.ExploredAt(x, y):
				b.WriteString(" ")
			default:
				b.WriteString(terrainGlyphs[wm.Tiles[y][x].Terrain])
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m ConsoleUI) renderLogs(width, lines int) string {
	logs := m.gs.Logs
	if len(logs) > lines {
		logs = logs[len(logs)-lines:]
	}
	var b strings.Builder
	for _, entry := range logs {
		style := narrativeStyle
		switch entry.Kind {
		case engine.LogCombat:
			style = combatLogStyle
		case engine.LogInfo, engine.LogSystem:
			style = infoStyle
		case engine.LogDialogue:
			style = npcStyle
		}
		b.WriteString(style.Render(wordwrap.String(entry.Text, width)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m ConsoleUI) renderStatus() string {
	p := m.gs.Player
	d := p.Derived()
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("Lv %d  %s %s\n", p.Level, content.Races[p.Race].Name, content.Classes[p.Class].Name))
	b.WriteString(fmt.Sprintf("HP %d/%d  MP %d/%d\n", p.HP, d.MaxHP, p.MP, d.MaxMP))
	b.WriteString(fmt.Sprintf("Exp %d/%d  Gold %d\n", p.Exp, p.MaxExp, p.Gold))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s\n", formatDate(m.gs.Date), m.gs.TimeOfDay))
	b.WriteString(fmt.Sprintf("Weather: %s\n", m.gs.Weather))
	if wm := m.gs.CurrentMap(); wm != nil {
		b.WriteString(fmt.Sprintf("%s (%d, %d)\n", wm.Name, p.X, p.Y))
	}
	return b.String()
}

func formatDate(d calendar.Date) string {
	return fmt.Sprintf("Y%d M%d D%d %02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute)
}

func (m ConsoleUI) renderExploration() string {
	wm := m.gs.CurrentMap()
	if wm == nil {
		return "No map."
	}

	mapH := m.height - 12
	if mapH < 8 {
		mapH = 8
	}
	mapW := m.width - 30
	if mapW < 20 {
		mapW = 20
	}

	mapPanel := panelStyle.Render(m.renderMap(wm, mapW, mapH))
	statusPanel := panelStyle.Render(m.renderStatus() + "\n" +
		promptStyle.Render("arrows move\ne search  r rest\nt talk  p shop\ni inv  c char  q quests\nm map  b stash\nv save  l load  o opts"))

	top := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, statusPanel)
	logPanel := panelStyle.Width(m.width - 4).Render(m.renderLogs(m.width-8, 6))
	return lipgloss.JoinVertical(lipgloss.Left, top, logPanel)
}

func (m ConsoleUI) renderCombat() string {
	c := m.gs.Combat
	if c == nil {
		return ""
	}
	p := m.gs.Player
	d := p.Derived()

	var b strings.Builder
	b.WriteString(titleStyle.Render("COMBAT") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  Lv %d  (%s)\n", c.Enemy.Name, c.Enemy.Level, rarityName(c.Enemy.Rarity)))
	b.WriteString(renderBar(c.Enemy.HP, c.Enemy.MaxHP, 30, combatLogStyle) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  Lv %d\n", p.Name, p.Level))
	b.WriteString(renderBar(p.HP, d.MaxHP, 30, narrativeStyle) + "\n")
	b.WriteString(fmt.Sprintf("MP %d/%d\n\n", p.MP, d.MaxMP))

	if sk, ok := content.Skills[p.SkillID]; ok {
		cd := c.Cooldowns[p.SkillID]
		if cd > 0 {
			b.WriteString(promptStyle.Render(fmt.Sprintf("%s ready in %d turns", sk.Name, cd)) + "\n")
		} else {
			b.WriteString(infoStyle.Render(fmt.Sprintf("%s ready (%d MP)", sk.Name, sk.MPCost)) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("Speed: %s\n\n", c.Speed))
	b.WriteString(m.renderLogs(56, 8) + "\n\n")

	if c.Victory != nil {
		if *c.Victory {
			b.WriteString(infoStyle.Render("Victory! Press Enter to continue."))
		} else {
			b.WriteString(combatLogStyle.Render("Defeated. Press Enter to continue."))
		}
	} else {
		b.WriteString(promptStyle.Render("space: speed  f: flee"))
	}

	modal := modalStyle.Width(62).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func rarityName(r int) string {
	switch r {
	case 2:
		return "vicious"
	case 3:
		return "alpha"
	default:
		return "common"
	}
}

func renderBar(cur, max, width int, style lipgloss.Style) string {
	if max <= 0 {
		max = 1
	}
	if cur < 0 {
		cur = 0
	}
	filled := cur * width / max
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar) + fmt.Sprintf(" %d/%d", cur, max)
}

func (m ConsoleUI) renderInteraction() string {
	ai := m.gs.ActiveInteraction
	if ai == nil {
		return ""
	}
	npc := m.gs.FindNPC(ai.NPCID)
	if npc == nil {
		return ""
	}
	tree := content.Dialogues[npc.DialogueID]
	node := tree.Nodes[ai.NodeID]

	var b strings.Builder
	b.WriteString(titleStyle.Render(npc.Name) + promptStyle.Render(fmt.Sprintf("  (%s, affinity %d)", npc.Role, npc.Affinity)) + "\n\n")
	b.WriteString(wordwrap.String(node.Text, 54) + "\n\n")
	for i, opt := range node.Options {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, opt.Text))
	}
	b.WriteString("\n" + promptStyle.Render("1-9: choose  Esc: leave"))

	modal := modalStyle.Width(60).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderItemList(items []item.Item, active bool, width int) string {
	if len(items) == 0 {
		return promptStyle.Render("(empty)")
	}
	var b strings.Builder
	for i, it := range items {
		line := it.Name
		if it.Quantity > 1 {
			line = fmt.Sprintf("%s x%d", it.Name, it.Quantity)
		}
		if it.Type == item.TypeWeapon {
			line += fmt.Sprintf("  [atk %d]", it.Damage)
		}
		if it.Type == item.TypeArmor {
			line += fmt.Sprintf("  [def %d]", it.Defense)
		}
		line += fmt.Sprintf("  %dg", it.Value)
		if len(line) > width {
			line = line[:width]
		}
		if active && i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m ConsoleUI) renderShop() string {
	npc := m.gs.FindNPC(m.gs.ActiveShopNPCID)
	if npc == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s's Wares", npc.Name)) + "\n")
	b.WriteString(promptStyle.Render(fmt.Sprintf("Your gold: %d", m.gs.Player.Gold)) + "\n\n")

	shopPane := panelStyle.Width(38).Render("Buy\n\n" + m.renderItemList(npc.Inventory, !m.rightPane, 34))
	sellPane := panelStyle.Width(38).Render("Sell (half value)\n\n" + m.renderItemList(m.gs.Player.Inventory, m.rightPane, 34))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, shopPane, sellPane))
	b.WriteString("\n" + promptStyle.Render("tab: switch  enter: trade  r: restock (100g)  esc: leave"))
	b.WriteString("\n\n" + m.renderLogs(76, 3))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m ConsoleUI) renderInventory() string {
	p := m.gs.Player

	var equipped strings.Builder
	slots := []struct {
		n    int
		slot item.Slot
		name string
	}{
		{1, item.SlotMainHand, "Main hand"},
		{2, item.SlotOffHand, "Off hand"},
		{3, item.SlotHead, "Head"},
		{4, item.SlotBody, "Body"},
		{5, item.SlotFeet, "Feet"},
	}
	for _, s := range slots {
		if it, ok := p.Equipment[s.slot]; ok {
			equipped.WriteString(fmt.Sprintf("%d. %-9s %s\n", s.n, s.name+":", it.Name))
		} else {
			equipped.WriteString(promptStyle.Render(fmt.Sprintf("%d. %-9s -", s.n, s.name+":")) + "\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Inventory") + "\n\n")
	invPane := panelStyle.Width(42).Render(m.renderItemList(p.Inventory, true, 38))
	eqPane := panelStyle.Width(32).Render("Equipped\n\n" + equipped.String())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, invPane, eqPane))
	b.WriteString("\n" + promptStyle.Render("enter: equip/use  1-5: unequip slot  esc: back"))
	b.WriteString("\n\n" + m.renderLogs(74, 3))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m ConsoleUI) renderCharacter() string {
	p := m.gs.Player
	d := p.Derived()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Character") + "\n\n")
	b.WriteString(fmt.Sprintf("%s, level %d %s %s\n", p.Name, p.Level, p.Race, p.Class))
	b.WriteString(fmt.Sprintf("Exp %d/%d\n\n", p.Exp, p.MaxExp))
	b.WriteString(fmt.Sprintf("1. Strength     %d\n", p.Base.Strength))
	b.WriteString(fmt.Sprintf("2. Dexterity    %d\n", p.Base.Dexterity))
	b.WriteString(fmt.Sprintf("3. Constitution %d\n", p.Base.Constitution))
	b.WriteString(fmt.Sprintf("4. Intelligence %d\n", p.Base.Intelligence))
	b.WriteString(fmt.Sprintf("5. Speed        %d\n", p.Base.Speed))
	b.WriteString(fmt.Sprintf("6. Luck         %d\n\n", p.Base.Luck))
	b.WriteString(fmt.Sprintf("HP %d/%d  MP %d/%d\n", p.HP, d.MaxHP, p.MP, d.MaxMP))
	b.WriteString(fmt.Sprintf("Phys def %.1f  Mag def %.1f\n", d.PhysicalDef, d.MagicalDef))
	b.WriteString(fmt.Sprintf("Evasion %.1f%%  Crit %.1f%%\n", d.Evasion, d.CritChance))
	b.WriteString(fmt.Sprintf("Regen %d HP, %d MP per hour\n\n", d.HPRegen, d.MPRegen))
	if p.StatPoints > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("%d points to spend. Press 1-6 to allocate.", p.StatPoints)) + "\n")
	}
	b.WriteString(promptStyle.Render("esc: back"))

	modal := modalStyle.Width(44).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderStorage() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Home Stash") + "\n\n")
	invPane := panelStyle.Width(38).Render("Inventory\n\n" + m.renderItemList(m.gs.Player.Inventory, !m.rightPane, 34))
	stashPane := panelStyle.Width(38).Render("Stash\n\n" + m.renderItemList(m.gs.Storage, m.rightPane, 34))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, invPane, stashPane))
	b.WriteString("\n" + promptStyle.Render("tab: switch  enter: move one  esc: back"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m ConsoleUI) renderQuests() string {
	quests := m.gs.Player.Quests

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quests") + "\n\n")
	if len(quests) == 0 {
		b.WriteString(promptStyle.Render("No active quests. The village elder may have work.") + "\n")
	}
	for i, q := range quests {
		line := fmt.Sprintf("%s  (%d/%d)", q.Title, q.AmountCurrent, q.AmountRequired)
		if q.Status == quest.Completed {
			line += infoStyle.Render("  [done]")
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString(promptStyle.Render(fmt.Sprintf("    reward: %d exp, %d gold", q.RewardExp, q.RewardGold)) + "\n")
	}
	b.WriteString("\n" + promptStyle.Render("g: new quest  enter: claim completed  esc: back"))
	b.WriteString("\n\n" + m.renderLogs(60, 3))

	modal := modalStyle.Width(64).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderSlots(title, hint string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(promptStyle.Render(hint))
	b.WriteString("\n\n" + m.renderLogs(44, 3))
	modal := modalStyle.Width(50).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	b.WriteString(fmt.Sprintf("a. Autosave: %s\n\n", m.gs.Settings.AutoSaveFrequency))
	b.WriteString(promptStyle.Render("a: cycle autosave  esc: back"))
	modal := modalStyle.Width(40).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m ConsoleUI) renderMapView() string {
	wm := m.gs.CurrentMap()
	if wm == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(wm.Name) + "\n\n")
	b.WriteString(m.renderMap(wm, wm.Width, wm.Height))
	b.WriteString("\n" + promptStyle.Render("esc: back"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
