// Package hud turns the merged snapshot and the UI state into a flat view
// model. The HUD and panel renderers rebuild themselves from a fresh Model
// whenever either input changes.
package hud

import (
	"fmt"
	"strings"
	"time"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/uistate"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StaleAfter is how long without a snapshot before the HUD warns.
const StaleAfter = 2 * time.Second

// ChatLines is the number of chat log lines shown.
const ChatLines = 8

// Bar is a resource bar.
type Bar struct {
	Current, Max int
	Fraction     float64
	Label        string
}

// Row is a label/value pair.
type Row struct {
	Label string
	Value string
}

// Slot is one focusable cell in a panel.
type Slot struct {
	Label   string
	Detail  string
	Empty   bool
	Enabled bool
	Focused bool
}

// Model is everything the HUD and panels display.
type Model struct {
	Name  string
	Class string
	Zone  string
	Level int

	HP, MP, XP Bar

	Gold       string
	StatPoints int
	Stats      []Row
	Derived    []Row

	Panel     uistate.Panel
	Equipment []Slot // slots then stat buttons, in cursor order
	Inventory []Slot
	Shop      []Slot
	Crafting  []Slot

	ChatOpen bool
	Chat     []string

	Stale string
}

var title = cases.Title(language.AmericanEnglish)

// Build produces a fresh model. age is the time since the last snapshot.
func Build(snap *worldstate.Snapshot, m *uistate.Machine, age time.Duration) Model {
	c := snap.Character
	cur := m.Cursor()
	md := Model{
		Name:       c.Name,
		Class:      title.String(c.Class),
		Zone:       title.String(c.Zone),
		Level:      c.Level,
		HP:         bar(c.HP, c.MaxHP),
		MP:         bar(c.MP, c.MaxMP),
		XP:         bar(c.XP, c.XPNext),
		Gold:       humanize.Comma(int64(c.Gold)),
		StatPoints: c.StatPoints,
		Panel:      m.Panel(),
		ChatOpen:   m.ChatOpen(),
	}

	for s := range netconfig.StatCount {
		md.Stats = append(md.Stats, Row{Label: title.String(s.String()), Value: fmt.Sprint(c.Stats[s])})
	}
	md.Derived = []Row{
		{"Attack", fmt.Sprint(c.Attack)},
		{"Defense", fmt.Sprint(c.Defense)},
		{"Speed", fmt.Sprintf("%.1f", c.Speed)},
		{"Crit", fmt.Sprintf("%.0f%%", c.CritChance*100)},
	}

	for i, it := range c.Equipment {
		s := itemSlot(it)
		if s.Empty {
			s.Label = title.String(netconfig.EquipSlot(i).String())
		}
		s.Focused = cur.Area == uistate.AreaEquipment && cur.Index == i
		md.Equipment = append(md.Equipment, s)
	}
	for i := range netconfig.StatCount {
		idx := uistate.EquipmentSlots + int(i)
		md.Equipment = append(md.Equipment, Slot{
			Label:   "+ " + title.String(i.String()),
			Enabled: c.StatPoints > 0,
			Focused: cur.Area == uistate.AreaEquipment && cur.Index == idx,
		})
	}

	for i, it := range c.Inventory {
		s := itemSlot(it)
		s.Focused = cur.Area == uistate.AreaInventory && cur.Index == i
		md.Inventory = append(md.Inventory, s)
	}
	for i, it := range snap.Shop {
		md.Shop = append(md.Shop, Slot{
			Label:   title.String(it.Name),
			Detail:  humanize.Comma(int64(it.Price)) + "g",
			Enabled: c.Gold >= it.Price,
			Focused: cur.Area == uistate.AreaShop && cur.Index == i,
		})
	}
	for i, r := range snap.Recipes {
		md.Crafting = append(md.Crafting, Slot{
			Label:   title.String(r.Name),
			Detail:  strings.Join(r.Ingredients, ", "),
			Enabled: r.Craftable,
			Focused: cur.Area == uistate.AreaCrafting && cur.Index == i,
		})
	}

	start := max(len(snap.Chat)-ChatLines, 0)
	for _, l := range snap.Chat[start:] {
		md.Chat = append(md.Chat, chatLine(l))
	}

	md.Stale = StaleLabel(age)
	return md
}

// StaleLabel describes how long the client has gone without a snapshot, or
// is empty while updates are arriving.
func StaleLabel(age time.Duration) string {
	if age < StaleAfter {
		return ""
	}
	return "no update for " + durafmt.Parse(age.Truncate(time.Second)).LimitFirstN(2).String()
}

func bar(cur, maxV int) Bar {
	b := Bar{Current: cur, Max: maxV}
	if maxV > 0 {
		b.Fraction = float64(cur) / float64(maxV)
		b.Fraction = min(max(b.Fraction, 0), 1)
	}
	b.Label = humanize.Comma(int64(cur)) + " / " + humanize.Comma(int64(maxV))
	return b
}

func itemSlot(it messages.Item) Slot {
	if it.Empty() {
		return Slot{Empty: true}
	}
	s := Slot{Label: title.String(it.Name), Enabled: true}
	if it.Quantity > 1 {
		s.Detail = "x" + humanize.Comma(int64(it.Quantity))
	}
	return s
}

func chatLine(l messages.ChatLine) string {
	if l.From == "" {
		return l.Text
	}
	return l.From + ": " + l.Text
}
