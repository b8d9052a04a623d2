// Package uistate is the local UI focus state machine: which panel is open,
// whether chat has focus, and which element of the open panel is highlighted.
package uistate

import (
	"time"

	"golang.org/x/time/rate"
)

// Panel is a primary UI panel. At most one is open.
type Panel int

const (
	PanelNone Panel = iota
	PanelInventory
	PanelCharacter
	PanelShop
	PanelCrafting
)

func (p Panel) String() string {
	switch p {
	case PanelInventory:
		return "inventory"
	case PanelCharacter:
		return "character"
	case PanelShop:
		return "shop"
	case PanelCrafting:
		return "crafting"
	}
	return "none"
}

// Area is the focusable region of a panel.
type Area int

const (
	AreaNone Area = iota
	AreaEquipment
	AreaInventory
	AreaShop
	AreaCrafting
)

func areaFor(p Panel) Area {
	switch p {
	case PanelInventory:
		return AreaInventory
	case PanelCharacter:
		return AreaEquipment
	case PanelShop:
		return AreaShop
	case PanelCrafting:
		return AreaCrafting
	}
	return AreaNone
}

// Cursor identifies the highlighted element.
type Cursor struct {
	Area  Area
	Index int
}

// DefaultNavInterval is the minimum time between two navigation steps.
const DefaultNavInterval = 150 * time.Millisecond

// Machine holds the UI focus state. It is owned by the game loop.
type Machine struct {
	panel   Panel
	chat    bool
	cursor  Cursor
	nav     *rate.Limiter
	version int
}

func New() *Machine {
	return NewWithInterval(DefaultNavInterval)
}

func NewWithInterval(interval time.Duration) *Machine {
	return &Machine{
		nav: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (m *Machine) Panel() Panel { return m.panel }
func (m *Machine) ChatOpen() bool { return m.chat }
func (m *Machine) Cursor() Cursor { return m.cursor }
func (m *Machine) IsOpen(p Panel) bool {
	return p != PanelNone && m.panel == p
}

// Version increments on every state change so views know when to rebuild.
func (m *Machine) Version() int { return m.version }

// MovementSuppressed is true while any panel or chat is open.
func (m *Machine) MovementSuppressed() bool {
	return m.panel != PanelNone || m.chat
}

// Open is the only way a panel becomes visible. It closes every other panel
// and resets focus to the first element of the new one.
func (m *Machine) Open(p Panel) {
	m.panel = p
	m.cursor = Cursor{Area: areaFor(p)}
	m.version++
}

// Toggle opens p, or closes it if it is already open.
func (m *Machine) Toggle(p Panel) {
	if m.panel == p {
		m.Open(PanelNone)
		return
	}
	m.Open(p)
}

// CloseAll returns to the initial state, leaving chat untouched.
func (m *Machine) CloseAll() {
	m.Open(PanelNone)
}

func (m *Machine) SetChat(open bool) {
	if m.chat == open {
		return
	}
	m.chat = open
	m.version++
}

// Escape closes chat first; with chat closed it closes all panels.
func (m *Machine) Escape() {
	if m.chat {
		m.SetChat(false)
		return
	}
	m.CloseAll()
}

// Focus moves the cursor directly, e.g. when a slot is tapped. The index is
// clamped against counts.
func (m *Machine) Focus(index int, c Counts) {
	if m.cursor.Area == AreaNone {
		return
	}
	m.cursor.Index = index
	m.Clamp(c)
	m.version++
}
