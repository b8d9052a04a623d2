package uistate

import "time"

// Direction is a navigation step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Layout constants for the fixed panels.
const (
	GridColumns    = 8
	EquipmentSlots = 5
	StatButtons    = 3
	EquipmentCount = EquipmentSlots + StatButtons
)

// Counts is the number of elements currently shown in each variable area.
type Counts struct {
	Inventory int
	Shop      int
	Crafting  int
}

func (c Counts) of(a Area) int {
	switch a {
	case AreaEquipment:
		return EquipmentCount
	case AreaInventory:
		return c.Inventory
	case AreaShop:
		return c.Shop
	case AreaCrafting:
		return c.Crafting
	}
	return 0
}

// Navigate moves the cursor one step, throttled to one step per interval.
// It reports whether the cursor moved. A step blocked by the layout edge
// does not use up the interval.
func (m *Machine) Navigate(dir Direction, now time.Time, c Counts) bool {
	if m.cursor.Area == AreaNone || m.chat {
		return false
	}

	n := c.of(m.cursor.Area)
	if n == 0 {
		return false
	}
	i := m.cursor.Index
	var next int
	switch m.cursor.Area {
	case AreaInventory, AreaShop:
		next = gridStep(i, dir, n)
	case AreaEquipment:
		next = equipmentStep(i, dir)
	case AreaCrafting:
		next = listStep(i, dir, n)
	}
	if next == i || !m.nav.AllowN(now, 1) {
		return false
	}
	m.cursor.Index = next
	m.version++
	return true
}

func gridStep(i int, dir Direction, n int) int {
	next := i
	switch dir {
	case Left:
		next = i - 1
	case Right:
		next = i + 1
	case Up:
		next = i - GridColumns
	case Down:
		next = i + GridColumns
	}
	if next < 0 {
		return i
	}
	if next >= n {
		// Moving down into a partial last row lands on its last element.
		if dir == Down && i/GridColumns < (n-1)/GridColumns {
			return n - 1
		}
		return i
	}
	return next
}

func equipmentStep(i int, dir Direction) int {
	switch dir {
	case Left:
		if i > 0 {
			return i - 1
		}
	case Right:
		if i < EquipmentCount-1 {
			return i + 1
		}
	case Down:
		if i < EquipmentSlots {
			return EquipmentSlots + min(i, StatButtons-1)
		}
	case Up:
		if i >= EquipmentSlots {
			return i - EquipmentSlots
		}
	}
	return i
}

func listStep(i int, dir Direction, n int) int {
	switch dir {
	case Up:
		if i > 0 {
			return i - 1
		}
	case Down:
		if i < n-1 {
			return i + 1
		}
	}
	return i
}

// Clamp keeps the cursor index inside the active area after its content
// changed. An empty area clamps to 0.
func (m *Machine) Clamp(c Counts) {
	if m.cursor.Area == AreaNone {
		m.cursor.Index = 0
		return
	}
	n := c.of(m.cursor.Area)
	switch {
	case n == 0 || m.cursor.Index < 0:
		m.cursor.Index = 0
	case m.cursor.Index > n-1:
		m.cursor.Index = n - 1
	}
}
