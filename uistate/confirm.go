package uistate

import (
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

// View is the slice of the snapshot the confirm actions look at.
type View struct {
	Equipment  [netconfig.SlotCount]messages.Item
	Inventory  []messages.Item
	StatPoints int
	Shop       []messages.ShopItem
	Recipes    []messages.Recipe
}

// Counts returns the element counts of the variable areas.
func (v View) Counts() Counts {
	return Counts{
		Inventory: len(v.Inventory),
		Shop:      len(v.Shop),
		Crafting:  len(v.Recipes),
	}
}

// CommandKind is the outbound action a confirm or secondary press maps to.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdUnequip
	CmdAllocateStat
	CmdEquip
	CmdUse
	CmdDrop
	CmdBuy
	CmdCraft
)

// Command describes one outbound action. Only the fields relevant to Kind
// are set.
type Command struct {
	Kind     CommandKind
	Index    int
	Slot     netconfig.EquipSlot
	Stat     netconfig.StatKind
	ItemID   string
	RecipeID uint32
}

// Confirm resolves the primary action on the focused element.
func (m *Machine) Confirm(v View) Command {
	i := m.cursor.Index
	switch m.cursor.Area {
	case AreaEquipment:
		if i < EquipmentSlots {
			if v.Equipment[i].Empty() {
				return Command{}
			}
			return Command{Kind: CmdUnequip, Slot: netconfig.EquipSlot(i)}
		}
		if i < EquipmentCount && v.StatPoints > 0 {
			return Command{Kind: CmdAllocateStat, Stat: netconfig.StatKind(i - EquipmentSlots)}
		}
	case AreaInventory:
		if i >= len(v.Inventory) {
			return Command{}
		}
		switch v.Inventory[i].Kind {
		case netconfig.ItemGear:
			return Command{Kind: CmdEquip, Index: i}
		case netconfig.ItemConsumable:
			return Command{Kind: CmdUse, Index: i}
		}
	case AreaShop:
		if i < len(v.Shop) {
			return Command{Kind: CmdBuy, ItemID: v.Shop[i].ID}
		}
	case AreaCrafting:
		if i < len(v.Recipes) && v.Recipes[i].Craftable {
			return Command{Kind: CmdCraft, RecipeID: v.Recipes[i].ID}
		}
	}
	return Command{}
}

// Secondary resolves the secondary action: dropping the focused inventory item.
func (m *Machine) Secondary(v View) Command {
	if m.cursor.Area != AreaInventory || m.cursor.Index >= len(v.Inventory) {
		return Command{}
	}
	return Command{Kind: CmdDrop, Index: m.cursor.Index}
}
