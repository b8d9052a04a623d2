package messages

import "github.com/automoto/emberveil/shared/netconfig"

// EntityID identifies a world entity for the lifetime of a server session.
type EntityID uint32

// Entity is a living world entity: players, mobs, NPCs, resources.
type Entity struct {
	ID     EntityID
	Kind   netconfig.EntityKind
	Name   string
	X, Y   float64
	VX, VY float64
	HP     int
	MaxHP  int
	Dead   bool
}

// Item is an inventory, equipment or ground item.
type Item struct {
	ID       uint32
	Name     string
	Kind     netconfig.ItemKind
	Slot     netconfig.EquipSlot // meaningful for gear only
	Quantity int
	Value    int
}

// Empty reports whether the item slot holds nothing.
func (i Item) Empty() bool { return i.ID == 0 }

// GroundItem is an item lying in the world.
type GroundItem struct {
	Item Item
	X, Y float64
}

// Projectile is an in-flight attack. Tag selects the draw style.
type Projectile struct {
	ID    uint32
	Tag   string
	X, Y  float64
	Angle float64
}

// Prop is a static decoration.
type Prop struct {
	Kind string
	X, Y float64
}

// TileMap is the visible terrain grid, row-major.
type TileMap struct {
	Width  int
	Height int
	Tiles  []netconfig.TileKind
}

// At returns the tile at (tx, ty) or TileVoid when out of range.
func (m TileMap) At(tx, ty int) netconfig.TileKind {
	if tx < 0 || ty < 0 || tx >= m.Width || ty >= m.Height {
		return netconfig.TileVoid
	}
	i := ty*m.Width + tx
	if i >= len(m.Tiles) {
		return netconfig.TileVoid
	}
	return m.Tiles[i]
}

// Character is the local player's sheet.
type Character struct {
	EntityID   EntityID
	Name       string
	Class      string
	Zone       string
	Level      int
	XP         int
	XPNext     int
	HP, MaxHP  int
	MP, MaxMP  int
	Gold       int
	StatPoints int
	Stats      [netconfig.StatCount]int
	Equipment  [netconfig.SlotCount]Item
	Inventory  []Item

	// Derived stats are computed server-side.
	Attack     int
	Defense    int
	Speed      float64
	CritChance float64
}

// CharacterSummary is one row of the character select list.
type CharacterSummary struct {
	ID    uint32
	Name  string
	Class string
	Level int
}

// Recipe is a crafting recipe offered to the player.
type Recipe struct {
	ID          uint32
	Name        string
	Ingredients []string
	Craftable   bool
}

// ShopItem is a purchasable entry in the shop panel.
type ShopItem struct {
	ID    string
	Name  string
	Kind  netconfig.ItemKind
	Price int
}

// ChatLine is one line of the chat log.
type ChatLine struct {
	From string
	Text string
}
