package messages

import "github.com/automoto/emberveil/shared/netconfig"

// Outbound is implemented by every client-to-server message.
type Outbound interface {
	isOutbound()
}

// LoginRequest starts a session.
type LoginRequest struct {
	Version string
	Account string
}

// SelectCharacter enters the world with an existing character.
type SelectCharacter struct {
	CharacterID uint32
}

// CreateCharacter makes a new character and enters the world with it.
type CreateCharacter struct {
	Name  string
	Class string
}

// MoveIntent is the edge-triggered movement state.
type MoveIntent struct {
	DX, DY   float64
	Blocking bool
}

// AttackAction is a basic attack toward Angle (radians).
type AttackAction struct {
	Angle float64
}

// SkillAction casts the skill in the given hotbar slot.
type SkillAction struct {
	Index int
	Angle float64
}

// DashAction dashes toward Angle.
type DashAction struct {
	Angle float64
}

// PotionAction drinks the first available potion.
type PotionAction struct{}

// EquipItem equips the inventory item at Index.
type EquipItem struct {
	Index int
}

// UnequipItem moves the item in Slot back to the inventory.
type UnequipItem struct {
	Slot netconfig.EquipSlot
}

// DropItem drops the inventory item at Index.
type DropItem struct {
	Index int
}

// UseItem consumes the inventory item at Index.
type UseItem struct {
	Index int
}

// AllocateStat spends one pending stat point.
type AllocateStat struct {
	Stat netconfig.StatKind
}

// CraftItem crafts a recipe.
type CraftItem struct {
	RecipeID uint32
}

// SocketGem sockets the gem at GemIndex into the item at ItemIndex.
type SocketGem struct {
	ItemIndex int
	GemIndex  int
}

// ShopBuy purchases a shop item.
type ShopBuy struct {
	ItemID string
}

// ChatSend posts a chat line.
type ChatSend struct {
	Text string
}

func (LoginRequest) isOutbound()    {}
func (SelectCharacter) isOutbound() {}
func (CreateCharacter) isOutbound() {}
func (MoveIntent) isOutbound()      {}
func (AttackAction) isOutbound()    {}
func (SkillAction) isOutbound()     {}
func (DashAction) isOutbound()      {}
func (PotionAction) isOutbound()    {}
func (EquipItem) isOutbound()       {}
func (UnequipItem) isOutbound()     {}
func (DropItem) isOutbound()        {}
func (UseItem) isOutbound()         {}
func (AllocateStat) isOutbound()    {}
func (CraftItem) isOutbound()       {}
func (SocketGem) isOutbound()       {}
func (ShopBuy) isOutbound()         {}
func (ChatSend) isOutbound()        {}
