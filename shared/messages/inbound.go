package messages

import "github.com/automoto/emberveil/shared/netconfig"

// Inbound is implemented by every server-to-client message.
type Inbound interface {
	isInbound()
}

// Welcome is sent after the transport handshake.
type Welcome struct {
	ServerName string
	TickRate   int
	Version    string
}

// CharacterList answers a LoginRequest.
type CharacterList struct {
	Account    string
	Characters []CharacterSummary
}

// LoginRejected answers a LoginRequest the server refused.
type LoginRejected struct {
	Reason string
}

// Field is a bit in SnapshotUpdate.Fields naming a present field.
type Field uint16

const (
	FieldCharacter Field = 1 << iota
	FieldEntities
	FieldItems
	FieldProjectiles
	FieldProps
	FieldTiles
	FieldExplored
	FieldChat
	FieldRecipes
	FieldShop
)

// FieldsAll marks every field as present (a full replacement).
const FieldsAll = FieldCharacter | FieldEntities | FieldItems | FieldProjectiles |
	FieldProps | FieldTiles | FieldExplored | FieldChat | FieldRecipes | FieldShop

// SnapshotUpdate carries authoritative state. Only fields whose bit is set
// in Fields replace the client's copy; the rest are left untouched.
type SnapshotUpdate struct {
	Tick        uint64
	Fields      Field
	Character   Character
	Entities    []Entity
	Items       []GroundItem
	Projectiles []Projectile
	Props       []Prop
	Tiles       TileMap
	Explored    []bool
	Chat        []ChatLine
	Recipes     []Recipe
	Shop        []ShopItem
}

// Has reports whether f is present in the update.
func (u SnapshotUpdate) Has(f Field) bool { return u.Fields&f != 0 }

// Then folds next on top of u, as if both had been applied in order. It is
// used to collapse a backlog of updates into one without losing fields.
func (u SnapshotUpdate) Then(next SnapshotUpdate) SnapshotUpdate {
	out := u
	out.Tick = max(u.Tick, next.Tick)
	out.Fields = u.Fields | next.Fields
	if next.Has(FieldCharacter) {
		out.Character = next.Character
	}
	if next.Has(FieldEntities) {
		out.Entities = next.Entities
	}
	if next.Has(FieldItems) {
		out.Items = next.Items
	}
	if next.Has(FieldProjectiles) {
		out.Projectiles = next.Projectiles
	}
	if next.Has(FieldProps) {
		out.Props = next.Props
	}
	if next.Has(FieldTiles) {
		out.Tiles = next.Tiles
	}
	if next.Has(FieldExplored) {
		out.Explored = next.Explored
	}
	if next.Has(FieldChat) {
		out.Chat = next.Chat
	}
	if next.Has(FieldRecipes) {
		out.Recipes = next.Recipes
	}
	if next.Has(FieldShop) {
		out.Shop = next.Shop
	}
	return out
}

// FloatingTextEvent spawns combat/status text above a world position.
type FloatingTextEvent struct {
	Kind  netconfig.TextKind
	Value string
	X, Y  float64
}

// VisualEffectEvent spawns a transient visual effect.
type VisualEffectEvent struct {
	Kind  netconfig.EffectKind
	X, Y  float64
	Angle float64
}

// ShopOpenEvent opens the shop panel with the given stock.
type ShopOpenEvent struct {
	Merchant string
	Items    []ShopItem
}

// ChatNotifyEvent signals a new chat line. The text itself arrives in the
// next snapshot; From is only used for desktop notifications.
type ChatNotifyEvent struct {
	From string
}

func (Welcome) isInbound()           {}
func (CharacterList) isInbound()     {}
func (LoginRejected) isInbound()     {}
func (SnapshotUpdate) isInbound()    {}
func (FloatingTextEvent) isInbound() {}
func (VisualEffectEvent) isInbound() {}
func (ShopOpenEvent) isInbound()     {}
func (ChatNotifyEvent) isInbound()   {}
