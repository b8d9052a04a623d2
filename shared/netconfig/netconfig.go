// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// EntityKind classifies a world entity for targeting and rendering.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityMob
	EntityNPC
	EntityStatic
	EntityResource
)

func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityMob:
		return "mob"
	case EntityNPC:
		return "npc"
	case EntityStatic:
		return "static"
	case EntityResource:
		return "resource"
	}
	return "unknown"
}

// Hostile reports whether auto-aim may target this kind of entity.
func (k EntityKind) Hostile() bool {
	return k == EntityMob
}

// EffectKind tags a server-pushed visual effect.
type EffectKind int

const (
	EffectMeleeSwing EffectKind = iota
	EffectSpinAttack
	EffectAreaBurst
	EffectDash
)

// TextKind tags a floating combat/status text. TextGeneric means the client
// classifies the value itself.
type TextKind int

const (
	TextGeneric TextKind = iota
	TextDamage
	TextCrit
	TextHeal
	TextLevelUp
	TextMiss
	TextGold
)

// ItemKind classifies inventory items for the confirm action.
type ItemKind int

const (
	ItemMaterial ItemKind = iota
	ItemGear
	ItemConsumable
	ItemGem
)

// EquipSlot identifies one of the character's equipment slots.
type EquipSlot int

const (
	SlotWeapon EquipSlot = iota
	SlotHelm
	SlotArmor
	SlotBoots
	SlotRing
	SlotCount
)

var slotNames = [SlotCount]string{"weapon", "helm", "armor", "boots", "ring"}

func (s EquipSlot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// StatKind identifies an allocatable attribute.
type StatKind int

const (
	StatStrength StatKind = iota
	StatAgility
	StatVitality
	StatCount
)

var statNames = [StatCount]string{"strength", "agility", "vitality"}

func (s StatKind) String() string {
	if s < 0 || s >= StatCount {
		return "unknown"
	}
	return statNames[s]
}

// TileKind is the terrain type of a map tile.
type TileKind uint8

const (
	TileVoid TileKind = iota
	TileFloor
	TileWall
	TileWater
	TileGrass
)

// World geometry shared by both sides of the wire.
const (
	TileSize      = 32
	DefaultPort   = 7373
	ChatMaxRunes  = 200
	DefaultTickHz = 20
)

// Classes are the character classes a new character can pick.
var Classes = []string{"warrior", "ranger", "mage"}
