// Package controls turns raw keyboard, mouse, touch and gamepad samples into
// one normalized State per frame. It has no ebiten dependency; the polling
// glue lives in systems/input.go.
package controls

// Action represents a logical input action.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionBlock
	ActionAttack
	ActionSkill
	ActionDash
	ActionPotion
	ActionMenuToggle
	ActionInventory
	ActionCharacter
	ActionCrafting
	ActionChat
	ActionNavUp
	ActionNavDown
	ActionNavLeft
	ActionNavRight
	ActionConfirm
	ActionSecondary
	ActionEscape
	ActionPaste
	ActionCount // Must be last - used for array sizing
)

// State is the per-frame input snapshot consumed by the aim resolver, the
// intent emitter and the UI state machine.
type State struct {
	// X and Y are the movement axes in [-1, 1].
	X, Y float64

	Held    [ActionCount]bool
	Pressed [ActionCount]bool // went down this frame

	PointerX, PointerY float64
	Device             DeviceClass

	// TouchSlot is the inventory slot tapped this frame, or -1.
	TouchSlot int
}

// JustPressed reports whether a went down this frame.
func (s *State) JustPressed(a Action) bool { return s.Pressed[a] }

// Blocking reports whether the block action is held.
func (s *State) Blocking() bool { return s.Held[ActionBlock] }
