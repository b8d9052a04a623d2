package config

import (
	"time"

	"github.com/automoto/emberveil/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[controls.Action]InputBinding
	// PadButtons maps ebiten's standard layout onto the reader's buttons.
	PadButtons map[ebiten.StandardGamepadButton]controls.PadButton
	// Deadzone for analog stick input (radial, 0.0 to 1.0)
	AnalogDeadzone float64
	// NavInterval is the minimum time between panel cursor steps.
	NavInterval time.Duration
	// TouchLayout is the path of the touch zone map inside the assets FS.
	TouchLayout string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.3,
		NavInterval:    150 * time.Millisecond,
		TouchLayout:    "layout/touch.tmx",
		PadButtons: map[ebiten.StandardGamepadButton]controls.PadButton{
			ebiten.StandardGamepadButtonRightBottom:      controls.PadSouth,
			ebiten.StandardGamepadButtonRightRight:       controls.PadEast,
			ebiten.StandardGamepadButtonRightLeft:        controls.PadWest,
			ebiten.StandardGamepadButtonRightTop:         controls.PadNorth,
			ebiten.StandardGamepadButtonFrontTopLeft:     controls.PadLeftBumper,
			ebiten.StandardGamepadButtonFrontTopRight:    controls.PadRightBumper,
			ebiten.StandardGamepadButtonFrontBottomLeft:  controls.PadLeftTrigger,
			ebiten.StandardGamepadButtonFrontBottomRight: controls.PadRightTrigger,
			ebiten.StandardGamepadButtonCenterLeft:       controls.PadSelect,
			ebiten.StandardGamepadButtonCenterRight:      controls.PadStart,
			ebiten.StandardGamepadButtonLeftTop:          controls.PadUp,
			ebiten.StandardGamepadButtonLeftBottom:       controls.PadDown,
			ebiten.StandardGamepadButtonLeftLeft:         controls.PadLeft,
			ebiten.StandardGamepadButtonLeftRight:        controls.PadRight,
		},
		Bindings: map[controls.Action]InputBinding{
			controls.ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			controls.ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			controls.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			controls.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			controls.ActionBlock: {
				Keys:                   []ebiten.Key{ebiten.KeyShiftLeft},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
			controls.ActionAttack: {
				Keys:                   []ebiten.Key{ebiten.KeyJ},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			controls.ActionSkill: {
				Keys:                   []ebiten.Key{ebiten.KeyK},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			controls.ActionDash: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			controls.ActionPotion: {
				Keys:                   []ebiten.Key{ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			controls.ActionMenuToggle: {
				Keys:                   []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			controls.ActionInventory: {
				Keys:                   []ebiten.Key{ebiten.KeyI},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			controls.ActionCharacter: {
				Keys:                   []ebiten.Key{ebiten.KeyC},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			controls.ActionCrafting: {
				Keys: []ebiten.Key{ebiten.KeyO},
			},
			controls.ActionChat: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
			controls.ActionNavUp: {
				Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			controls.ActionNavDown: {
				Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			controls.ActionNavLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			controls.ActionNavRight: {
				Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			// Enter is shared with chat; the UI routes it to confirm while a panel is open.
			controls.ActionConfirm: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyE},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			controls.ActionSecondary: {
				Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeyDelete},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			controls.ActionEscape: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
		},
	}
}

// PadBindings converts the gamepad bindings into reader buttons.
func PadBindings() [controls.ActionCount][]controls.PadButton {
	var out [controls.ActionCount][]controls.PadButton
	for action, b := range Input.Bindings {
		for _, sb := range b.StandardGamepadButtons {
			if pb, ok := Input.PadButtons[sb]; ok {
				out[action] = append(out[action], pb)
			}
		}
	}
	return out
}
