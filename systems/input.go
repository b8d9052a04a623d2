package systems

import (
	"log"

	"github.com/automoto/emberveil/assets"
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs []ebiten.GamepadID
	justKeys   []ebiten.Key
	touchIDs   []ebiten.TouchID
	padCache   = map[ebiten.GamepadID]bool{}
	padBinds   [controls.ActionCount][]controls.PadButton
	padBound   bool
	lastCursor [2]int
)

// UpdateInput polls the platform once and rebuilds the InputData state.
// Must run before every system that reads input.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.State = input.Reader.Sample(pollRaw())
	input.Typed = ebiten.AppendInputChars(input.Typed[:0])
}

func pollRaw() controls.Raw {
	if !padBound {
		padBinds = cfg.PadBindings()
		padBound = true
	}
	var raw controls.Raw
	raw.PadBindings = padBinds

	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.Keys[action] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				raw.Keys[action] = true
			}
		}
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	raw.Keys[controls.ActionPaste] = ctrl && ebiten.IsKeyPressed(ebiten.KeyV)

	justKeys = inpututil.AppendJustPressedKeys(justKeys[:0])
	raw.KeyOrClick = len(justKeys) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	cx, cy := ebiten.CursorPosition()
	raw.PointerX, raw.PointerY = float64(cx), float64(cy)
	raw.PointerMoved = cx != lastCursor[0] || cy != lastCursor[1]
	lastCursor = [2]int{cx, cy}

	pollGamepads(&raw)

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		raw.Touches = append(raw.Touches, controls.TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return raw
}

// pollGamepads reports connection changes and samples the first gamepad
// with a standard layout.
func pollGamepads(raw *controls.Raw) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id := range padCache {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(padCache, id)
			raw.PadDisconnected = append(raw.PadDisconnected, int(id))
		}
	}

	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if !padCache[id] {
			padCache[id] = true
			raw.PadConnected = append(raw.PadConnected, int(id))
		}
		if raw.Gamepad != nil {
			continue
		}
		s := &controls.GamepadSample{
			ID:     int(id),
			StickX: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			StickY: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		for sb, pb := range cfg.Input.PadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, sb) {
				s.Buttons[pb] = true
			}
		}
		raw.Gamepad = s
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Reader: controls.NewReader(cfg.Input.AnalogDeadzone, touchLayout()),
			State:  controls.State{TouchSlot: -1},
		})
	}
	return components.Input.Get(entry)
}

var (
	layoutLoaded bool
	layout       *controls.Layout
)

// touchLayout loads the touch zones once. A broken layout disables touch
// zones rather than the whole client.
func touchLayout() *controls.Layout {
	if layoutLoaded {
		return layout
	}
	layoutLoaded = true
	l, err := assets.TouchLayout(cfg.Input.TouchLayout)
	if err != nil {
		log.Printf("[input] touch layout unavailable: %v", err)
		return nil
	}
	layout = l
	return layout
}

// TouchZones returns the loaded touch zones for drawing.
func TouchZones() []controls.Zone {
	if l := touchLayout(); l != nil {
		return l.Zones
	}
	return nil
}

// GetAction returns the held and edge state for an action.
func GetAction(input *components.InputData, id controls.Action) components.ActionState {
	return components.ActionState{
		Pressed:     input.State.Held[id],
		JustPressed: input.State.Pressed[id],
	}
}
